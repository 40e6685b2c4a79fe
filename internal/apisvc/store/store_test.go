package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSet(t *testing.T) {
	t.Run("deterministic column order", func(t *testing.T) {
		set, args := buildSet(map[string]interface{}{
			"status": "ACTIVE",
			"name":   "US Dollar",
			"code":   "USD",
		})

		assert.Equal(t, "code = $1, name = $2, status = $3", set)
		assert.Equal(t, []interface{}{"USD", "US Dollar", "ACTIVE"}, args)
	})

	t.Run("single field", func(t *testing.T) {
		set, args := buildSet(map[string]interface{}{"status": "INACTIVE"})
		assert.Equal(t, "status = $1", set)
		assert.Equal(t, []interface{}{"INACTIVE"}, args)
	})

	t.Run("empty map", func(t *testing.T) {
		set, args := buildSet(map[string]interface{}{})
		assert.Equal(t, "", set)
		assert.Empty(t, args)
	})
}
