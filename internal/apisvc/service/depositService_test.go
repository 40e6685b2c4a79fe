package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTransactionRef(t *testing.T) {
	ref := NewTransactionRef("DEP")

	assert.True(t, strings.HasPrefix(ref, "DEP-"))
	assert.Len(t, ref, len("DEP-")+8)
	assert.NotContains(t, ref[4:], "-")

	// two refs should never collide
	assert.NotEqual(t, ref, NewTransactionRef("DEP"))
}

func TestNullID(t *testing.T) {
	assert.False(t, nullID(0).Valid)
	assert.False(t, nullID(-1).Valid)

	n := nullID(12)
	assert.True(t, n.Valid)
	assert.Equal(t, int64(12), n.Int64)
}
