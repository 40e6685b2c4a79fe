package mailer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemplateFor(t *testing.T) {
	// exactly these four transitions notify the customer
	notified := []string{"COMPLETED", "FAILED", "REFUND", "IN_REVIEW"}
	silent := []string{"PENDING", "CANCELLED", "", "UNKNOWN"}

	for _, txType := range []string{"DEPOSIT", "WITHDRAW"} {
		for _, status := range notified {
			tmpl, ok := TemplateFor(txType, status)
			assert.True(t, ok, "%s %s should have a template", txType, status)
			assert.NotEmpty(t, tmpl.Subject)
			assert.NotEmpty(t, tmpl.Message)
		}
		for _, status := range silent {
			_, ok := TemplateFor(txType, status)
			assert.False(t, ok, "%s %s should be silent", txType, status)
		}
	}
}

func TestCompletedDepositSubject(t *testing.T) {
	tmpl, ok := TemplateFor("DEPOSIT", "COMPLETED")
	assert.True(t, ok)
	assert.Equal(t, "Your deposit was successful!", tmpl.Subject)
}

func TestTemplateForDistinguishesTypes(t *testing.T) {
	dep, _ := TemplateFor("DEPOSIT", "COMPLETED")
	wd, _ := TemplateFor("WITHDRAW", "COMPLETED")
	assert.NotEqual(t, dep.Subject, wd.Subject)
	assert.Contains(t, strings.ToLower(dep.Subject), "deposit")
	assert.Contains(t, strings.ToLower(wd.Subject), "withdraw")
}

func TestRenderBody(t *testing.T) {
	tmpl, _ := TemplateFor("DEPOSIT", "COMPLETED")
	body := renderBody("Abebe Bikila", tmpl, "DEP-1a2b3c4d", "150.00")

	assert.Contains(t, body, "Abebe Bikila")
	assert.Contains(t, body, "DEP-1a2b3c4d")
	assert.Contains(t, body, "150.00")
	assert.Contains(t, body, tmpl.Message)
}
