package receipt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractReferenceNumber(t *testing.T) {
	t.Run("pulls the reference out of the confirmation URL", func(t *testing.T) {
		text := "Dear customer, you have transferred ETB 5,000.00. " +
			"https://receipts.bank.example/?id=FT25146G8PWQ for your records."

		ref, err := ExtractReferenceNumber(text)
		assert.NoError(t, err)
		assert.Equal(t, "FT25146G8PWQ", ref)
	})

	t.Run("no URL in the text", func(t *testing.T) {
		_, err := ExtractReferenceNumber("no receipt link here")
		assert.Error(t, err)
	})

	t.Run("reference too short", func(t *testing.T) {
		_, err := ExtractReferenceNumber("see https://receipts.bank.example/?id=FT123")
		assert.Error(t, err)
	})
}

func TestParseFields(t *testing.T) {
	text := `Transaction Receipt
Receiver
FINPAY PLC
Payment Date & Time
21-May-2025 10:32:11
Total amount debited from customers account
ETB 5,150.75
Thank you for banking with us`

	receiver, total, date := parseFields(text)
	assert.Equal(t, "FINPAY PLC", receiver)
	assert.Equal(t, 5150.75, total)
	assert.Equal(t, "21-May-2025 10:32:11", date)
}

func TestParseFieldsMissingLabels(t *testing.T) {
	receiver, total, date := parseFields("just some unrelated text")
	assert.Empty(t, receiver)
	assert.Zero(t, total)
	assert.Empty(t, date)
}
