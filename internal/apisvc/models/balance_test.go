package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransactionStatus(t *testing.T) {
	for _, s := range []string{TxPending, TxCompleted, TxFailed, TxCancelled, TxRefund, TxInReview} {
		assert.True(t, ValidTransactionStatus(s), s)
	}

	for _, s := range []string{"", "pending", "DONE", "APPROVED"} {
		assert.False(t, ValidTransactionStatus(s), s)
	}
}

func TestValidTransactionType(t *testing.T) {
	assert.True(t, ValidTransactionType(TxDeposit))
	assert.True(t, ValidTransactionType(TxWithdraw))
	assert.False(t, ValidTransactionType("TRANSFER"))
	assert.False(t, ValidTransactionType(""))
}
