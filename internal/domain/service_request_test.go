package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidServiceRequestTransition(t *testing.T) {
	tests := []struct {
		from, to ServiceRequestStatus
		ok       bool
	}{
		{ServiceRequestStatusOpen, ServiceRequestStatusInProgress, true},
		{ServiceRequestStatusOpen, ServiceRequestStatusRejected, true},
		{ServiceRequestStatusOpen, ServiceRequestStatusCompleted, false},
		{ServiceRequestStatusInProgress, ServiceRequestStatusCompleted, true},
		{ServiceRequestStatusInProgress, ServiceRequestStatusRejected, true},
		{ServiceRequestStatusInProgress, ServiceRequestStatusOpen, false},
		{ServiceRequestStatusCompleted, ServiceRequestStatusOpen, false},
		{ServiceRequestStatusRejected, ServiceRequestStatusInProgress, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, ValidServiceRequestTransition(tt.from, tt.to),
			"%s -> %s", tt.from, tt.to)
	}
}

func TestParseServiceRequestStatus(t *testing.T) {
	st, err := ParseServiceRequestStatus("IN_PROGRESS")
	assert.NoError(t, err)
	assert.Equal(t, ServiceRequestStatusInProgress, st)

	_, err = ParseServiceRequestStatus("DONE")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod("CASH")
	assert.NoError(t, err)
	assert.Equal(t, PaymentMethodCash, m)

	_, err = ParsePaymentMethod("BARTER")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestInvoiceStatus_Closed(t *testing.T) {
	assert.True(t, InvoiceStatusPaid.Closed())
	assert.True(t, InvoiceStatusCancelled.Closed())
	assert.False(t, InvoiceStatusDraft.Closed())
	assert.False(t, InvoiceStatusIssued.Closed())
}
