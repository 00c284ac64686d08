package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name            string
		receive         bool
		customerReceive bool
		expected        PaymentStatus
	}{
		{name: "both dates", receive: true, customerReceive: true, expected: PaymentStatusReceived},
		{name: "customer only", receive: false, customerReceive: true, expected: PaymentStatusPartial},
		{name: "owner only", receive: true, customerReceive: false, expected: PaymentStatusPending},
		{name: "neither", receive: false, customerReceive: false, expected: PaymentStatusPending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveStatus(tt.receive, tt.customerReceive))
		})
	}
}

func TestPaymentFromDocument(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{
		"date": "2024-03-01",
		"projectName": "Skyline",
		"basePrice": 2500000,
		"ownerBro": "12500.50",
		"customerBrokerage": 10000,
		"receiveDate": "",
		"customerReceiveDate": "2024-03-10",
		"employee": "E01"
	}`))
	require.NoError(t, err)

	p := PaymentFromDocument(doc)
	assert.Equal(t, "Skyline", p.ProjectName)
	assert.Equal(t, 2500000.0, p.BasePrice)
	assert.Equal(t, 12500.50, p.OwnerBrokerage)
	assert.Equal(t, 10000.0, p.CustomerBrokerage)
	assert.Nil(t, p.ReceiveDate)
	require.NotNil(t, p.CustomerReceiveDate)
	assert.Equal(t, PaymentStatusPartial, p.Status())
	assert.Equal(t, "E01", p.Employee)
}

func TestPaymentFromDocument_NullDates(t *testing.T) {
	doc, err := DecodeDocument([]byte(`{"receiveDate": null, "customerReceiveDate": null}`))
	require.NoError(t, err)
	assert.Equal(t, PaymentStatusPending, PaymentFromDocument(doc).Status())
}
