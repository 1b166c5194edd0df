package order

import (
	"encoding/json"
	"testing"

	"github.com/google/go-querystring/query"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	for _, s := range AvailableStatuses {
		got, err := NewStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	_, err := NewStatus("lost")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestStatusUpdate_JSON(t *testing.T) {
	t.Run("omits tracking id when not supplied", func(t *testing.T) {
		b, err := json.Marshal(StatusUpdate{Status: StatusPacked})
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"packed"}`, string(b))
	})

	t.Run("includes tracking id when supplied", func(t *testing.T) {
		b, err := json.Marshal(StatusUpdate{Status: StatusShipped, TrackingID: strPtr("TRK-1")})
		require.NoError(t, err)
		assert.JSONEq(t, `{"status":"shipped","trackingId":"TRK-1"}`, string(b))
	})
}

func TestOrder_DecodesBackendPayload(t *testing.T) {
	raw := `{
		"id": "o-1",
		"_id": "65a0",
		"userId": "u-1",
		"customerName": "Ann",
		"customerEmail": "ann@example.com",
		"items": [{"medicineName": "Aspirin", "quantity": 2, "price": 4.5, "image": "a.png"}],
		"totalAmount": 9,
		"status": "shipped",
		"paymentMethod": "cod",
		"shippingAddress": {"street": "1 Main", "city": "Pune", "state": "MH", "zipCode": "411001", "country": "IN"},
		"createdAt": "2024-01-02T03:04:05.000Z",
		"updatedAt": "2024-01-03T03:04:05.000Z",
		"trackingId": "TRK-9"
	}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))

	assert.Equal(t, StatusShipped, o.Status)
	assert.True(t, decimal.NewFromFloat(4.5).Equal(o.Items[0].Price))
	assert.Equal(t, "411001", o.ShippingAddress.ZipCode)
	require.NotNil(t, o.TrackingID)
	assert.Equal(t, "TRK-9", *o.TrackingID)
	assert.Nil(t, o.EstimatedDelivery)
	assert.Equal(t, "2024-01-02T03:04:05.000Z", o.CreatedAt)

	out, err := json.Marshal(o.Items[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"medicineName":"Aspirin","quantity":2,"price":4.5,"image":"a.png"}`, string(out))
}

func TestOrder_TransportsBackendValuesOpaquely(t *testing.T) {
	raw := `{"id":"o-2","items":[{"medicineName":"Syrup","quantity":1.5,"price":3}],"createdAt":"2024-01-01","estimatedDelivery":""}`

	var o Order
	require.NoError(t, json.Unmarshal([]byte(raw), &o))

	assert.Equal(t, "2024-01-01", o.CreatedAt)
	require.NotNil(t, o.EstimatedDelivery)
	assert.Empty(t, *o.EstimatedDelivery)
	assert.Equal(t, "1.5", o.Items[0].Quantity.String())

	out, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"createdAt":"2024-01-01"`)
	assert.Contains(t, string(out), `"estimatedDelivery":""`)
	assert.Contains(t, string(out), `"quantity":1.5`)
	assert.NotContains(t, string(out), "updatedAt")
	assert.NotContains(t, string(out), "0001-01-01")
}

func TestFilter_Query(t *testing.T) {
	v, err := query.Values(Filter{})
	require.NoError(t, err)
	assert.Empty(t, v.Encode())

	v, err = query.Values(Filter{Status: StatusPlaced, Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, "limit=20&status=placed", v.Encode())
}

func strPtr(s string) *string {
	return &s
}
