package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShippingAddressUnmarshalFreeform(t *testing.T) {
	var a ShippingAddress
	require.NoError(t, json.Unmarshal([]byte(`"12 Mall Road, Lahore"`), &a))

	assert.Equal(t, "12 Mall Road, Lahore", a.Freeform)
	assert.False(t, a.IsStructured())
	assert.False(t, a.IsEmpty())
	assert.Equal(t, "12 Mall Road, Lahore", a.String())
}

func TestShippingAddressUnmarshalStructured(t *testing.T) {
	raw := `{"address":"12 Mall Road","city":"Lahore","state":"Punjab","zipCode":"54000","country":"Pakistan"}`

	var a ShippingAddress
	require.NoError(t, json.Unmarshal([]byte(raw), &a))

	assert.True(t, a.IsStructured())
	assert.Equal(t, "Lahore", a.City)
	assert.Equal(t, "12 Mall Road, Lahore, Punjab 54000, Pakistan", a.String())
}

func TestShippingAddressMarshalRoundTrip(t *testing.T) {
	freeform := ShippingAddress{Freeform: "12 Mall Road, Lahore"}
	data, err := json.Marshal(freeform)
	require.NoError(t, err)
	assert.Equal(t, `"12 Mall Road, Lahore"`, string(data))

	structured := ShippingAddress{
		Address: "12 Mall Road", City: "Lahore", State: "Punjab",
		ZipCode: "54000", Country: "Pakistan",
	}
	data, err = json.Marshal(structured)
	require.NoError(t, err)

	var back ShippingAddress
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, structured, back)
}

func TestShippingAddressIsEmpty(t *testing.T) {
	assert.True(t, ShippingAddress{}.IsEmpty())
	assert.False(t, ShippingAddress{Freeform: "x"}.IsEmpty())
	assert.False(t, ShippingAddress{City: "Lahore"}.IsEmpty())
}

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "processing", "shipped", "delivered", "cancelled"} {
		assert.True(t, ValidOrderStatus(s), s)
	}
	assert.False(t, ValidOrderStatus(""))
	assert.False(t, ValidOrderStatus("PENDING"))
	assert.False(t, ValidOrderStatus("returned"))
}
