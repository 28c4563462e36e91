package types

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/storekit/woocommerce-go/errors"
)

func TestDecimal_MarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "rounds up past midpoint", value: 19.999, want: `"20.00"`},
		{name: "pads to two places", value: 5, want: `"5.00"`},
		{name: "rounds half away from zero", value: 1.005, want: `"1.01"`},
		{name: "negative value", value: -3.555, want: `"-3.56"`},
		{name: "zero", value: 0, want: `"0.00"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(NewDecimalFromFloat(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestDecimal_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "numeric string", input: `"20.00"`, want: "20.00"},
		{name: "native number", input: `19.999`, want: "20.00"},
		{name: "number as string rounds", input: `"19.999"`, want: "20.00"},
		{name: "integer token", input: `7`, want: "7.00"},
		{name: "empty string fails", input: `""`, wantErr: true},
		{name: "null fails", input: `null`, wantErr: true},
		{name: "garbage fails", input: `"12,50"`, wantErr: true},
		{name: "non-numeric fails", input: `"abc"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Decimal
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsSerialization(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}
}

func TestDecimal_RoundTrip(t *testing.T) {
	d, err := NewDecimalFromString("19.999")
	require.NoError(t, err)

	raw, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"20.00"`, string(raw))

	var back Decimal
	require.NoError(t, json.Unmarshal(raw, &back))
	assert.True(t, back.Equal(NewDecimalFromFloat(20)))
}

func TestNullDecimal_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantValid bool
		want      string
	}{
		{name: "numeric string", input: `"20.00"`, wantValid: true, want: "20.00"},
		{name: "native number", input: `4.5`, wantValid: true, want: "4.50"},
		{name: "empty string is absent", input: `""`, wantValid: false},
		{name: "null is absent", input: `null`, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n NullDecimal
			require.NoError(t, json.Unmarshal([]byte(tt.input), &n))
			assert.Equal(t, tt.wantValid, n.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.want, n.String())
			}
		})
	}
}

func TestNullDecimal_MarshalJSON(t *testing.T) {
	absent, err := json.Marshal(NullDecimal{})
	require.NoError(t, err)
	assert.Equal(t, "null", string(absent))

	present, err := json.Marshal(NewNullDecimal(decimal.NewFromFloat(19.999)))
	require.NoError(t, err)
	assert.Equal(t, `"20.00"`, string(present))
}

func TestDecimal_InStruct(t *testing.T) {
	// sale_price comes back as "" when a product is not on sale; price is a
	// plain money string.
	var p Product
	input := `{"id":11,"price":"12.50","regular_price":"12.999","sale_price":""}`
	require.NoError(t, json.Unmarshal([]byte(input), &p))

	assert.EqualValues(t, 11, p.ID)
	require.NotNil(t, p.Price)
	assert.True(t, p.Price.Valid)
	assert.Equal(t, "12.50", p.Price.String())
	require.NotNil(t, p.RegularPrice)
	assert.Equal(t, "13.00", p.RegularPrice.String())
	require.NotNil(t, p.SalePrice)
	assert.False(t, p.SalePrice.Valid)
}
