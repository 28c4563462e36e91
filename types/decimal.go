package types

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
	ierr "github.com/storekit/woocommerce-go/errors"
)

// Decimal is a monetary value that round-trips through the API's string
// representation. The API serializes money as strings with a period decimal
// separator; reading accepts either a JSON number or a numeric string and
// rounds to 2 decimal places, writing always emits a quoted string so the
// value never drifts through native float precision or locale formatting.
//
// A null or empty-string token is a read error for this type; use
// NullDecimal for fields the API may send as absent.
type Decimal struct {
	d decimal.Decimal
}

// NewDecimal wraps a decimal.Decimal, rounding to 2 decimal places.
func NewDecimal(d decimal.Decimal) Decimal {
	return Decimal{d: d.Round(2)}
}

// NewDecimalFromFloat builds a Decimal from a float, rounding to 2 decimal places.
func NewDecimalFromFloat(f float64) Decimal {
	return Decimal{d: decimal.NewFromFloat(f).Round(2)}
}

// NewDecimalFromString parses a period-separated numeric string.
func NewDecimalFromString(s string) (Decimal, error) {
	d, err := parseDecimalToken(s)
	if err != nil {
		return Decimal{}, err
	}
	return Decimal{d: d}, nil
}

// Decimal returns the underlying decimal value.
func (d Decimal) Decimal() decimal.Decimal {
	return d.d
}

// Equal reports whether two decimals represent the same value.
func (d Decimal) Equal(other Decimal) bool {
	return d.d.Equal(other.d)
}

// String formats the value with exactly 2 decimal places.
func (d Decimal) String() string {
	return d.d.StringFixed(2)
}

// MarshalJSON always emits a quoted fixed-point string, e.g. "20.00".
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.d.Round(2).StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string. A null or empty
// string fails: this type has no absent state.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	token := decimalToken(data)
	if token == "" || token == "null" {
		return ierr.NewError("decimal field is null or empty").
			WithHint("Use a nullable decimal field for values the API may omit").
			Mark(ierr.ErrSerialization)
	}

	parsed, err := parseDecimalToken(token)
	if err != nil {
		return err
	}
	d.d = parsed
	return nil
}

// NullDecimal is a Decimal with an absent state. The API represents absent
// money fields as null or as an empty string; both map to Valid=false.
type NullDecimal struct {
	Decimal decimal.Decimal
	Valid   bool
}

// NewNullDecimal builds a present NullDecimal rounded to 2 decimal places.
func NewNullDecimal(d decimal.Decimal) NullDecimal {
	return NullDecimal{Decimal: d.Round(2), Valid: true}
}

// String formats the value with 2 decimal places, or empty when absent.
func (n NullDecimal) String() string {
	if !n.Valid {
		return ""
	}
	return n.Decimal.StringFixed(2)
}

// MarshalJSON emits a quoted fixed-point string, or null when absent.
func (n NullDecimal) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(`"` + n.Decimal.Round(2).StringFixed(2) + `"`), nil
}

// UnmarshalJSON accepts a JSON number, a numeric string, null, or "".
func (n *NullDecimal) UnmarshalJSON(data []byte) error {
	token := decimalToken(data)
	if token == "" || token == "null" {
		n.Decimal = decimal.Decimal{}
		n.Valid = false
		return nil
	}

	parsed, err := parseDecimalToken(token)
	if err != nil {
		return err
	}
	n.Decimal = parsed
	n.Valid = true
	return nil
}

// decimalToken strips surrounding quotes and whitespace from a raw JSON token.
func decimalToken(data []byte) string {
	token := string(bytes.TrimSpace(data))
	if len(token) >= 2 && strings.HasPrefix(token, `"`) && strings.HasSuffix(token, `"`) {
		token = token[1 : len(token)-1]
	}
	return strings.TrimSpace(token)
}

// parseDecimalToken parses a period-separated numeric string and rounds it
// to 2 decimal places. Parsing is locale-invariant: shopspring accepts only
// the period as a decimal separator.
func parseDecimalToken(token string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(token)
	if err != nil {
		return decimal.Decimal{}, ierr.WithError(err).
			WithHintf("Cannot parse %q as a decimal", token).
			Mark(ierr.ErrSerialization)
	}
	return d.Round(2), nil
}
