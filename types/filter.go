package types

import (
	"sort"

	"github.com/google/go-querystring/query"
	"github.com/samber/lo"

	ierr "github.com/storekit/woocommerce-go/errors"
)

// ListParams carries the pagination and filtering options shared by every
// collection endpoint. Zero values are omitted from the query string so
// server-side defaults apply.
type ListParams struct {
	Context string  `url:"context,omitempty"`
	Page    int     `url:"page,omitempty"`
	PerPage int     `url:"per_page,omitempty"`
	Search  string  `url:"search,omitempty"`
	After   string  `url:"after,omitempty"`
	Before  string  `url:"before,omitempty"`
	Exclude []int64 `url:"exclude,omitempty,comma"`
	Include []int64 `url:"include,omitempty,comma"`
	Offset  int     `url:"offset,omitempty"`
	Order   string  `url:"order,omitempty"`
	OrderBy string  `url:"orderby,omitempty"`
}

// OrderListParams filters the orders collection.
type OrderListParams struct {
	ListParams
	Status        []string `url:"status,omitempty,comma"`
	Customer      int64    `url:"customer,omitempty"`
	Product       int64    `url:"product,omitempty"`
	DecimalPoints *int     `url:"dp,omitempty"`
}

// ProductListParams filters the products collection.
type ProductListParams struct {
	ListParams
	Slug        string `url:"slug,omitempty"`
	Status      string `url:"status,omitempty"`
	Type        string `url:"type,omitempty"`
	SKU         string `url:"sku,omitempty"`
	Featured    bool   `url:"featured,omitempty"`
	Category    string `url:"category,omitempty"`
	Tag         string `url:"tag,omitempty"`
	OnSale      bool   `url:"on_sale,omitempty"`
	MinPrice    string `url:"min_price,omitempty"`
	MaxPrice    string `url:"max_price,omitempty"`
	StockStatus string `url:"stock_status,omitempty"`
}

// CustomerListParams filters the customers collection.
type CustomerListParams struct {
	ListParams
	Email string `url:"email,omitempty"`
	Role  string `url:"role,omitempty"`
}

// ReportParams scopes a sales or top-sellers report.
type ReportParams struct {
	Context string `url:"context,omitempty"`
	Period  string `url:"period,omitempty"`
	DateMin string `url:"date_min,omitempty"`
	DateMax string `url:"date_max,omitempty"`
}

// ToParams encodes any url-tagged struct into an ordered parameter set.
// go-querystring yields an unordered url.Values, so keys are folded in
// sorted order for a deterministic query string.
func ToParams(v any) (Params, error) {
	if v == nil {
		return nil, nil
	}
	values, err := query.Values(v)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("List parameters could not be encoded").
			Mark(ierr.ErrSerialization)
	}

	keys := lo.Keys(values)
	sort.Strings(keys)

	var p Params
	for _, k := range keys {
		for _, val := range values[k] {
			p.Set(k, val)
		}
	}
	return p, nil
}
