package types

// TaxRate mirrors the taxes endpoint schema. Rate is a 4-decimal string on
// the wire, but the API accepts a 2-decimal write without complaint, so it
// shares the common decimal rule.
type TaxRate struct {
	ID        int64    `json:"id,omitempty"`
	Country   string   `json:"country,omitempty"`
	State     string   `json:"state,omitempty"`
	Postcode  string   `json:"postcode,omitempty"`
	City      string   `json:"city,omitempty"`
	Postcodes []string `json:"postcodes,omitempty"`
	Cities    []string `json:"cities,omitempty"`
	Rate      *Decimal `json:"rate,omitempty"`
	Name      string   `json:"name,omitempty"`
	Priority  int      `json:"priority,omitempty"`
	Compound  bool     `json:"compound,omitempty"`
	Shipping  bool     `json:"shipping,omitempty"`
	Order     int      `json:"order,omitempty"`
	Class     string   `json:"class,omitempty"`
}

// TaxClass mirrors the taxes/classes endpoint schema. Tax classes have no
// numeric id; the slug identifies them for deletion.
type TaxClass struct {
	Slug string `json:"slug,omitempty"`
	Name string `json:"name,omitempty"`
}
