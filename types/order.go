package types

// Order mirrors the orders endpoint schema. All money totals are strings on
// the wire; Decimal keeps them at 2 decimal places through the round trip.
type Order struct {
	ID                 int64          `json:"id,omitempty"`
	ParentID           int64          `json:"parent_id,omitempty"`
	Number             string         `json:"number,omitempty"`
	OrderKey           string         `json:"order_key,omitempty"`
	CreatedVia         string         `json:"created_via,omitempty"`
	Version            string         `json:"version,omitempty"`
	Status             string         `json:"status,omitempty"`
	Currency           string         `json:"currency,omitempty"`
	DateCreated        string         `json:"date_created,omitempty"`
	DateCreatedGMT     string         `json:"date_created_gmt,omitempty"`
	DateModified       string         `json:"date_modified,omitempty"`
	DateModifiedGMT    string         `json:"date_modified_gmt,omitempty"`
	DiscountTotal      *Decimal       `json:"discount_total,omitempty"`
	DiscountTax        *Decimal       `json:"discount_tax,omitempty"`
	ShippingTotal      *Decimal       `json:"shipping_total,omitempty"`
	ShippingTax        *Decimal       `json:"shipping_tax,omitempty"`
	CartTax            *Decimal       `json:"cart_tax,omitempty"`
	Total              *Decimal       `json:"total,omitempty"`
	TotalTax           *Decimal       `json:"total_tax,omitempty"`
	PricesIncludeTax   bool           `json:"prices_include_tax,omitempty"`
	CustomerID         int64          `json:"customer_id,omitempty"`
	CustomerIPAddress  string         `json:"customer_ip_address,omitempty"`
	CustomerUserAgent  string         `json:"customer_user_agent,omitempty"`
	CustomerNote       string         `json:"customer_note,omitempty"`
	Billing            *Address       `json:"billing,omitempty"`
	Shipping           *Address       `json:"shipping,omitempty"`
	PaymentMethod      string         `json:"payment_method,omitempty"`
	PaymentMethodTitle string         `json:"payment_method_title,omitempty"`
	TransactionID      string         `json:"transaction_id,omitempty"`
	DatePaid           string         `json:"date_paid,omitempty"`
	DatePaidGMT        string         `json:"date_paid_gmt,omitempty"`
	DateCompleted      string         `json:"date_completed,omitempty"`
	DateCompletedGMT   string         `json:"date_completed_gmt,omitempty"`
	CartHash           string         `json:"cart_hash,omitempty"`
	MetaData           []MetaData     `json:"meta_data,omitempty"`
	LineItems          []LineItem     `json:"line_items,omitempty"`
	TaxLines           []TaxLine      `json:"tax_lines,omitempty"`
	ShippingLines      []ShippingLine `json:"shipping_lines,omitempty"`
	FeeLines           []FeeLine      `json:"fee_lines,omitempty"`
	CouponLines        []CouponLine   `json:"coupon_lines,omitempty"`
	Refunds            []RefundLine   `json:"refunds,omitempty"`
	SetPaid            bool           `json:"set_paid,omitempty"`
}

// LineItem is a purchased product line on an order.
type LineItem struct {
	ID          int64        `json:"id,omitempty"`
	Name        string       `json:"name,omitempty"`
	ProductID   int64        `json:"product_id,omitempty"`
	VariationID int64        `json:"variation_id,omitempty"`
	Quantity    int          `json:"quantity,omitempty"`
	TaxClass    string       `json:"tax_class,omitempty"`
	Subtotal    *Decimal     `json:"subtotal,omitempty"`
	SubtotalTax *Decimal     `json:"subtotal_tax,omitempty"`
	Total       *Decimal     `json:"total,omitempty"`
	TotalTax    *Decimal     `json:"total_tax,omitempty"`
	Taxes       []TaxItem    `json:"taxes,omitempty"`
	MetaData    []MetaData   `json:"meta_data,omitempty"`
	SKU         string       `json:"sku,omitempty"`
	Price       *NullDecimal `json:"price,omitempty"`
}

// TaxItem is a per-rate tax amount nested inside a line.
type TaxItem struct {
	ID       int64    `json:"id,omitempty"`
	RateCode string   `json:"rate_code,omitempty"`
	RateID   int64    `json:"rate_id,omitempty"`
	Total    *Decimal `json:"total,omitempty"`
	Subtotal *Decimal `json:"subtotal,omitempty"`
}

// TaxLine is an order-level tax total.
type TaxLine struct {
	ID               int64      `json:"id,omitempty"`
	RateCode         string     `json:"rate_code,omitempty"`
	RateID           int64      `json:"rate_id,omitempty"`
	Label            string     `json:"label,omitempty"`
	Compound         bool       `json:"compound,omitempty"`
	TaxTotal         *Decimal   `json:"tax_total,omitempty"`
	ShippingTaxTotal *Decimal   `json:"shipping_tax_total,omitempty"`
	MetaData         []MetaData `json:"meta_data,omitempty"`
}

// ShippingLine is a shipping charge on an order.
type ShippingLine struct {
	ID          int64      `json:"id,omitempty"`
	MethodTitle string     `json:"method_title,omitempty"`
	MethodID    string     `json:"method_id,omitempty"`
	Total       *Decimal   `json:"total,omitempty"`
	TotalTax    *Decimal   `json:"total_tax,omitempty"`
	Taxes       []TaxItem  `json:"taxes,omitempty"`
	MetaData    []MetaData `json:"meta_data,omitempty"`
}

// FeeLine is an ad-hoc fee on an order.
type FeeLine struct {
	ID        int64      `json:"id,omitempty"`
	Name      string     `json:"name,omitempty"`
	TaxClass  string     `json:"tax_class,omitempty"`
	TaxStatus string     `json:"tax_status,omitempty"`
	Total     *Decimal   `json:"total,omitempty"`
	TotalTax  *Decimal   `json:"total_tax,omitempty"`
	Taxes     []TaxItem  `json:"taxes,omitempty"`
	MetaData  []MetaData `json:"meta_data,omitempty"`
}

// CouponLine records a coupon applied to an order.
type CouponLine struct {
	ID          int64      `json:"id,omitempty"`
	Code        string     `json:"code,omitempty"`
	Discount    *Decimal   `json:"discount,omitempty"`
	DiscountTax *Decimal   `json:"discount_tax,omitempty"`
	MetaData    []MetaData `json:"meta_data,omitempty"`
}

// RefundLine is the read-only refund summary embedded in an order.
type RefundLine struct {
	ID     int64    `json:"id,omitempty"`
	Reason string   `json:"reason,omitempty"`
	Total  *Decimal `json:"total,omitempty"`
}

// OrderNote is a note attached to an order, nested under orders/<id>/notes.
type OrderNote struct {
	ID             int64  `json:"id,omitempty"`
	Author         string `json:"author,omitempty"`
	DateCreated    string `json:"date_created,omitempty"`
	DateCreatedGMT string `json:"date_created_gmt,omitempty"`
	Note           string `json:"note,omitempty"`
	CustomerNote   bool   `json:"customer_note,omitempty"`
	AddedByUser    bool   `json:"added_by_user,omitempty"`
}

// OrderRefund is a refund record nested under orders/<id>/refunds.
// APIRefund is write-only: true asks the gateway to refund the payment.
type OrderRefund struct {
	ID              int64      `json:"id,omitempty"`
	DateCreated     string     `json:"date_created,omitempty"`
	DateCreatedGMT  string     `json:"date_created_gmt,omitempty"`
	Amount          *Decimal   `json:"amount,omitempty"`
	Reason          string     `json:"reason,omitempty"`
	RefundedBy      int64      `json:"refunded_by,omitempty"`
	RefundedPayment bool       `json:"refunded_payment,omitempty"`
	MetaData        []MetaData `json:"meta_data,omitempty"`
	LineItems       []LineItem `json:"line_items,omitempty"`
	APIRefund       *bool      `json:"api_refund,omitempty"`
}
