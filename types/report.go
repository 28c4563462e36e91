package types

// Report is an entry in the reports index.
type Report struct {
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
}

// SalesReport mirrors the reports/sales endpoint schema.
type SalesReport struct {
	TotalSales      *Decimal                    `json:"total_sales,omitempty"`
	NetSales        *Decimal                    `json:"net_sales,omitempty"`
	AverageSales    *Decimal                    `json:"average_sales,omitempty"`
	TotalOrders     int                         `json:"total_orders,omitempty"`
	TotalItems      int                         `json:"total_items,omitempty"`
	TotalTax        *Decimal                    `json:"total_tax,omitempty"`
	TotalShipping   *Decimal                    `json:"total_shipping,omitempty"`
	TotalRefunds    *Decimal                    `json:"total_refunds,omitempty"`
	TotalDiscount   *Decimal                    `json:"total_discount,omitempty"`
	TotalsGroupedBy string                      `json:"totals_grouped_by,omitempty"`
	Totals          map[string]SalesReportTotal `json:"totals,omitempty"`
	TotalCustomers  int                         `json:"total_customers,omitempty"`
}

// SalesReportTotal is one bucket in a grouped sales report.
type SalesReportTotal struct {
	Sales     *Decimal `json:"sales,omitempty"`
	Orders    int      `json:"orders,omitempty"`
	Items     int      `json:"items,omitempty"`
	Tax       *Decimal `json:"tax,omitempty"`
	Shipping  *Decimal `json:"shipping,omitempty"`
	Discount  *Decimal `json:"discount,omitempty"`
	Customers int      `json:"customers,omitempty"`
}

// TopSellersReport mirrors the reports/top_sellers endpoint schema.
type TopSellersReport struct {
	Name      string `json:"name,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// ReportTotal is a slug/name/total row returned by the per-entity totals
// reports (orders/totals, products/totals, customers/totals, ...).
type ReportTotal struct {
	Slug  string `json:"slug,omitempty"`
	Name  string `json:"name,omitempty"`
	Total int    `json:"total,omitempty"`
}
