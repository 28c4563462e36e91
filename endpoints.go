package woocommerce

// resourceFields maps an endpoint path segment to the writable JSON field
// names of its resource. The clearing update renders these as an object of
// empty strings so the API nulls them out instead of ignoring their absence.
// Kinds without an entry (read-only or id-less kinds) fall back to a normal
// update. Kept as static table data so no reflection happens per request.
var resourceFields = map[string][]string{
	"coupons": {
		"code", "amount", "discount_type", "description", "date_expires",
		"individual_use", "product_ids", "excluded_product_ids", "usage_limit",
		"usage_limit_per_user", "limit_usage_to_x_items", "free_shipping",
		"product_categories", "excluded_product_categories", "exclude_sale_items",
		"minimum_amount", "maximum_amount", "email_restrictions",
	},
	"customers": {
		"email", "first_name", "last_name", "username", "billing", "shipping",
	},
	"orders": {
		"status", "currency", "customer_id", "customer_note", "billing",
		"shipping", "payment_method", "payment_method_title", "transaction_id",
	},
	"orders/notes": {
		"note", "customer_note",
	},
	"products": {
		"name", "slug", "type", "status", "featured", "catalog_visibility",
		"description", "short_description", "sku", "regular_price", "sale_price",
		"date_on_sale_from", "date_on_sale_to", "virtual", "downloadable",
		"external_url", "button_text", "tax_status", "tax_class", "manage_stock",
		"stock_quantity", "stock_status", "backorders", "sold_individually",
		"weight", "dimensions", "shipping_class", "reviews_allowed",
		"purchase_note", "menu_order",
	},
	"products/variations": {
		"description", "sku", "regular_price", "sale_price", "date_on_sale_from",
		"date_on_sale_to", "status", "virtual", "downloadable", "tax_status",
		"tax_class", "manage_stock", "stock_quantity", "stock_status",
		"backorders", "weight", "dimensions", "shipping_class", "menu_order",
	},
	"products/categories": {
		"name", "slug", "parent", "description", "display", "menu_order",
	},
	"products/tags": {
		"name", "slug", "description",
	},
	"products/attributes": {
		"name", "slug", "type", "order_by", "has_archives",
	},
	"products/attributes/terms": {
		"name", "slug", "description", "menu_order",
	},
	"products/reviews": {
		"status", "reviewer", "reviewer_email", "review", "rating",
	},
	"products/shipping_classes": {
		"name", "slug", "description",
	},
	"taxes": {
		"country", "state", "postcode", "city", "rate", "name", "priority",
		"compound", "shipping", "order", "class",
	},
	"webhooks": {
		"name", "status", "topic", "delivery_url", "secret",
	},
	"shipping/zones": {
		"name", "order",
	},
}
