package types

// Coupon mirrors the coupons endpoint schema. Money fields round-trip
// through Decimal so percentage and fixed amounts keep 2 decimal places.
type Coupon struct {
	ID                        int64      `json:"id,omitempty"`
	Code                      string     `json:"code,omitempty"`
	Amount                    *Decimal   `json:"amount,omitempty"`
	DateCreated               string     `json:"date_created,omitempty"`
	DateCreatedGMT            string     `json:"date_created_gmt,omitempty"`
	DateModified              string     `json:"date_modified,omitempty"`
	DateModifiedGMT           string     `json:"date_modified_gmt,omitempty"`
	DiscountType              string     `json:"discount_type,omitempty"`
	Description               string     `json:"description,omitempty"`
	DateExpires               string     `json:"date_expires,omitempty"`
	DateExpiresGMT            string     `json:"date_expires_gmt,omitempty"`
	UsageCount                int        `json:"usage_count,omitempty"`
	IndividualUse             bool       `json:"individual_use,omitempty"`
	ProductIDs                []int64    `json:"product_ids,omitempty"`
	ExcludedProductIDs        []int64    `json:"excluded_product_ids,omitempty"`
	UsageLimit                *int       `json:"usage_limit,omitempty"`
	UsageLimitPerUser         *int       `json:"usage_limit_per_user,omitempty"`
	LimitUsageToXItems        *int       `json:"limit_usage_to_x_items,omitempty"`
	FreeShipping              bool       `json:"free_shipping,omitempty"`
	ProductCategories         []int64    `json:"product_categories,omitempty"`
	ExcludedProductCategories []int64    `json:"excluded_product_categories,omitempty"`
	ExcludeSaleItems          bool       `json:"exclude_sale_items,omitempty"`
	MinimumAmount             *Decimal   `json:"minimum_amount,omitempty"`
	MaximumAmount             *Decimal   `json:"maximum_amount,omitempty"`
	EmailRestrictions         []string   `json:"email_restrictions,omitempty"`
	UsedBy                    []string   `json:"used_by,omitempty"`
	MetaData                  []MetaData `json:"meta_data,omitempty"`
}
