package types

// Product mirrors the products endpoint schema. Price is read-only and may
// come back empty for grouped products, hence NullDecimal; SalePrice is ""
// when the product is not on sale.
type Product struct {
	ID                int64                 `json:"id,omitempty"`
	Name              string                `json:"name,omitempty"`
	Slug              string                `json:"slug,omitempty"`
	Permalink         string                `json:"permalink,omitempty"`
	DateCreated       string                `json:"date_created,omitempty"`
	DateCreatedGMT    string                `json:"date_created_gmt,omitempty"`
	DateModified      string                `json:"date_modified,omitempty"`
	DateModifiedGMT   string                `json:"date_modified_gmt,omitempty"`
	Type              string                `json:"type,omitempty"`
	Status            string                `json:"status,omitempty"`
	Featured          bool                  `json:"featured,omitempty"`
	CatalogVisibility string                `json:"catalog_visibility,omitempty"`
	Description       string                `json:"description,omitempty"`
	ShortDescription  string                `json:"short_description,omitempty"`
	SKU               string                `json:"sku,omitempty"`
	Price             *NullDecimal          `json:"price,omitempty"`
	RegularPrice      *Decimal              `json:"regular_price,omitempty"`
	SalePrice         *NullDecimal          `json:"sale_price,omitempty"`
	DateOnSaleFrom    string                `json:"date_on_sale_from,omitempty"`
	DateOnSaleFromGMT string                `json:"date_on_sale_from_gmt,omitempty"`
	DateOnSaleTo      string                `json:"date_on_sale_to,omitempty"`
	DateOnSaleToGMT   string                `json:"date_on_sale_to_gmt,omitempty"`
	PriceHTML         string                `json:"price_html,omitempty"`
	OnSale            bool                  `json:"on_sale,omitempty"`
	Purchasable       bool                  `json:"purchasable,omitempty"`
	TotalSales        int64                 `json:"total_sales,omitempty"`
	Virtual           bool                  `json:"virtual,omitempty"`
	Downloadable      bool                  `json:"downloadable,omitempty"`
	Downloads         []DownloadRef         `json:"downloads,omitempty"`
	DownloadLimit     int                   `json:"download_limit,omitempty"`
	DownloadExpiry    int                   `json:"download_expiry,omitempty"`
	ExternalURL       string                `json:"external_url,omitempty"`
	ButtonText        string                `json:"button_text,omitempty"`
	TaxStatus         string                `json:"tax_status,omitempty"`
	TaxClass          string                `json:"tax_class,omitempty"`
	ManageStock       bool                  `json:"manage_stock,omitempty"`
	StockQuantity     *int                  `json:"stock_quantity,omitempty"`
	StockStatus       string                `json:"stock_status,omitempty"`
	Backorders        string                `json:"backorders,omitempty"`
	BackordersAllowed bool                  `json:"backorders_allowed,omitempty"`
	Backordered       bool                  `json:"backordered,omitempty"`
	SoldIndividually  bool                  `json:"sold_individually,omitempty"`
	Weight            string                `json:"weight,omitempty"`
	Dimensions        *Dimensions           `json:"dimensions,omitempty"`
	ShippingRequired  bool                  `json:"shipping_required,omitempty"`
	ShippingTaxable   bool                  `json:"shipping_taxable,omitempty"`
	ShippingClass     string                `json:"shipping_class,omitempty"`
	ShippingClassID   int64                 `json:"shipping_class_id,omitempty"`
	ReviewsAllowed    bool                  `json:"reviews_allowed,omitempty"`
	AverageRating     string                `json:"average_rating,omitempty"`
	RatingCount       int                   `json:"rating_count,omitempty"`
	RelatedIDs        []int64               `json:"related_ids,omitempty"`
	UpsellIDs         []int64               `json:"upsell_ids,omitempty"`
	CrossSellIDs      []int64               `json:"cross_sell_ids,omitempty"`
	ParentID          int64                 `json:"parent_id,omitempty"`
	PurchaseNote      string                `json:"purchase_note,omitempty"`
	Categories        []ProductCategoryRef  `json:"categories,omitempty"`
	Tags              []ProductTagRef       `json:"tags,omitempty"`
	Images            []Image               `json:"images,omitempty"`
	Attributes        []ProductAttributeRef `json:"attributes,omitempty"`
	DefaultAttributes []DefaultAttribute    `json:"default_attributes,omitempty"`
	Variations        []int64               `json:"variations,omitempty"`
	GroupedProducts   []int64               `json:"grouped_products,omitempty"`
	MenuOrder         int                   `json:"menu_order,omitempty"`
	MetaData          []MetaData            `json:"meta_data,omitempty"`
}

// ProductCategoryRef links a product to a category.
type ProductCategoryRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// ProductTagRef links a product to a tag.
type ProductTagRef struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	Slug string `json:"slug,omitempty"`
}

// ProductAttributeRef is an attribute assignment on a product.
type ProductAttributeRef struct {
	ID        int64    `json:"id,omitempty"`
	Name      string   `json:"name,omitempty"`
	Position  int      `json:"position,omitempty"`
	Visible   bool     `json:"visible,omitempty"`
	Variation bool     `json:"variation,omitempty"`
	Options   []string `json:"options,omitempty"`
}

// DefaultAttribute is a variation default on a variable product.
type DefaultAttribute struct {
	ID     int64  `json:"id,omitempty"`
	Name   string `json:"name,omitempty"`
	Option string `json:"option,omitempty"`
}

// ProductVariation is a variation nested under products/<id>/variations.
type ProductVariation struct {
	ID                int64              `json:"id,omitempty"`
	DateCreated       string             `json:"date_created,omitempty"`
	DateCreatedGMT    string             `json:"date_created_gmt,omitempty"`
	DateModified      string             `json:"date_modified,omitempty"`
	DateModifiedGMT   string             `json:"date_modified_gmt,omitempty"`
	Description       string             `json:"description,omitempty"`
	Permalink         string             `json:"permalink,omitempty"`
	SKU               string             `json:"sku,omitempty"`
	Price             *NullDecimal       `json:"price,omitempty"`
	RegularPrice      *Decimal           `json:"regular_price,omitempty"`
	SalePrice         *NullDecimal       `json:"sale_price,omitempty"`
	DateOnSaleFrom    string             `json:"date_on_sale_from,omitempty"`
	DateOnSaleFromGMT string             `json:"date_on_sale_from_gmt,omitempty"`
	DateOnSaleTo      string             `json:"date_on_sale_to,omitempty"`
	DateOnSaleToGMT   string             `json:"date_on_sale_to_gmt,omitempty"`
	OnSale            bool               `json:"on_sale,omitempty"`
	Status            string             `json:"status,omitempty"`
	Purchasable       bool               `json:"purchasable,omitempty"`
	Virtual           bool               `json:"virtual,omitempty"`
	Downloadable      bool               `json:"downloadable,omitempty"`
	Downloads         []DownloadRef      `json:"downloads,omitempty"`
	DownloadLimit     int                `json:"download_limit,omitempty"`
	DownloadExpiry    int                `json:"download_expiry,omitempty"`
	TaxStatus         string             `json:"tax_status,omitempty"`
	TaxClass          string             `json:"tax_class,omitempty"`
	ManageStock       bool               `json:"manage_stock,omitempty"`
	StockQuantity     *int               `json:"stock_quantity,omitempty"`
	StockStatus       string             `json:"stock_status,omitempty"`
	Backorders        string             `json:"backorders,omitempty"`
	BackordersAllowed bool               `json:"backorders_allowed,omitempty"`
	Backordered       bool               `json:"backordered,omitempty"`
	Weight            string             `json:"weight,omitempty"`
	Dimensions        *Dimensions        `json:"dimensions,omitempty"`
	ShippingClass     string             `json:"shipping_class,omitempty"`
	ShippingClassID   int64              `json:"shipping_class_id,omitempty"`
	Image             *Image             `json:"image,omitempty"`
	Attributes        []DefaultAttribute `json:"attributes,omitempty"`
	MenuOrder         int                `json:"menu_order,omitempty"`
	MetaData          []MetaData         `json:"meta_data,omitempty"`
}

// ProductCategory mirrors the products/categories endpoint schema.
type ProductCategory struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Parent      int64  `json:"parent,omitempty"`
	Description string `json:"description,omitempty"`
	Display     string `json:"display,omitempty"`
	Image       *Image `json:"image,omitempty"`
	MenuOrder   int    `json:"menu_order,omitempty"`
	Count       int    `json:"count,omitempty"`
}

// ProductTag mirrors the products/tags endpoint schema.
type ProductTag struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count,omitempty"`
}

// ProductAttribute mirrors the products/attributes endpoint schema.
type ProductAttribute struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Type        string `json:"type,omitempty"`
	OrderBy     string `json:"order_by,omitempty"`
	HasArchives bool   `json:"has_archives,omitempty"`
}

// ProductAttributeTerm is a term nested under products/attributes/<id>/terms.
type ProductAttributeTerm struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	MenuOrder   int    `json:"menu_order,omitempty"`
	Count       int    `json:"count,omitempty"`
}

// ProductReview mirrors the products/reviews endpoint schema.
type ProductReview struct {
	ID             int64  `json:"id,omitempty"`
	DateCreated    string `json:"date_created,omitempty"`
	DateCreatedGMT string `json:"date_created_gmt,omitempty"`
	ProductID      int64  `json:"product_id,omitempty"`
	Status         string `json:"status,omitempty"`
	Reviewer       string `json:"reviewer,omitempty"`
	ReviewerEmail  string `json:"reviewer_email,omitempty"`
	Review         string `json:"review,omitempty"`
	Rating         int    `json:"rating,omitempty"`
	Verified       bool   `json:"verified,omitempty"`
}

// ProductShippingClass mirrors the products/shipping_classes endpoint schema.
type ProductShippingClass struct {
	ID          int64  `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Slug        string `json:"slug,omitempty"`
	Description string `json:"description,omitempty"`
	Count       int    `json:"count,omitempty"`
}
