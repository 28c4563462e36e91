package types

// Customer mirrors the customers endpoint schema. Password is write-only:
// the API never echoes it back.
type Customer struct {
	ID               int64      `json:"id,omitempty"`
	DateCreated      string     `json:"date_created,omitempty"`
	DateCreatedGMT   string     `json:"date_created_gmt,omitempty"`
	DateModified     string     `json:"date_modified,omitempty"`
	DateModifiedGMT  string     `json:"date_modified_gmt,omitempty"`
	Email            string     `json:"email,omitempty"`
	FirstName        string     `json:"first_name,omitempty"`
	LastName         string     `json:"last_name,omitempty"`
	Role             string     `json:"role,omitempty"`
	Username         string     `json:"username,omitempty"`
	Password         string     `json:"password,omitempty"`
	Billing          *Address   `json:"billing,omitempty"`
	Shipping         *Address   `json:"shipping,omitempty"`
	IsPayingCustomer bool       `json:"is_paying_customer,omitempty"`
	AvatarURL        string     `json:"avatar_url,omitempty"`
	MetaData         []MetaData `json:"meta_data,omitempty"`
}

// CustomerDownload is a downloadable file a customer has access to,
// exposed read-only under customers/<id>/downloads.
type CustomerDownload struct {
	DownloadID          string       `json:"download_id,omitempty"`
	DownloadURL         string       `json:"download_url,omitempty"`
	ProductID           int64        `json:"product_id,omitempty"`
	ProductName         string       `json:"product_name,omitempty"`
	DownloadName        string       `json:"download_name,omitempty"`
	OrderID             int64        `json:"order_id,omitempty"`
	OrderKey            string       `json:"order_key,omitempty"`
	DownloadsRemaining  string       `json:"downloads_remaining,omitempty"`
	AccessExpires       string       `json:"access_expires,omitempty"`
	AccessExpiresGMT    string       `json:"access_expires_gmt,omitempty"`
	File                *DownloadRef `json:"file,omitempty"`
}

// DownloadRef points at a downloadable file.
type DownloadRef struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	File string `json:"file,omitempty"`
}
