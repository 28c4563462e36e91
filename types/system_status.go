package types

// SystemStatus is the read-only system_status report.
type SystemStatus struct {
	Environment   *StatusEnvironment `json:"environment,omitempty"`
	Database      *StatusDatabase    `json:"database,omitempty"`
	ActivePlugins []StatusPlugin     `json:"active_plugins,omitempty"`
	Theme         *StatusTheme       `json:"theme,omitempty"`
	Settings      *StatusSettings    `json:"settings,omitempty"`
	Pages         []StatusPage       `json:"pages,omitempty"`
}

// StatusEnvironment describes the hosting environment.
type StatusEnvironment struct {
	HomeURL              string `json:"home_url,omitempty"`
	SiteURL              string `json:"site_url,omitempty"`
	Version              string `json:"version,omitempty"`
	WPVersion            string `json:"wp_version,omitempty"`
	WPMultisite          bool   `json:"wp_multisite,omitempty"`
	WPMemoryLimit        int64  `json:"wp_memory_limit,omitempty"`
	WPDebugMode          bool   `json:"wp_debug_mode,omitempty"`
	WPCron               bool   `json:"wp_cron,omitempty"`
	Language             string `json:"language,omitempty"`
	ServerInfo           string `json:"server_info,omitempty"`
	PHPVersion           string `json:"php_version,omitempty"`
	PHPPostMaxSize       int64  `json:"php_post_max_size,omitempty"`
	PHPMaxExecutionTime  int    `json:"php_max_execution_time,omitempty"`
	PHPMaxInputVars      int    `json:"php_max_input_vars,omitempty"`
	CURLVersion          string `json:"curl_version,omitempty"`
	MaxUploadSize        int64  `json:"max_upload_size,omitempty"`
	MySQLVersion         string `json:"mysql_version,omitempty"`
	DefaultTimezone      string `json:"default_timezone,omitempty"`
	SecureConnection     bool   `json:"secure_connection,omitempty"`
	HideErrors           bool   `json:"hide_errors,omitempty"`
	RemotePostSuccessful bool   `json:"remote_post_successful,omitempty"`
	RemoteGetSuccessful  bool   `json:"remote_get_successful,omitempty"`
}

// StatusDatabase describes the store's database footprint.
type StatusDatabase struct {
	WCDatabaseVersion string         `json:"wc_database_version,omitempty"`
	DatabasePrefix    string         `json:"database_prefix,omitempty"`
	DatabaseTables    map[string]any `json:"database_tables,omitempty"`
}

// StatusPlugin is an active plugin entry.
type StatusPlugin struct {
	Plugin           string `json:"plugin,omitempty"`
	Name             string `json:"name,omitempty"`
	Version          string `json:"version,omitempty"`
	VersionLatest    string `json:"version_latest,omitempty"`
	URL              string `json:"url,omitempty"`
	AuthorName       string `json:"author_name,omitempty"`
	AuthorURL        string `json:"author_url,omitempty"`
	NetworkActivated bool   `json:"network_activated,omitempty"`
}

// StatusTheme is the active theme.
type StatusTheme struct {
	Name                  string `json:"name,omitempty"`
	Version               string `json:"version,omitempty"`
	VersionLatest         string `json:"version_latest,omitempty"`
	AuthorURL             string `json:"author_url,omitempty"`
	IsChildTheme          bool   `json:"is_child_theme,omitempty"`
	HasWoocommerceSupport bool   `json:"has_woocommerce_support,omitempty"`
	HasWoocommerceFile    bool   `json:"has_woocommerce_file,omitempty"`
	HasOutdatedTemplates  bool   `json:"has_outdated_templates,omitempty"`
	ParentName            string `json:"parent_name,omitempty"`
	ParentVersion         string `json:"parent_version,omitempty"`
	ParentAuthorURL       string `json:"parent_author_url,omitempty"`
}

// StatusSettings are the store-level commerce settings.
type StatusSettings struct {
	APIEnabled        bool              `json:"api_enabled,omitempty"`
	ForceSSL          bool              `json:"force_ssl,omitempty"`
	Currency          string            `json:"currency,omitempty"`
	CurrencySymbol    string            `json:"currency_symbol,omitempty"`
	CurrencyPosition  string            `json:"currency_position,omitempty"`
	ThousandSeparator string            `json:"thousand_separator,omitempty"`
	DecimalSeparator  string            `json:"decimal_separator,omitempty"`
	NumberOfDecimals  int               `json:"number_of_decimals,omitempty"`
	Taxonomies        map[string]string `json:"taxonomies,omitempty"`
}

// StatusPage is a configured store page.
type StatusPage struct {
	PageName          string `json:"page_name,omitempty"`
	PageID            string `json:"page_id,omitempty"`
	PageSet           bool   `json:"page_set,omitempty"`
	PageExists        bool   `json:"page_exists,omitempty"`
	PageVisible       bool   `json:"page_visible,omitempty"`
	Shortcode         string `json:"shortcode,omitempty"`
	ShortcodeRequired bool   `json:"shortcode_required,omitempty"`
	ShortcodePresent  bool   `json:"shortcode_present,omitempty"`
}

// SystemStatusTool is a maintenance tool entry under system_status/tools.
type SystemStatusTool struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Action      string `json:"action,omitempty"`
	Description string `json:"description,omitempty"`
	Success     bool   `json:"success,omitempty"`
	Message     string `json:"message,omitempty"`
	Confirm     bool   `json:"confirm,omitempty"`
}
