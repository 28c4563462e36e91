// Package woocommerce is a typed client for the WooCommerce REST API.
//
// A Client is constructed from a store URL carrying a recognized API version
// suffix plus a consumer key/secret pair. Over HTTPS the credentials travel
// either as an Authorization: Basic header or as query parameters; over
// plain HTTP every request is signed with an OAuth-1.0a-style HMAC-SHA256
// signature, which is what the API requires on unencrypted transports.
package woocommerce

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"strings"

	jsoniter "github.com/json-iterator/go"

	"github.com/storekit/woocommerce-go/config"
	ierr "github.com/storekit/woocommerce-go/errors"
	"github.com/storekit/woocommerce-go/httpclient"
	"github.com/storekit/woocommerce-go/logger"
	"github.com/storekit/woocommerce-go/types"
)

var jsonCodec = jsoniter.ConfigCompatibleWithStandardLibrary

// APIVersion identifies the REST API generation the base URL points at.
type APIVersion int

const (
	VersionUnknown APIVersion = iota
	VersionLegacyV1
	VersionLegacyV2
	VersionLegacyV3
	VersionV1
	VersionV2
	VersionV3
)

func (v APIVersion) String() string {
	switch v {
	case VersionLegacyV1:
		return "wc-api/v1"
	case VersionLegacyV2:
		return "wc-api/v2"
	case VersionLegacyV3:
		return "wc-api/v3"
	case VersionV1:
		return "wp-json/wc/v1"
	case VersionV2:
		return "wp-json/wc/v2"
	case VersionV3:
		return "wp-json/wc/v3"
	default:
		return "unknown"
	}
}

// versionSuffixes maps recognized base URL suffixes to versions. Construction
// fails for URLs matching none of these.
var versionSuffixes = []struct {
	suffix  string
	version APIVersion
}{
	{"wp-json/wc/v1", VersionV1},
	{"wp-json/wc/v2", VersionV2},
	{"wp-json/wc/v3", VersionV3},
	{"wc-api/v1", VersionLegacyV1},
	{"wc-api/v2", VersionLegacyV2},
	{"wc-api/v3", VersionLegacyV3},
}

// Config holds the construction inputs. All fields are immutable once the
// client is built.
type Config struct {
	// BaseURL is the store's API root and must end with a recognized
	// version suffix, e.g. https://store.example/wp-json/wc/v3.
	BaseURL string

	// ConsumerKey and ConsumerSecret are the API credentials.
	ConsumerKey    string
	ConsumerSecret string

	// QueryStringAuth sends credentials as consumer_key/consumer_secret
	// query parameters instead of a Basic Authorization header. Only
	// meaningful over HTTPS; ignored on plain HTTP where requests are
	// always signed.
	QueryStringAuth bool
}

// Option customizes a Client at construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying transport. Useful for the
// retryable transport, tuned *http.Client wrappers, or test doubles.
func WithHTTPClient(hc httpclient.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log *logger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// Client is a WooCommerce REST API client. It holds no mutable state after
// construction, so concurrent use from multiple goroutines is safe.
type Client struct {
	baseURL string
	version APIVersion
	secure  bool
	cfg     Config
	http    httpclient.Client
	log     *logger.Logger
	signer  *signer

	Coupons                *Service[types.Coupon]
	Customers              *Service[types.Customer]
	Orders                 *Service[types.Order]
	OrderNotes             *NestedService[types.OrderNote]
	OrderRefunds           *NestedService[types.OrderRefund]
	Products               *Service[types.Product]
	ProductVariations      *NestedService[types.ProductVariation]
	ProductCategories      *Service[types.ProductCategory]
	ProductTags            *Service[types.ProductTag]
	ProductAttributes      *Service[types.ProductAttribute]
	ProductAttributeTerms  *NestedService[types.ProductAttributeTerm]
	ProductReviews         *Service[types.ProductReview]
	ProductShippingClasses *Service[types.ProductShippingClass]
	TaxRates               *Service[types.TaxRate]
	TaxClasses             *TaxClassesService
	Webhooks               *Service[types.Webhook]
	ShippingZones          *Service[types.ShippingZone]
	ShippingZoneMethods    *ShippingZoneMethodsService
	ShippingMethods        *ShippingMethodsService
	PaymentGateways        *PaymentGatewaysService
	Settings               *SettingsService
	SystemStatus           *SystemStatusService
	Reports                *ReportsService
}

// New builds a Client from cfg. The base URL must end with a recognized
// version suffix and both credentials must be present, otherwise New fails
// with a configuration error.
func New(cfg Config, opts ...Option) (*Client, error) {
	base := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")

	version := VersionUnknown
	for _, vs := range versionSuffixes {
		if strings.HasSuffix(base, vs.suffix) {
			version = vs.version
			break
		}
	}
	if version == VersionUnknown {
		return nil, ierr.NewErrorf("unrecognized API version in base URL %q", cfg.BaseURL).
			WithHint("The base URL must end with wp-json/wc/v1..v3 or wc-api/v1..v3").
			Mark(ierr.ErrConfiguration)
	}

	if cfg.ConsumerKey == "" || cfg.ConsumerSecret == "" {
		return nil, ierr.NewError("missing consumer key or secret").
			WithHint("Both the consumer key and consumer secret are required").
			Mark(ierr.ErrConfiguration)
	}

	secure := strings.HasPrefix(strings.ToLower(base), "https://")
	if !secure && !strings.HasPrefix(strings.ToLower(base), "http://") {
		return nil, ierr.NewErrorf("base URL %q has no http(s) scheme", cfg.BaseURL).
			Mark(ierr.ErrConfiguration)
	}

	c := &Client{
		baseURL: base + "/",
		version: version,
		secure:  secure,
		cfg:     cfg,
		http:    httpclient.NewDefaultClient(),
		log:     logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}

	// The signer is only exercised on plain HTTP, where the API expects the
	// HMAC key to be the secret with a trailing ampersand.
	c.signer = newSigner(cfg.ConsumerKey, cfg.ConsumerSecret+"&")

	c.Coupons = newService[types.Coupon](c, "coupons")
	c.Customers = newService[types.Customer](c, "customers")
	c.Orders = newService[types.Order](c, "orders")
	c.OrderNotes = newNestedService[types.OrderNote](c, "orders", "notes")
	c.OrderRefunds = newNestedService[types.OrderRefund](c, "orders", "refunds")
	c.Products = newService[types.Product](c, "products")
	c.ProductVariations = newNestedService[types.ProductVariation](c, "products", "variations")
	c.ProductCategories = newService[types.ProductCategory](c, "products/categories")
	c.ProductTags = newService[types.ProductTag](c, "products/tags")
	c.ProductAttributes = newService[types.ProductAttribute](c, "products/attributes")
	c.ProductAttributeTerms = newNestedService[types.ProductAttributeTerm](c, "products/attributes", "terms")
	c.ProductReviews = newService[types.ProductReview](c, "products/reviews")
	c.ProductShippingClasses = newService[types.ProductShippingClass](c, "products/shipping_classes")
	c.TaxRates = newService[types.TaxRate](c, "taxes")
	c.TaxClasses = &TaxClassesService{client: c}
	c.Webhooks = newService[types.Webhook](c, "webhooks")
	c.ShippingZones = newService[types.ShippingZone](c, "shipping/zones")
	c.ShippingZoneMethods = &ShippingZoneMethodsService{client: c}
	c.ShippingMethods = &ShippingMethodsService{client: c}
	c.PaymentGateways = &PaymentGatewaysService{client: c}
	c.Settings = &SettingsService{client: c}
	c.SystemStatus = &SystemStatusService{client: c}
	c.Reports = &ReportsService{client: c}

	return c, nil
}

// NewFromEnv builds a Client from WOOCOMMERCE_-prefixed environment
// variables (or a woocommerce.yaml file) via the config package.
func NewFromEnv(opts ...Option) (*Client, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return New(Config{
		BaseURL:         cfg.BaseURL,
		ConsumerKey:     cfg.ConsumerKey,
		ConsumerSecret:  cfg.ConsumerSecret,
		QueryStringAuth: cfg.QueryStringAuth,
	}, opts...)
}

// Version reports the API version derived from the base URL.
func (c *Client) Version() APIVersion {
	return c.version
}

// Secure reports whether the base URL uses HTTPS.
func (c *Client) Secure() bool {
	return c.secure
}

// Send issues one HTTP request against the configured store. The endpoint is
// relative to the base URL; body may be nil, a pre-formed JSON string (sent
// verbatim), or any value marshaled through the JSON codec. On success the
// raw response body is returned for the caller to deserialize.
func (c *Client) Send(ctx context.Context, endpoint, method string, body any, params types.Params) (json.RawMessage, error) {
	p := params.Clone()
	headers := make(map[string]string)

	if c.secure {
		if c.cfg.QueryStringAuth {
			p.Set("consumer_key", c.cfg.ConsumerKey)
			p.Set("consumer_secret", c.cfg.ConsumerSecret)
		} else {
			creds := base64.StdEncoding.EncodeToString([]byte(c.cfg.ConsumerKey + ":" + c.cfg.ConsumerSecret))
			headers["Authorization"] = "Basic " + creds
		}
	} else {
		p = c.signer.sign(method, c.baseURL+endpoint, p)
	}

	url := c.baseURL + endpoint
	if len(p) > 0 {
		url += "?" + p.Encode()
	}

	payload, err := encodeBody(body)
	if err != nil {
		return nil, err
	}

	c.log.Debugw("sending request",
		"method", method,
		"endpoint", endpoint,
		"secure", c.secure)

	resp, err := c.http.Send(ctx, &httpclient.Request{
		Method:  method,
		URL:     url,
		Headers: headers,
		Body:    payload,
	})
	if err != nil {
		if apiErr, ok := httpclient.IsHTTPError(err); ok {
			c.log.Debugw("api returned error response",
				"method", method,
				"endpoint", endpoint,
				"status", apiErr.StatusCode)
		}
		return nil, err
	}

	return resp.Body, nil
}

// encodeBody turns the logical request body into bytes. Strings and raw
// JSON pass through verbatim; everything else goes through the codec.
func encodeBody(body any) ([]byte, error) {
	switch b := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(b), nil
	case []byte:
		return b, nil
	case json.RawMessage:
		return b, nil
	default:
		payload, err := jsonCodec.Marshal(b)
		if err != nil {
			return nil, ierr.WithError(err).
				WithHint("Request body could not be serialized").
				Mark(ierr.ErrSerialization)
		}
		return payload, nil
	}
}

// decode deserializes an API response body, surfacing malformed JSON as a
// serialization error.
func decode[T any](data []byte) (*T, error) {
	var out T
	if err := jsonCodec.Unmarshal(data, &out); err != nil {
		if ierr.IsSerialization(err) {
			return nil, err
		}
		return nil, ierr.WithError(err).
			WithHint("Response body could not be deserialized").
			Mark(ierr.ErrSerialization)
	}
	return &out, nil
}
