package woocommerce

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ierr "github.com/storekit/woocommerce-go/errors"
	"github.com/storekit/woocommerce-go/httpclient"
	"github.com/storekit/woocommerce-go/testutil"
	"github.com/storekit/woocommerce-go/types"
)

func testClient(t *testing.T, baseURL string, opts ...Option) (*Client, *testutil.MockHTTPClient) {
	t.Helper()
	mock := testutil.NewMockHTTPClient()
	opts = append([]Option{WithHTTPClient(mock)}, opts...)
	c, err := New(Config{
		BaseURL:        baseURL,
		ConsumerKey:    "ck_test",
		ConsumerSecret: "cs_test",
	}, opts...)
	require.NoError(t, err)
	return c, mock
}

func TestNew_VersionDetection(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		want    APIVersion
		wantErr bool
	}{
		{name: "v1", baseURL: "https://store.example/wp-json/wc/v1", want: VersionV1},
		{name: "v2", baseURL: "https://store.example/wp-json/wc/v2", want: VersionV2},
		{name: "v3", baseURL: "https://store.example/wp-json/wc/v3", want: VersionV3},
		{name: "trailing slash", baseURL: "https://store.example/wp-json/wc/v3/", want: VersionV3},
		{name: "legacy v1", baseURL: "https://store.example/wc-api/v1", want: VersionLegacyV1},
		{name: "legacy v2", baseURL: "https://store.example/wc-api/v2", want: VersionLegacyV2},
		{name: "legacy v3", baseURL: "https://store.example/wc-api/v3", want: VersionLegacyV3},
		{name: "no version suffix", baseURL: "https://store.example/wp-json", wantErr: true},
		{name: "unknown version", baseURL: "https://store.example/wp-json/wc/v9", wantErr: true},
		{name: "empty", baseURL: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(Config{
				BaseURL:        tt.baseURL,
				ConsumerKey:    "ck",
				ConsumerSecret: "cs",
			})
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, ierr.IsConfiguration(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.Version())
		})
	}
}

func TestNew_MissingCredentials(t *testing.T) {
	_, err := New(Config{BaseURL: "https://store.example/wp-json/wc/v3"})
	require.Error(t, err)
	assert.True(t, ierr.IsConfiguration(err))
}

func TestNew_SchemeRequired(t *testing.T) {
	_, err := New(Config{
		BaseURL:        "store.example/wp-json/wc/v3",
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
	})
	require.Error(t, err)
	assert.True(t, ierr.IsConfiguration(err))
}

func TestNewFromEnv(t *testing.T) {
	t.Setenv("WOOCOMMERCE_BASE_URL", "https://store.example/wp-json/wc/v3")
	t.Setenv("WOOCOMMERCE_CONSUMER_KEY", "ck_env")
	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "cs_env")
	t.Setenv("WOOCOMMERCE_QUERY_STRING_AUTH", "true")

	mock := testutil.NewMockHTTPClient()
	c, err := NewFromEnv(WithHTTPClient(mock))
	require.NoError(t, err)
	assert.Equal(t, VersionV3, c.Version())
	assert.True(t, c.Secure())

	mock.RegisterJSONResponse("/orders", `[]`)
	_, err = c.Send(context.Background(), "orders", http.MethodGet, nil, nil)
	require.NoError(t, err)
	assert.Contains(t, mock.LastRequest().URL, "consumer_key=ck_env")
	assert.Contains(t, mock.LastRequest().URL, "consumer_secret=cs_env")

	t.Setenv("WOOCOMMERCE_CONSUMER_SECRET", "")
	_, err = NewFromEnv()
	require.Error(t, err)
	assert.True(t, ierr.IsConfiguration(err))
}

func TestClient_HTTPSBasicAuthAndPathPassThrough(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v2")
	assert.Equal(t, VersionV2, c.Version())
	assert.True(t, c.Secure())

	mock.RegisterJSONResponse("/products", `[]`)

	_, err := c.Send(context.Background(), "products", http.MethodGet, nil, nil)
	require.NoError(t, err)

	req := mock.LastRequest()
	require.NotNil(t, req)
	assert.Equal(t, "https://store.example/wp-json/wc/v2/products", req.URL)

	wantAuth := "Basic " + base64.StdEncoding.EncodeToString([]byte("ck_test:cs_test"))
	assert.Equal(t, wantAuth, req.Headers["Authorization"])
}

func TestClient_HTTPSQueryStringAuth(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	c, err := New(Config{
		BaseURL:         "https://store.example/wp-json/wc/v3",
		ConsumerKey:     "ck_test",
		ConsumerSecret:  "cs_test",
		QueryStringAuth: true,
	}, WithHTTPClient(mock))
	require.NoError(t, err)

	mock.RegisterJSONResponse("/orders", `[]`)

	_, err = c.Send(context.Background(), "orders", http.MethodGet, nil, nil)
	require.NoError(t, err)

	req := mock.LastRequest()
	assert.Contains(t, req.URL, "consumer_key=ck_test")
	assert.Contains(t, req.URL, "consumer_secret=cs_test")
	assert.Empty(t, req.Headers["Authorization"])
}

func TestClient_InsecureURLGetsSignedSecret(t *testing.T) {
	c, mock := testClient(t, "http://store.example/wp-json/wc/v2")
	require.False(t, c.Secure())

	// The HMAC key over plain HTTP is the secret with a trailing ampersand.
	assert.Equal(t, "cs_test&", c.signer.signingSecret)

	mock.RegisterJSONResponse("/orders", `[]`)
	_, err := c.Send(context.Background(), "orders", http.MethodGet, nil, nil)
	require.NoError(t, err)

	req := mock.LastRequest()
	assert.Contains(t, req.URL, "oauth_consumer_key=ck_test")
	assert.Contains(t, req.URL, "oauth_signature_method=HMAC-SHA256")
	assert.Contains(t, req.URL, "oauth_signature=")
	assert.Empty(t, req.Headers["Authorization"])
}

func TestClient_SecretTrailingAmpersand(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	c, err := New(Config{
		BaseURL:        "http://store.example/wp-json/wc/v2",
		ConsumerKey:    "key",
		ConsumerSecret: "abc",
	}, WithHTTPClient(mock))
	require.NoError(t, err)

	assert.Equal(t, "abc&", c.signer.signingSecret)
}

func TestClient_APIErrorSurfacesStatusAndBody(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")

	mock.RegisterResponse("/products/42", testutil.MockResponse{
		StatusCode: http.StatusNotFound,
		Body:       []byte(`{"message":"not found"}`),
	})

	_, err := c.Products.Get(context.Background(), 42, nil)
	require.Error(t, err)

	assert.True(t, ierr.IsAPIResponse(err))
	apiErr, ok := httpclient.IsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Contains(t, string(apiErr.Response), `"message":"not found"`)
}

func TestClient_BodyEncoding(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	mock.RegisterJSONResponse("/webhooks", `{"id":1}`)

	// Pre-formed string bodies pass through verbatim.
	_, err := c.Send(context.Background(), "webhooks", http.MethodPost, `{"name":"raw"}`, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"name":"raw"}`, string(mock.LastRequest().Body))

	// Everything else goes through the codec.
	_, err = c.Send(context.Background(), "webhooks", http.MethodPost, &types.Webhook{Name: "hook"}, nil)
	require.NoError(t, err)
	assert.Contains(t, string(mock.LastRequest().Body), `"name":"hook"`)
}

func TestClient_MalformedResponseIsSerializationError(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	mock.RegisterJSONResponse("/coupons/7", `{"id":`)

	_, err := c.Coupons.Get(context.Background(), 7, nil)
	require.Error(t, err)
	assert.True(t, ierr.IsSerialization(err))
}

func TestClient_ParamsAppendedToURL(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	mock.RegisterJSONResponse("/orders", `[]`)

	p, err := types.ToParams(&types.OrderListParams{
		ListParams: types.ListParams{PerPage: 5},
		Status:     []string{"completed"},
	})
	require.NoError(t, err)

	_, err = c.Orders.List(context.Background(), p)
	require.NoError(t, err)

	url := mock.LastRequest().URL
	assert.True(t, strings.Contains(url, "per_page=5"))
	assert.True(t, strings.Contains(url, "status=completed"))
}
