package woocommerce

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storekit/woocommerce-go/httpclient"
	"github.com/storekit/woocommerce-go/testutil"
	"github.com/storekit/woocommerce-go/types"
)

// plainTransport hides the mock's raw-body capability so tests can cover
// the degraded path of the clearing update.
type plainTransport struct {
	inner httpclient.Client
}

func (p *plainTransport) Send(ctx context.Context, req *httpclient.Request) (*httpclient.Response, error) {
	return p.inner.Send(ctx, req)
}

func TestService_CRUDPaths(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	ctx := context.Background()

	mock.RegisterJSONResponse("/coupons/10", `{"id":10,"code":"SAVE10"}`)
	coupon, err := c.Coupons.Get(ctx, 10, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(10), coupon.ID)
	assert.Equal(t, "SAVE10", coupon.Code)
	assert.Equal(t, http.MethodGet, mock.LastRequest().Method)

	mock.Clear()
	mock.RegisterJSONResponse("/coupons", `[{"id":10},{"id":11}]`)
	coupons, err := c.Coupons.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, coupons, 2)

	mock.Clear()
	mock.RegisterJSONResponse("/coupons", `{"id":12,"code":"NEW"}`)
	created, err := c.Coupons.Create(ctx, &types.Coupon{Code: "NEW"}, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(12), created.ID)
	assert.Equal(t, http.MethodPost, mock.LastRequest().Method)
	assert.Contains(t, string(mock.LastRequest().Body), `"code":"NEW"`)

	mock.Clear()
	mock.RegisterJSONResponse("/coupons/12", `{"id":12,"code":"RENAMED"}`)
	updated, err := c.Coupons.Update(ctx, 12, &types.Coupon{Code: "RENAMED"}, nil)
	require.NoError(t, err)
	assert.Equal(t, "RENAMED", updated.Code)
	assert.Equal(t, http.MethodPut, mock.LastRequest().Method)
	assert.True(t, strings.HasSuffix(mock.LastRequest().URL, "/coupons/12"))
}

func TestService_DeleteForceParam(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	ctx := context.Background()
	mock.RegisterJSONResponse("/coupons/5", `{"id":5}`)

	_, err := c.Coupons.Delete(ctx, 5, true, nil)
	require.NoError(t, err)
	url := mock.LastRequest().URL
	assert.Equal(t, 1, strings.Count(url, "force="))
	assert.Contains(t, url, "force=true")

	// A caller-supplied force value wins and is not duplicated.
	mock.Clear()
	mock.RegisterJSONResponse("/coupons/5", `{"id":5}`)
	_, err = c.Coupons.Delete(ctx, 5, true, types.NewParams("force", "false"))
	require.NoError(t, err)
	url = mock.LastRequest().URL
	assert.Equal(t, 1, strings.Count(url, "force="))
	assert.Contains(t, url, "force=false")

	// force=false adds nothing.
	mock.Clear()
	mock.RegisterJSONResponse("/coupons/5", `{"id":5}`)
	_, err = c.Coupons.Delete(ctx, 5, false, nil)
	require.NoError(t, err)
	assert.NotContains(t, mock.LastRequest().URL, "force=")
}

func TestService_BatchPath(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	ctx := context.Background()
	mock.RegisterJSONResponse("/products/batch", `{"create":[{"id":1}],"update":[],"delete":[{"id":2}]}`)

	res, err := c.Products.Batch(ctx, &types.Batch[types.Product]{
		Create: []types.Product{{Name: "Widget"}},
		Delete: []int64{2},
	})
	require.NoError(t, err)
	require.Len(t, res.Create, 1)
	assert.Equal(t, int64(1), res.Create[0].ID)
	require.Len(t, res.Delete, 1)

	req := mock.LastRequest()
	assert.Equal(t, http.MethodPost, req.Method)
	assert.True(t, strings.HasSuffix(req.URL, "/products/batch"))
	assert.Contains(t, string(req.Body), `"create"`)
	assert.NotContains(t, string(req.Body), `"update"`)
}

func TestService_UpdateClearingOmittedBody(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	ctx := context.Background()
	mock.RegisterJSONResponse("/webhooks/3", `{"id":3}`)

	_, err := c.Webhooks.UpdateClearingOmitted(ctx, 3, &types.Webhook{}, nil)
	require.NoError(t, err)

	req := mock.LastRequest()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.Equal(t, `{"name":"","status":"","topic":"","delivery_url":"","secret":""}`, string(req.Body))
}

func TestService_UpdateClearingOmittedFallsBackWithoutCapability(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	c, err := New(Config{
		BaseURL:        "https://store.example/wp-json/wc/v3",
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
	}, WithHTTPClient(&plainTransport{inner: mock}))
	require.NoError(t, err)

	mock.RegisterJSONResponse("/webhooks/3", `{"id":3}`)
	_, err = c.Webhooks.UpdateClearingOmitted(context.Background(), 3, &types.Webhook{Name: "keep"}, nil)
	require.NoError(t, err)

	// Degraded to a normal update: the item marshals as usual.
	assert.Equal(t, `{"name":"keep"}`, string(mock.LastRequest().Body))
}

func TestNestedService_UpdateClearingOmittedBody(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	ctx := context.Background()
	mock.RegisterJSONResponse("/orders/7/notes/2", `{"id":2}`)

	_, err := c.OrderNotes.UpdateClearingOmitted(ctx, 7, 2, &types.OrderNote{}, nil)
	require.NoError(t, err)

	req := mock.LastRequest()
	assert.Equal(t, http.MethodPut, req.Method)
	assert.True(t, strings.HasSuffix(req.URL, "/orders/7/notes/2"))
	assert.Equal(t, `{"note":"","customer_note":""}`, string(req.Body))
}

func TestNestedService_UpdateClearingOmittedFallsBackWithoutCapability(t *testing.T) {
	mock := testutil.NewMockHTTPClient()
	c, err := New(Config{
		BaseURL:        "https://store.example/wp-json/wc/v3",
		ConsumerKey:    "ck",
		ConsumerSecret: "cs",
	}, WithHTTPClient(&plainTransport{inner: mock}))
	require.NoError(t, err)

	mock.RegisterJSONResponse("/orders/7/notes/2", `{"id":2}`)
	_, err = c.OrderNotes.UpdateClearingOmitted(context.Background(), 7, 2, &types.OrderNote{Note: "keep"}, nil)
	require.NoError(t, err)

	assert.Contains(t, string(mock.LastRequest().Body), `"note":"keep"`)
}

func TestNestedService_Paths(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	ctx := context.Background()

	mock.RegisterJSONResponse("/orders/7/notes", `[{"id":1,"note":"shipped"}]`)
	notes, err := c.OrderNotes.List(ctx, 7, nil)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "shipped", notes[0].Note)
	assert.True(t, strings.HasSuffix(mock.LastRequest().URL, "/orders/7/notes"))

	mock.Clear()
	mock.RegisterJSONResponse("/products/9/variations/15", `{"id":15}`)
	v, err := c.ProductVariations.Get(ctx, 9, 15, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(15), v.ID)
	assert.True(t, strings.HasSuffix(mock.LastRequest().URL, "/products/9/variations/15"))

	mock.Clear()
	mock.RegisterJSONResponse("/products/9/variations/batch", `{"create":[{"id":16}]}`)
	res, err := c.ProductVariations.Batch(ctx, 9, &types.Batch[types.ProductVariation]{
		Create: []types.ProductVariation{{SKU: "VAR-16"}},
	})
	require.NoError(t, err)
	require.Len(t, res.Create, 1)
	assert.True(t, strings.HasSuffix(mock.LastRequest().URL, "/products/9/variations/batch"))
}

func TestService_RangeHelpers(t *testing.T) {
	c, mock := testClient(t, "https://store.example/wp-json/wc/v3")
	ctx := context.Background()
	mock.RegisterJSONResponse("/coupons/batch", `{"delete":[{"id":1},{"id":2}]}`)

	res, err := c.Coupons.DeleteRange(ctx, []int64{1, 2})
	require.NoError(t, err)
	assert.Len(t, res.Delete, 2)
	assert.Contains(t, string(mock.LastRequest().Body), `"delete":[1,2]`)
}
