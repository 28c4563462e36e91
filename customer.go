package woocommerce

import (
	"context"
	"net/http"
	"strconv"

	"github.com/storekit/woocommerce-go/types"
)

// ListCustomerDownloads fetches the read-only downloads a customer has
// access to, nested under customers/<id>/downloads.
func (c *Client) ListCustomerDownloads(ctx context.Context, customerID int64) ([]types.CustomerDownload, error) {
	endpoint := "customers/" + strconv.FormatInt(customerID, 10) + "/downloads"
	body, err := c.Send(ctx, endpoint, http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.CustomerDownload](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
