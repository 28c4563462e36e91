package woocommerce

import (
	"context"
	"net/http"

	"github.com/storekit/woocommerce-go/types"
)

// ReportsService exposes the read-only reports endpoints.
type ReportsService struct {
	client *Client
}

// List fetches the reports index.
func (s *ReportsService) List(ctx context.Context) ([]types.Report, error) {
	body, err := s.client.Send(ctx, "reports", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.Report](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Sales fetches the sales report for the period in params.
func (s *ReportsService) Sales(ctx context.Context, params *types.ReportParams) ([]types.SalesReport, error) {
	p, err := types.ToParams(params)
	if err != nil {
		return nil, err
	}
	body, err := s.client.Send(ctx, "reports/sales", http.MethodGet, nil, p)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.SalesReport](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// TopSellers fetches the top sellers report for the period in params.
func (s *ReportsService) TopSellers(ctx context.Context, params *types.ReportParams) ([]types.TopSellersReport, error) {
	p, err := types.ToParams(params)
	if err != nil {
		return nil, err
	}
	body, err := s.client.Send(ctx, "reports/top_sellers", http.MethodGet, nil, p)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.TopSellersReport](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Totals fetches the slug/total rows for one entity kind: "orders",
// "products", "customers", "coupons" or "reviews".
func (s *ReportsService) Totals(ctx context.Context, kind string) ([]types.ReportTotal, error) {
	body, err := s.client.Send(ctx, "reports/"+kind+"/totals", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.ReportTotal](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}
