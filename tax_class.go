package woocommerce

import (
	"context"
	"net/http"

	"github.com/storekit/woocommerce-go/types"
)

// TaxClassesService exposes the taxes/classes endpoints. Tax classes have
// no numeric id and no update operation; the slug addresses deletions.
type TaxClassesService struct {
	client *Client
}

// List fetches all tax classes.
func (s *TaxClassesService) List(ctx context.Context) ([]types.TaxClass, error) {
	body, err := s.client.Send(ctx, "taxes/classes", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.TaxClass](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Create adds a tax class.
func (s *TaxClassesService) Create(ctx context.Context, class *types.TaxClass) (*types.TaxClass, error) {
	body, err := s.client.Send(ctx, "taxes/classes", http.MethodPost, class, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.TaxClass](body)
}

// Delete removes a tax class by slug. The API only supports forced deletion
// for this kind, so force is always sent.
func (s *TaxClassesService) Delete(ctx context.Context, slug string) (*types.TaxClass, error) {
	p := types.NewParams("force", "true")
	body, err := s.client.Send(ctx, "taxes/classes/"+slug, http.MethodDelete, nil, p)
	if err != nil {
		return nil, err
	}
	return decode[types.TaxClass](body)
}
