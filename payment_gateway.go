package woocommerce

import (
	"context"
	"net/http"

	"github.com/storekit/woocommerce-go/types"
)

// PaymentGatewaysService exposes the payment_gateways endpoints. Gateways
// are addressed by string id and support list, get and update only.
type PaymentGatewaysService struct {
	client *Client
}

// List fetches all registered gateways.
func (s *PaymentGatewaysService) List(ctx context.Context) ([]types.PaymentGateway, error) {
	body, err := s.client.Send(ctx, "payment_gateways", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.PaymentGateway](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Get fetches one gateway by id, e.g. "bacs".
func (s *PaymentGatewaysService) Get(ctx context.Context, id string) (*types.PaymentGateway, error) {
	body, err := s.client.Send(ctx, "payment_gateways/"+id, http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.PaymentGateway](body)
}

// Update writes gateway configuration.
func (s *PaymentGatewaysService) Update(ctx context.Context, id string, gateway *types.PaymentGateway) (*types.PaymentGateway, error) {
	body, err := s.client.Send(ctx, "payment_gateways/"+id, http.MethodPut, gateway, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.PaymentGateway](body)
}
