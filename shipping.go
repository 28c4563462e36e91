package woocommerce

import (
	"context"
	"net/http"
	"strconv"

	"github.com/storekit/woocommerce-go/types"
)

// ShippingZoneMethodsService manages method instances inside a shipping
// zone. Instances are addressed by instance_id and enabled/disabled rather
// than force-deleted, so the generic nested service does not fit.
type ShippingZoneMethodsService struct {
	client *Client
}

func (s *ShippingZoneMethodsService) path(zoneID int64) string {
	return "shipping/zones/" + strconv.FormatInt(zoneID, 10) + "/methods"
}

// List fetches all method instances in a zone.
func (s *ShippingZoneMethodsService) List(ctx context.Context, zoneID int64) ([]types.ShippingZoneMethod, error) {
	body, err := s.client.Send(ctx, s.path(zoneID), http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.ShippingZoneMethod](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Get fetches one method instance.
func (s *ShippingZoneMethodsService) Get(ctx context.Context, zoneID, instanceID int64) (*types.ShippingZoneMethod, error) {
	body, err := s.client.Send(ctx, joinPath(s.path(zoneID), instanceID), http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.ShippingZoneMethod](body)
}

// Create adds a method instance to a zone; method carries the method_id.
func (s *ShippingZoneMethodsService) Create(ctx context.Context, zoneID int64, method *types.ShippingZoneMethod) (*types.ShippingZoneMethod, error) {
	body, err := s.client.Send(ctx, s.path(zoneID), http.MethodPost, method, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.ShippingZoneMethod](body)
}

// Update writes a method instance's settings.
func (s *ShippingZoneMethodsService) Update(ctx context.Context, zoneID, instanceID int64, method *types.ShippingZoneMethod) (*types.ShippingZoneMethod, error) {
	body, err := s.client.Send(ctx, joinPath(s.path(zoneID), instanceID), http.MethodPut, method, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.ShippingZoneMethod](body)
}

// Delete removes a method instance from a zone. Forced deletion is the only
// mode the API supports here.
func (s *ShippingZoneMethodsService) Delete(ctx context.Context, zoneID, instanceID int64) (*types.ShippingZoneMethod, error) {
	p := types.NewParams("force", "true")
	body, err := s.client.Send(ctx, joinPath(s.path(zoneID), instanceID), http.MethodDelete, nil, p)
	if err != nil {
		return nil, err
	}
	return decode[types.ShippingZoneMethod](body)
}

// ListShippingZoneLocations fetches the locations a zone covers.
func (c *Client) ListShippingZoneLocations(ctx context.Context, zoneID int64) ([]types.ShippingZoneLocation, error) {
	endpoint := "shipping/zones/" + strconv.FormatInt(zoneID, 10) + "/locations"
	body, err := c.Send(ctx, endpoint, http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.ShippingZoneLocation](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// UpdateShippingZoneLocations replaces the locations a zone covers.
func (c *Client) UpdateShippingZoneLocations(ctx context.Context, zoneID int64, locations []types.ShippingZoneLocation) ([]types.ShippingZoneLocation, error) {
	endpoint := "shipping/zones/" + strconv.FormatInt(zoneID, 10) + "/locations"
	body, err := c.Send(ctx, endpoint, http.MethodPut, locations, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.ShippingZoneLocation](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// ShippingMethodsService exposes the read-only registry of shipping method
// types ("flat_rate", "free_shipping", ...), addressed by string id.
type ShippingMethodsService struct {
	client *Client
}

// List fetches all registered method types.
func (s *ShippingMethodsService) List(ctx context.Context) ([]types.ShippingMethod, error) {
	body, err := s.client.Send(ctx, "shipping_methods", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.ShippingMethod](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Get fetches one method type by id.
func (s *ShippingMethodsService) Get(ctx context.Context, id string) (*types.ShippingMethod, error) {
	body, err := s.client.Send(ctx, "shipping_methods/"+id, http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.ShippingMethod](body)
}
