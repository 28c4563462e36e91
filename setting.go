package woocommerce

import (
	"context"
	"net/http"

	"github.com/storekit/woocommerce-go/types"
)

// SettingsService exposes the settings groups and their options. Groups and
// options are addressed by string ids, so they do not fit the generic
// numeric-id service.
type SettingsService struct {
	client *Client
}

// List fetches the settings group index.
func (s *SettingsService) List(ctx context.Context) ([]types.SettingGroup, error) {
	body, err := s.client.Send(ctx, "settings", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.SettingGroup](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// ListOptions fetches all options in a group.
func (s *SettingsService) ListOptions(ctx context.Context, group string) ([]types.SettingOption, error) {
	body, err := s.client.Send(ctx, "settings/"+group, http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.SettingOption](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// GetOption fetches one option by group and id.
func (s *SettingsService) GetOption(ctx context.Context, group, id string) (*types.SettingOption, error) {
	body, err := s.client.Send(ctx, "settings/"+group+"/"+id, http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.SettingOption](body)
}

// UpdateOption writes one option's value.
func (s *SettingsService) UpdateOption(ctx context.Context, group, id string, option *types.SettingOption) (*types.SettingOption, error) {
	body, err := s.client.Send(ctx, "settings/"+group+"/"+id, http.MethodPut, option, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.SettingOption](body)
}

// BatchUpdateOptions updates several options in a group in one call.
func (s *SettingsService) BatchUpdateOptions(ctx context.Context, group string, update []types.SettingOption) (*types.BatchResult[types.SettingOption], error) {
	req := &types.Batch[types.SettingOption]{Update: update}
	body, err := s.client.Send(ctx, "settings/"+group+"/batch", http.MethodPost, req, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.BatchResult[types.SettingOption]](body)
}
