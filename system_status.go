package woocommerce

import (
	"context"
	"net/http"

	"github.com/storekit/woocommerce-go/types"
)

// SystemStatusService exposes the read-only system_status report and its
// maintenance tools.
type SystemStatusService struct {
	client *Client
}

// Get fetches the full system status report.
func (s *SystemStatusService) Get(ctx context.Context) (*types.SystemStatus, error) {
	body, err := s.client.Send(ctx, "system_status", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.SystemStatus](body)
}

// ListTools fetches the available maintenance tools.
func (s *SystemStatusService) ListTools(ctx context.Context) ([]types.SystemStatusTool, error) {
	body, err := s.client.Send(ctx, "system_status/tools", http.MethodGet, nil, nil)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]types.SystemStatusTool](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// RunTool executes one maintenance tool by id. The response carries the
// tool's success flag and message.
func (s *SystemStatusService) RunTool(ctx context.Context, id string) (*types.SystemStatusTool, error) {
	body, err := s.client.Send(ctx, "system_status/tools/"+id, http.MethodPut, nil, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.SystemStatusTool](body)
}
