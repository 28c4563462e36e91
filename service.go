package woocommerce

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/storekit/woocommerce-go/httpclient"
	"github.com/storekit/woocommerce-go/types"
)

// Service exposes the CRUD and batch operations shared by every top-level
// resource kind. The endpoint path segment and the field list for the
// clearing update come from the static registry in endpoints.go.
type Service[T any] struct {
	client   *Client
	endpoint string
	fields   []string
}

func newService[T any](c *Client, endpoint string) *Service[T] {
	return &Service[T]{
		client:   c,
		endpoint: endpoint,
		fields:   resourceFields[endpoint],
	}
}

// Get fetches one resource by id.
func (s *Service[T]) Get(ctx context.Context, id int64, params types.Params) (*T, error) {
	body, err := s.client.Send(ctx, joinPath(s.endpoint, id), http.MethodGet, nil, params)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// List fetches the collection, filtered by params.
func (s *Service[T]) List(ctx context.Context, params types.Params) ([]T, error) {
	body, err := s.client.Send(ctx, s.endpoint, http.MethodGet, nil, params)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]T](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Create adds a new resource and returns the server's copy.
func (s *Service[T]) Create(ctx context.Context, item *T, params types.Params) (*T, error) {
	body, err := s.client.Send(ctx, s.endpoint, http.MethodPost, item, params)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// Update modifies a resource. Fields omitted from item keep their server
// value; use UpdateClearingOmitted to null them instead.
func (s *Service[T]) Update(ctx context.Context, id int64, item *T, params types.Params) (*T, error) {
	body, err := s.client.Send(ctx, joinPath(s.endpoint, id), http.MethodPut, item, params)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// UpdateClearingOmitted sends an update whose body maps every public field
// of the resource to an empty string, explicitly clearing values the API
// would otherwise leave untouched when omitted. The raw pre-formed body
// requires a transport that declares the RawBodySender capability; against
// any other transport this deliberately degrades to a normal Update.
func (s *Service[T]) UpdateClearingOmitted(ctx context.Context, id int64, item *T, params types.Params) (*T, error) {
	raw, ok := s.client.http.(httpclient.RawBodySender)
	if !ok || !raw.SendsRawBody() || len(s.fields) == 0 {
		return s.Update(ctx, id, item, params)
	}

	body, err := s.client.Send(ctx, joinPath(s.endpoint, id), http.MethodPut, clearedFieldsBody(s.fields), params)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// Delete removes a resource. force=true injects a force=true query
// parameter unless the caller already supplied one; most kinds only
// support permanent deletion with force set.
func (s *Service[T]) Delete(ctx context.Context, id int64, force bool, params types.Params) (*T, error) {
	p := params.Clone()
	if force && !p.Has("force") {
		p.Set("force", "true")
	}
	body, err := s.client.Send(ctx, joinPath(s.endpoint, id), http.MethodDelete, nil, p)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// Batch posts a create/update/delete envelope to <endpoint>/batch. Per-item
// failures are whatever the server encoded; they pass through verbatim.
func (s *Service[T]) Batch(ctx context.Context, req *types.Batch[T]) (*types.BatchResult[T], error) {
	body, err := s.client.Send(ctx, s.endpoint+"/batch", http.MethodPost, req, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.BatchResult[T]](body)
}

// CreateRange batch-creates items.
func (s *Service[T]) CreateRange(ctx context.Context, items []T) (*types.BatchResult[T], error) {
	return s.Batch(ctx, &types.Batch[T]{Create: items})
}

// UpdateRange batch-updates items; each item must carry its id.
func (s *Service[T]) UpdateRange(ctx context.Context, items []T) (*types.BatchResult[T], error) {
	return s.Batch(ctx, &types.Batch[T]{Update: items})
}

// DeleteRange batch-deletes by id.
func (s *Service[T]) DeleteRange(ctx context.Context, ids []int64) (*types.BatchResult[T], error) {
	return s.Batch(ctx, &types.Batch[T]{Delete: ids})
}

// NestedService exposes the same operations for resource kinds that live
// under a parent collection, e.g. orders/<id>/notes.
type NestedService[T any] struct {
	client   *Client
	parent   string
	endpoint string
	fields   []string
}

func newNestedService[T any](c *Client, parent, endpoint string) *NestedService[T] {
	return &NestedService[T]{
		client:   c,
		parent:   parent,
		endpoint: endpoint,
		fields:   resourceFields[parent+"/"+endpoint],
	}
}

func (s *NestedService[T]) path(parentID int64) string {
	return joinPath(s.parent, parentID) + "/" + s.endpoint
}

// Get fetches one nested resource by parent and id.
func (s *NestedService[T]) Get(ctx context.Context, parentID, id int64, params types.Params) (*T, error) {
	body, err := s.client.Send(ctx, joinPath(s.path(parentID), id), http.MethodGet, nil, params)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// List fetches the nested collection for one parent.
func (s *NestedService[T]) List(ctx context.Context, parentID int64, params types.Params) ([]T, error) {
	body, err := s.client.Send(ctx, s.path(parentID), http.MethodGet, nil, params)
	if err != nil {
		return nil, err
	}
	out, err := decode[[]T](body)
	if err != nil {
		return nil, err
	}
	return *out, nil
}

// Create adds a nested resource under the parent.
func (s *NestedService[T]) Create(ctx context.Context, parentID int64, item *T, params types.Params) (*T, error) {
	body, err := s.client.Send(ctx, s.path(parentID), http.MethodPost, item, params)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// Update modifies a nested resource.
func (s *NestedService[T]) Update(ctx context.Context, parentID, id int64, item *T, params types.Params) (*T, error) {
	body, err := s.client.Send(ctx, joinPath(s.path(parentID), id), http.MethodPut, item, params)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// UpdateClearingOmitted sends an update whose body maps every public field
// of the resource to an empty string, as Service.UpdateClearingOmitted does
// for top-level kinds. Degrades to a normal Update against transports
// without the RawBodySender capability.
func (s *NestedService[T]) UpdateClearingOmitted(ctx context.Context, parentID, id int64, item *T, params types.Params) (*T, error) {
	raw, ok := s.client.http.(httpclient.RawBodySender)
	if !ok || !raw.SendsRawBody() || len(s.fields) == 0 {
		return s.Update(ctx, parentID, id, item, params)
	}

	body, err := s.client.Send(ctx, joinPath(s.path(parentID), id), http.MethodPut, clearedFieldsBody(s.fields), params)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// Delete removes a nested resource; force behaves as in Service.Delete.
func (s *NestedService[T]) Delete(ctx context.Context, parentID, id int64, force bool, params types.Params) (*T, error) {
	p := params.Clone()
	if force && !p.Has("force") {
		p.Set("force", "true")
	}
	body, err := s.client.Send(ctx, joinPath(s.path(parentID), id), http.MethodDelete, nil, p)
	if err != nil {
		return nil, err
	}
	return decode[T](body)
}

// Batch posts an envelope to the nested batch endpoint.
func (s *NestedService[T]) Batch(ctx context.Context, parentID int64, req *types.Batch[T]) (*types.BatchResult[T], error) {
	body, err := s.client.Send(ctx, s.path(parentID)+"/batch", http.MethodPost, req, nil)
	if err != nil {
		return nil, err
	}
	return decode[types.BatchResult[T]](body)
}

func joinPath(endpoint string, id int64) string {
	return endpoint + "/" + strconv.FormatInt(id, 10)
}

// clearedFieldsBody renders {"field":"", ...} preserving registry order.
func clearedFieldsBody(fields []string) string {
	var b strings.Builder
	b.WriteByte('{')
	for i, f := range fields {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Quote(f))
		b.WriteString(`:""`)
	}
	b.WriteByte('}')
	return b.String()
}
