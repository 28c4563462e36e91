package types

// Batch is the envelope posted to <endpoint>/batch bundling create, update
// and delete operations for one resource kind in a single call.
type Batch[T any] struct {
	Create []T     `json:"create,omitempty"`
	Update []T     `json:"update,omitempty"`
	Delete []int64 `json:"delete,omitempty"`
}

// BatchResult mirrors the server's batch response. Partial failures are
// whatever the server encoded per item; the client passes them through
// verbatim and does not interpret them.
type BatchResult[T any] struct {
	Create []T `json:"create,omitempty"`
	Update []T `json:"update,omitempty"`
	Delete []T `json:"delete,omitempty"`
}

// IsEmpty reports whether the envelope carries no operations.
func (b *Batch[T]) IsEmpty() bool {
	return len(b.Create) == 0 && len(b.Update) == 0 && len(b.Delete) == 0
}
