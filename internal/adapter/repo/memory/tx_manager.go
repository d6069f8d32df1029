package memory

import "context"

// TxManager runs the function directly; the in-memory store has no
// transactional isolation.
type TxManager struct{}

func (TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
