package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles a request context with an optional GORM transaction.
// A nil Tx means the callee uses its own handle.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}

// Background is a Context without a transaction, for callers outside a request.
func Background() Context {
	return Context{Ctx: context.Background()}
}

// Context returns Ctx, falling back to context.Background when unset.
func (c Context) Context() context.Context {
	if c.Ctx == nil {
		return context.Background()
	}
	return c.Ctx
}
