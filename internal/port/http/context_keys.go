package http

import (
	"context"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

// ContextKey is a private type for request context keys.
type ContextKey string

const (
	// VisitorCtxKey holds the *service.Visitor resolved for the request.
	VisitorCtxKey = ContextKey("visitor")
)

func withVisitor(ctx context.Context, v *service.Visitor) context.Context {
	return context.WithValue(ctx, VisitorCtxKey, v)
}

func VisitorFrom(ctx context.Context) (*service.Visitor, bool) {
	v, ok := ctx.Value(VisitorCtxKey).(*service.Visitor)
	return v, ok && v != nil
}
