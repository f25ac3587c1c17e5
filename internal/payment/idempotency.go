package payment

import "context"

type idempotencyKeyCtxKey struct{}

// WithIdempotencyKey attaches a caller supplied key that payment providers use to
// deduplicate retried charges.
func WithIdempotencyKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, idempotencyKeyCtxKey{}, key)
}

func IdempotencyKey(ctx context.Context) (string, bool) {
	key, ok := ctx.Value(idempotencyKeyCtxKey{}).(string)
	return key, ok && key != ""
}
