// Package context carries request-scoped values (request id, logger, authenticated partner)
// between echo middleware, handlers and the layers below them.
package context

import "context"

type contextKey string

const (
	keyRequestID contextKey = "request_id"
	keyLogger    contextKey = "logger"
	keyPartnerID contextKey = "partner_id"
)

// HeaderXRequestID is the header a request id is read from and echoed back in.
const HeaderXRequestID = "X-Request-Id"

func valueOf[T any](ctx context.Context, key contextKey) (T, bool) {
	v, ok := ctx.Value(key).(T)

	return v, ok
}
