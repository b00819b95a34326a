package routing

import (
	"context"

	"github.com/google/uuid"
)

// Classification tells the resolver which dispatcher a request entered
// through, which determines the base path stripped during path
// adjustment.
type Classification int

const (
	// ClassificationUnknown means no dispatcher flagged the request;
	// no base path is stripped.
	ClassificationUnknown Classification = iota

	// ClassificationFrontController marks a request that passed
	// through the generic front controller.
	ClassificationFrontController

	// ClassificationGateway marks a request dispatched directly to
	// the gateway's own handler under the configured gateway path.
	ClassificationGateway
)

// classificationKey is an unexported type for the classification
// context key.
type classificationKey struct{}

// forwardKey is an unexported type for the forward marker context key.
type forwardKey struct{}

// WithClassification returns a context carrying the request
// classification. Upstream dispatchers set this before route lookup.
func WithClassification(ctx context.Context, c Classification) context.Context {
	return context.WithValue(ctx, classificationKey{}, c)
}

// ClassificationOf returns the request classification stored in the
// context, or ClassificationUnknown when none was set.
func ClassificationOf(ctx context.Context) Classification {
	if c, ok := ctx.Value(classificationKey{}).(Classification); ok {
		return c
	}
	return ClassificationUnknown
}

// MarkForwarded returns a context flagged as an internally forwarded
// request, carrying a fresh forward hop ID. The dispatch index refuses
// to resolve flagged requests, preventing re-entrant dispatch loops.
func MarkForwarded(ctx context.Context) context.Context {
	return context.WithValue(ctx, forwardKey{}, uuid.NewString())
}

// IsForwarded reports whether the request was already forwarded inside
// the gateway.
func IsForwarded(ctx context.Context) bool {
	_, ok := ctx.Value(forwardKey{}).(string)
	return ok
}

// ForwardID returns the forward hop ID set by MarkForwarded, or an
// empty string for requests that were not forwarded.
func ForwardID(ctx context.Context) string {
	if id, ok := ctx.Value(forwardKey{}).(string); ok {
		return id
	}
	return ""
}
