package requestcontext

import (
	"context"
	"maps"

	"github.com/google/uuid"

	"github.com/artie-labs/tablemeta/lib/qualifiedname"
)

type contextKey string

const requestContextKey contextKey = "_rc"

// RequestContext holds state that lives for a single inbound request. It is not safe for concurrent writers.
type RequestContext struct {
	requestID    uuid.UUID
	tableTypeMap map[string]string
}

func New() *RequestContext {
	return &RequestContext{
		requestID:    uuid.New(),
		tableTypeMap: make(map[string]string),
	}
}

// RequestID is generated once per request, it is used to correlate log lines.
func (r *RequestContext) RequestID() uuid.UUID {
	return r.requestID
}

// UpdateTableTypeMap records the table type for [name], overwriting any prior entry.
func (r *RequestContext) UpdateTableTypeMap(name qualifiedname.QualifiedName, tableType string) {
	r.tableTypeMap[name.String()] = tableType
}

func (r *RequestContext) TableType(name qualifiedname.QualifiedName) (string, bool) {
	tableType, ok := r.tableTypeMap[name.String()]
	return tableType, ok
}

// TableTypeMap returns a copy of the table types recorded so far.
func (r *RequestContext) TableTypeMap() map[string]string {
	return maps.Clone(r.tableTypeMap)
}

func InjectIntoContext(ctx context.Context, requestContext *RequestContext) context.Context {
	return context.WithValue(ctx, requestContextKey, requestContext)
}

// FromContext returns the request context carried by [ctx], or a new one if there isn't any.
func FromContext(ctx context.Context) *RequestContext {
	requestContextVal := ctx.Value(requestContextKey)
	if requestContextVal == nil {
		return New()
	}

	requestContext, isOk := requestContextVal.(*RequestContext)
	if !isOk || requestContext == nil {
		return New()
	}

	return requestContext
}
