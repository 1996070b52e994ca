package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/person-api/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"

	attrRequestID = "http.request_id"

	// Longer inbound ids are replaced rather than copied into logs.
	maxInboundIDLen = 128
)

// AttachTraceContext gives every request a request id and a trace id and
// echoes both as response headers. When otelgin opened a span, the span's
// trace id is used and the request id is recorded on the span; an inbound
// X-Trace-Id is only honoured for untraced requests.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		td := &ctxutil.TraceData{RequestID: inboundOrNew(c, headerRequestID)}

		span := trace.SpanFromContext(ctx)
		if sc := span.SpanContext(); sc.HasTraceID() {
			td.TraceID = sc.TraceID().String()
			span.SetAttributes(attribute.String(attrRequestID, td.RequestID))
		} else {
			td.TraceID = inboundOrNew(c, headerTraceID)
		}

		c.Request = c.Request.WithContext(ctxutil.WithTraceData(ctx, td))
		c.Header(headerTraceID, td.TraceID)
		c.Header(headerRequestID, td.RequestID)
		c.Next()
	}
}

func inboundOrNew(c *gin.Context, header string) string {
	v := strings.TrimSpace(c.GetHeader(header))
	if v == "" || len(v) > maxInboundIDLen {
		return uuid.NewString()
	}
	return v
}
