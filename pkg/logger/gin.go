package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"time"

	"AdminRelay/pkg/correlation"

	"github.com/gin-gonic/gin"
)

const maxBody = 8 * 1024 // 8KB

func limit(b []byte) []byte {
	if len(b) > maxBody {
		return b[:maxBody]
	}
	return b
}

type responseBodyWriter struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (r *responseBodyWriter) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

// CorrelationMiddleware extracts X-Correlation-ID from request header or generates a new one.
// It stores the ID in the request context and adds it to the response header.
func CorrelationMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		corrID := c.GetHeader(correlation.HeaderName)
		if corrID == "" {
			corrID = correlation.NewID()
		}

		ctx := correlation.WithID(c.Request.Context(), corrID)
		c.Request = c.Request.WithContext(ctx)

		c.Header(correlation.HeaderName, corrID)

		c.Next()
	}
}

// RequestLogger logs one record per request. Bodies are included except for
// the routes listed in redacted, which carry credentials.
func RequestLogger(l *slog.Logger, redacted ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(redacted))
	for _, p := range redacted {
		skip[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		_, hideBodies := skip[c.FullPath()]

		var requestBody []byte
		if !hideBodies && c.Request.Body != nil {
			requestBody, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewBuffer(requestBody))
		}

		responseBuffer := &bytes.Buffer{}
		if !hideBodies {
			c.Writer = &responseBodyWriter{
				body:           responseBuffer,
				ResponseWriter: c.Writer,
			}
		}

		c.Next()

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("query", c.Request.URL.RawQuery),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("duration", time.Since(start)),
		}
		if !hideBodies {
			attrs = append(attrs,
				maybeJSON("request_body", limit(requestBody)),
				maybeJSON("response_body", limit(responseBuffer.Bytes())),
			)
		}

		l.InfoContext(c.Request.Context(), "HTTP Request", attrs...)
	}
}

func maybeJSON(key string, b []byte) slog.Attr {
	bb := bytes.TrimSpace(b)

	if len(bb) == 0 {
		return slog.Any(key, nil)
	}

	if json.Valid(bb) {
		return slog.Any(key, json.RawMessage(bb))
	}

	return slog.String(key, string(bb))
}
