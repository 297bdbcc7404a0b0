package middleware

import (
	"bytes"
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

const (
	// A claim not finalized within this window is considered abandoned
	// and the next retry may take over.
	claimTTL = 60 * time.Second
	// Allowed client/server clock skew for Ax-Request-At (in UTC).
	maxClockSkew = 10 * time.Minute
	// Budget for each round trip to the idempotency store.
	storeTimeout = 2 * time.Second
)

// record is what the idempotency store holds per (method, route,
// consumer, request id). While InProgress it is a claim; once the
// handler finishes it carries the response to replay.
type record struct {
	InProgress  bool      `json:"in_progress"`
	Code        int       `json:"code"`
	Body        []byte    `json:"body"`
	BodySHA256  string    `json:"body_sha256"`
	RequestID   string    `json:"request_id"`
	RequestAtMS int64     `json:"request_at_ms"`
	CreatedAt   time.Time `json:"created_at"`
}

// captureWriter tees the response body so a finished request can be
// replayed byte-for-byte on a retry.
type captureWriter struct {
	w    http.ResponseWriter
	buf  bytes.Buffer
	code int
}

func (cw *captureWriter) Header() http.Header { return cw.w.Header() }

func (cw *captureWriter) Write(b []byte) (int, error) {
	cw.buf.Write(b)
	return cw.w.Write(b)
}

func (cw *captureWriter) WriteHeader(code int) {
	cw.code = code
	cw.w.WriteHeader(code)
}

// requestMeta is the validated identity of a mutating request, taken
// from the Ax-* headers the edge proxy stamps after authentication.
type requestMeta struct {
	requestID  string
	consumerID string
	requestAt  time.Time
}

func extractMeta(req *http.Request) (requestMeta, string) {
	var m requestMeta

	m.requestID = strings.TrimSpace(req.Header.Get("Ax-Request-Id"))
	switch {
	case m.requestID == "":
		return m, "missing Ax-Request-Id"
	case !validRequestID(m.requestID):
		return m, "invalid Ax-Request-Id format"
	}

	at, err := parseRequestAt(req.Header.Get("Ax-Request-At"))
	if err != nil {
		return m, err.Error()
	}
	now := time.Now().UTC()
	if at.Before(now.Add(-maxClockSkew)) || at.After(now.Add(maxClockSkew)) {
		return m, "Ax-Request-At too skewed"
	}
	m.requestAt = at

	m.consumerID = strings.TrimSpace(req.Header.Get("Ax-Consumer-Id"))
	switch {
	case m.consumerID == "":
		return m, "missing Ax-Consumer-Id"
	case !reHex32.MatchString(m.consumerID):
		return m, "invalid Ax-Consumer-Id"
	}

	return m, ""
}

// Idempotency guards mutating routes with a redis-backed request
// registry keyed by method + route + Ax-Consumer-Id + Ax-Request-Id.
// A finished request within ttl is replayed; a request id reused with a
// different body is rejected; a still-running duplicate gets 409.
// Ax-Request-At must be epoch seconds/ms or RFC3339 with a timezone.
func Idempotency(rdb *redis.Client, ttl time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			switch req.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				return next(c)
			}

			meta, problem := extractMeta(req)
			if problem != "" {
				return c.JSON(http.StatusBadRequest, map[string]string{"error": problem})
			}

			var body []byte
			if req.Body != nil {
				body, _ = io.ReadAll(req.Body)
			}
			req.Body = io.NopCloser(bytes.NewReader(body))
			digest := bodyDigest(body)

			key := storeKey(req.Method, c.Path(), meta.consumerID, meta.requestID)
			ctx, cancel := context.WithTimeout(req.Context(), storeTimeout)
			defer cancel()

			claimed, err := claim(ctx, rdb, key, record{
				InProgress:  true,
				BodySHA256:  digest,
				RequestID:   meta.requestID,
				RequestAtMS: meta.requestAt.UnixMilli(),
				CreatedAt:   time.Now().UTC(),
			})
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "idempotency store unavailable"})
			}
			if !claimed {
				prev, err := fetch(ctx, rdb, key)
				if err != nil {
					log.Printf("idempotency: fetch %s: %v", key, err)
				}
				if prev.BodySHA256 != "" && prev.BodySHA256 != digest {
					return c.JSON(http.StatusConflict, map[string]string{"error": "Ax-Request-Id reused with different body"})
				}
				if !prev.InProgress && prev.Code != 0 && len(prev.Body) > 0 {
					return c.Blob(prev.Code, echo.MIMEApplicationJSON, prev.Body)
				}
				return c.JSON(http.StatusConflict, map[string]string{"error": "request is already in progress"})
			}

			cw := &captureWriter{w: c.Response().Writer, code: http.StatusOK}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				c.Error(err)
			}

			err = persist(context.Background(), rdb, key, record{
				InProgress:  false,
				Code:        cw.code,
				Body:        cw.buf.Bytes(),
				BodySHA256:  digest,
				RequestID:   meta.requestID,
				RequestAtMS: meta.requestAt.UnixMilli(),
				CreatedAt:   time.Now().UTC(),
			}, ttl)
			if err != nil {
				log.Printf("idempotency: persist %s: %v", key, err)
			}
			return nil
		}
	}
}
