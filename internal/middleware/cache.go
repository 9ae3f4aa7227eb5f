package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/avelichko/consult-api/internal/config"
)

// captureWriter tees the response body into a buffer while forwarding
// it to the client.  Bodies over the limit are dropped from the buffer,
// not from the response.
type captureWriter struct {
	http.ResponseWriter
	status   int
	limit    int
	body     bytes.Buffer
	overflow bool
}

func (w *captureWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *captureWriter) Write(b []byte) (int, error) {
	if !w.overflow {
		if w.limit > 0 && w.body.Len()+len(b) > w.limit {
			w.overflow = true
			w.body.Reset()
		} else {
			w.body.Write(b)
		}
	}
	return w.ResponseWriter.Write(b)
}

// cachedResponse is the stored form of a cache entry.  Every cacheable
// response here is JSON, so only the status and body need to survive;
// the Content-Type header is reapplied on a hit.
type cachedResponse struct {
	Status int    `json:"status"`
	Body   []byte `json:"body"`
}

// cacheKey names the entry for a request.  The appointment and progress
// listings vary only on the email query parameter, which is folded the
// same way the repositories fold it so caller casing cannot split the
// cache; the cross-client listing has no email and keys on the bare route.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	email := strings.ToLower(strings.TrimSpace(c.QueryParam("email")))
	return cfg.Prefix + ":" + c.Path() + ":" + email
}

// NewRedisCache caches successful GET listing responses for a short TTL
// so that a page rendering both listings does not hit MySQL twice per
// refresh.  With a nil client or caching disabled it is a pass-through.
func NewRedisCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}

			key := cacheKey(cfg, c)

			if raw, err := rdb.Get(c.Request().Context(), key).Bytes(); err == nil {
				var entry cachedResponse
				if json.Unmarshal(raw, &entry) == nil && entry.Status != 0 {
					c.Response().Header().Set(echo.HeaderContentType, echo.MIMEApplicationJSONCharsetUTF8)
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(entry.Status)
					if len(entry.Body) > 0 {
						_, _ = c.Response().Write(entry.Body)
					}
					return nil
				}
			}

			cw := &captureWriter{ResponseWriter: c.Response().Writer, status: http.StatusOK, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only clean 200s are worth replaying; errors and oversized
			// bodies go uncached.
			if cw.status == http.StatusOK && !cw.overflow {
				if raw, err := json.Marshal(cachedResponse{Status: cw.status, Body: cw.body.Bytes()}); err == nil {
					_ = rdb.SetEx(context.Background(), key, raw, ttl).Err()
				}
			}
			return nil
		}
	}
}
