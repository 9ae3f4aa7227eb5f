package handler

import (
	"errors"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avelichko/consult-api/internal/repository"
)

// ProgressHandler serves the client progress-tracking endpoints.
// Unlike the booking flow it never creates clients: an unknown email is
// a 404 on both read and write.
type ProgressHandler struct {
	Clients  ClientStore
	Progress ProgressStore
}

// NewProgressHandler constructs a ProgressHandler.  Both stores must be
// non-nil.
func NewProgressHandler(clients ClientStore, progress ProgressStore) *ProgressHandler {
	if clients == nil || progress == nil {
		panic("nil store passed to NewProgressHandler")
	}
	return &ProgressHandler{Clients: clients, Progress: progress}
}

type progressReq struct {
	Email   string         `json:"email"`
	Metrics map[string]any `json:"metrics"`
}

// metricEntry is one history point in the GET response.
type metricEntry struct {
	Value int64  `json:"value"`
	Date  string `json:"date"`
}

// coerceMetricValue converts a decoded JSON metric value to an integer.
// Numbers truncate toward zero; numeric strings are accepted the way
// the website's form submits them.  Anything else is rejected.
func coerceMetricValue(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// Record handles POST /v1/progress.  It requires an email and a
// non-empty metric map, resolves the client (404 when absent, never
// created here) and inserts one sample row per metric in a single
// transaction.
func (h *ProgressHandler) Record(c echo.Context) error {
	var body progressReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgEmailMetricsRequired})
	}
	if body.Email == "" || len(body.Metrics) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgEmailMetricsRequired})
	}

	// Sorted keys keep the insert order deterministic; JSON object order
	// is lost at decode time anyway.
	names := make([]string, 0, len(body.Metrics))
	for name := range body.Metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	samples := make([]repository.MetricSample, 0, len(names))
	for _, name := range names {
		value, ok := coerceMetricValue(body.Metrics[name])
		if !ok {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msgMetricsNotNumeric})
		}
		samples = append(samples, repository.MetricSample{Name: name, Value: value})
	}

	ctx := c.Request().Context()
	clientID, err := h.Clients.GetIDByEmail(ctx, body.Email)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": msgClientNotFound})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if err := h.Progress.Record(ctx, clientID, samples); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, echo.Map{"success": true})
}

// History handles GET /v1/progress.  It requires an email query
// parameter, groups the client's samples per metric newest first, and
// derives a latest-metrics summary from the head of each group.
func (h *ProgressHandler) History(c echo.Context) error {
	email := c.QueryParam("email")
	if email == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgEmailRequired})
	}

	ctx := c.Request().Context()
	clientID, err := h.Clients.GetIDByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrClientNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": msgClientNotFound})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	samples, err := h.Progress.ListByClient(ctx, clientID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	history := map[string][]metricEntry{}
	for _, s := range samples {
		history[s.MetricName] = append(history[s.MetricName], metricEntry{
			Value: s.MetricValue,
			Date:  s.RecordedAt.UTC().Format(time.RFC3339),
		})
	}
	latest := map[string]int64{}
	for name, entries := range history {
		latest[name] = entries[0].Value
	}

	return c.JSON(http.StatusOK, echo.Map{
		"latestMetrics": latest,
		"history":       history,
	})
}
