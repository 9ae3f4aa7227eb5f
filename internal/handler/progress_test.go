package handler

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/avelichko/consult-api/internal/model"
)

func TestRecordProgress(t *testing.T) {
	clients := &fakeClientStore{ids: map[string]uint64{"a@b.c": 4}}
	progress := &fakeProgressStore{}
	h := NewProgressHandler(clients, progress)

	c, rec := newTestContext(http.MethodPost, "/v1/progress",
		`{"email":"a@b.c","metrics":{"weight":70,"reps":10}}`)
	if err := h.Record(c); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	if decodeBody(t, rec)["success"] != true {
		t.Errorf("unexpected body: %s", rec.Body.String())
	}
	samples := progress.recorded[4]
	if len(samples) != 2 {
		t.Fatalf("recorded %d samples, want 2", len(samples))
	}
	// Keys are inserted in sorted order.
	if samples[0].Name != "reps" || samples[0].Value != 10 {
		t.Errorf("first sample = %+v, want reps=10", samples[0])
	}
	if samples[1].Name != "weight" || samples[1].Value != 70 {
		t.Errorf("second sample = %+v, want weight=70", samples[1])
	}
}

func TestRecordProgressCoercion(t *testing.T) {
	clients := &fakeClientStore{ids: map[string]uint64{"a@b.c": 4}}
	progress := &fakeProgressStore{}
	h := NewProgressHandler(clients, progress)

	// Fractional values truncate, numeric strings parse.
	c, rec := newTestContext(http.MethodPost, "/v1/progress",
		`{"email":"a@b.c","metrics":{"weight":70.9,"reps":"12"}}`)
	if err := h.Record(c); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	samples := progress.recorded[4]
	if samples[0].Value != 12 || samples[1].Value != 70 {
		t.Errorf("coerced values = %+v, want reps=12 weight=70", samples)
	}
}

func TestRecordProgressNonNumericValue(t *testing.T) {
	clients := &fakeClientStore{ids: map[string]uint64{"a@b.c": 4}}
	progress := &fakeProgressStore{}
	h := NewProgressHandler(clients, progress)

	c, rec := newTestContext(http.MethodPost, "/v1/progress",
		`{"email":"a@b.c","metrics":{"weight":"heavy"}}`)
	if err := h.Record(c); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if len(progress.recorded) != 0 {
		t.Errorf("samples were recorded despite invalid value")
	}
}

func TestRecordProgressValidation(t *testing.T) {
	for name, reqBody := range map[string]string{
		"no email":      `{"metrics":{"weight":70}}`,
		"empty metrics": `{"email":"a@b.c","metrics":{}}`,
		"no metrics":    `{"email":"a@b.c"}`,
	} {
		h := NewProgressHandler(&fakeClientStore{}, &fakeProgressStore{})
		c, rec := newTestContext(http.MethodPost, "/v1/progress", reqBody)
		if err := h.Record(c); err != nil {
			t.Fatalf("%s: Record returned error: %v", name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", name, rec.Code)
		}
		if got := decodeBody(t, rec)["error"]; got != msgEmailMetricsRequired {
			t.Errorf("%s: error = %v, want %q", name, got, msgEmailMetricsRequired)
		}
	}
}

func TestRecordProgressUnknownClient(t *testing.T) {
	clients := &fakeClientStore{ids: map[string]uint64{}}
	progress := &fakeProgressStore{}
	h := NewProgressHandler(clients, progress)

	c, rec := newTestContext(http.MethodPost, "/v1/progress",
		`{"email":"nobody@b.c","metrics":{"weight":70}}`)
	if err := h.Record(c); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != msgClientNotFound {
		t.Errorf("error = %v, want %q", got, msgClientNotFound)
	}
	if len(progress.recorded) != 0 {
		t.Errorf("samples were recorded for an unknown client")
	}
}

func TestRecordProgressStoreError(t *testing.T) {
	clients := &fakeClientStore{ids: map[string]uint64{"a@b.c": 4}}
	progress := &fakeProgressStore{recordErr: errors.New("deadlock found")}
	h := NewProgressHandler(clients, progress)

	c, rec := newTestContext(http.MethodPost, "/v1/progress",
		`{"email":"a@b.c","metrics":{"weight":70}}`)
	if err := h.Record(c); err != nil {
		t.Fatalf("Record returned error: %v", err)
	}
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != "deadlock found" {
		t.Errorf("error = %v, want raw error text", got)
	}
}

func TestProgressHistory(t *testing.T) {
	now := time.Date(2026, 9, 12, 10, 0, 0, 0, time.UTC)
	clients := &fakeClientStore{ids: map[string]uint64{"a@b.c": 4}}
	progress := &fakeProgressStore{
		// Already ordered newest first, as the repository guarantees.
		samples: []model.ProgressSample{
			{ID: 3, ClientID: 4, MetricName: "weight", MetricValue: 68, RecordedAt: now},
			{ID: 2, ClientID: 4, MetricName: "reps", MetricValue: 10, RecordedAt: now.Add(-24 * time.Hour)},
			{ID: 1, ClientID: 4, MetricName: "weight", MetricValue: 70, RecordedAt: now.Add(-48 * time.Hour)},
		},
	}
	h := NewProgressHandler(clients, progress)

	c, rec := newTestContext(http.MethodGet, "/v1/progress?email=a@b.c", "")
	if err := h.History(c); err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	body := decodeBody(t, rec)

	latest := body["latestMetrics"].(map[string]any)
	if latest["weight"] != float64(68) || latest["reps"] != float64(10) {
		t.Errorf("latestMetrics = %v, want weight=68 reps=10", latest)
	}

	history := body["history"].(map[string]any)
	weight := history["weight"].([]any)
	if len(weight) != 2 {
		t.Fatalf("weight history has %d entries, want 2", len(weight))
	}
	first := weight[0].(map[string]any)
	if first["value"] != float64(68) || first["date"] != "2026-09-12T10:00:00Z" {
		t.Errorf("unexpected newest weight entry: %v", first)
	}
	if len(history["reps"].([]any)) != 1 {
		t.Errorf("reps history = %v, want 1 entry", history["reps"])
	}
}

func TestProgressHistoryRequiresEmail(t *testing.T) {
	h := NewProgressHandler(&fakeClientStore{}, &fakeProgressStore{})
	c, rec := newTestContext(http.MethodGet, "/v1/progress", "")
	if err := h.History(c); err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	if got := decodeBody(t, rec)["error"]; got != msgEmailRequired {
		t.Errorf("error = %v, want %q", got, msgEmailRequired)
	}
}

func TestProgressHistoryUnknownClient(t *testing.T) {
	h := NewProgressHandler(&fakeClientStore{ids: map[string]uint64{}}, &fakeProgressStore{})
	c, rec := newTestContext(http.MethodGet, "/v1/progress?email=nobody@b.c", "")
	if err := h.History(c); err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestProgressHistoryEmptyIsValid(t *testing.T) {
	clients := &fakeClientStore{ids: map[string]uint64{"a@b.c": 4}}
	h := NewProgressHandler(clients, &fakeProgressStore{})
	c, rec := newTestContext(http.MethodGet, "/v1/progress?email=a@b.c", "")
	if err := h.History(c); err != nil {
		t.Fatalf("History returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	body := decodeBody(t, rec)
	if len(body["latestMetrics"].(map[string]any)) != 0 {
		t.Errorf("latestMetrics should be empty, got %v", body["latestMetrics"])
	}
	if len(body["history"].(map[string]any)) != 0 {
		t.Errorf("history should be empty, got %v", body["history"])
	}
}
