package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/avelichko/consult-api/internal/model"
	"github.com/avelichko/consult-api/internal/queue"
	"github.com/avelichko/consult-api/internal/repository"
)

// Test doubles for the store interfaces so handler behavior can be
// exercised without a database.

type bookCall struct {
	email, name, phone, date, timeOfDay string
}

type fakeAppointmentStore struct {
	appointmentID uint64
	clientID      uint64
	bookErr       error
	listErr       error
	calls         []bookCall
	byEmail       map[string][]repository.ClientAppointment
	recent        []repository.RecentAppointment
}

func (f *fakeAppointmentStore) Book(_ context.Context, email, name, phone, date, timeOfDay string) (uint64, uint64, error) {
	if f.bookErr != nil {
		return 0, 0, f.bookErr
	}
	f.calls = append(f.calls, bookCall{email, name, phone, date, timeOfDay})
	return f.appointmentID, f.clientID, nil
}

func (f *fakeAppointmentStore) ListByClientEmail(_ context.Context, email string) ([]repository.ClientAppointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.byEmail[email], nil
}

func (f *fakeAppointmentStore) ListRecent(context.Context) ([]repository.RecentAppointment, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.recent, nil
}

type contactCall struct {
	name, email, phone, message string
}

type fakeContactStore struct {
	messageID uint64
	err       error
	calls     []contactCall
}

func (f *fakeContactStore) Create(_ context.Context, name, email, phone, message string) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	f.calls = append(f.calls, contactCall{name, email, phone, message})
	return f.messageID, nil
}

type fakeClientStore struct {
	ids map[string]uint64
	err error
}

func (f *fakeClientStore) GetIDByEmail(_ context.Context, email string) (uint64, error) {
	if f.err != nil {
		return 0, f.err
	}
	id, ok := f.ids[email]
	if !ok {
		return 0, repository.ErrClientNotFound
	}
	return id, nil
}

type fakeProgressStore struct {
	recordErr error
	listErr   error
	recorded  map[uint64][]repository.MetricSample
	samples   []model.ProgressSample
}

func (f *fakeProgressStore) Record(_ context.Context, clientID uint64, samples []repository.MetricSample) error {
	if f.recordErr != nil {
		return f.recordErr
	}
	if f.recorded == nil {
		f.recorded = map[uint64][]repository.MetricSample{}
	}
	f.recorded[clientID] = append(f.recorded[clientID], samples...)
	return nil
}

func (f *fakeProgressStore) ListByClient(context.Context, uint64) ([]model.ProgressSample, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.samples, nil
}

type fakeNotifier struct {
	err  error
	sent []string
}

func (f *fakeNotifier) Send(_ context.Context, text string) error {
	f.sent = append(f.sent, text)
	return f.err
}

type fakePublisher struct {
	err    error
	events []queue.AppointmentBookedEvent
}

func (f *fakePublisher) PublishAppointmentBooked(_ context.Context, ev queue.AppointmentBookedEvent) error {
	f.events = append(f.events, ev)
	return f.err
}

// newTestContext builds an echo context around an httptest recorder.
// A non-empty body is sent as JSON.
func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &m); err != nil {
		t.Fatalf("decode response body %q: %v", rec.Body.String(), err)
	}
	return m
}
