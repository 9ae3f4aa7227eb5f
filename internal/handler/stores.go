package handler

import (
	"context"

	"github.com/avelichko/consult-api/internal/model"
	"github.com/avelichko/consult-api/internal/queue"
	"github.com/avelichko/consult-api/internal/repository"
)

// Handlers depend on small store interfaces rather than concrete
// repositories so tests can substitute in-memory fakes.  The repository
// package provides the production implementations.

// AppointmentStore covers the booking flow and both listing queries.
type AppointmentStore interface {
	Book(ctx context.Context, email, name, phone, date, timeOfDay string) (appointmentID, clientID uint64, err error)
	ListByClientEmail(ctx context.Context, email string) ([]repository.ClientAppointment, error)
	ListRecent(ctx context.Context) ([]repository.RecentAppointment, error)
}

// ContactStore records inbound contact messages.
type ContactStore interface {
	Create(ctx context.Context, name, email, phone, message string) (uint64, error)
}

// ClientStore resolves a client id from an email.  Implementations
// return repository.ErrClientNotFound for unknown emails.
type ClientStore interface {
	GetIDByEmail(ctx context.Context, email string) (uint64, error)
}

// ProgressStore appends and reads progress samples.
type ProgressStore interface {
	Record(ctx context.Context, clientID uint64, samples []repository.MetricSample) error
	ListByClient(ctx context.Context, clientID uint64) ([]model.ProgressSample, error)
}

// Notifier is the best-effort outbound alert channel.  Callers discard
// its error by contract: a failed notification never fails a request.
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// EventPublisher pushes booking events to the message broker.  Like the
// notifier, its error is deliberately discarded by callers.
type EventPublisher interface {
	PublishAppointmentBooked(ctx context.Context, event queue.AppointmentBookedEvent) error
}

// User-facing strings.  The site is Russian, so validation errors and
// notification templates stay in Russian; "не указан" stands in for a
// missing optional phone.
const (
	msgRequiredFields       = "Не все обязательные поля заполнены"
	msgEmailMetricsRequired = "Email и метрики обязательны"
	msgEmailRequired        = "Email обязателен"
	msgClientNotFound       = "Клиент не найден"
	msgMetricsNotNumeric    = "Значения метрик должны быть числовыми"
	phoneNotProvided        = "не указан"
)
