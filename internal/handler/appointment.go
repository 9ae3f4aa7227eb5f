package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/avelichko/consult-api/internal/queue"
)

// AppointmentHandler serves the consultation booking endpoints.  The
// notifier and publisher are optional; a nil value simply disables the
// corresponding side channel, and even when present their failures are
// discarded so they can never alter the committed database state or the
// response.
type AppointmentHandler struct {
	Appointments AppointmentStore
	Notifier     Notifier
	Publisher    EventPublisher
}

// NewAppointmentHandler constructs an AppointmentHandler.  The store
// must be non-nil; notifier and publisher may be nil.
func NewAppointmentHandler(store AppointmentStore, n Notifier, p EventPublisher) *AppointmentHandler {
	if store == nil {
		panic("nil store passed to NewAppointmentHandler")
	}
	return &AppointmentHandler{Appointments: store, Notifier: n, Publisher: p}
}

type appointmentReq struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Date  string `json:"date"`
	Time  string `json:"time"`
}

// Create handles POST /v1/appointments.  It requires email, name, date
// and time; phone is optional.  The client row is created on first
// booking and reused afterwards.  After the transaction commits, a
// Telegram notification and a broker event are sent best-effort.
func (h *AppointmentHandler) Create(c echo.Context) error {
	var body appointmentReq
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgRequiredFields})
	}
	if body.Email == "" || body.Name == "" || body.Date == "" || body.Time == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msgRequiredFields})
	}

	ctx := c.Request().Context()
	appointmentID, clientID, err := h.Appointments.Book(ctx, body.Email, body.Name, body.Phone, body.Date, body.Time)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}

	if h.Notifier != nil {
		phone := body.Phone
		if phone == "" {
			phone = phoneNotProvided
		}
		text := fmt.Sprintf("📅 Новая запись!\n\nИмя: %s\nEmail: %s\nТелефон: %s\nДата: %s\nВремя: %s",
			body.Name, body.Email, phone, body.Date, body.Time)
		_ = h.Notifier.Send(ctx, text) // best-effort by contract
	}

	if h.Publisher != nil {
		_ = h.Publisher.PublishAppointmentBooked(ctx, queue.AppointmentBookedEvent{
			AppointmentID: appointmentID,
			ClientID:      clientID,
			ClientName:    body.Name,
			ClientEmail:   body.Email,
			ClientPhone:   body.Phone,
			Date:          body.Date,
			Time:          body.Time,
			BookedAt:      time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success":       true,
		"appointmentId": appointmentID,
	})
}

// List handles GET /v1/appointments.  With an email query parameter it
// returns that client's appointments; without one it returns the most
// recent appointments across all clients, including client name and
// email.  Both listings are ordered newest date and time first.
func (h *AppointmentHandler) List(c echo.Context) error {
	ctx := c.Request().Context()
	if email := c.QueryParam("email"); email != "" {
		items, err := h.Appointments.ListByClientEmail(ctx, email)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"appointments": items})
	}
	items, err := h.Appointments.ListRecent(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{"appointments": items})
}
