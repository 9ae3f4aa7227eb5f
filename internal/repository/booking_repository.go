package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/avelichko/consult-api/internal/model"
	"github.com/avelichko/consult-api/internal/utils"
)

// placeholderPassword is the fixed value hashed into clients.password_hash
// on implicit creation.  The site has no login flow; the column exists
// for schema compatibility and the hash is never verified.
const placeholderPassword = "temp_hash"

// BookingRepo composes the client and appointment repositories into the
// atomic booking flow: look up the client by email, create one if
// absent, insert the appointment, and commit everything together.
type BookingRepo struct {
	db           *sql.DB
	clients      *ClientRepo
	appointments *AppointmentRepo
	bcryptCost   int
}

// NewBookingRepo returns a BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB, clients *ClientRepo, appointments *AppointmentRepo, bcryptCost int) *BookingRepo {
	if clients == nil || appointments == nil {
		panic("nil repository passed to NewBookingRepo")
	}
	return &BookingRepo{db: db, clients: clients, appointments: appointments, bcryptCost: bcryptCost}
}

// Book creates the appointment and, when needed, the client, in one
// transaction.  A second booking with the same email reuses the
// existing client row.  It returns the new appointment id together
// with the client id the appointment was attached to.
func (r *BookingRepo) Book(ctx context.Context, email, name, phone, date, timeOfDay string) (appointmentID, clientID uint64, err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	clientID, err = r.clients.GetIDByEmailTx(ctx, tx, email)
	if errors.Is(err, ErrClientNotFound) {
		hash, herr := utils.HashPassword(placeholderPassword, r.bcryptCost)
		if herr != nil {
			return 0, 0, herr
		}
		clientID, err = r.clients.CreateTx(ctx, tx, model.Client{
			Email:        email,
			Name:         name,
			Phone:        phone,
			PasswordHash: hash,
		})
	}
	if err != nil {
		return 0, 0, err
	}

	appointmentID, err = r.appointments.CreateTx(ctx, tx, model.Appointment{
		ClientID: clientID,
		Date:     date,
		Time:     timeOfDay,
		Status:   model.StatusScheduled,
	})
	if err != nil {
		return 0, 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	committed = true
	return appointmentID, clientID, nil
}

// ListByClientEmail exposes the per-client listing through the booking
// facade so handlers depend on a single store.
func (r *BookingRepo) ListByClientEmail(ctx context.Context, email string) ([]ClientAppointment, error) {
	return r.appointments.ListByClientEmail(ctx, email)
}

// ListRecent exposes the cross-client listing through the booking facade.
func (r *BookingRepo) ListRecent(ctx context.Context) ([]RecentAppointment, error) {
	return r.appointments.ListRecent(ctx)
}
