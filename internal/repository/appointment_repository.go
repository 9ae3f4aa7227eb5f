package repository

import (
	"context"
	"database/sql"

	"github.com/avelichko/consult-api/internal/model"
)

// AppointmentRepo provides access to the appointments table.
// Appointments are created once and read back by the listing queries;
// no update or cancel operation exists in this service.
type AppointmentRepo struct{ DB *sql.DB }

// NewAppointmentRepo returns a new AppointmentRepo bound to the given database.
func NewAppointmentRepo(db *sql.DB) *AppointmentRepo { return &AppointmentRepo{DB: db} }

// recentLimit caps the cross-client listing.
const recentLimit = 50

// ClientAppointment is one row of the per-client listing.  Notes is a
// pointer so that NULL survives into the JSON response.
type ClientAppointment struct {
	ID     uint64  `json:"id"`
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

// RecentAppointment is one row of the cross-client listing.  It carries
// the client's name and email instead of notes.
type RecentAppointment struct {
	ID     uint64 `json:"id"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// CreateTx inserts an appointment within an existing transaction and
// returns the generated id.  Only ClientID, Date, Time and Status are
// written; notes stay NULL until an operator fills them in.
func (r *AppointmentRepo) CreateTx(ctx context.Context, tx *sql.Tx, appt model.Appointment) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO appointments (client_id, appointment_date, appointment_time, status) VALUES (?,?,?,?)",
		appt.ClientID, appt.Date, appt.Time, appt.Status)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single appointment.  sql.ErrNoRows passes through
// when the id does not exist.
func (r *AppointmentRepo) GetByID(ctx context.Context, id uint64) (model.Appointment, error) {
	var a model.Appointment
	var notes sql.NullString
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, client_id, appointment_date, appointment_time, status, notes FROM appointments WHERE id = ? LIMIT 1",
		id).Scan(&a.ID, &a.ClientID, &a.Date, &a.Time, &a.Status, &notes)
	if err != nil {
		return model.Appointment{}, err
	}
	if notes.Valid {
		n := notes.String
		a.Notes = &n
	}
	return a, nil
}

// ListByClientEmail returns every appointment belonging to the client
// with the given email, newest date and time first.  An unknown email
// yields an empty slice, not an error.
func (r *AppointmentRepo) ListByClientEmail(ctx context.Context, email string) ([]ClientAppointment, error) {
	const q = `SELECT a.id, a.appointment_date, a.appointment_time, a.status, a.notes
	           FROM appointments a
	           JOIN clients c ON a.client_id = c.id
	           WHERE c.email = ?
	           ORDER BY a.appointment_date DESC, a.appointment_time DESC`
	rows, err := r.DB.QueryContext(ctx, q, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []ClientAppointment{}
	for rows.Next() {
		var a ClientAppointment
		var notes sql.NullString
		if err := rows.Scan(&a.ID, &a.Date, &a.Time, &a.Status, &notes); err != nil {
			return nil, err
		}
		if notes.Valid {
			n := notes.String
			a.Notes = &n
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// ListRecent returns the most recent appointments across all clients,
// newest date and time first, capped at recentLimit rows.
func (r *AppointmentRepo) ListRecent(ctx context.Context) ([]RecentAppointment, error) {
	const q = `SELECT a.id, a.appointment_date, a.appointment_time, a.status, c.name, c.email
	           FROM appointments a
	           JOIN clients c ON a.client_id = c.id
	           ORDER BY a.appointment_date DESC, a.appointment_time DESC
	           LIMIT ?`
	rows, err := r.DB.QueryContext(ctx, q, recentLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []RecentAppointment{}
	for rows.Next() {
		var a RecentAppointment
		if err := rows.Scan(&a.ID, &a.Date, &a.Time, &a.Status, &a.Name, &a.Email); err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	return items, rows.Err()
}
