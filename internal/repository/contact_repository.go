package repository

import (
	"context"
	"database/sql"

	"github.com/avelichko/consult-api/internal/model"
)

// ContactRepo provides access to the contact_messages table.  Messages
// are write-only from the service's perspective; GetByID exists for
// tests and operator tooling.
type ContactRepo struct{ DB *sql.DB }

// NewContactRepo returns a new ContactRepo bound to the given database.
func NewContactRepo(db *sql.DB) *ContactRepo { return &ContactRepo{DB: db} }

// Create inserts a contact message and returns the generated id.  The
// insert is a single statement, so it needs no explicit transaction.
func (r *ContactRepo) Create(ctx context.Context, name, email, phone, message string) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO contact_messages (name, email, phone, message) VALUES (?,?,?,?)",
		name, email, phone, message)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches a single contact message.  sql.ErrNoRows passes
// through when the id does not exist.
func (r *ContactRepo) GetByID(ctx context.Context, id uint64) (model.ContactMessage, error) {
	var m model.ContactMessage
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, name, email, phone, message FROM contact_messages WHERE id = ? LIMIT 1",
		id).Scan(&m.ID, &m.Name, &m.Email, &m.Phone, &m.Message)
	return m, err
}
