package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/avelichko/consult-api/internal/model"
)

// ClientRepo provides access to the clients table.  Clients are keyed
// by normalized email; creation happens only as a side effect of the
// appointments flow, so the repository exposes lookup and insert but
// no update or delete.
type ClientRepo struct{ DB *sql.DB }

// NewClientRepo returns a new ClientRepo bound to the given database.
func NewClientRepo(db *sql.DB) *ClientRepo { return &ClientRepo{DB: db} }

// normalizeEmail lower-cases and trims an email so that lookups and
// inserts agree on the identity key.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// GetIDByEmail fetches a client id by normalized email.  It returns
// ErrClientNotFound when no row matches.
func (r *ClientRepo) GetIDByEmail(ctx context.Context, email string) (uint64, error) {
	return getClientID(ctx, r.DB, email)
}

// GetIDByEmailTx is GetIDByEmail inside an existing transaction.
func (r *ClientRepo) GetIDByEmailTx(ctx context.Context, tx *sql.Tx, email string) (uint64, error) {
	return getClientID(ctx, tx, email)
}

// queryRower is satisfied by both *sql.DB and *sql.Tx.
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func getClientID(ctx context.Context, q queryRower, email string) (uint64, error) {
	var id uint64
	err := q.QueryRowContext(ctx,
		"SELECT id FROM clients WHERE email = ? LIMIT 1",
		normalizeEmail(email)).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, ErrClientNotFound
	}
	if err != nil {
		return 0, err
	}
	return id, nil
}

// CreateTx inserts a client within the scope of an existing transaction
// and returns the generated id.  PasswordHash is a placeholder value
// hashed by the caller; it is stored but never verified.
func (r *ClientRepo) CreateTx(ctx context.Context, tx *sql.Tx, client model.Client) (uint64, error) {
	res, err := tx.ExecContext(ctx,
		"INSERT INTO clients (email, name, phone, password_hash) VALUES (?,?,?,?)",
		normalizeEmail(client.Email), client.Name, client.Phone, client.PasswordHash)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByEmail fetches the full client row by normalized email.  It
// returns ErrClientNotFound when no row matches.
func (r *ClientRepo) GetByEmail(ctx context.Context, email string) (model.Client, error) {
	var c model.Client
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, email, name, phone, password_hash FROM clients WHERE email = ? LIMIT 1",
		normalizeEmail(email)).Scan(&c.ID, &c.Email, &c.Name, &c.Phone, &c.PasswordHash)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Client{}, ErrClientNotFound
	}
	if err != nil {
		return model.Client{}, err
	}
	return c, nil
}
