package model

import "time"

// Client represents a person record as stored in the `clients` table.
// Clients are identified by email and are created implicitly the first
// time they book an appointment.  The json tags are omitted because
// these structs are used internally by the repository layer; handlers
// define separate response types with appropriate JSON tags.
//
// Fields:
//  ID           – primary key identifier of the client.
//  Email        – unique email address.
//  Name         – display name supplied on the first booking.
//  Phone        – contact phone, empty when not provided.
//  PasswordHash – bcrypt hash of a fixed placeholder value; the service
//                 stores it for schema compatibility but never verifies it.
//  CreatedAt    – timestamp of creation.
type Client struct {
	ID           uint64    // clients.id
	Email        string    // clients.email
	Name         string    // clients.name
	Phone        string    // clients.phone
	PasswordHash string    // clients.password_hash
	CreatedAt    time.Time // clients.created_at
}
