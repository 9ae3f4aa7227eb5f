package model

import "time"

// ContactMessage is an unsolicited inbound message from a website
// visitor.  It is standalone and not tied to a client record.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – sender name.
//  Email     – sender email.
//  Phone     – sender phone, empty when not provided.
//  Message   – message body.
//  CreatedAt – creation timestamp.
type ContactMessage struct {
	ID        uint64    // contact_messages.id
	Name      string    // contact_messages.name
	Email     string    // contact_messages.email
	Phone     string    // contact_messages.phone
	Message   string    // contact_messages.message
	CreatedAt time.Time // contact_messages.created_at
}
