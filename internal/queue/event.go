// Package queue defines message payloads exchanged over the message broker.
package queue

// AppointmentBookedEvent is published when a booking has been committed.
// It carries enough information for downstream consumers to log, notify,
// or trigger analytics without querying the primary database.
type AppointmentBookedEvent struct {
	AppointmentID uint64 `json:"appointment_id"`
	ClientID      uint64 `json:"client_id"`
	ClientName    string `json:"client_name"`
	ClientEmail   string `json:"client_email"`
	ClientPhone   string `json:"client_phone"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	BookedAt      string `json:"booked_at"`
}
