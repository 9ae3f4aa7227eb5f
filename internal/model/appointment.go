package model

import "time"

// Appointment records one consultation slot booked by a client.  The
// date and time are stored exactly as the caller supplied them; ISO
// formatted input sorts chronologically under the lexical ordering
// used by the listing queries.
//
// Fields:
//  ID       – primary key identifier.
//  ClientID – client who booked the slot.
//  Date     – appointment date string (appointments.appointment_date).
//  Time     – appointment time string (appointments.appointment_time).
//  Status   – state of the appointment; new rows start as "scheduled".
//  Notes    – free-form notes, nil until filled in by an operator.
//  CreatedAt – creation timestamp.
type Appointment struct {
	ID        uint64    // appointments.id
	ClientID  uint64    // appointments.client_id
	Date      string    // appointments.appointment_date
	Time      string    // appointments.appointment_time
	Status    string    // appointments.status
	Notes     *string   // appointments.notes (nullable)
	CreatedAt time.Time // appointments.created_at
}

// StatusScheduled is the status assigned to every newly created
// appointment.  No transition away from it is implemented here.
const StatusScheduled = "scheduled"
