package models

// ReminderPayload is the task payload queued when a booking is accepted, used
// by the reminder worker to notify the patient ahead of the appointment.
type ReminderPayload struct {
	BookingID string `json:"bookingId"`
	Patient   string `json:"patient"`
	Treatment string `json:"treatment"`
	Date      string `json:"date"`
	SlotTime  string `json:"slotTime"`
}
