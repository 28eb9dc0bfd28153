package models

// Service represents a bookable treatment with its fixed catalog of offerable slots.
type Service struct {
	ID    string   `bson:"id" json:"id"`       // Unique service identifier (e.g., UUID)
	Title string   `bson:"title" json:"title"` // Unique treatment name, referenced by bookings
	Slots []string `bson:"slots" json:"slots"` // Offerable slot labels in display order, e.g. "9:00 AM"
	Fee   float64  `bson:"fee" json:"fee"`     // Treatment fee in major currency units
}

// AvailableService is a Service augmented with the slots still bookable on a
// specific date. Derived on every availability query, never persisted.
type AvailableService struct {
	Service        `bson:",inline"`
	AvailableSlots []string `json:"availableSlots"`
}
