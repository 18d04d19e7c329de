package models

import "time"

// Reservation statuses. The Swedish values are both the wire and the
// storage format; clients match on them verbatim.
const (
	StatusUnconfirmed = "Obekräftad"
	StatusConfirmed   = "Bekräftad"
	StatusCancelled   = "Avbokad"
)

// DateLayout is the calendar-date format used on the wire and in storage.
// Reservations carry whole days only, no time-of-day component.
const DateLayout = "2006-01-02"

// Reservation represents a guest's claim on a property for a date range.
type Reservation struct {
	ID          string    `bson:"id" json:"id"`                                 // Unique reservation identifier (UUID)
	FastighetID string    `bson:"fastighetId" json:"fastighetId"`               // Property being reserved
	StartDatum  string    `bson:"startDatum" json:"startDatum"`                 // First day of the stay, "YYYY-MM-DD"
	SlutDatum   string    `bson:"slutDatum" json:"slutDatum"`                   // Last day of the stay, "YYYY-MM-DD"
	GastNamn    string    `bson:"gastNamn" json:"gastNamn"`                     // Guest name
	GastEmail   string    `bson:"gastEmail" json:"gastEmail"`                   // Guest email
	GastTelefon string    `bson:"gastTelefon,omitempty" json:"gastTelefon,omitempty"` // Optional phone
	Meddelande  string    `bson:"meddelande,omitempty" json:"meddelande,omitempty"`   // Optional message to the owner
	Status      string    `bson:"status" json:"status"`                         // Obekräftad | Bekräftad | Avbokad
	SkapadDatum time.Time `bson:"skapadDatum" json:"skapadDatum"`               // Timestamp when the reservation was created
}

// Period parses the reservation's stored date range.
func (r *Reservation) Period() (start, end time.Time, err error) {
	start, err = time.Parse(DateLayout, r.StartDatum)
	if err != nil {
		return
	}
	end, err = time.Parse(DateLayout, r.SlutDatum)
	return
}

// IsValidStatus reports whether s is one of the known reservation statuses.
func IsValidStatus(s string) bool {
	switch s {
	case StatusUnconfirmed, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}
