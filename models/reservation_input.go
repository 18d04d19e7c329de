package models

// ReservationInput is the inbound payload for a booking submission.
// Field names match the booking form's wire format.
type ReservationInput struct {
	FastighetID string `json:"fastighetId"`
	StartDatum  string `json:"startDatum"`
	SlutDatum   string `json:"slutDatum"`
	GastNamn    string `json:"gastNamn"`
	GastEmail   string `json:"gastEmail"`
	GastTelefon string `json:"gastTelefon,omitempty"`
	Meddelande  string `json:"meddelande,omitempty"`
}

// AvailabilityRequest is the inbound payload for the availability pre-check.
type AvailabilityRequest struct {
	FastighetID string `json:"fastighetId"`
	StartDatum  string `json:"startDatum"`
	SlutDatum   string `json:"slutDatum"`
}

// AvailabilityResponse is what the pre-check endpoint returns to the client.
// The same engine backs the pre-check and the real submission, so the two
// can never disagree.
type AvailabilityResponse struct {
	Available bool       `json:"available"`
	Message   string     `json:"message"`
	Konflikt  *DateRange `json:"konflikt,omitempty"`
}

// DateRange is a PII-free view of a conflicting reservation's dates,
// safe to return to an anonymous caller.
type DateRange struct {
	StartDatum string `json:"startDatum"`
	SlutDatum  string `json:"slutDatum"`
}
