package models

// Bild is a gallery image attached to a property. The image bytes live at an
// external URL; only the reference is stored.
type Bild struct {
	ID          string `bson:"id" json:"id"`
	Namn        string `bson:"namn,omitempty" json:"namn,omitempty"`
	FastighetID string `bson:"fastighetId" json:"fastighetId"`
	ImageURL    string `bson:"imageURL" json:"imageURL"`
	Bildtext    string `bson:"bildtext,omitempty" json:"bildtext,omitempty"`
	Huvudbild   bool   `bson:"huvudbild" json:"huvudbild"`
	Ordning     int    `bson:"ordning" json:"ordning"`
}
