package models

import "time"

// Fastighet is a rentable property in the catalog.
type Fastighet struct {
	ID               string    `bson:"id" json:"id"`
	Namn             string    `bson:"namn" json:"namn"`
	Beskrivning      string    `bson:"beskrivning,omitempty" json:"beskrivning,omitempty"`
	Adress           string    `bson:"adress,omitempty" json:"adress,omitempty"`
	Pris             float64   `bson:"pris" json:"pris"`
	Agare            string    `bson:"agare,omitempty" json:"agare,omitempty"`
	Status           string    `bson:"status,omitempty" json:"status,omitempty"`
	Utvald           bool      `bson:"utvald" json:"utvald"`
	Boyta            int       `bson:"boyta,omitempty" json:"boyta,omitempty"`
	AntalRum         int       `bson:"antalRum,omitempty" json:"antalRum,omitempty"`
	AntalBaddar      int       `bson:"antalBaddar,omitempty" json:"antalBaddar,omitempty"`
	Land             string    `bson:"land,omitempty" json:"land,omitempty"`
	HusdjurTillatet  bool      `bson:"husdjurTillatet" json:"husdjurTillatet"`
	Rokfri           bool      `bson:"rokfri" json:"rokfri"`
	UthyresMoblerad  bool      `bson:"uthyresMoblerad" json:"uthyresMoblerad"`
	VeckoavgiftLag   float64   `bson:"veckoavgiftLag,omitempty" json:"veckoavgiftLag,omitempty"`
	VeckoavgiftHog   float64   `bson:"veckoavgiftHog,omitempty" json:"veckoavgiftHog,omitempty"`
	Skapad           time.Time `bson:"skapad" json:"skapad"`
	SenastUppdaterad time.Time `bson:"senastUppdaterad" json:"senastUppdaterad"`

	// Bilder is populated on single-property reads, never stored inline.
	Bilder []Bild `bson:"-" json:"bilder,omitempty"`
}
