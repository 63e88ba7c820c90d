package domain

import "time"

// Artisan is an entry in the local artisans directory.
type Artisan struct {
	ID       int64
	Name     string
	Trade    string // plombier, electricien, macon, couturier, menuisier
	City     string
	Quarter  string
	Contact  string
	WhatsApp bool
	Rating   float64
}

// ArtisanComment is a visitor comment left on an artisan's listing.
type ArtisanComment struct {
	ID        int64
	ArtisanID int64
	Content   string
	CreatedAt time.Time
}
