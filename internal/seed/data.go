package seed

import "sotrama/internal/domain"

// Agencies returns the bundled agency reference data.
func Agencies() []*domain.Agency {
	return []*domain.Agency{
		{ID: 1, Name: "Bani Transport", Phone: "+22320214567", Email: "contact@banitransport.ml", City: "Bamako", Latitude: 12.6392, Longitude: -8.0029},
		{ID: 2, Name: "Diarra Transport", Phone: "+22320223389", Email: "info@diarratransport.ml", City: "Bamako", Latitude: 12.6458, Longitude: -7.9922},
		{ID: 3, Name: "Sonef Transport", Phone: "+22321620145", Email: "sonef@sonef.ml", City: "Sikasso", Latitude: 11.3176, Longitude: -5.6665},
		{ID: 4, Name: "Africa Tours Trans", Phone: "+22321432278", Email: "reservation@africatours.ml", City: "Segou", Latitude: 13.4317, Longitude: -6.2157},
		{ID: 5, Name: "Binke Transport", Phone: "+22321520934", Email: "binke@binketransport.ml", City: "Mopti", Latitude: 14.4843, Longitude: -4.1827},
	}
}

// Trips returns the bundled trip catalog.
func Trips() []*domain.Trip {
	return []*domain.Trip{
		{ID: 1, AgencyID: 1, Origin: "Bamako", Destination: "Sikasso", Date: "2025-07-10", Time: "07:00", Price: 7500, AvailableSeats: 45},
		{ID: 2, AgencyID: 1, Origin: "Bamako", Destination: "Segou", Date: "2025-07-10", Time: "08:30", Price: 5000, AvailableSeats: 50},
		{ID: 3, AgencyID: 2, Origin: "Bamako", Destination: "Kayes", Date: "2025-07-11", Time: "06:00", Price: 12500, AvailableSeats: 40},
		{ID: 4, AgencyID: 2, Origin: "Bamako", Destination: "Mopti", Date: "2025-07-11", Time: "07:30", Price: 10000, AvailableSeats: 48},
		{ID: 5, AgencyID: 3, Origin: "Sikasso", Destination: "Bamako", Date: "2025-07-12", Time: "09:00", Price: 7500, AvailableSeats: 45},
		{ID: 6, AgencyID: 3, Origin: "Sikasso", Destination: "Koutiala", Date: "2025-07-12", Time: "14:00", Price: 3000, AvailableSeats: 30},
		{ID: 7, AgencyID: 4, Origin: "Segou", Destination: "Bamako", Date: "2025-07-13", Time: "08:00", Price: 5000, AvailableSeats: 50},
		{ID: 8, AgencyID: 4, Origin: "Segou", Destination: "Mopti", Date: "2025-07-13", Time: "10:30", Price: 6000, AvailableSeats: 42},
		{ID: 9, AgencyID: 5, Origin: "Mopti", Destination: "Gao", Date: "2025-07-14", Time: "05:30", Price: 15000, AvailableSeats: 35},
		{ID: 10, AgencyID: 5, Origin: "Mopti", Destination: "Bamako", Date: "2025-07-14", Time: "06:30", Price: 10000, AvailableSeats: 48},
	}
}

// TripsSync returns the replacement catalog served by the sync endpoint's
// upstream in the original app. Kept for development and tests.
func TripsSync() []*domain.Trip {
	return []*domain.Trip{
		{ID: 1, AgencyID: 1, Origin: "Bamako", Destination: "Sikasso", Date: "2025-07-17", Time: "07:00", Price: 8000, AvailableSeats: 45},
		{ID: 2, AgencyID: 1, Origin: "Bamako", Destination: "Segou", Date: "2025-07-17", Time: "08:30", Price: 5500, AvailableSeats: 50},
		{ID: 3, AgencyID: 2, Origin: "Bamako", Destination: "Kayes", Date: "2025-07-18", Time: "06:00", Price: 13000, AvailableSeats: 40},
		{ID: 4, AgencyID: 3, Origin: "Sikasso", Destination: "Bamako", Date: "2025-07-18", Time: "09:00", Price: 8000, AvailableSeats: 45},
		{ID: 5, AgencyID: 4, Origin: "Segou", Destination: "Bamako", Date: "2025-07-19", Time: "08:00", Price: 5500, AvailableSeats: 50},
		{ID: 6, AgencyID: 5, Origin: "Mopti", Destination: "Bamako", Date: "2025-07-19", Time: "06:30", Price: 11000, AvailableSeats: 48},
	}
}

// Artisans returns the bundled artisans directory.
func Artisans() []*domain.Artisan {
	return []*domain.Artisan{
		{Name: "Moussa Coulibaly", Trade: "plombier", City: "Bamako", Quarter: "Hamdallaye", Contact: "+22376123456", WhatsApp: true, Rating: 4.5},
		{Name: "Adama Traore", Trade: "electricien", City: "Bamako", Quarter: "Badalabougou", Contact: "+22376234567", WhatsApp: true, Rating: 4.2},
		{Name: "Seydou Keita", Trade: "macon", City: "Bamako", Quarter: "Lafiabougou", Contact: "+22376345678", WhatsApp: false, Rating: 3.9},
		{Name: "Fatoumata Diallo", Trade: "couturier", City: "Sikasso", Quarter: "Wayerma", Contact: "+22376456789", WhatsApp: true, Rating: 4.8},
		{Name: "Ibrahim Sangare", Trade: "menuisier", City: "Segou", Quarter: "Pelengana", Contact: "+22376567890", WhatsApp: false, Rating: 4.0},
		{Name: "Oumar Toure", Trade: "electricien", City: "Mopti", Quarter: "Sevare", Contact: "+22376678901", WhatsApp: true, Rating: 4.3},
	}
}
