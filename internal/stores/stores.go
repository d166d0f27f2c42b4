// Package stores holds the static roster of supported UK supermarket chains.
package stores

// OpeningHours holds open/close times for a single day, in HH:MM.
type OpeningHours struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

// Location is a physical branch of a chain.
type Location struct {
	ID           string                  `json:"id"`
	Address      string                  `json:"address"`
	Postcode     string                  `json:"postcode"`
	Lat          float64                 `json:"lat"`
	Lng          float64                 `json:"lng"`
	OpeningHours map[string]OpeningHours `json:"openingHours"`
}

// Store is a supermarket chain. Modifier is the chain's price-tier
// multiplier: discounters sit below 1.0, premium chains above.
type Store struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Color     string     `json:"color"`
	Website   string     `json:"website"`
	Modifier  float64    `json:"-"`
	Locations []Location `json:"locations,omitempty"`
}

var roster = []Store{
	{
		ID:       "tesco",
		Name:     "Tesco",
		Color:    "#0050AA",
		Website:  "https://tesco.com",
		Modifier: 1.00,
		Locations: []Location{{
			ID:       "tesco-1",
			Address:  "123 High Street, London",
			Postcode: "SW1A 1AA",
			Lat:      51.5074,
			Lng:      -0.1278,
			OpeningHours: weekHours(
				OpeningHours{"06:00", "24:00"},
				OpeningHours{"06:00", "22:00"},
				OpeningHours{"10:00", "16:00"},
			),
		}},
	},
	{
		ID:       "asda",
		Name:     "ASDA",
		Color:    "#00B050",
		Website:  "https://asda.com",
		Modifier: 0.95,
		Locations: []Location{{
			ID:       "asda-1",
			Address:  "456 Market Street, Manchester",
			Postcode: "M1 1AA",
			Lat:      53.4808,
			Lng:      -2.2426,
			OpeningHours: weekHours(
				OpeningHours{"07:00", "23:00"},
				OpeningHours{"07:00", "22:00"},
				OpeningHours{"10:00", "16:00"},
			),
		}},
	},
	{
		ID:       "sainsburys",
		Name:     "Sainsbury's",
		Color:    "#FF8200",
		Website:  "https://sainsburys.co.uk",
		Modifier: 1.05,
		Locations: []Location{{
			ID:       "sainsburys-1",
			Address:  "789 King Street, Birmingham",
			Postcode: "B1 1AA",
			Lat:      52.4862,
			Lng:      -1.8904,
			OpeningHours: weekHours(
				OpeningHours{"07:00", "22:00"},
				OpeningHours{"07:00", "21:00"},
				OpeningHours{"10:00", "16:00"},
			),
		}},
	},
	{
		ID:       "morrisons",
		Name:     "Morrisons",
		Color:    "#FFD200",
		Website:  "https://morrisons.com",
		Modifier: 0.98,
		Locations: []Location{{
			ID:       "morrisons-1",
			Address:  "321 Church Lane, Leeds",
			Postcode: "LS1 1AA",
			Lat:      53.8008,
			Lng:      -1.5491,
			OpeningHours: weekHours(
				OpeningHours{"07:00", "22:00"},
				OpeningHours{"07:00", "21:00"},
				OpeningHours{"10:00", "16:00"},
			),
		}},
	},
	{
		ID:       "lidl",
		Name:     "Lidl",
		Color:    "#0050AA",
		Website:  "https://lidl.co.uk",
		Modifier: 0.85,
		Locations: []Location{{
			ID:       "lidl-1",
			Address:  "654 Mill Road, Liverpool",
			Postcode: "L1 1AA",
			Lat:      53.4084,
			Lng:      -2.9916,
			OpeningHours: weekHours(
				OpeningHours{"08:00", "22:00"},
				OpeningHours{"08:00", "21:00"},
				OpeningHours{"10:00", "16:00"},
			),
		}},
	},
	{
		ID:       "aldi",
		Name:     "Aldi",
		Color:    "#FF6600",
		Website:  "https://aldi.co.uk",
		Modifier: 0.82,
		Locations: []Location{{
			ID:       "aldi-1",
			Address:  "987 Victoria Road, Glasgow",
			Postcode: "G1 1AA",
			Lat:      55.8642,
			Lng:      -4.2518,
			OpeningHours: weekHours(
				OpeningHours{"08:00", "22:00"},
				OpeningHours{"08:00", "21:00"},
				OpeningHours{"10:00", "16:00"},
			),
		}},
	},
}

func weekHours(weekday, saturday, sunday OpeningHours) map[string]OpeningHours {
	return map[string]OpeningHours{
		"monday":    weekday,
		"tuesday":   weekday,
		"wednesday": weekday,
		"thursday":  weekday,
		"friday":    weekday,
		"saturday":  saturday,
		"sunday":    sunday,
	}
}

// Roster returns the supported stores in fixed roster order.
func Roster() []Store {
	out := make([]Store, len(roster))
	copy(out, roster)
	return out
}

// ValidStores returns the list of supported store slugs in roster order.
func ValidStores() []string {
	ids := make([]string, len(roster))
	for i, s := range roster {
		ids[i] = s.ID
	}
	return ids
}

// IsValidStore checks if a store slug is in the roster.
func IsValidStore(storeID string) bool {
	for _, s := range roster {
		if s.ID == storeID {
			return true
		}
	}
	return false
}

// ByID looks up a store by its slug.
func ByID(storeID string) (Store, bool) {
	for _, s := range roster {
		if s.ID == storeID {
			return s, true
		}
	}
	return Store{}, false
}

// Color returns the brand colour for a store, or a neutral grey for
// unknown slugs.
func Color(storeID string) string {
	if s, ok := ByID(storeID); ok {
		return s.Color
	}
	return "#6B7280"
}
