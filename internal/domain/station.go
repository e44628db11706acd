package domain

import "sort"

// Product categories known to the menu.
const (
	CategoryMinuman = "Minuman"
	CategoryMakanan = "Makanan"
	CategoryPromo   = "Promo"
)

// Station is a kitchen or bar ticket printer label.
type Station string

const (
	StationBar   Station = "Bar"
	StationDapur Station = "Dapur"
)

// StationFor maps a product category to the station that prints its ticket.
// Categories outside the known set print nowhere.
func StationFor(category string) (Station, bool) {
	switch category {
	case CategoryMinuman, CategoryPromo:
		return StationBar, true
	case CategoryMakanan:
		return StationDapur, true
	}
	return "", false
}

// StationSet holds the distinct stations derived from an order's items.
type StationSet map[Station]struct{}

func (s StationSet) Add(station Station) { s[station] = struct{}{} }

// Labels returns the station names sorted, so the response is stable.
func (s StationSet) Labels() []string {
	labels := make([]string, 0, len(s))
	for station := range s {
		labels = append(labels, string(station))
	}
	sort.Strings(labels)
	return labels
}
