package models

// Product is a catalogue entry. Products are static reference data;
// only ID, Name and Price feed into the bill, the rest is for display.
type Product struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"` // URI
	Tag         string  `json:"tag"`
}
