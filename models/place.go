package models

// Place is a venue suggestion for the places-nearby screen
type Place struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
	URI    string  `json:"uri,omitempty"`
}
