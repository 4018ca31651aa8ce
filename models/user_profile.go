package models

// Profile defines the structure for a dating profile card
type Profile struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Age      int      `json:"age"`
	Headline string   `json:"headline"`
	Bio      string   `json:"bio"`
	Photos   []string `json:"photos"`   // Photos[0] is always the primary photo
	Verified bool     `json:"verified"` // Verification badge
	Distance float64  `json:"distance"` // Distance in km, never negative
}

// ProfileUpdate carries the editable text fields of a profile.
// Nil pointers mean "leave unchanged".
type ProfileUpdate struct {
	Name     *string `json:"name,omitempty"`
	Age      *int    `json:"age,omitempty"`
	Headline *string `json:"headline,omitempty"`
	Bio      *string `json:"bio,omitempty"`
}
