package models

// Moment is an entry in the moments feed
type Moment struct {
	ID      string `json:"id"`
	User    string `json:"user"`
	Avatar  string `json:"avatar"`
	Text    string `json:"text"`
	TimeAgo string `json:"timeAgo"`
	Likes   int    `json:"likes"`
}
