package model

// Item is a fridge or pantry inventory row. Both tables share this shape.
// user_id is stored as text but reported as an integer.
type Item struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Quantity       int64  `json:"quantity"`
	ExpirationDate string `json:"expiration_date"`
	UserID         int64  `json:"user_id"`
}
