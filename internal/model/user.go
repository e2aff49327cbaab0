package model

// User is a stored account row. The password hash is an opaque string
// supplied by the caller; this service never hashes or verifies it.
// created_at is an ISO 8601 timestamp supplied by the caller.
type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          *string `json:"email"`
	Phone          *string `json:"phone"`
	PasswordHash   string  `json:"password_hash"`
	ProfilePicture *string `json:"profile_picture"`
	FamilyID       *string `json:"family_id"`
	CreatedAt      string  `json:"created_at"`
}
