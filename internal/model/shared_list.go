package model

// SharedListItem is a household list entry. A nil FamilyID scopes the item
// to its creator; a non-nil FamilyID makes it visible to the whole family.
type SharedListItem struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	FamilyID      *string `json:"family_id"`
	AddedByUserID int64   `json:"added_by_user_id"`
	Timestamp     string  `json:"timestamp"`
	Notes         *string `json:"notes"`
}
