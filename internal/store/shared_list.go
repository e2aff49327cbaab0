package store

import (
	"database/sql"
	"fmt"

	"github.com/dpetersen/larder/internal/model"
)

type SharedListStore struct {
	db *sql.DB
}

func NewSharedListStore(db *sql.DB) *SharedListStore {
	return &SharedListStore{db: db}
}

func scanSharedListItem(scanner interface{ Scan(...any) error }) (*model.SharedListItem, error) {
	var item model.SharedListItem
	err := scanner.Scan(&item.ID, &item.Name, &item.FamilyID, &item.AddedByUserID, &item.Timestamp, &item.Notes)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

const sharedListCols = `id, name, family_id, added_by_user_id, timestamp, notes`

// ListByFamily returns every item carrying the family id, regardless of who
// added it.
func (s *SharedListStore) ListByFamily(familyID string) ([]model.SharedListItem, error) {
	return s.list(`SELECT `+sharedListCols+` FROM shared_list_items WHERE family_id = ?`, familyID)
}

// ListPersonal returns only the user's own unshared items: family_id must be
// null, never the items of whatever family the user belongs to.
func (s *SharedListStore) ListPersonal(userID int64) ([]model.SharedListItem, error) {
	return s.list(`SELECT `+sharedListCols+` FROM shared_list_items WHERE family_id IS NULL AND added_by_user_id = ?`, userID)
}

func (s *SharedListStore) list(query string, arg any) ([]model.SharedListItem, error) {
	rows, err := s.db.Query(query, arg)
	if err != nil {
		return nil, fmt.Errorf("list shared items: %w", err)
	}
	defer rows.Close()

	var items []model.SharedListItem
	for rows.Next() {
		item, err := scanSharedListItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan shared item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *SharedListStore) Create(name string, familyID *string, addedByUserID int64, timestamp string, notes *string) error {
	_, err := s.db.Exec(
		`INSERT INTO shared_list_items (name, family_id, added_by_user_id, timestamp, notes) VALUES (?, ?, ?, ?, ?)`,
		name, familyID, addedByUserID, timestamp, notes,
	)
	if err != nil {
		return fmt.Errorf("insert shared item: %w", err)
	}
	return nil
}

// Delete removes the item by id and reports how many rows went away.
func (s *SharedListStore) Delete(id int64) (int64, error) {
	result, err := s.db.Exec(`DELETE FROM shared_list_items WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("delete shared item: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}
