package store

import (
	"database/sql"
	"fmt"

	"github.com/dpetersen/larder/internal/model"
)

// ItemStore serves one of the two structurally identical inventory tables.
type ItemStore struct {
	db    *sql.DB
	table string
}

func NewFridgeStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db, table: "food_items"}
}

func NewPantryStore(db *sql.DB) *ItemStore {
	return &ItemStore{db: db, table: "pantry_items"}
}

func scanItem(scanner interface{ Scan(...any) error }) (*model.Item, error) {
	var item model.Item
	err := scanner.Scan(&item.ID, &item.Name, &item.Quantity, &item.ExpirationDate, &item.UserID)
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// user_id is stored as text; reads cast it back to an integer.
const itemCols = `id, name, quantity, expiration_date, CAST(user_id AS INTEGER) AS user_id`

func (s *ItemStore) ListByUser(userID string) ([]model.Item, error) {
	rows, err := s.db.Query(
		`SELECT `+itemCols+` FROM `+s.table+` WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, *item)
	}
	return items, rows.Err()
}

func (s *ItemStore) Create(userID, name string, quantity int64, expirationDate string) error {
	_, err := s.db.Exec(
		`INSERT INTO `+s.table+` (user_id, name, quantity, expiration_date) VALUES (?, ?, ?, ?)`,
		userID, name, quantity, expirationDate,
	)
	if err != nil {
		return fmt.Errorf("insert item: %w", err)
	}
	return nil
}

// Update sets quantity and expiration on the row matching both id and owner.
// Returns the number of rows changed; zero means no such (id, user_id) pair.
func (s *ItemStore) Update(id int64, userID string, quantity int64, expirationDate string) (int64, error) {
	result, err := s.db.Exec(
		`UPDATE `+s.table+` SET quantity = ?, expiration_date = ? WHERE id = ? AND user_id = ?`,
		quantity, expirationDate, id, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("update item: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}

// Delete removes every row matching both name and owner and reports how many
// were removed. Item names are not unique per user.
func (s *ItemStore) Delete(name, userID string) (int64, error) {
	result, err := s.db.Exec(
		`DELETE FROM `+s.table+` WHERE name = ? AND user_id = ?`,
		name, userID,
	)
	if err != nil {
		return 0, fmt.Errorf("delete item: %w", err)
	}
	count, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return count, nil
}
