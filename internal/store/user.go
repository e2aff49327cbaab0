package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/dpetersen/larder/internal/model"
)

// ErrPhoneInUse is returned by Create when the given phone number already
// belongs to another user.
var ErrPhoneInUse = errors.New("phone number already in use")

type UserStore struct {
	db *sql.DB
}

func NewUserStore(db *sql.DB) *UserStore {
	return &UserStore{db: db}
}

func scanUser(scanner interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	err := scanner.Scan(&u.ID, &u.Username, &u.Email, &u.Phone, &u.PasswordHash, &u.ProfilePicture, &u.FamilyID, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

const userCols = `user_id, username, email, phone, password_hash, profile_picture, family_id, created_at`

// Create inserts a new user after checking that the phone number is free.
// The check and insert share one transaction so a concurrent duplicate cannot
// slip between them; the unique index on phone backs the transaction up.
func (s *UserStore) Create(u model.User) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	// A nil phone never matches: comparing against NULL selects nothing.
	var one int
	err = tx.QueryRow(`SELECT 1 FROM users WHERE phone = ?`, u.Phone).Scan(&one)
	if err == nil {
		return 0, ErrPhoneInUse
	}
	if err != sql.ErrNoRows {
		return 0, fmt.Errorf("check phone: %w", err)
	}

	result, err := tx.Exec(
		`INSERT INTO users (username, email, phone, password_hash, profile_picture, family_id, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.Username, u.Email, u.Phone, u.PasswordHash, u.ProfilePicture, u.FamilyID, u.CreatedAt,
	)
	if err != nil {
		return 0, fmt.Errorf("insert user: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Exists reports whether any user has the identifier as username or email.
func (s *UserStore) Exists(identifier string) (bool, error) {
	var one int
	err := s.db.QueryRow(
		`SELECT 1 FROM users WHERE username = ? OR email = ?`,
		identifier, identifier,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("check user exists: %w", err)
	}
	return true, nil
}

func (s *UserStore) GetByID(id int64) (*model.User, error) {
	row := s.db.QueryRow(`SELECT `+userCols+` FROM users WHERE user_id = ?`, id)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetByNameOrEmail(identifier string) (*model.User, error) {
	row := s.db.QueryRow(
		`SELECT `+userCols+` FROM users WHERE username = ? OR email = ?`,
		identifier, identifier,
	)
	u, err := scanUser(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user by name or email: %w", err)
	}
	return u, nil
}
