package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"notable-server/internal/domain"
)

type UserRepository interface {
	Create(user *domain.User) error
	FindByID(id string) (*domain.User, error)
	FindByEmail(email string) (*domain.User, error)
	EmailExists(email string) (bool, error)
}

type userRepository struct {
	db *DB
}

func NewUserRepository(db *DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(user *domain.User) error {
	query := r.db.rebind(`INSERT INTO users (id, name, email, image, password, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)

	_, err := r.db.Exec(query,
		user.ID, user.Name, user.Email, user.Image, user.Password,
		user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

func (r *userRepository) FindByID(id string) (*domain.User, error) {
	query := r.db.rebind(`SELECT id, name, email, image, password, created_at, updated_at
		FROM users WHERE id = ?`)

	return r.scanUser(r.db.QueryRow(query, id))
}

func (r *userRepository) FindByEmail(email string) (*domain.User, error) {
	query := r.db.rebind(`SELECT id, name, email, image, password, created_at, updated_at
		FROM users WHERE email = ?`)

	return r.scanUser(r.db.QueryRow(query, email))
}

func (r *userRepository) EmailExists(email string) (bool, error) {
	var count int
	query := r.db.rebind(`SELECT COUNT(*) FROM users WHERE email = ?`)
	if err := r.db.QueryRow(query, email).Scan(&count); err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return count > 0, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.Image,
		&user.Password, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan user: %w", err)
	}
	return &user, nil
}
