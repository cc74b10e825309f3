package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/YutoSekiguchi/Lyricium/model"

	"github.com/go-sql-driver/mysql"
)

// mysqlDuplicateEntry is the MySQL error number for a unique key violation.
const mysqlDuplicateEntry = 1062

// UserRepository defines the interface for user data operations.
type UserRepository interface {
	GetAllUsers() ([]*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	GetUserByID(id int64) (*model.User, error)
	CreateUser(req *model.CreateUserRequest) (*model.User, error)
}

// mysqlUserRepository implements UserRepository for MySQL.
type mysqlUserRepository struct {
	db *sql.DB
}

// NewMySQLUserRepository creates a new mysqlUserRepository.
func NewMySQLUserRepository(db *sql.DB) UserRepository {
	return &mysqlUserRepository{db: db}
}

const userColumns = "id, name, display_name, email, image, created_at"

func scanUser(row interface{ Scan(...interface{}) error }) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.ID, &user.Name, &user.DisplayName, &user.Email, &user.Image, &user.CreatedAt)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetAllUsers retrieves all users.
func (r *mysqlUserRepository) GetAllUsers() ([]*model.User, error) {
	rows, err := r.db.Query("SELECT " + userColumns + " FROM users")
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	users := make([]*model.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user row: %w", err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during rows iteration in GetAllUsers: %w", err)
	}
	return users, nil
}

// GetUserByEmail retrieves a user by their email address.
func (r *mysqlUserRepository) GetUserByEmail(email string) (*model.User, error) {
	row := r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE email = ?", email)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for email %s: %w", email, err)
	}
	return user, nil
}

// GetUserByID retrieves a user by their ID.
func (r *mysqlUserRepository) GetUserByID(id int64) (*model.User, error) {
	row := r.db.QueryRow("SELECT "+userColumns+" FROM users WHERE id = ?", id)
	user, err := scanUser(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil // User not found
		}
		return nil, fmt.Errorf("failed to scan user row for ID %d: %w", id, err)
	}
	return user, nil
}

// CreateUser inserts a new user, or returns the existing one unchanged when
// a user with the same email is already present. The UNIQUE constraint on
// email makes the insert race-safe: a duplicate-key error from a concurrent
// insert is resolved by re-reading the winning row.
func (r *mysqlUserRepository) CreateUser(req *model.CreateUserRequest) (*model.User, error) {
	existing, err := r.GetUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	stmt, err := r.db.Prepare("INSERT INTO users (name, display_name, email, image, created_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare create user statement: %w", err)
	}
	defer stmt.Close()

	createdAt := model.NowJST()
	res, err := stmt.Exec(req.Name, req.DisplayName, req.Email, req.Image, createdAt)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlDuplicateEntry {
			// Lost the race against a concurrent create with the same email.
			return r.GetUserByEmail(req.Email)
		}
		return nil, fmt.Errorf("failed to execute create user statement: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get last insert ID for user: %w", err)
	}

	return &model.User{
		ID:          id,
		Name:        req.Name,
		DisplayName: req.DisplayName,
		Email:       req.Email,
		Image:       req.Image,
		CreatedAt:   createdAt,
	}, nil
}
