package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// UserProfile is the account data exposed by the profile endpoints.
type UserProfile struct {
	ID          int    `json:"id"`
	Login       string `json:"login"`
	Email       string `json:"email"`
	Description string `json:"description"`
}

// Calculation is one saved snap-fit evaluation.
type Calculation struct {
	ID        int             `json:"id"`
	Profile   string          `json:"profile"`
	Input     json.RawMessage `json:"input"`
	Result    json.RawMessage `json:"result"`
	CreatedAt time.Time       `json:"created_at"`
}

type Repository interface {
	CreateUser(ctx context.Context, login, email, password string) (int, error)
	GetByLogin(ctx context.Context, login string) (int, string, error)
	GetProfile(ctx context.Context, id int) (UserProfile, error)
	UpdateProfile(ctx context.Context, id int, login, description string) error

	SaveCalculation(ctx context.Context, userID int, profile string, input, result []byte) error
	ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error)
}

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresDB(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateUser(ctx context.Context, login, email, password string) (int, error) {
	var id int
	query := "INSERT INTO users (login, email, password) VALUES ($1, $2, $3) RETURNING id"
	err := r.db.QueryRowContext(ctx, query, login, email, password).Scan(&id)
	return id, err
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, login string) (int, string, error) {
	var id int
	var hash string

	query := "SELECT id, password FROM users WHERE login=$1"

	err := r.db.QueryRowContext(ctx, query, login).Scan(&id, &hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return 0, "", nil
		}
		return 0, "", err
	}
	return id, hash, nil
}

func (r *PostgresRepository) GetProfile(ctx context.Context, id int) (UserProfile, error) {
	var p UserProfile
	query := "SELECT id, login, email, COALESCE(description, '') FROM users WHERE id=$1"
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Login, &p.Email, &p.Description)
	return p, err
}

func (r *PostgresRepository) UpdateProfile(ctx context.Context, id int, login, description string) error {
	query := "UPDATE users SET login=$2, description=$3 WHERE id=$1"
	_, err := r.db.ExecContext(ctx, query, id, login, description)
	return err
}

func (r *PostgresRepository) SaveCalculation(ctx context.Context, userID int, profile string, input, result []byte) error {
	query := "INSERT INTO calculations (user_id, profile, input, result) VALUES ($1, $2, $3, $4)"
	_, err := r.db.ExecContext(ctx, query, userID, profile, input, result)
	return err
}

func (r *PostgresRepository) ListCalculations(ctx context.Context, userID, limit int) ([]Calculation, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	query := `SELECT id, profile, input, result, created_at
	          FROM calculations WHERE user_id=$1
	          ORDER BY created_at DESC LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Calculation
	for rows.Next() {
		var c Calculation
		if err := rows.Scan(&c.ID, &c.Profile, &c.Input, &c.Result, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
