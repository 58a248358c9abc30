package database

import (
	"database/sql"

	"github.com/Amiradha/Major-Project/app/models"
)

// SQLUserStore implements UserStore over PostgreSQL.
type SQLUserStore struct {
	DB *sql.DB
}

func NewUserStore(db *sql.DB) *SQLUserStore {
	return &SQLUserStore{DB: db}
}

// UserByCredentials matches the stored credential row exactly. The legacy
// credential table holds plain-text passwords and the comparison contract is
// exact string equality; see DESIGN.md.
func (s *SQLUserStore) UserByCredentials(username, password string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, username, password FROM users
			  WHERE username = $1 AND password = $2`

	err := s.DB.QueryRow(query, username, password).Scan(&user.ID, &user.Username, &user.Password)
	if err == sql.ErrNoRows {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *SQLUserStore) CreateSession(session *models.Session) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at)
			  VALUES ($1, $2, $3, NOW())`

	_, err := s.DB.Exec(query, session.ID, session.UserID, session.ExpiresAt)
	return err
}

func (s *SQLUserStore) SessionByID(id string) (*models.Session, error) {
	session := &models.Session{}
	query := `SELECT id, user_id, expires_at, created_at FROM sessions
			  WHERE id = $1 AND expires_at > NOW()`

	err := s.DB.QueryRow(query, id).Scan(&session.ID, &session.UserID, &session.ExpiresAt, &session.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SQLUserStore) DeleteSession(id string) error {
	_, err := s.DB.Exec(`DELETE FROM sessions WHERE id = $1`, id)
	return err
}
