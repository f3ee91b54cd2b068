package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avasiliev/fittrack/internal/client/api"
	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/client/storage"
	"github.com/avasiliev/fittrack/internal/common"
	"github.com/avasiliev/fittrack/internal/dbx"
	"github.com/avasiliev/fittrack/internal/logging"
	"github.com/google/uuid"
)

// SessionService produces, restores, and destroys the session.
//
// Contract:
//   - Login: resolve credentials against the local roster first, then the
//     remote gateway; persist token and profile on success.
//   - Register: append a local account and immediately establish a session
//     for it, without a second roster round trip.
//   - Restore: read a previously persisted session; absence is not an error.
//   - Logout: remove the persisted session; idempotent.
//   - Current/LastError: the observable state UI code renders and redirects on.
//
// A failed login leaves whatever session existed before the attempt in place.
type SessionService interface {
	Login(ctx context.Context, username, password string) (*models.Session, error)
	Register(ctx context.Context, input RegisterInput) (*models.Session, error)
	Restore(ctx context.Context) (*models.Session, error)
	Logout(ctx context.Context) error
	Current() *models.Session
	LastError() error
	TestConnection(ctx context.Context) error
}

// RegisterInput carries the fields of a registration form.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type sessionService struct {
	gateway api.AuthGateway
	db      *sql.DB
	log     logging.Logger

	current *models.Session
	lastErr error
}

// NewSessionService constructs a SessionService bound to the given gateway
// and client database.
func NewSessionService(gateway api.AuthGateway, db *sql.DB, log logging.Logger) SessionService {
	return &sessionService{gateway: gateway, db: db, log: log}
}

func (s *sessionService) repo() storage.Repository {
	return storage.NewSQLiteRepository(s.db)
}

// localToken builds a fresh token for a local-account session. The account id
// plus current milliseconds keeps tokens unique across logins.
func localToken(accountID string) string {
	return fmt.Sprintf("local-token-%s-%d", accountID, time.Now().UnixMilli())
}

// Login resolves credentials against the local roster (exact match on both
// username and password) and falls back to the remote gateway when no local
// account matches. On success the session is persisted and becomes Current;
// on failure Current is left untouched and the error is recorded for display.
func (s *sessionService) Login(ctx context.Context, username, password string) (*models.Session, error) {
	roster, err := loadRoster(ctx, s.repo())
	if err != nil {
		return nil, s.fail(ctx, "reading local roster", err)
	}

	for _, acc := range roster {
		if acc.Username == username && acc.Password == password {
			session := &models.Session{Token: localToken(acc.ID), Profile: acc.Profile()}
			if err := s.saveSession(ctx, session); err != nil {
				return nil, s.fail(ctx, "persisting local session", err)
			}
			s.current = session
			s.lastErr = nil
			s.log.Info(ctx, "logged in via local account", "username", username)
			return session, nil
		}
	}

	creds, err := s.gateway.Login(ctx, username, password)
	if err != nil {
		if errors.Is(err, api.ErrUnavailable) {
			err = fmt.Errorf("%w: %v", api.ErrRemoteRejected, err)
		}
		return nil, s.fail(ctx, "remote login", err)
	}

	session := &models.Session{Token: creds.Token, Profile: creds.Profile}
	if err := s.saveSession(ctx, session); err != nil {
		return nil, s.fail(ctx, "persisting remote session", err)
	}
	s.current = session
	s.lastErr = nil
	s.log.Info(ctx, "logged in via remote account", "username", username)
	return session, nil
}

// Register appends a new local account and logs it in. The duplicate check
// and the append run in one transaction, so two concurrent registrations for
// the same name cannot both pass the check.
func (s *sessionService) Register(ctx context.Context, in RegisterInput) (*models.Session, error) {
	var session *models.Session

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := storage.NewSQLiteRepository(tx)

		roster, err := loadRoster(ctx, r)
		if err != nil {
			return err
		}
		for _, acc := range roster {
			if acc.Username == in.Username || acc.Email == in.Email {
				return common.ErrDuplicateAccount
			}
		}

		account := models.LocalAccount{
			ID:        uuid.NewString(),
			Username:  in.Username,
			Email:     in.Email,
			Password:  in.Password,
			FirstName: in.FirstName,
			LastName:  in.LastName,
		}
		roster = append(roster, account)

		data, err := json.Marshal(roster)
		if err != nil {
			return fmt.Errorf("encode roster: %w", err)
		}
		if err := r.Set(ctx, storage.KeyRegisteredUsers, data); err != nil {
			return err
		}

		session = &models.Session{Token: localToken(account.ID), Profile: account.Profile()}
		return writeSession(ctx, r, session)
	})
	if err != nil {
		return nil, s.fail(ctx, "registration", err)
	}

	s.current = session
	s.lastErr = nil
	s.log.Info(ctx, "registered local account", "username", in.Username)
	return session, nil
}

// Restore reads the persisted session. It returns (nil, nil) unless both a
// non-empty token and a decodable, non-empty profile are present; partial
// state counts as no session.
func (s *sessionService) Restore(ctx context.Context) (*models.Session, error) {
	r := s.repo()

	token, err := r.Get(ctx, storage.KeyAuthToken)
	if err != nil {
		return nil, s.fail(ctx, "reading token", err)
	}
	data, err := r.Get(ctx, storage.KeyUserData)
	if err != nil {
		return nil, s.fail(ctx, "reading profile", err)
	}
	if len(token) == 0 || len(data) == 0 {
		return nil, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		s.log.Warn(ctx, "persisted profile is not decodable, treating as no session", "error", err)
		return nil, nil
	}
	if profile == (models.UserProfile{}) {
		return nil, nil
	}

	session := &models.Session{Token: string(token), Profile: profile}
	s.current = session
	s.log.Info(ctx, "session restored", "username", profile.Username)
	return session, nil
}

// Logout removes the persisted token and profile in one transaction and
// clears the in-memory session. Logging out without a session is a no-op.
func (s *sessionService) Logout(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		r := storage.NewSQLiteRepository(tx)
		if err := r.Delete(ctx, storage.KeyAuthToken); err != nil {
			return err
		}
		return r.Delete(ctx, storage.KeyUserData)
	})
	if err != nil {
		return s.fail(ctx, "logout", err)
	}

	s.current = nil
	s.lastErr = nil
	s.log.Info(ctx, "logged out")
	return nil
}

func (s *sessionService) Current() *models.Session { return s.current }

func (s *sessionService) LastError() error { return s.lastErr }

// TestConnection probes the auth endpoint's reachability.
func (s *sessionService) TestConnection(ctx context.Context) error {
	return s.gateway.Ping(ctx)
}

// fail records err as the surfaced error and logs it. The current session is
// deliberately not touched.
func (s *sessionService) fail(ctx context.Context, op string, err error) error {
	s.lastErr = err
	s.log.Error(ctx, op+" failed", "error", err)
	return err
}

// saveSession persists token and profile in one transaction.
func (s *sessionService) saveSession(ctx context.Context, session *models.Session) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return writeSession(ctx, storage.NewSQLiteRepository(tx), session)
	})
}

func writeSession(ctx context.Context, r storage.Repository, session *models.Session) error {
	if session.Token == "" {
		return common.ErrInvalidToken
	}
	profile, err := json.Marshal(session.Profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := r.Set(ctx, storage.KeyAuthToken, []byte(session.Token)); err != nil {
		return err
	}
	return r.Set(ctx, storage.KeyUserData, profile)
}

// loadRoster reads the registered-account roster; a missing key is an empty
// roster.
func loadRoster(ctx context.Context, r storage.Repository) ([]models.LocalAccount, error) {
	data, err := r.Get(ctx, storage.KeyRegisteredUsers)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}

	var roster []models.LocalAccount
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("decode roster: %w", err)
	}
	return roster, nil
}
