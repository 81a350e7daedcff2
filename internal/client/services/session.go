// Package services contains application services for the ByteMe client.
// This file defines the session service: sign-up, sign-in, sign-out and the
// observable current-user state mirrored into local storage.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/byteme/internal/client/models"
	"github.com/dmitrijs2005/byteme/internal/common"
	"github.com/dmitrijs2005/byteme/internal/cryptox"
	"github.com/dmitrijs2005/byteme/internal/logging"
)

// SessionStorageKey is the local-storage key holding the mirrored session.
const SessionStorageKey = "user"

// UserStore is the part of the user repository the session service needs.
type UserStore interface {
	Create(ctx context.Context, u models.NewUser) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateFullName(ctx context.Context, id string, fullName string) error
}

// LocalStorage is a synchronous key/value mirror. Get returns (nil, nil)
// for an absent key.
type LocalStorage interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// SessionService owns the signed-in user's session lifecycle.
//
// Contract:
//   - SignUp: register a new account and sign it in.
//   - SignIn: verify credentials and sign in.
//   - SignOut: drop the session.
//   - ClearStorage: wipe local storage, which also drops the session.
//   - Current / Subscribe: read or watch the session state.
//   - Rename: change the signed-in user's display name.
//
// Every state change is written to local storage before it becomes
// visible, so a restart restores the same session.
type SessionService interface {
	SignUp(ctx context.Context, email string, password []byte) error
	SignIn(ctx context.Context, email string, password []byte) error
	SignOut(ctx context.Context) error
	ClearStorage(ctx context.Context) error
	Rename(ctx context.Context, fullName string) error
	Current() State
	Subscribe() (<-chan State, func())
}

var _ SessionService = (*sessionService)(nil)

type sessionService struct {
	users   UserStore
	storage LocalStorage
	logger  logging.Logger

	mu      sync.RWMutex
	state   State
	subs    map[int]chan State
	nextSub int
}

// NewSessionService restores the mirrored session, if any, and returns a
// ready service. A missing, unreadable or corrupt entry yields Anonymous;
// a corrupt or empty entry is also removed.
func NewSessionService(ctx context.Context, users UserStore, storage LocalStorage, logger logging.Logger) SessionService {
	s := &sessionService{
		users:   users,
		storage: storage,
		logger:  logger.With("component", "session"),
		subs:    make(map[int]chan State),
	}
	s.state = s.restore(ctx)
	return s
}

func (s *sessionService) restore(ctx context.Context) State {
	raw, err := s.storage.Get(ctx, SessionStorageKey)
	if err != nil {
		s.logger.Warn(ctx, "session restore failed", "error", err)
		return Anonymous{}
	}
	if raw == nil {
		return Anonymous{}
	}

	var p models.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		s.logger.Warn(ctx, "discarding unparsable session", "error", err)
		s.discard(ctx)
		return Anonymous{}
	}
	if p.ID == "" {
		s.logger.Warn(ctx, "discarding session without user id")
		s.discard(ctx)
		return Anonymous{}
	}

	s.logger.Debug(ctx, "session restored", "user_id", p.ID)
	return Authenticated{User: p}
}

func (s *sessionService) discard(ctx context.Context) {
	if err := s.storage.Delete(ctx, SessionStorageKey); err != nil {
		s.logger.Warn(ctx, "session cleanup failed", "error", err)
	}
}

// SignUp creates the account and signs it in. The email uniqueness check
// happens inside the store's insert, so two racing sign-ups cannot both
// succeed; the loser gets common.ErrDuplicateEmail.
func (s *sessionService) SignUp(ctx context.Context, email string, password []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.users.Create(ctx, models.NewUser{
		Email:        email,
		PasswordHash: cryptox.HashPassword(password),
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("sign up: %w", err)
	}

	s.logger.Info(ctx, "signed up", "user_id", u.ID)
	return s.setAuthenticated(ctx, u.Profile())
}

// SignIn fails with common.ErrInvalidCredentials both for an unknown email
// and for a wrong password.
func (s *sessionService) SignIn(ctx context.Context, email string, password []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrInvalidCredentials
		}
		return fmt.Errorf("sign in: %w", err)
	}

	if !cryptox.VerifyPassword(u.PasswordHash, password) {
		s.logger.Info(ctx, "sign in rejected", "user_id", u.ID)
		return common.ErrInvalidCredentials
	}

	s.logger.Info(ctx, "signed in", "user_id", u.ID)
	return s.setAuthenticated(ctx, u.Profile())
}

// SignOut always leaves the service Anonymous. The returned error only
// reports that the mirrored entry could not be removed.
func (s *sessionService) SignOut(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.publish(Anonymous{})

	if err := s.storage.Delete(ctx, SessionStorageKey); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ClearStorage removes every local-storage entry. Like SignOut it always
// leaves the service Anonymous.
func (s *sessionService) ClearStorage(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.publish(Anonymous{})

	if err := s.storage.Clear(ctx); err != nil {
		return fmt.Errorf("clear storage: %w", err)
	}
	return nil
}

// Rename updates the display name of the signed-in user in the store and
// in the session.
func (s *sessionService) Rename(ctx context.Context, fullName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, err := RequireUser(s.state)
	if err != nil {
		return err
	}

	if err := s.users.UpdateFullName(ctx, p.ID, fullName); err != nil {
		return fmt.Errorf("rename: %w", err)
	}

	p.FullName = fullName
	return s.setAuthenticated(ctx, p)
}

func (s *sessionService) Current() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe returns a channel that receives the current state immediately
// and then every later state. A slow reader only sees the latest state.
// cancel closes the channel; calling it twice is safe.
func (s *sessionService) Subscribe() (<-chan State, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan State, 1)
	ch <- s.state
	id := s.nextSub
	s.nextSub++
	s.subs[id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs, id)
			close(ch)
		})
	}
	return ch, cancel
}

// setAuthenticated mirrors p first; on a storage error the state is left
// unchanged. Callers hold s.mu.
func (s *sessionService) setAuthenticated(ctx context.Context, p models.Profile) error {
	raw, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := s.storage.Set(ctx, SessionStorageKey, raw); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	s.publish(Authenticated{User: p})
	return nil
}

// publish swaps the state and notifies subscribers. Callers hold s.mu.
func (s *sessionService) publish(st State) {
	s.state = st
	for _, ch := range s.subs {
		select {
		case <-ch:
		default:
		}
		ch <- st
	}
}
