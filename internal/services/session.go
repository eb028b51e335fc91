// Package services contains the dashboard's application services. This file
// defines the session service: login, signup, logout, account deletion and
// restoring the current session from the key-value store.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dmitrijs2005/gophdash/internal/common"
	"github.com/dmitrijs2005/gophdash/internal/logging"
	"github.com/dmitrijs2005/gophdash/internal/models"
	"github.com/dmitrijs2005/gophdash/internal/repositories/kvstore"
	"github.com/google/uuid"
)

// Keys in the key-value store.
const (
	KeyUser  = "user"
	KeyUsers = "users"
)

// DefaultAuthDelay is the simulated latency of Login and Signup.
const DefaultAuthDelay = time.Second

// SessionService owns the current-user identity.
//
// Contract:
//   - Init: restore the session persisted by a previous run. IsLoading is
//     true until it returns.
//   - Login / Signup: wait the configured delay, then authenticate or
//     register. Failures leave storage and memory untouched.
//   - Logout: forget the session; a no-op when there is none.
//   - DeleteAccount: remove the logged-in account and its session; a no-op
//     when nobody is logged in.
//   - Subscribe: receive a State snapshot after every change.
//
// Methods are safe for concurrent use. Overlapping calls are applied one at
// a time after their delay, so the last one to complete defines the session,
// and the in-memory session always matches the stored one.
type SessionService interface {
	Init(ctx context.Context) error
	Login(ctx context.Context, email, password string) error
	Signup(ctx context.Context, email, password, name string) error
	Logout(ctx context.Context) error
	DeleteAccount(ctx context.Context) error

	User() (models.User, bool)
	IsAuthenticated() bool
	IsLoading() bool
	State() State
	Subscribe() (<-chan State, func())
}

type sessionService struct {
	store  kvstore.Store
	logger logging.Logger
	scheme PasswordScheme
	delay  time.Duration
	newID  func() (string, error)
	sleep  func(ctx context.Context, d time.Duration) error

	// applyMu serializes the read-check-write-publish phase of mutations.
	applyMu sync.Mutex

	stateMu sync.RWMutex
	user    *models.User
	ready   bool
	pending int

	// pubMu makes snapshot-and-broadcast atomic so the last delivered
	// State is never older than the last change.
	pubMu  sync.Mutex
	events *broadcaster
}

type SessionOption func(*sessionService)

// WithAuthDelay overrides DefaultAuthDelay. Zero disables the delay.
func WithAuthDelay(d time.Duration) SessionOption {
	return func(s *sessionService) { s.delay = d }
}

// WithPasswordScheme selects how passwords are stored. Default PlainScheme.
func WithPasswordScheme(p PasswordScheme) SessionOption {
	return func(s *sessionService) { s.scheme = p }
}

// WithIDGenerator replaces the account id source (UUIDv7 by default).
func WithIDGenerator(fn func() (string, error)) SessionOption {
	return func(s *sessionService) { s.newID = fn }
}

// NewSessionService builds a SessionService over store. Call Init before
// relying on User.
func NewSessionService(store kvstore.Store, logger logging.Logger, opts ...SessionOption) SessionService {
	s := &sessionService{
		store:  store,
		logger: logger.With("component", "session"),
		scheme: PlainScheme{},
		delay:  DefaultAuthDelay,
		newID:  newAccountID,
		sleep:  sleepContext,
		events: newBroadcaster(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newAccountID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Init reads the persisted session. A value that cannot be decoded is
// removed and the service starts logged out.
func (s *sessionService) Init(ctx context.Context) error {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	user, err := s.loadUser(ctx)
	if err != nil {
		return err
	}

	s.stateMu.Lock()
	s.user = user
	s.ready = true
	s.stateMu.Unlock()

	if user != nil {
		s.logger.Info(ctx, "session restored", "email", user.Email)
	}
	s.publish()
	return nil
}

func (s *sessionService) loadUser(ctx context.Context) (*models.User, error) {
	raw, ok, err := s.store.Get(ctx, KeyUser)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var u models.User
	if err := json.Unmarshal([]byte(raw), &u); err != nil {
		s.logger.Warn(ctx, "discarding unreadable session", "error", err)
		if err := s.store.Remove(ctx, KeyUser); err != nil {
			return nil, fmt.Errorf("restore session: %w", err)
		}
		return nil, nil
	}
	return &u, nil
}

// Login authenticates email/password against the stored accounts.
// Returns common.ErrNotFound or common.ErrInvalidCredentials on failure.
func (s *sessionService) Login(ctx context.Context, email, password string) error {
	s.beginPending()
	defer s.endPending()

	if err := s.sleep(ctx, s.delay); err != nil {
		return err
	}

	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	accounts, err := readAccounts(ctx, s.store)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}

	i := slices.IndexFunc(accounts, func(a models.Account) bool { return a.Email == email })
	if i < 0 {
		s.logger.Warn(ctx, "login failed", "email", email, "reason", common.ErrNotFound)
		return common.ErrNotFound
	}

	ok, err := s.scheme.Matches(accounts[i].Password, password)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if !ok {
		s.logger.Warn(ctx, "login failed", "email", email, "reason", common.ErrInvalidCredentials)
		return common.ErrInvalidCredentials
	}

	user := accounts[i].User()
	if err := writeUser(ctx, s.store, user); err != nil {
		return fmt.Errorf("login: %w", err)
	}

	s.setUser(&user)
	s.logger.Info(ctx, "login successful", "email", email)
	return nil
}

// Signup registers a new account and logs it in. Returns
// common.ErrAlreadyExists if the email is taken.
func (s *sessionService) Signup(ctx context.Context, email, password, name string) error {
	s.beginPending()
	defer s.endPending()

	if err := s.sleep(ctx, s.delay); err != nil {
		return err
	}

	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	id, err := s.newID()
	if err != nil {
		return fmt.Errorf("signup: generate id: %w", err)
	}
	account := models.Account{
		ID:       id,
		Email:    email,
		Password: s.scheme.Encode(password),
		Name:     name,
	}

	err = s.store.Update(ctx, func(ctx context.Context, tx kvstore.Tx) error {
		accounts, err := readAccounts(ctx, tx)
		if err != nil {
			return err
		}
		if slices.ContainsFunc(accounts, func(a models.Account) bool { return a.Email == email }) {
			return common.ErrAlreadyExists
		}
		if err := writeAccounts(ctx, tx, append(accounts, account)); err != nil {
			return err
		}
		return writeUser(ctx, tx, account.User())
	})
	if err != nil {
		s.logger.Warn(ctx, "signup failed", "email", email, "error", err)
		return fmt.Errorf("signup: %w", err)
	}

	user := account.User()
	s.setUser(&user)
	s.logger.Info(ctx, "account created", "email", email, "id", id)
	return nil
}

// Logout clears the current session.
func (s *sessionService) Logout(ctx context.Context) error {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	if err := s.store.Remove(ctx, KeyUser); err != nil {
		return fmt.Errorf("logout: %w", err)
	}

	if u, ok := s.User(); ok {
		s.logger.Info(ctx, "logged out", "email", u.Email)
	}
	s.setUser(nil)
	return nil
}

// DeleteAccount removes the logged-in account and its session.
func (s *sessionService) DeleteAccount(ctx context.Context) error {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	current, ok := s.User()
	if !ok {
		return nil
	}

	err := s.store.Update(ctx, func(ctx context.Context, tx kvstore.Tx) error {
		accounts, err := readAccounts(ctx, tx)
		if err != nil {
			return err
		}
		accounts = slices.DeleteFunc(accounts, func(a models.Account) bool { return a.ID == current.ID })
		if err := writeAccounts(ctx, tx, accounts); err != nil {
			return err
		}
		return tx.Remove(ctx, KeyUser)
	})
	if err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.setUser(nil)
	s.logger.Info(ctx, "account deleted", "email", current.Email, "id", current.ID)
	return nil
}

func (s *sessionService) User() (models.User, bool) {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *sessionService) IsAuthenticated() bool {
	_, ok := s.User()
	return ok
}

func (s *sessionService) IsLoading() bool {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return !s.ready || s.pending > 0
}

func (s *sessionService) State() State {
	s.stateMu.RLock()
	defer s.stateMu.RUnlock()
	return s.snapshotLocked()
}

func (s *sessionService) Subscribe() (<-chan State, func()) {
	return s.events.subscribe()
}

func (s *sessionService) snapshotLocked() State {
	st := State{IsLoading: !s.ready || s.pending > 0}
	if s.user != nil {
		u := *s.user
		st.User = &u
	}
	return st
}

func (s *sessionService) setUser(u *models.User) {
	s.stateMu.Lock()
	s.user = u
	s.stateMu.Unlock()
	s.publish()
}

func (s *sessionService) beginPending() {
	s.stateMu.Lock()
	s.pending++
	s.stateMu.Unlock()
	s.publish()
}

func (s *sessionService) endPending() {
	s.stateMu.Lock()
	s.pending--
	s.stateMu.Unlock()
	s.publish()
}

func (s *sessionService) publish() {
	s.pubMu.Lock()
	defer s.pubMu.Unlock()
	s.events.publish(s.State())
}

// reader is satisfied by both kvstore.Store and kvstore.Tx.
type reader interface {
	Get(ctx context.Context, key string) (string, bool, error)
}

type writer interface {
	Set(ctx context.Context, key string, value string) error
}

func readAccounts(ctx context.Context, r reader) ([]models.Account, error) {
	raw, ok, err := r.Get(ctx, KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var accounts []models.Account
	if err := json.Unmarshal([]byte(raw), &accounts); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrCorruptedData, KeyUsers, err)
	}
	return accounts, nil
}

func writeAccounts(ctx context.Context, w writer, accounts []models.Account) error {
	if accounts == nil {
		accounts = []models.Account{}
	}
	b, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return w.Set(ctx, KeyUsers, string(b))
}

func writeUser(ctx context.Context, w writer, u models.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return w.Set(ctx, KeyUser, string(b))
}
