// Package auth implements the staff authentication contract consumed by
// the consoles: roster lookup, bcrypt password verification with lazy
// upgrade of legacy plaintext entries, failed-attempt lockout, and
// session inactivity expiry.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
)

var (
	// ErrInvalidCredentials covers unknown users, inactive accounts, and
	// wrong passwords alike; callers get no hint which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrLockedOut is returned while a username is serving a lockout.
	ErrLockedOut = errors.New("account locked, try again later")
)

const (
	maxFailures    = 3
	lockoutPeriod  = 5 * time.Minute
	sessionTimeout = 30 * time.Minute

	defaultPassword = "mnd2026"
)

// DefaultUsers returns the seed staff roster with the shared default
// password already bcrypt-hashed.
func DefaultUsers() ([]queue.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(defaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash default password: %w", err)
	}
	h := string(hash)
	return []queue.User{
		{ID: "kiosk", Username: "kiosk", DisplayName: "Guard / Kiosk", Role: queue.RoleKiosk, PasswordHash: h, Active: true},
		{ID: "staff1", Username: "staff1", DisplayName: "Staff 1", Role: queue.RoleStaff, PasswordHash: h, Active: true},
		{ID: "staff2", Username: "staff2", DisplayName: "Staff 2", Role: queue.RoleStaff, PasswordHash: h, Active: true},
		{ID: "th", Username: "th", DisplayName: "Team Head", Role: queue.RoleTeamHead, PasswordHash: h, Active: true},
		{ID: "bh", Username: "bh", DisplayName: "Branch Head", Role: queue.RoleBranchHead, PasswordHash: h, Active: true},
		{ID: "dh", Username: "dh", DisplayName: "Division Head", Role: queue.RoleDivisionHead, PasswordHash: h, Active: true},
	}, nil
}

// Authenticator verifies staff logins against the roster and tracks
// failed attempts per username.
type Authenticator struct {
	store  repo.QueueStore
	logger *zap.Logger

	mu       sync.Mutex
	failures map[string]int
	lockedAt map[string]time.Time
}

// New returns an authenticator over the given repository.
func New(store repo.QueueStore, logger *zap.Logger) *Authenticator {
	return &Authenticator{
		store:    store,
		logger:   logger,
		failures: make(map[string]int),
		lockedAt: make(map[string]time.Time),
	}
}

// Authenticate checks the username and password against the roster.
// Three consecutive failures lock the username for five minutes. A
// legacy plaintext roster entry that matches is re-hashed and saved.
func (a *Authenticator) Authenticate(username, password string) (*queue.User, error) {
	username = strings.TrimSpace(username)

	a.mu.Lock()
	if until, ok := a.lockedAt[username]; ok {
		if time.Now().Before(until) {
			a.mu.Unlock()
			return nil, ErrLockedOut
		}
		delete(a.lockedAt, username)
	}
	a.mu.Unlock()

	users, err := a.store.Users()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}
	if len(users) == 0 {
		users, err = DefaultUsers()
		if err != nil {
			return nil, err
		}
		if err := a.store.SaveUsers(users); err != nil {
			return nil, fmt.Errorf("failed to seed roster: %w", err)
		}
		a.logger.Info("seeded default staff roster", zap.Int("users", len(users)))
	}

	for i := range users {
		u := &users[i]
		if u.Username != username || !u.Active {
			continue
		}
		if verifyPassword(u.PasswordHash, password) {
			if !strings.HasPrefix(u.PasswordHash, "$2") {
				// Legacy plaintext entry: upgrade in place.
				if hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost); err == nil {
					u.PasswordHash = string(hash)
					if err := a.store.SaveUsers(users); err != nil {
						a.logger.Warn("failed to persist password upgrade",
							zap.String("username", username), zap.Error(err))
					} else {
						a.logger.Info("upgraded legacy plaintext password",
							zap.String("username", username))
					}
				}
			}
			a.clearFailures(username)
			return u, nil
		}
		break
	}

	return nil, a.recordFailure(username)
}

func verifyPassword(stored, password string) bool {
	if strings.HasPrefix(stored, "$2") {
		return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
	}
	return stored != "" && stored == password
}

func (a *Authenticator) clearFailures(username string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.failures, username)
}

func (a *Authenticator) recordFailure(username string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.failures[username]++
	if a.failures[username] >= maxFailures {
		a.failures[username] = 0
		a.lockedAt[username] = time.Now().Add(lockoutPeriod)
		a.logger.Warn("username locked out after repeated failures",
			zap.String("username", username))
		return ErrLockedOut
	}
	return ErrInvalidCredentials
}

// Session is a logged-in staff session with inactivity expiry.
type Session struct {
	User         *queue.User
	LastActivity time.Time
}

// NewSession starts a session for the given user.
func NewSession(u *queue.User) *Session {
	return &Session{User: u, LastActivity: time.Now()}
}

// Touch records activity, resetting the inactivity window.
func (s *Session) Touch() {
	s.LastActivity = time.Now()
}

// Expired reports whether the session has been idle past the timeout.
func (s *Session) Expired() bool {
	return time.Since(s.LastActivity) > sessionTimeout
}
