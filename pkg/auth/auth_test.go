package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/rpt-gingoog/mabilisss/pkg/queue"
	"github.com/rpt-gingoog/mabilisss/pkg/repo"
	"github.com/rpt-gingoog/mabilisss/pkg/store"
)

func newTestAuth(t *testing.T) (*Authenticator, *repo.Repository) {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	r := repo.New(s, zap.NewNop())
	return New(r, zap.NewNop()), r
}

func TestAuthenticate_SeedsRosterAndAcceptsDefaultPassword(t *testing.T) {
	a, r := newTestAuth(t)

	user, err := a.Authenticate("kiosk", defaultPassword)
	require.NoError(t, err)
	assert.Equal(t, queue.RoleKiosk, user.Role)

	users, err := r.Users()
	require.NoError(t, err)
	require.Len(t, users, 6)
	for _, u := range users {
		assert.True(t, strings.HasPrefix(u.PasswordHash, "$2"),
			"seeded roster must never store plaintext (%s)", u.Username)
	}
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	a, _ := newTestAuth(t)

	_, err := a.Authenticate("staff1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownAndInactiveUsers(t *testing.T) {
	a, r := newTestAuth(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, r.SaveUsers([]queue.User{
		{ID: "gone", Username: "gone", Role: queue.RoleStaff, PasswordHash: string(hash), Active: false},
	}))

	_, err = a.Authenticate("nobody", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = a.Authenticate("gone", "s3cret")
	assert.ErrorIs(t, err, ErrInvalidCredentials, "deactivated accounts must not log in")
}

func TestAuthenticate_LockoutAfterThreeFailures(t *testing.T) {
	a, _ := newTestAuth(t)

	_, err := a.Authenticate("staff1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Authenticate("staff1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Authenticate("staff1", "wrong")
	assert.ErrorIs(t, err, ErrLockedOut)

	// The right password does not bypass an active lockout.
	_, err = a.Authenticate("staff1", defaultPassword)
	assert.ErrorIs(t, err, ErrLockedOut)

	// Other usernames are unaffected.
	_, err = a.Authenticate("staff2", defaultPassword)
	assert.NoError(t, err)
}

func TestAuthenticate_LockoutExpires(t *testing.T) {
	a, _ := newTestAuth(t)

	for i := 0; i < 3; i++ {
		a.Authenticate("staff1", "wrong")
	}

	// Rewind the lockout instead of sleeping five minutes.
	a.mu.Lock()
	a.lockedAt["staff1"] = time.Now().Add(-time.Second)
	a.mu.Unlock()

	_, err := a.Authenticate("staff1", defaultPassword)
	assert.NoError(t, err)
}

func TestAuthenticate_SuccessResetsFailureCount(t *testing.T) {
	a, _ := newTestAuth(t)

	a.Authenticate("staff1", "wrong")
	a.Authenticate("staff1", "wrong")
	_, err := a.Authenticate("staff1", defaultPassword)
	require.NoError(t, err)

	// Two more misses start a fresh count, not a lockout.
	_, err = a.Authenticate("staff1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = a.Authenticate("staff1", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UpgradesLegacyPlaintextEntry(t *testing.T) {
	a, r := newTestAuth(t)

	require.NoError(t, r.SaveUsers([]queue.User{
		{ID: "bh", Username: "bh", Role: queue.RoleBranchHead, PasswordHash: "legacy123", Active: true},
	}))

	user, err := a.Authenticate("bh", "legacy123")
	require.NoError(t, err)
	assert.Equal(t, "bh", user.Username)

	users, err := r.Users()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.True(t, strings.HasPrefix(users[0].PasswordHash, "$2"),
		"plaintext entry must be re-hashed on first successful login")

	// The upgraded hash still verifies.
	_, err = a.Authenticate("bh", "legacy123")
	assert.NoError(t, err)
}

func TestSession_InactivityExpiry(t *testing.T) {
	s := NewSession(&queue.User{Username: "staff1"})
	assert.False(t, s.Expired())

	s.LastActivity = time.Now().Add(-sessionTimeout - time.Minute)
	assert.True(t, s.Expired())

	s.Touch()
	assert.False(t, s.Expired())
}
