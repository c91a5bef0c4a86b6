// AngelaMos | 2026
// auth_test.go

package auth

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gleethreads/storefront-api/internal/config"
	"github.com/gleethreads/storefront-api/internal/core"
)

const (
	testSecret = "test-secret-that-is-at-least-32-bytes-long"
	testIssuer = "glee-threads"
)

type fakeUsers struct {
	byEmail map[string]*UserInfo
	err     error
}

func newFakeUsers(t *testing.T) *fakeUsers {
	t.Helper()

	hash, err := core.HashPassword("owner-password")
	require.NoError(t, err)

	return &fakeUsers{byEmail: map[string]*UserInfo{
		"owner@gleethreads.in": {
			ID: 1, Name: "Store Owner", Email: "owner@gleethreads.in",
			PasswordHash: hash, Role: "admin",
		},
		"helper@gleethreads.in": {
			ID: 2, Name: "Helper", Email: "helper@gleethreads.in",
			PasswordHash: hash, Role: "staff",
		},
	}}
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*UserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, core.ErrNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id int64) (*UserInfo, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, core.ErrNotFound
}

type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Duration
	err     error
}

func newMemoryRevocations() *memoryRevocations {
	return &memoryRevocations{revoked: map[string]time.Duration{}}
}

func (m *memoryRevocations) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.revoked[jti] = ttl
	return nil
}

func (m *memoryRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return false, m.err
	}
	_, ok := m.revoked[jti]
	return ok, nil
}

func newTestTokenManager(t *testing.T) *TokenManager {
	t.Helper()

	tm, err := NewTokenManager(config.JWTConfig{
		Secret:            testSecret,
		AccessTokenExpire: time.Hour,
		Issuer:            testIssuer,
	})
	require.NoError(t, err)
	return tm
}

func newTestService(t *testing.T) (*Service, *fakeUsers, *memoryRevocations) {
	t.Helper()

	users := newFakeUsers(t)
	revocations := newMemoryRevocations()
	return NewService(newTestTokenManager(t), users, revocations), users, revocations
}

var errRedisDown = errors.New("dial tcp 127.0.0.1:6379: connect: connection refused")
