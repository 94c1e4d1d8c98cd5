package memory

import (
	"context"
	"crypto/subtle"
	"sync"

	"rrdesigns-backend/internal/domain"
)

type adminStore struct {
	mu       sync.RWMutex
	password string
}

func NewAdminCredentialStore(initial string) domain.AdminCredentialStore {
	return &adminStore{password: initial}
}

func (s *adminStore) Verify(ctx context.Context, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.password == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
}

func (s *adminStore) SetPassword(ctx context.Context, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.password = password
	return nil
}
