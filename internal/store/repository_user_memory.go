// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/models"
)

// memoryUserRepository keeps users in a slice ordered by id. Every method
// holds mu for its whole duration, so concurrent callers always observe
// a consistent collection.
type memoryUserRepository struct {
	mu     sync.RWMutex
	users  []models.User
	nextID int64
}

// NewMemoryUserRepository constructs an empty slice-backed [UserRepository].
// The first created user gets id 1.
func NewMemoryUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating in-memory user repository")
	return &memoryUserRepository{
		users:  make([]models.User, 0),
		nextID: 1,
	}
}

func (m *memoryUserRepository) ListUsers(_ context.Context, offset, limit int) ([]models.User, int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	total := len(m.users)
	if offset < 0 {
		offset = 0
	}
	if offset >= total || limit <= 0 {
		return []models.User{}, total, nil
	}

	end := total
	if limit < total-offset {
		end = offset + limit
	}

	return slices.Clone(m.users[offset:end]), total, nil
}

func (m *memoryUserRepository) FindUserByID(_ context.Context, id int64) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	i, ok := m.indexOf(id)
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return m.users[i], nil
}

func (m *memoryUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	user.ID = m.nextID
	m.nextID++
	m.users = append(m.users, user)

	return user, nil
}

func (m *memoryUserRepository) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.indexOf(user.ID)
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	m.users[i].Name = user.Name
	m.users[i].Email = user.Email

	return m.users[i], nil
}

func (m *memoryUserRepository) DeleteUser(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i, ok := m.indexOf(id)
	if !ok {
		return ErrUserNotFound
	}

	m.users = slices.Delete(m.users, i, i+1)

	return nil
}

// indexOf locates id with a binary search; users are appended with strictly
// increasing ids and deletion keeps the order. Callers must hold mu.
func (m *memoryUserRepository) indexOf(id int64) (int, bool) {
	return slices.BinarySearchFunc(m.users, id, func(u models.User, target int64) int {
		return cmp.Compare(u.ID, target)
	})
}
