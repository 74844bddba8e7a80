// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"math"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/models"
)

// userService is the core [UserService]. It computes pages and delegates
// storage to a [store.UserRepository]; input checks live in the
// validation wrapper.
type userService struct {
	repository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs the core [UserService] on top of repository.
func NewUserService(repository store.UserRepository, logger *logger.Logger) UserService {
	logger.Debug().Msg("creating user service")
	return &userService{
		repository: repository,
		logger:     logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, page, pageSize int) (models.UserPage, error) {
	page = max(page, 1)
	pageSize = max(pageSize, 1)

	users, total, err := s.repository.ListUsers(ctx, pageOffset(page, pageSize), pageSize)
	if err != nil {
		return models.UserPage{}, fmt.Errorf("error listing users: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}

	return models.UserPage{
		Data:        users,
		TotalItems:  total,
		TotalPages:  totalPages(total, pageSize),
		CurrentPage: page,
		PageSize:    pageSize,
	}, nil
}

func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return s.repository.FindUserByID(ctx, id)
}

func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := s.repository.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}

	logger.FromContext(ctx).Debug().Int64("user_id", created.ID).Msg("user created")
	return created, nil
}

func (s *userService) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	user.ID = id
	return s.repository.UpdateUser(ctx, user)
}

func (s *userService) DeleteUser(ctx context.Context, id int64) error {
	if err := s.repository.DeleteUser(ctx, id); err != nil {
		return err
	}

	logger.FromContext(ctx).Debug().Int64("user_id", id).Msg("user deleted")
	return nil
}

// pageOffset returns (page-1)*pageSize, saturating at math.MaxInt.
func pageOffset(page, pageSize int) int {
	if page-1 > math.MaxInt/pageSize {
		return math.MaxInt
	}
	return (page - 1) * pageSize
}

// totalPages returns ceil(total/pageSize).
func totalPages(total, pageSize int) int {
	pages := total / pageSize
	if total%pageSize != 0 {
		pages++
	}
	return pages
}
