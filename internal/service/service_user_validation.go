package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// UserValidationService guards a [UserService]: ids must be positive and
// user payloads must pass [validators.UserValidator]. For updates the
// existence of the target user is checked before its payload.
type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService() UserServiceWrapper {
	return &UserValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *UserValidationService) ListUsers(ctx context.Context, page, pageSize int) (models.UserPage, error) {
	return v.inner.ListUsers(ctx, page, pageSize)
}

func (v *UserValidationService) GetUser(ctx context.Context, id int64) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidID
	}

	return v.inner.GetUser(ctx, id)
}

func (v *UserValidationService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	return v.inner.CreateUser(ctx, user)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error) {
	if id <= 0 {
		return models.User{}, ErrInvalidID
	}

	if _, err := v.inner.GetUser(ctx, id); err != nil {
		return models.User{}, err
	}

	if err := v.validator.Validate(ctx, user); err != nil {
		return models.User{}, err
	}

	return v.inner.UpdateUser(ctx, id, user)
}

func (v *UserValidationService) DeleteUser(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	return v.inner.DeleteUser(ctx, id)
}

func (v *UserValidationService) Wrap(wrapper UserService) UserService {
	v.inner = wrapper
	return v
}
