package service

import (
	"context"

	"github.com/MKhiriev/go-user-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// UserService exposes the user CRUD operations served by the HTTP API.
type UserService interface {
	// ListUsers returns the requested page. Values of page and pageSize
	// below 1 are clamped to 1.
	ListUsers(ctx context.Context, page, pageSize int) (models.UserPage, error)

	GetUser(ctx context.Context, id int64) (models.User, error)
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// UpdateUser replaces name and email of the user with the given id.
	// The id carried by user is ignored.
	UpdateUser(ctx context.Context, id int64, user models.User) (models.User, error)

	DeleteUser(ctx context.Context, id int64) error
}

// AppInfoService reports information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// UserServiceWrapper defines middleware composition for UserService.
// Implementations wrap an existing UserService to add behavior such as
// logging or validating.
type UserServiceWrapper interface {
	Wrap(UserService) UserService // returns a decorated UserService applying additional behavior
}
