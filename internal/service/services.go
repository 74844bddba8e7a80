package service

import (
	"fmt"

	"github.com/MKhiriev/go-user-keeper/internal/config"
	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/store"
)

type Services struct {
	UserService    UserService
	AppInfoService AppInfoService
}

// NewServices wires the services on top of storages. The user service is
// always wrapped with input validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	userService := NewUserValidationService().Wrap(
		NewUserService(storages.UserRepository, logger),
	)

	return &Services{
		UserService:    userService,
		AppInfoService: appInfoService,
	}, nil
}
