package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/mock"
	"github.com/MKhiriev/go-user-keeper/internal/store"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

func newTestValidationSvc(t *testing.T) (UserService, *mock.MockUserService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	inner := mock.NewMockUserService(ctrl)
	return NewUserValidationService().Wrap(inner), inner
}

var validUser = models.User{Name: "Al", Email: "al@x.com"}

func TestUserValidationService_InvalidIDs(t *testing.T) {
	// the inner mock has no expectations: any call fails the test
	svc, _ := newTestValidationSvc(t)
	ctx := context.Background()

	for _, id := range []int64{0, -1, -100} {
		_, err := svc.GetUser(ctx, id)
		assert.ErrorIs(t, err, ErrInvalidID)

		_, err = svc.UpdateUser(ctx, id, validUser)
		assert.ErrorIs(t, err, ErrInvalidID)

		assert.ErrorIs(t, svc.DeleteUser(ctx, id), ErrInvalidID)
	}
}

func TestUserValidationService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("valid user is passed through", func(t *testing.T) {
		svc, inner := newTestValidationSvc(t)
		inner.EXPECT().CreateUser(ctx, validUser).Return(models.User{ID: 1, Name: "Al", Email: "al@x.com"}, nil)

		created, err := svc.CreateUser(ctx, validUser)
		require.NoError(t, err)
		assert.Equal(t, int64(1), created.ID)
	})

	t.Run("invalid user never reaches the store", func(t *testing.T) {
		svc, _ := newTestValidationSvc(t)

		_, err := svc.CreateUser(ctx, models.User{Name: "A", Email: "not-an-email"})

		var validationErrs validators.ValidationErrors
		require.True(t, errors.As(err, &validationErrs))
		assert.Equal(t, validators.ValidationErrors{
			validators.MsgNameTooShort,
			validators.MsgEmailInvalid,
		}, validationErrs)
	})

	t.Run("overlong fields", func(t *testing.T) {
		svc, _ := newTestValidationSvc(t)

		_, err := svc.CreateUser(ctx, models.User{
			Name:  strings.Repeat("a", 101),
			Email: strings.Repeat("a", 250) + "@x.com",
		})

		var validationErrs validators.ValidationErrors
		require.True(t, errors.As(err, &validationErrs))
		assert.Equal(t, validators.ValidationErrors{
			validators.MsgNameTooLong,
			validators.MsgEmailTooLong,
		}, validationErrs)
	})
}

func TestUserValidationService_UpdateUser_ChecksExistenceFirst(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().GetUser(ctx, int64(9)).Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.UpdateUser(ctx, 9, models.User{})
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestUserValidationService_UpdateUser_ValidatesAfterLookup(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1, Name: "Al", Email: "al@x.com"}, nil)

	_, err := svc.UpdateUser(ctx, 1, models.User{Name: "", Email: ""})

	var validationErrs validators.ValidationErrors
	require.True(t, errors.As(err, &validationErrs))
	assert.Equal(t, validators.ValidationErrors{
		validators.MsgNameRequired,
		validators.MsgEmailRequired,
	}, validationErrs)
}

func TestUserValidationService_UpdateUser_Success(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()
	updated := models.User{ID: 1, Name: "Bo", Email: "bo@x.com"}

	gomock.InOrder(
		inner.EXPECT().GetUser(ctx, int64(1)).Return(models.User{ID: 1, Name: "Al", Email: "al@x.com"}, nil),
		inner.EXPECT().UpdateUser(ctx, int64(1), models.User{Name: "Bo", Email: "bo@x.com"}).Return(updated, nil),
	)

	got, err := svc.UpdateUser(ctx, 1, models.User{Name: "Bo", Email: "bo@x.com"})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestUserValidationService_PassThrough(t *testing.T) {
	svc, inner := newTestValidationSvc(t)
	ctx := context.Background()

	inner.EXPECT().ListUsers(ctx, 0, -1).Return(models.UserPage{CurrentPage: 1, PageSize: 1}, nil)
	inner.EXPECT().GetUser(ctx, int64(2)).Return(models.User{ID: 2}, nil)
	inner.EXPECT().DeleteUser(ctx, int64(2)).Return(nil)

	_, err := svc.ListUsers(ctx, 0, -1)
	require.NoError(t, err)
	_, err = svc.GetUser(ctx, 2)
	require.NoError(t, err)
	require.NoError(t, svc.DeleteUser(ctx, 2))
}

func TestNewServices(t *testing.T) {
	storages, err := store.NewStorages(context.Background(), configStorage(), logger.Nop())
	require.NoError(t, err)

	services, err := NewServices(storages, configWithVersion("1.0.0"), logger.Nop())
	require.NoError(t, err)
	require.NotNil(t, services.UserService)
	assert.IsType(t, &UserValidationService{}, services.UserService)
	assert.Equal(t, "1.0.0", services.AppInfoService.GetAppVersion(context.Background()))

	_, err = NewServices(storages, configWithVersion(""), logger.Nop())
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}
