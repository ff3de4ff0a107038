package user_test

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bizmoney-app/bizmoney-api/internal/auth"
	"github.com/bizmoney-app/bizmoney-api/internal/storage"
	"github.com/bizmoney-app/bizmoney-api/internal/user"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "a-long-enough-secret-for-the-user-tests")
	auth.Init()
	os.Exit(m.Run())
}

func newTestService(t *testing.T) user.Service {
	t.Helper()
	return user.NewService(user.NewRepository(storage.NewMemory()))
}

func TestRegisterAndLogin(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	session, err := service.Register(ctx, user.RegisterDTO{
		Name:         "Rafiq",
		BusinessName: "Rafiq Store",
		Mobile:       "01712345678",
	})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	require.Equal(t, "Rafiq", session.User.Name)

	claims, err := auth.ValidateJWT(session.Token)
	require.NoError(t, err)
	require.Equal(t, session.User.ID.String(), claims.UserID)

	t.Run("DuplicateMobile", func(t *testing.T) {
		_, err := service.Register(ctx, user.RegisterDTO{Name: "Other", Mobile: "01712345678"})
		require.ErrorIs(t, err, user.ErrUserExists)
	})

	t.Run("Login", func(t *testing.T) {
		login, err := service.Login(ctx, user.LoginDTO{Mobile: "01712345678"})
		require.NoError(t, err)
		require.Equal(t, session.User.ID, login.User.ID)
	})

	t.Run("LoginUnknownMobile", func(t *testing.T) {
		_, err := service.Login(ctx, user.LoginDTO{Mobile: "01800000000"})
		require.ErrorIs(t, err, user.ErrUserNotFound)
	})
}

func TestRegisterValidation(t *testing.T) {
	service := newTestService(t)

	_, err := service.Register(context.Background(), user.RegisterDTO{Name: "", Mobile: "017"})
	require.ErrorIs(t, err, user.ErrValidation)

	_, err = service.Register(context.Background(), user.RegisterDTO{Name: "x", Mobile: " "})
	require.ErrorIs(t, err, user.ErrValidation)
}

func TestUpdateProfile(t *testing.T) {
	service := newTestService(t)

	session, err := service.Register(context.Background(), user.RegisterDTO{Name: "Rafiq", Mobile: "01712345678"})
	require.NoError(t, err)

	ctx := auth.WithClaims(context.Background(), &auth.UserClaims{UserID: session.User.ID.String()})

	address := "Mirpur 10, Dhaka"
	updated, err := service.UpdateProfile(ctx, user.UpdateProfileDTO{Address: &address})
	require.NoError(t, err)
	require.Equal(t, address, updated.Address)
	require.Equal(t, "Rafiq", updated.Name)

	me, err := service.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, address, me.Address)
}
