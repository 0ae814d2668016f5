package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/partsledger/partsledger-api/pkg/apperror"
	"github.com/partsledger/partsledger-api/pkg/utils"
)

func newTestAuth(t *testing.T) (*AuthService, *SettingsService) {
	t.Helper()
	s := newTestStore(t)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)
	return NewAuthService(s, jwtManager), NewSettingsService(s)
}

func TestLoginDefaultPasswordGrantsAdmin(t *testing.T) {
	auth, _ := newTestAuth(t)

	// Both slots hold the default, and the admin slot is tried first
	result, err := auth.Login(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, utils.RoleAdmin, result.Role)
	assert.NotEmpty(t, result.Token)
}

func TestLoginWrongPassword(t *testing.T) {
	auth, _ := newTestAuth(t)

	_, err := auth.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginRolesAfterPasswordSplit(t *testing.T) {
	auth, settings := newTestAuth(t)
	ctx := context.Background()

	require.NoError(t, settings.ChangePassword(ctx, "login", "staff-secret"))
	require.NoError(t, settings.ChangePassword(ctx, "admin", "admin-secret"))

	staff, err := auth.Login(ctx, "staff-secret")
	require.NoError(t, err)
	assert.Equal(t, utils.RoleStaff, staff.Role)

	admin, err := auth.Login(ctx, "admin-secret")
	require.NoError(t, err)
	assert.Equal(t, utils.RoleAdmin, admin.Role)

	_, err = auth.Login(ctx, "1")
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestLoginTokenValidates(t *testing.T) {
	auth, _ := newTestAuth(t)
	jwtManager := utils.NewJWTManager("test-secret", time.Hour)

	result, err := auth.Login(context.Background(), "1")
	require.NoError(t, err)

	claims, err := jwtManager.ValidateToken(result.Token)
	require.NoError(t, err)
	assert.Equal(t, utils.RoleAdmin, claims.Role)
}
