package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-desk/internal/repository/flatfile"
	apperrors "github.com/jwalitptl/clinic-desk/pkg/errors"
	"github.com/jwalitptl/clinic-desk/pkg/logger"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	store, err := flatfile.NewStore(t.TempDir())
	require.NoError(t, err)
	return NewService(flatfile.NewAdminRepository(store, "account.txt"), logger.Nop())
}

func TestSignupAndLogin(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "admin1", "secret"))

	session, err := svc.Login(ctx, "admin1", "secret")
	require.NoError(t, err)
	assert.Equal(t, "admin1", session.AdminID)
	assert.NotEmpty(t, session.ID)
}

func TestSignupDuplicateIDFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "admin1", "secret"))

	err := svc.Signup(ctx, "admin1", "other")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindConflict))
}

func TestLoginWrongPasswordFails(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.Signup(ctx, "admin1", "secret"))

	_, err := svc.Login(ctx, "admin1", "wrong")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
}

func TestLoginUnknownIDFails(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Login(context.Background(), "nobody", "secret")
	require.Error(t, err)
	assert.True(t, apperrors.IsKind(err, apperrors.KindUnauthorized))
}

func TestSignupRejectsEmptyOrSpacedFields(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	assert.True(t, apperrors.IsKind(svc.Signup(ctx, "", "secret"), apperrors.KindValidation))
	assert.True(t, apperrors.IsKind(svc.Signup(ctx, "admin 1", "secret"), apperrors.KindValidation))
	assert.True(t, apperrors.IsKind(svc.Signup(ctx, "admin1", ""), apperrors.KindValidation))
	assert.True(t, apperrors.IsKind(svc.Signup(ctx, "admin1", "pass word"), apperrors.KindValidation))
}
