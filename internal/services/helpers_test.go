package services

import (
	"context"
	"errors"
	"testing"

	"gearguard/pkg/contextkeys"
	apperrors "gearguard/pkg/errors"

	"github.com/stretchr/testify/require"
)

func ctxWithUser(id uint64, role string) context.Context {
	ctx := context.WithValue(context.Background(), contextkeys.UserIDKey, id)
	return context.WithValue(ctx, contextkeys.UserRoleKey, role)
}

func requireHTTPCode(t *testing.T, err error, code int) {
	t.Helper()
	var httpErr *apperrors.HttpError
	require.True(t, errors.As(err, &httpErr), "expected HttpError, got %v", err)
	require.Equal(t, code, httpErr.Code)
}
