package auth

import (
	"context"
	"testing"

	"github.com/codewind/cwsync/src/cwsync/gateway/ide-client/ideclientmock"
	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestAuthenticate(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	t.Run("caches the obtained token", func(t *testing.T) {
		ideMock := ideclientmock.NewMockGateway(ctrl)
		ideMock.EXPECT().RequestAuthentication(ctx, "codewind.example.com").Return("token123", nil)
		g := New(ideMock, zap.NewNop().Sugar())

		require.NoError(t, g.Authenticate(ctx, "codewind.example.com"))

		token, ok := g.BearerToken("codewind.example.com")
		require.True(t, ok)
		assert.Equal(t, "token123", token)
	})

	t.Run("an empty token means the user cancelled", func(t *testing.T) {
		ideMock := ideclientmock.NewMockGateway(ctrl)
		ideMock.EXPECT().RequestAuthentication(ctx, "codewind.example.com").Return("", nil)
		g := New(ideMock, zap.NewNop().Sugar())

		err := g.Authenticate(ctx, "codewind.example.com")
		assert.ErrorIs(t, err, errors.ErrAuthCancelled)
		assert.True(t, errors.IsQuietAbort(err))

		_, ok := g.BearerToken("codewind.example.com")
		assert.False(t, ok)
	})

	t.Run("propagates editor failures", func(t *testing.T) {
		ideMock := ideclientmock.NewMockGateway(ctrl)
		ideMock.EXPECT().RequestAuthentication(ctx, "codewind.example.com").Return("", assert.AnError)
		g := New(ideMock, zap.NewNop().Sugar())

		assert.Error(t, g.Authenticate(ctx, "codewind.example.com"))
	})
}

func TestBearerToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	g := New(ideclientmock.NewMockGateway(ctrl), zap.NewNop().Sugar())

	_, ok := g.BearerToken("unknown.example.com")
	assert.False(t, ok)
}

func TestClearToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	ideMock := ideclientmock.NewMockGateway(ctrl)
	ideMock.EXPECT().RequestAuthentication(ctx, "codewind.example.com").Return("token123", nil)
	g := New(ideMock, zap.NewNop().Sugar())
	require.NoError(t, g.Authenticate(ctx, "codewind.example.com"))

	g.ClearToken("codewind.example.com")
	_, ok := g.BearerToken("codewind.example.com")
	assert.False(t, ok)

	// Clearing an absent token is a no-op.
	g.ClearToken("codewind.example.com")
}
