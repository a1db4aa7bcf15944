package registry

import (
	"context"
	"testing"

	"github.com/codewind/cwsync/src/cwsync/controller/connection"
	"github.com/codewind/cwsync/src/cwsync/controller/connection/connectionmock"
	"github.com/codewind/cwsync/src/cwsync/entity"
	"github.com/codewind/cwsync/src/cwsync/internal/errors"
	"github.com/codewind/cwsync/src/cwsync/internal/settings/settingsmock"
	"github.com/codewind/cwsync/src/cwsync/model"
	"github.com/codewind/cwsync/src/cwsync/repository/connections"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const _testURL = "https://codewind.example.com:9090"

func TestAddConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("creates, persists and notifies", func(t *testing.T) {
		f := newFixture(t)
		info := &entity.ConnectionInfo{URL: _testURL, Host: "codewind.example.com", Version: "19.03"}
		session := stubSession(f.ctrl, info)
		f.factory.EXPECT().New(info, gomock.Any()).Return(session)

		var saved []model.ConnectionDescriptor
		f.settings.EXPECT().SaveConnections(gomock.Any()).DoAndReturn(
			func(descriptors []model.ConnectionDescriptor) error {
				saved = descriptors
				return nil
			})

		var notified int
		f.c.Subscribe(func() { notified++ })

		s, err := f.c.AddConnection(ctx, info)
		require.NoError(t, err)
		assert.Same(t, session, s)
		assert.Equal(t, 1, notified)
		require.Len(t, saved, 1)
		assert.Equal(t, _testURL, saved[0].URL)
		assert.Equal(t, "19.03", saved[0].Version)

		got, ok := f.c.GetConnection(_testURL)
		require.True(t, ok)
		assert.Same(t, session, got)
	})

	t.Run("rejects a duplicate URL", func(t *testing.T) {
		f := newFixture(t)
		info := &entity.ConnectionInfo{URL: _testURL}
		session := stubSession(f.ctrl, info)
		f.factory.EXPECT().New(info, gomock.Any()).Return(session)
		f.settings.EXPECT().SaveConnections(gomock.Any()).Return(nil)

		_, err := f.c.AddConnection(ctx, info)
		require.NoError(t, err)

		// No factory call, no persistence write for the duplicate.
		_, err = f.c.AddConnection(ctx, info)
		assert.ErrorIs(t, err, errors.ErrDuplicateConnection)
	})

	t.Run("a failed save does not lose the session", func(t *testing.T) {
		f := newFixture(t)
		info := &entity.ConnectionInfo{URL: _testURL}
		session := stubSession(f.ctrl, info)
		f.factory.EXPECT().New(info, gomock.Any()).Return(session)
		f.settings.EXPECT().SaveConnections(gomock.Any()).Return(assert.AnError)

		_, err := f.c.AddConnection(ctx, info)
		require.NoError(t, err)
		_, ok := f.c.GetConnection(_testURL)
		assert.True(t, ok)
	})
}

func TestRemoveConnection(t *testing.T) {
	ctx := context.Background()

	t.Run("closes and persists", func(t *testing.T) {
		f := newFixture(t)
		info := &entity.ConnectionInfo{URL: _testURL}
		session := stubSession(f.ctrl, info)
		f.factory.EXPECT().New(info, gomock.Any()).Return(session)
		f.settings.EXPECT().SaveConnections(gomock.Any()).Return(nil).Times(2)
		session.EXPECT().Close()

		_, err := f.c.AddConnection(ctx, info)
		require.NoError(t, err)

		var notified int
		f.c.Subscribe(func() { notified++ })

		assert.True(t, f.c.RemoveConnection(ctx, _testURL))
		assert.Equal(t, 1, notified)
		_, ok := f.c.GetConnection(_testURL)
		assert.False(t, ok)
	})

	t.Run("unknown URL is not an error", func(t *testing.T) {
		f := newFixture(t)
		assert.False(t, f.c.RemoveConnection(ctx, _testURL))
	})
}

func TestSubscribe(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	info := &entity.ConnectionInfo{URL: _testURL}
	session := stubSession(f.ctrl, info)
	f.factory.EXPECT().New(info, gomock.Any()).Return(session)
	f.settings.EXPECT().SaveConnections(gomock.Any()).Return(nil).Times(2)
	session.EXPECT().Close()

	var first, second int
	unsubscribe := f.c.Subscribe(func() { first++ })
	f.c.Subscribe(func() { second++ })

	_, err := f.c.AddConnection(ctx, info)
	require.NoError(t, err)
	assert.Equal(t, 1, first)
	assert.Equal(t, 1, second)

	unsubscribe()
	unsubscribe() // safe to call twice

	f.c.RemoveConnection(ctx, _testURL)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestTreeItems(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	good := &entity.ConnectionInfo{URL: "https://one.example.com:9090"}
	goodSession := stubSession(f.ctrl, good)
	goodSession.EXPECT().GetProjects(ctx).Return([]*entity.Project{
		entity.NewProject("p1", "node-app", nil),
		entity.NewProject("p2", "go-app", nil),
	}, nil)

	bad := &entity.ConnectionInfo{URL: "https://two.example.com:9090"}
	badSession := stubSession(f.ctrl, bad)
	badSession.EXPECT().GetProjects(ctx).Return(nil, assert.AnError)

	f.factory.EXPECT().New(good, gomock.Any()).Return(goodSession)
	f.factory.EXPECT().New(bad, gomock.Any()).Return(badSession)
	f.settings.EXPECT().SaveConnections(gomock.Any()).Return(nil).Times(2)

	_, err := f.c.AddConnection(ctx, good)
	require.NoError(t, err)
	_, err = f.c.AddConnection(ctx, bad)
	require.NoError(t, err)

	items := f.c.TreeItems(ctx)
	require.Len(t, items, 4)
	assert.Equal(t, entity.TreeItemConnection, items[0].Kind)
	assert.Equal(t, "https://one.example.com:9090", items[0].Connection.URL)
	assert.Equal(t, entity.TreeItemProject, items[1].Kind)
	assert.Equal(t, "node-app", items[1].Project.Name)
	assert.Equal(t, entity.TreeItemProject, items[2].Kind)

	// A failing project fetch still renders the connection row.
	assert.Equal(t, entity.TreeItemConnection, items[3].Kind)
	assert.Equal(t, "https://two.example.com:9090", items[3].Connection.URL)
}

func TestRestore(t *testing.T) {
	t.Run("re-establishes saved connections", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().LoadConnections().Return([]model.ConnectionDescriptor{
			{URL: "https://one.example.com:9090", Version: "19.03", WorkspacePath: "/workspace"},
			{URL: "://not-a-url"},
		}, nil)

		session := connectionmock.NewMockSession(f.ctrl)
		session.EXPECT().URL().Return("https://one.example.com:9090").AnyTimes()
		session.EXPECT().Info().Return(entity.ConnectionInfo{URL: "https://one.example.com:9090"}).AnyTimes()
		session.EXPECT().Close()
		f.factory.EXPECT().New(gomock.Any(), gomock.Any()).DoAndReturn(
			func(info *entity.ConnectionInfo, notify func()) connection.Session {
				assert.Equal(t, "https://one.example.com:9090", info.URL)
				assert.Equal(t, "19.03", info.Version)
				return session
			})

		f.lc.RequireStart()
		_, ok := f.c.GetConnection("https://one.example.com:9090")
		assert.True(t, ok)
		f.lc.RequireStop()

		// Teardown removed everything.
		assert.Empty(t, f.c.Connections())
	})

	t.Run("a failed load starts empty", func(t *testing.T) {
		f := newFixture(t)
		f.settings.EXPECT().LoadConnections().Return(nil, assert.AnError)

		f.lc.RequireStart()
		assert.Empty(t, f.c.Connections())
		f.lc.RequireStop()
	})
}

type fixture struct {
	ctrl     *gomock.Controller
	factory  *connectionmock.MockFactory
	settings *settingsmock.MockStore
	lc       *fxtest.Lifecycle
	c        Controller
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		ctrl:     ctrl,
		factory:  connectionmock.NewMockFactory(ctrl),
		settings: settingsmock.NewMockStore(ctrl),
		lc:       fxtest.NewLifecycle(t),
	}
	f.c = New(Params{
		Sessions:  connections.New(tally.NoopScope),
		Settings:  f.settings,
		Factory:   f.factory,
		Logger:    zap.NewNop().Sugar(),
		Lifecycle: f.lc,
	})
	return f
}

func stubSession(ctrl *gomock.Controller, info *entity.ConnectionInfo) *connectionmock.MockSession {
	s := connectionmock.NewMockSession(ctrl)
	s.EXPECT().URL().Return(info.URL).AnyTimes()
	s.EXPECT().Info().Return(*info).AnyTimes()
	return s
}
