package jsonrpcfx

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/codewind/cwsync/src/cwsync/internal/infofile/infofilemock"
	"github.com/codewind/cwsync/src/cwsync/internal/jsonrpcfx/jsonrpc2mock"
	"github.com/gofrs/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	lifecycleMock := fxtest.NewLifecycle(t)

	tests := []struct {
		name    string
		params  Params
		wantErr bool
	}{
		{
			name:    "missing required params",
			params:  Params{},
			wantErr: true,
		},
		{
			name: "all required params are present",
			params: Params{
				Lifecycle: lifecycleMock,
				Config:    newConfigProvider(t, "valid"),
				Logger:    zap.NewNop().Sugar(),
				InfoFile:  infofilemock.NewMockInfoFile(ctrl),
			},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.params)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegisterConnectionManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := module{}

	mockConnectionManager := NewMockConnectionManager(ctrl)

	// first call should return no error
	err := m.RegisterConnectionManager(mockConnectionManager)
	assert.NoError(t, err)

	// duplicate call should return error
	err = m.RegisterConnectionManager(mockConnectionManager)
	assert.Error(t, err)
}

func TestServeStream(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	mockServer := module{
		logger: zap.NewNop().Sugar(),
	}

	mockUUID, _ := uuid.NewV4()
	mockRouter := NewMockRouter(ctrl)
	mockRouter.EXPECT().UUID().Return(mockUUID).AnyTimes()

	mockConnectionManager := NewMockConnectionManager(ctrl)
	mockConnectionManager.EXPECT().RemoveConnection(ctx, mockUUID)

	conn := jsonrpc2mock.NewMockConn(ctrl)
	conn.EXPECT().Go(gomock.Any(), gomock.Any())

	// Return a channel and immediately close it.
	c := make(chan struct{})
	conn.EXPECT().Done().Return(readOnly(c))
	go func() {
		c <- struct{}{}
		close(c)
	}()

	conn.EXPECT().Err()

	tests := []struct {
		name                        string
		connectionManagerRegistered bool
		wantErr                     bool

		// Return values from NewConnection
		routerReturnVal Router
		errReturnVal    error
	}{
		{
			name:    "no connection manager registered",
			wantErr: true,

			connectionManagerRegistered: false,
			routerReturnVal:             nil,
			errReturnVal:                nil,
		},
		{
			name:    "failed NewConnection",
			wantErr: true,

			connectionManagerRegistered: true,
			routerReturnVal:             nil,
			errReturnVal:                errors.New("sample error"),
		},
		{
			name:    "successful NewConnection",
			wantErr: false,

			connectionManagerRegistered: true,
			routerReturnVal:             mockRouter,
			errReturnVal:                nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.connectionManagerRegistered {
				mockServer.RegisterConnectionManager(mockConnectionManager)
			}

			if tt.routerReturnVal != nil || tt.errReturnVal != nil {
				mockConnectionManager.EXPECT().NewConnection(gomock.Any(), gomock.Any()).Return(tt.routerReturnVal, tt.errReturnVal)
			}

			err := mockServer.ServeStream(ctx, conn)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSetup(t *testing.T) {
	m := module{
		logger: zap.NewNop().Sugar(),
	}
	err := m.setup()
	assert.Error(t, err)

	m = module{Address: "127.0.0.1:0"}
	err = m.setup()
	require.NoError(t, err)
	m.ln.Close()
}

func TestOnStop(t *testing.T) {
	t.Run("without a listener", func(t *testing.T) {
		m := module{}
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("closes the listener", func(t *testing.T) {
		m := module{Address: "127.0.0.1:0"}
		require.NoError(t, m.setup())
		assert.NoError(t, m.OnStop(context.Background()))

		// A closed listener no longer accepts.
		_, err := m.ln.Accept()
		assert.Error(t, err)
	})
}

func TestProcessConfig(t *testing.T) {
	tests := []struct {
		name        string
		configKey   string
		wantErr     bool
		errorString string
	}{
		{
			name:      "valid configuration",
			configKey: "valid",
			wantErr:   false,
		},
		{
			name:        "missing address key",
			configKey:   "missingKey",
			wantErr:     true,
			errorString: "missing field \"jsonrpc.address\" in config",
		},
		{
			name:        "missing address value",
			configKey:   "missingValue",
			wantErr:     true,
			errorString: "missing field \"jsonrpc.address\" in config",
		},
		{
			name:        "incorrectly formatted entry",
			configKey:   "formatProblem",
			wantErr:     true,
			errorString: "getting config field \"jsonrpc.address\": yaml: unmarshal errors:\n  line 1: cannot unmarshal !!map into string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := module{
				logger: zap.NewNop().Sugar(),
			}
			err := m.processConfig(newConfigProvider(t, tt.configKey))

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.errorString, err.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	infoFileMock := infofilemock.NewMockInfoFile(ctrl)

	m := module{
		Address:  "127.0.0.1:0",
		infoFile: infoFileMock,
		logger:   zap.NewNop().Sugar(),
	}
	require.NoError(t, m.setup())
	defer m.ln.Close()

	// A failed discovery write is fatal; nothing can find the daemon.
	infoFileMock.EXPECT().UpdateField(_outputKey, m.ln.Addr().String()).Return(errors.New("sample error"))
	assert.Panics(t, func() { m.start() })
}

func TestOnStart(t *testing.T) {
	ctx := context.Background()
	m := module{
		logger: zap.NewNop().Sugar(),
	}

	err := m.OnStart(ctx)
	assert.Error(t, err)
}

func newConfigProvider(t *testing.T, configKey string) config.Provider {
	configs := map[string]string{
		"valid": `
jsonrpc:
  address: 127.0.0.1:0`,
		"missingKey": `
jsonrpc:
  timeout: 5s`,
		"missingValue": `
jsonrpc:
  address:
  timeout: 5s`,
		"formatProblem": `
jsonrpc:
  timeout: 5s
  address:
    key: val`,
	}

	provider, err := config.NewYAML(config.Source(strings.NewReader(configs[configKey])))
	require.NoError(t, err)
	return provider
}

func readOnly(c chan struct{}) <-chan struct{} {
	return c
}
