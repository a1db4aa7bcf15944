package infofile

import (
	"context"
	"strings"
	"testing"

	"github.com/codewind/cwsync/src/cwsync/internal/fs/fsmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/config"
	"go.uber.org/fx/fxtest"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)

	tests := []struct {
		name      string
		configKey string
		wantErr   bool
	}{
		{
			name:      "all required params are present",
			configKey: "valid",
			wantErr:   false,
		},
		{
			name:      "config processing error",
			configKey: "missingKey",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(Params{
				Config:    newConfigProvider(t, tt.configKey),
				FS:        fsmock.NewMockCwsyncFS(ctrl),
				Lifecycle: fxtest.NewLifecycle(t),
				Logger:    zap.NewNop().Sugar(),
			})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOnStop(t *testing.T) {
	t.Run("file removed", func(t *testing.T) {
		fsMock := fsmock.NewMockCwsyncFS(gomock.NewController(t))
		fsMock.EXPECT().Remove("/home/jan/.cwsync/cwsync-info.json").Return(nil)

		m := module{
			path:   "/home/jan/.cwsync/cwsync-info.json",
			fs:     fsMock,
			logger: zap.NewNop().Sugar(),
		}
		assert.NoError(t, m.OnStop(context.Background()))
	})

	t.Run("file removal error", func(t *testing.T) {
		fsMock := fsmock.NewMockCwsyncFS(gomock.NewController(t))
		fsMock.EXPECT().Remove("/home/jan/.cwsync/cwsync-info.json").Return(assert.AnError)

		m := module{
			path:   "/home/jan/.cwsync/cwsync-info.json",
			fs:     fsMock,
			logger: zap.NewNop().Sugar(),
		}
		assert.Error(t, m.OnStop(context.Background()))
	})

	t.Run("no path means nothing to remove", func(t *testing.T) {
		m := module{logger: zap.NewNop().Sugar()}
		assert.NoError(t, m.OnStop(context.Background()))
	})
}

func TestUpdateField(t *testing.T) {
	t.Run("multiple successful updates", func(t *testing.T) {
		fsMock := fsmock.NewMockCwsyncFS(gomock.NewController(t))
		var written string
		fsMock.EXPECT().WriteFile("/tmp/cwsync-info.json", gomock.Any()).DoAndReturn(
			func(path string, data []byte) error {
				written = string(data)
				return nil
			}).AnyTimes()

		m := module{
			path:     "/tmp/cwsync-info.json",
			fs:       fsMock,
			logger:   zap.NewNop().Sugar(),
			contents: make(map[string]string),
		}

		steps := []struct {
			key        string
			value      string
			expectJSON string
		}{
			{
				key:        "cwsync-address",
				value:      "127.0.0.1:41235",
				expectJSON: `{"cwsync-address":"127.0.0.1:41235"}`,
			},
			{
				key:        "cwsync-address",
				value:      "127.0.0.1:41236",
				expectJSON: `{"cwsync-address":"127.0.0.1:41236"}`,
			},
			{
				key:        "pid",
				value:      "4242",
				expectJSON: `{"cwsync-address":"127.0.0.1:41236","pid":"4242"}`,
			},
		}

		for _, step := range steps {
			require.NoError(t, m.UpdateField(step.key, step.value))
			assert.Equal(t, step.value, m.contents[step.key])
			assert.Equal(t, step.expectJSON, written)
		}
	})

	t.Run("file write failure", func(t *testing.T) {
		fsMock := fsmock.NewMockCwsyncFS(gomock.NewController(t))
		fsMock.EXPECT().WriteFile("/tmp/cwsync-info.json", gomock.Any()).Return(assert.AnError)

		m := module{
			path:     "/tmp/cwsync-info.json",
			fs:       fsMock,
			logger:   zap.NewNop().Sugar(),
			contents: make(map[string]string),
		}
		assert.Error(t, m.UpdateField("key", "value"))
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
			name:        "missing path key",
			configKey:   "missingKey",
			wantErr:     true,
			errorString: "missing field \"serverInfoFilePath\" in config",
		},
		{
			name:        "missing path value",
			configKey:   "missingValue",
			wantErr:     true,
			errorString: "missing field \"serverInfoFilePath\" in config",
		},
		{
			name:        "incorrectly formatted entry",
			configKey:   "formatProblem",
			wantErr:     true,
			errorString: "getting config field \"serverInfoFilePath\": yaml: unmarshal errors:\n  line 1: cannot unmarshal !!map into string",
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

func newConfigProvider(t *testing.T, configKey string) config.Provider {
	configs := map[string]string{
		"valid": `
serverInfoFilePath: /home/jan/.cwsync/cwsync-info.json
`,
		"missingKey": `
otherKey: /home/jan/.cwsync/cwsync-info.json
`,
		"missingValue": `
serverInfoFilePath:
otherKey: sample
`,
		"formatProblem": `
serverInfoFilePath:
  infofile: /sample/.file
  address:
    key: val`,
	}

	provider, err := config.NewYAML(config.Source(strings.NewReader(configs[configKey])))
	require.NoError(t, err)
	return provider
}
