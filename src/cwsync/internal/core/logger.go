package core

import (
	"os"

	"go.uber.org/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggingConfig represents the logging configuration from the config files.
type LoggingConfig struct {
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
	Encoding    string `yaml:"encoding"`
}

// LoggerModule provides the logger dependencies.
var LoggerModule = fx.Options(
	fx.Provide(NewSugaredLogger),
	fx.Provide(NewLogger),
)

// NewLogger returns the unsugared form of the application logger.
func NewLogger(sugar *zap.SugaredLogger) *zap.Logger {
	return sugar.Desugar()
}

// NewSugaredLogger creates a zap.SugaredLogger based on the configuration.
func NewSugaredLogger(provider config.Provider) (*zap.SugaredLogger, error) {
	var loggingConfig LoggingConfig
	if err := provider.Get("logging").Populate(&loggingConfig); err != nil {
		return nil, err
	}

	level, err := zapcore.ParseLevel(loggingConfig.Level)
	if err != nil {
		return nil, err
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	if loggingConfig.Development {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}

	var encoder zapcore.Encoder
	switch loggingConfig.Encoding {
	case "console":
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	default:
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	// Logs go to stderr: stdout is reserved in case the daemon is ever run
	// under an editor that captures it.
	zapCore := zapcore.NewCore(encoder, zapcore.AddSync(os.Stderr), level)

	var logger *zap.Logger
	if loggingConfig.Development {
		logger = zap.New(zapCore, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	} else {
		logger = zap.New(zapCore)
	}

	return logger.Sugar(), nil
}
