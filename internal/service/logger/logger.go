package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	AccessLogger *zap.Logger = zap.NewNop()
	DBLogger     *zap.Logger = zap.NewNop()
)

func newFileLogger(path string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "timestamp"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func InitLoggers(accessPath, dbPath string) error {
	var err error
	AccessLogger, err = newFileLogger(accessPath)
	if err != nil {
		return err
	}

	DBLogger, err = newFileLogger(dbPath)
	if err != nil {
		return err
	}

	return nil
}

func SyncLoggers() error {
	err := AccessLogger.Sync()
	if err != nil {
		return err
	}
	err = DBLogger.Sync()
	if err != nil {
		return err
	}
	return nil
}
