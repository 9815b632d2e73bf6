// Package logging builds the zap logger shared by every layer of the service.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"barcodeapi/internal/config"
)

// New returns a JSON production logger, or a console development logger when
// Format is "console". Level accepts zap level names (debug, info, warn, error).
func New(c config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", c.Level, err)
	}

	var zc zap.Config
	switch strings.ToLower(c.Format) {
	case "", "json":
		zc = zap.NewProductionConfig()
		zc.EncoderConfig.TimeKey = "ts"
		zc.EncoderConfig.EncodeTime = zapcore.RFC3339NanoTimeEncoder
	case "console":
		zc = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format %q", c.Format)
	}
	zc.Level = zap.NewAtomicLevelAt(level)

	return zc.Build()
}
