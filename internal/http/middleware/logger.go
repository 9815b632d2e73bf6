package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger writes one structured entry per request with the fields
// request_id, method, path, status and latency_ms. 5xx responses are logged at
// error level, 4xx at warn, everything else at info.
func Logger(log *zap.Logger) fiber.Handler {
	log = log.Named("http")

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			// The global ErrorHandler has not run yet.
			status = statusOf(err)
		}

		rid, _ := c.Locals(RequestIDLocalKey).(string)
		fields := []zap.Field{
			zap.String("request_id", rid),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Float64("latency_ms", float64(time.Since(start).Microseconds())/1000),
		}

		if ce := log.Check(levelFor(status), "request"); ce != nil {
			ce.Write(fields...)
		}
		return err
	}
}

func levelFor(status int) zapcore.Level {
	switch {
	case status >= fiber.StatusInternalServerError:
		return zapcore.ErrorLevel
	case status >= fiber.StatusBadRequest:
		return zapcore.WarnLevel
	default:
		return zapcore.InfoLevel
	}
}

func statusOf(err error) int {
	if fe, ok := err.(*fiber.Error); ok {
		return fe.Code
	}
	return fiber.StatusInternalServerError
}
