package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

const accessLogFormat = "${time} | ${status} | ${latency} | ${size} | ${method} | ${path}\n"

// Logging writes one access line per request. It stays silent when the
// default slog logger does not have info enabled, so LOG_LEVEL=warn also
// mutes request logs.
func Logging() fiber.Handler {
	return logger.New(logger.Config{
		Next: func(_ *fiber.Ctx) bool {
			return !slog.Default().Enabled(context.Background(), slog.LevelInfo)
		},
		Format:     accessLogFormat,
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Local",
		CustomTags: map[string]logger.LogFunc{
			"latency": func(output logger.Buffer, _ *fiber.Ctx, data *logger.Data, _ string) (int, error) {
				latency := float64(data.Stop.Sub(data.Start).Nanoseconds()) / float64(time.Millisecond)
				return fmt.Fprintf(output, "%6.1fms", latency)
			},
			"size": func(output logger.Buffer, c *fiber.Ctx, _ *logger.Data, _ string) (int, error) {
				return fmt.Fprintf(output, "%6dB", len(c.Response().Body()))
			},
		},
	})
}
