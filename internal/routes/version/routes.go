package version

import (
	"os/exec"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/othello/internal/models"
)

var Version = models.VersionResponse{
	Commit:    buildCommit(),
	GoVersion: runtime.Version(),
}

// buildCommit prefers the revision stamped by the go tool and falls back to
// asking git, which covers `go run` from a checkout.
func buildCommit() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" && setting.Value != "" {
				return setting.Value
			}
		}
	}

	output, err := exec.Command("git", "rev-parse", "HEAD").Output()
	if err != nil {
		return "unknown"
	}
	return strings.TrimSpace(string(output))
}

func SetupRoutes(app *fiber.App) {
	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(Version)
	})
}
