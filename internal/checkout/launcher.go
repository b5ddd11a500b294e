package checkout

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"herbwala/internal/logging"
)

// Launcher hands a composed deep link to the OS default URL handler. The
// handler forks the browser or mail client and exits; the shop never waits
// on the actual conversation.
type Launcher struct {
	goos string
}

func NewLauncher() *Launcher {
	return &Launcher{goos: runtime.GOOS}
}

// Open launches the platform URL handler for rawURL. The handlers exit as
// soon as they hand off, so callers supply a short timeout context.
func (l *Launcher) Open(ctx context.Context, rawURL string) error {
	name, args := l.command()
	args = append(args, rawURL)

	logging.Checkout("Handing deep link to %s (%d bytes)", name, len(rawURL))

	cmd := exec.CommandContext(ctx, name, args...)
	if err := cmd.Run(); err != nil {
		logging.CheckoutError("URL handler %s failed: %v", name, err)
		return fmt.Errorf("launching %s: %w", name, err)
	}
	return nil
}

func (l *Launcher) command() (string, []string) {
	switch l.goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}
