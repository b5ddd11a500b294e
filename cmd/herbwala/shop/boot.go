package shop

import (
	"context"
	"time"

	"herbwala/internal/config"
	"herbwala/internal/identity"
	"herbwala/internal/logging"
	"herbwala/internal/store"

	tea "github.com/charmbracelet/bubbletea"
)

// performBoot opens the persisted store and hydrates the identity manager
// off the event loop. A store that cannot be opened degrades to an
// in-memory registry: the storefront stays interactive, nothing is fatal
// after boot.
func performBoot(cfg *config.Config) tea.Cmd {
	return func() tea.Msg {
		timer := logging.StartTimer(logging.CategoryBoot, "Boot")
		defer timer.Stop()

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		kv, err := store.Open(cfg.DatabasePath())
		if err != nil {
			logging.BootError("store unavailable, falling back to in-memory state: %v", err)
			mgr := identity.NewManager(identity.NewMemoryRepository())
			if herr := mgr.Hydrate(ctx); herr != nil {
				logging.BootWarn("hydrate: %v", herr)
			}
			return bootDoneMsg{mgr: mgr, err: err}
		}

		mgr := identity.NewManager(store.NewIdentityRepository(kv))
		if err := mgr.Hydrate(ctx); err != nil {
			logging.BootWarn("hydrate: %v", err)
		}

		logging.Boot("Storefront ready (db=%s)", kv.Path())
		return bootDoneMsg{kv: kv, mgr: mgr}
	}
}
