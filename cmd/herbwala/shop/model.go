// Package shop implements the interactive terminal storefront: a bubbletea
// application dispatching pages off a typed route, with the cart, identity
// manager, and persisted store as injected state holders.
package shop

import (
	"context"
	"sync"
	"time"

	"herbwala/cmd/herbwala/ui"
	"herbwala/internal/cart"
	"herbwala/internal/config"
	"herbwala/internal/identity"
	"herbwala/internal/logging"
	"herbwala/internal/route"
	"herbwala/internal/store"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// Model is the main model for the interactive storefront
type Model struct {
	// Core state holders
	cfg      *config.Config
	nav      *route.Navigator
	cart     *cart.Cart
	identity *identity.Manager
	kv       *store.KV

	// UI Components
	styles   ui.Styles
	renderer *glamour.TermRenderer
	spinner  spinner.Model

	// Pages
	home     HomePageModel
	browse   BrowsePageModel
	product  ProductPageModel
	checkout CheckoutPageModel
	auth     AuthPageModel
	info     InfoPageModel

	// Goto bar (the fragment address line)
	gotoBar     textinput.Model
	gotoBarOpen bool

	// Config hot reload
	watcher *config.Watcher

	// Timers
	countdownTicking bool

	// Layout
	width  int
	height int
	ready  bool

	// Boot State
	isBooting bool

	// Route the auth page returns to on success
	authReturn route.Route

	// Scroll reset tracking
	seenRevision uint64

	// Shutdown coordination
	shutdownOnce *sync.Once
}

// Messages for tea updates
type (
	// bootDoneMsg delivers the opened store and hydrated identity manager.
	// kv is nil when the store could not be opened; the UI stays interactive
	// over an in-memory registry.
	bootDoneMsg struct {
		kv  *store.KV
		mgr *identity.Manager
		err error
	}

	// countdownTickMsg re-renders the home page countdown once per second.
	countdownTickMsg time.Time

	// slideTickMsg advances the product image slideshow. Ticks from a
	// previous page mount carry a stale generation and are dropped.
	slideTickMsg struct {
		generation uint64
	}

	// configReloadMsg carries a hot-reloaded config from the watcher.
	configReloadMsg *config.Config

	// watcherGoneMsg signals the reload channel closed.
	watcherGoneMsg struct{}

	// authSuccessMsg signals a completed login or registration.
	authSuccessMsg struct{}

	// linkLaunchedMsg reports the outcome of an external URL handoff.
	linkLaunchedMsg struct {
		err error
	}
)

// NewModel assembles the storefront model. configPath enables hot reload
// when non-empty; start is the initial route.
func NewModel(cfg *config.Config, configPath string, start route.Route) Model {
	styles := ui.NewStyles(ui.ThemeFromName(cfg.UI.Theme))
	renderer := newRenderer(styles, 80)

	nav := route.NewNavigator()
	if start != route.HomeRoute {
		nav.Visit(start)
	}

	c := cart.New()

	gotoBar := textinput.New()
	gotoBar.Placeholder = "#/shop"
	gotoBar.Prompt = "go: "
	gotoBar.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	var watcher *config.Watcher
	if configPath != "" {
		w, err := config.NewWatcher(configPath)
		if err != nil {
			logging.ConfigWarn("config watcher unavailable: %v", err)
		} else {
			watcher = w
		}
	}

	m := Model{
		cfg:          cfg,
		nav:          nav,
		cart:         c,
		styles:       styles,
		renderer:     renderer,
		spinner:      sp,
		gotoBar:      gotoBar,
		watcher:      watcher,
		isBooting:    true,
		authReturn:   route.HomeRoute,
		shutdownOnce: &sync.Once{},
	}

	m.home = NewHomePageModel(cfg, styles)
	m.browse = NewBrowsePageModel(cfg, styles)
	m.product = NewProductPageModel(styles, renderer)
	m.checkout = NewCheckoutPageModel(cfg, c, styles)
	m.auth = NewAuthPageModel(styles)
	m.info = NewInfoPageModel(cfg, styles, renderer)

	m.seenRevision = nav.Revision()

	return m
}

// newRenderer builds the markdown renderer for the active theme.
func newRenderer(styles ui.Styles, wrap int) *glamour.TermRenderer {
	if wrap < 20 {
		wrap = 20
	}
	var renderer *glamour.TermRenderer
	if styles.Theme.IsDark {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithAutoStyle(),
			glamour.WithWordWrap(wrap),
		)
	} else {
		renderer, _ = glamour.NewTermRenderer(
			glamour.WithStylePath("light"),
			glamour.WithWordWrap(wrap),
		)
	}
	return renderer
}

// Init starts the boot command, the spinner, and the config reload listener
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{
		m.spinner.Tick,
		performBoot(m.cfg),
	}
	if m.watcher != nil {
		cmds = append(cmds, m.waitForReload())
	}
	return tea.Batch(cmds...)
}

// waitForReload listens for hot-reloaded configs
func (m Model) waitForReload() tea.Cmd {
	return func() tea.Msg {
		cfg, ok := <-m.watcher.Reloads()
		if !ok {
			return watcherGoneMsg{}
		}
		return configReloadMsg(cfg)
	}
}

// tickCountdown drives the home page sale countdown once per second.
func (m Model) tickCountdown() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

// tickSlide schedules the next slideshow advance for the current product
// page mount.
func (m Model) tickSlide(generation uint64) tea.Cmd {
	return tea.Tick(m.cfg.GetSlideInterval(), func(time.Time) tea.Msg {
		return slideTickMsg{generation: generation}
	})
}

// Shutdown releases background resources. Safe to call multiple times.
func (m *Model) Shutdown() {
	m.shutdownOnce.Do(func() {
		if m.watcher != nil {
			m.watcher.Stop()
		}
		if m.kv != nil {
			if err := m.kv.Close(); err != nil {
				logging.StoreWarn("Close on shutdown: %v", err)
			}
		}
	})
}

// performShutdown is a value-receiver wrapper for Shutdown() callable from
// Update(). Safe because Shutdown uses sync.Once behind a pointer.
func (m Model) performShutdown() {
	modelPtr := &m
	modelPtr.Shutdown()
}

// Run starts the interactive storefront and blocks until quit.
func Run(cfg *config.Config, configPath, startFragment string) error {
	model := NewModel(cfg, configPath, route.Parse(startFragment))
	if model.watcher != nil {
		if err := model.watcher.Start(context.Background()); err != nil {
			logging.ConfigWarn("config watcher failed to start: %v", err)
		}
	}
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
