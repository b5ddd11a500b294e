package shop

import (
	"strings"
	"time"

	"herbwala/internal/config"
	"herbwala/internal/logging"
	"herbwala/internal/route"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case spinner.TickMsg:
		if m.isBooting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case bootDoneMsg:
		m.isBooting = false
		m.kv = msg.kv
		m.identity = msg.mgr
		m.auth.SetManager(msg.mgr)
		if msg.err != nil {
			logging.BootWarn("accounts and sessions will not persist this run")
		}
		var cmd tea.Cmd
		if m.nav.Current().Page == route.Home && !m.countdownTicking {
			m.countdownTicking = true
			cmd = m.tickCountdown()
		}
		return m, cmd

	case countdownTickMsg:
		// The countdown only runs while the home page is showing; it is
		// re-armed on the next visit.
		if m.nav.Current().Page != route.Home {
			m.countdownTicking = false
			return m, nil
		}
		m.home.SetNow(time.Time(msg))
		return m, m.tickCountdown()

	case slideTickMsg:
		if msg.generation != m.product.Generation() {
			return m, nil
		}
		if m.nav.Current().Page != route.Product || !m.product.HasSlideshow() {
			return m, nil
		}
		m.product.AdvanceSlide()
		return m, m.tickSlide(msg.generation)

	case configReloadMsg:
		cfg := (*config.Config)(msg)
		m.cfg = cfg
		m.home.SetConfig(cfg)
		m.browse.SetConfig(cfg)
		m.product.SetConfig(cfg)
		m.checkout.SetConfig(cfg)
		m.info.SetConfig(cfg)
		logging.Config("Applied hot-reloaded configuration")
		if m.watcher == nil {
			return m, nil
		}
		return m, m.waitForReload()

	case watcherGoneMsg:
		return m, nil

	case authSuccessMsg:
		return m.navigate(m.authReturn)

	case linkLaunchedMsg:
		m.checkout.SetLaunchOutcome(msg.err)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateActivePage(msg)
}

// handleResize recomputes the layout and rebuilds the markdown renderer for
// the new wrap width.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.ready = true

	// Header line + divider, then footer margin + help line
	headerHeight := 2
	footerHeight := 2
	contentHeight := msg.Height - headerHeight - footerHeight
	if m.gotoBarOpen {
		contentHeight--
	}
	if contentHeight < 5 {
		contentHeight = 5
	}
	contentWidth := msg.Width - 4
	if contentWidth < 20 {
		contentWidth = 20
	}

	m.renderer = newRenderer(m.styles, contentWidth-4)
	m.product.SetRenderer(m.renderer)
	m.info.SetRenderer(m.renderer)

	m.home.SetSize(contentWidth, contentHeight)
	m.browse.SetSize(contentWidth, contentHeight)
	m.product.SetSize(contentWidth, contentHeight)
	m.checkout.SetSize(contentWidth, contentHeight)
	m.auth.SetSize(contentWidth, contentHeight)
	m.info.SetSize(contentWidth, contentHeight)

	barWidth := msg.Width - 10
	if barWidth < 10 {
		barWidth = 10
	}
	m.gotoBar.Width = barWidth

	return m, nil
}

// typingActive reports whether a text field currently owns the keyboard, in
// which case global shortcuts stay out of the way.
func (m Model) typingActive() bool {
	if m.gotoBarOpen {
		return true
	}
	switch m.nav.Current().Page {
	case route.Checkout:
		return m.checkout.Typing()
	case route.Auth:
		return m.auth.Typing()
	case route.Shop:
		return m.browse.Filtering()
	}
	return false
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The goto bar captures all input while open
	if m.gotoBarOpen {
		switch msg.Type {
		case tea.KeyEsc:
			m.gotoBarOpen = false
			m.gotoBar.Blur()
			m.gotoBar.SetValue("")
			return m, nil
		case tea.KeyEnter:
			raw := strings.TrimSpace(m.gotoBar.Value())
			m.gotoBarOpen = false
			m.gotoBar.Blur()
			m.gotoBar.SetValue("")
			if raw == "" {
				return m, nil
			}
			return m.navigate(route.Parse(normalizeFragment(raw)))
		}
		var cmd tea.Cmd
		m.gotoBar, cmd = m.gotoBar.Update(msg)
		return m, cmd
	}

	if m.typingActive() {
		// Ctrl+C quits even while a form owns the keyboard
		if msg.Type == tea.KeyCtrlC {
			m.performShutdown()
			return m, tea.Quit
		}
		return m.updateActivePage(msg)
	}

	// Global keybindings
	switch msg.String() {
	case "ctrl+c", "q":
		m.performShutdown()
		return m, tea.Quit
	case "g":
		m.gotoBarOpen = true
		m.gotoBar.SetValue("")
		return m, m.gotoBar.Focus()
	case "[":
		prev := m.nav.Current()
		if _, ok := m.nav.Back(); ok {
			return m.afterRouteChange(prev)
		}
		return m, nil
	case "]":
		prev := m.nav.Current()
		if _, ok := m.nav.Forward(); ok {
			return m.afterRouteChange(prev)
		}
		return m, nil
	case "s":
		return m.navigate(route.Route{Page: route.Shop})
	case "c":
		return m.navigate(route.Route{Page: route.Checkout})
	case "A":
		return m.navigate(route.Route{Page: route.Auth})
	}

	// Page-specific keys
	switch m.nav.Current().Page {
	case route.Shop:
		switch msg.String() {
		case "enter":
			if p, ok := m.browse.SelectedProduct(); ok {
				return m.navigate(route.ProductRoute(p.ID))
			}
			return m, nil
		case "a":
			if p, ok := m.browse.SelectedProduct(); ok {
				m.cart.Add(p)
			}
			return m, nil
		}

	case route.Product:
		switch msg.String() {
		case "a":
			if p, ok := m.product.Product(); ok {
				snap := m.cart.Add(p)
				for _, li := range snap.Items {
					if li.Product.ID == p.ID {
						m.product.FlashAdded(li.Quantity)
						break
					}
				}
			}
			return m, nil
		case "left":
			m.product.PrevSlide()
			return m, nil
		case "right":
			m.product.AdvanceSlide()
			return m, nil
		}
	}

	return m.updateActivePage(msg)
}

// updateActivePage forwards a message to the page the navigator points at.
func (m Model) updateActivePage(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.nav.Current().Page {
	case route.Shop:
		m.browse, cmd = m.browse.Update(msg)
	case route.Product:
		m.product, cmd = m.product.Update(msg)
	case route.Checkout:
		m.checkout, cmd = m.checkout.Update(msg)
	case route.Auth:
		m.auth, cmd = m.auth.Update(msg)
	case route.About, route.Contact, route.RefundPolicy, route.PrivacyPolicy, route.Terms:
		m.info, cmd = m.info.Update(msg)
	default:
		m.home, cmd = m.home.Update(msg)
	}
	return m, cmd
}

// navigate visits a route and runs the mount actions for the page change.
func (m Model) navigate(r route.Route) (tea.Model, tea.Cmd) {
	prev := m.nav.Current()
	m.nav.Visit(r)
	return m.afterRouteChange(prev)
}

// afterRouteChange runs page mount actions after the navigator moved. A
// revision check makes same-route visits a no-op.
func (m Model) afterRouteChange(prev route.Route) (tea.Model, tea.Cmd) {
	if m.nav.Revision() == m.seenRevision {
		return m, nil
	}
	m.seenRevision = m.nav.Revision()
	cur := m.nav.Current()
	logging.Nav("%s -> %s", prev.Fragment(), cur.Fragment())

	// Confirmation receipts live only until the shopper moves on
	if prev.Page == route.Checkout && cur.Page != route.Checkout {
		m.checkout.ClearConfirmation()
	}

	var cmd tea.Cmd
	switch cur.Page {
	case route.Home:
		m.home.SetNow(time.Now())
		m.home.GotoTop()
		if !m.countdownTicking {
			m.countdownTicking = true
			cmd = m.tickCountdown()
		}
	case route.Shop:
		m.browse.GotoTop()
	case route.Product:
		m.product.SetProduct(cur.ProductID)
		m.product.GotoTop()
		if m.product.HasSlideshow() {
			cmd = m.tickSlide(m.product.Generation())
		}
	case route.Checkout:
		m.checkout.Refresh()
		m.checkout.GotoTop()
	case route.Auth:
		if prev.Page != route.Auth {
			m.authReturn = prev
		}
		m.auth.Mount()
	case route.About, route.Contact, route.RefundPolicy, route.PrivacyPolicy, route.Terms:
		m.info.SetPage(cur.Page)
	}

	return m, cmd
}

// normalizeFragment turns loose goto-bar input like "shop" into "/shop" so
// the route grammar accepts it.
func normalizeFragment(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return s
	}
	if !strings.HasPrefix(s, "#") && !strings.HasPrefix(s, "/") {
		s = "/" + s
	}
	return s
}
