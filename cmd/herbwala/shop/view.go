package shop

import (
	"fmt"

	"herbwala/internal/route"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// renderMarkdown renders markdown with panic recovery. Glamour can panic on
// malformed input; the plain text is always a safe fallback.
func renderMarkdown(r *glamour.TermRenderer, content string) (result string) {
	defer func() {
		if rec := recover(); rec != nil {
			result = content
		}
	}()

	if r != nil && content != "" {
		rendered, err := r.Render(content)
		if err == nil {
			return rendered
		}
	}
	return content
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	if m.isBooting {
		return m.renderBootScreen()
	}

	header := m.renderHeader()
	content := m.styles.Content.Render(m.pageView())
	footer := m.renderFooter()

	sections := []string{header, content}
	if m.gotoBarOpen {
		sections = append(sections, m.styles.URLBar.Render(m.gotoBar.View()))
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// pageView renders the page the navigator currently points at.
func (m Model) pageView() string {
	switch m.nav.Current().Page {
	case route.Shop:
		return m.browse.View()
	case route.Product:
		return m.product.View()
	case route.Checkout:
		return m.checkout.View()
	case route.Auth:
		return m.auth.View()
	case route.About, route.Contact, route.RefundPolicy, route.PrivacyPolicy, route.Terms:
		return m.info.View()
	default:
		return m.home.View()
	}
}

func (m Model) renderHeader() string {
	title := m.styles.Header.Render(" " + m.cfg.Shop.Name + " ")
	fragment := m.styles.URLBar.Render(m.nav.Fragment())

	snap := m.cart.Snapshot()
	cartBadge := m.styles.Badge.Render(fmt.Sprintf("Cart: %d", snap.ItemCount))

	who := m.styles.Muted.Render("guest")
	if m.identity != nil {
		if session, ok := m.identity.Current(); ok {
			who = m.styles.Success.Render(session.Name)
		}
	}

	headerLine := lipgloss.JoinHorizontal(
		lipgloss.Center,
		title,
		" ",
		fragment,
		"  ",
		cartBadge,
		"  ",
		who,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		headerLine,
		m.styles.RenderDivider(m.width),
	)
}

func (m Model) renderFooter() string {
	hotkeys := "s: shop | c: checkout | A: account | g: goto | [ ]: back/fwd | q: quit"

	// Page-specific additions the page body has no room for
	switch m.nav.Current().Page {
	case route.Home:
		hotkeys = "↑/↓: scroll | " + hotkeys
	case route.Product:
		hotkeys = "a: add | ←/→: images | " + hotkeys
	case route.Shop:
		hotkeys = "a: add | enter: open | " + hotkeys
	}

	help := m.styles.Footer.Render(hotkeys)
	return lipgloss.NewStyle().
		MarginTop(1).
		Render(help)
}

func (m Model) renderBootScreen() string {
	spin := m.spinner.View()
	title := m.styles.Header.Render(" " + m.cfg.Shop.Name + " ")
	subtitle := m.styles.Badge.Render("Opening the shop")

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"\n",
		spin,
		"\n",
		subtitle,
		m.styles.Muted.Render(m.cfg.Shop.Tagline),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}
