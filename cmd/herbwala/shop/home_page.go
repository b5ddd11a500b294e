package shop

import (
	"fmt"
	"strings"
	"time"

	"herbwala/cmd/herbwala/ui"
	"herbwala/internal/catalog"
	"herbwala/internal/config"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HomePageModel renders the storefront landing page: hero, sale countdown,
// and the featured (discounted) products.
type HomePageModel struct {
	cfg      *config.Config
	styles   ui.Styles
	viewport viewport.Model
	now      time.Time
	width    int
	height   int
}

// NewHomePageModel creates the home page component.
func NewHomePageModel(cfg *config.Config, styles ui.Styles) HomePageModel {
	vp := viewport.New(80, 20)
	m := HomePageModel{
		cfg:      cfg,
		styles:   styles,
		viewport: vp,
		now:      time.Now(),
	}
	m.UpdateContent()
	return m
}

// SetSize updates the size of the viewport.
func (m *HomePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.UpdateContent()
}

// SetConfig swaps in a hot-reloaded config.
func (m *HomePageModel) SetConfig(cfg *config.Config) {
	m.cfg = cfg
	m.UpdateContent()
}

// SetNow advances the countdown clock.
func (m *HomePageModel) SetNow(t time.Time) {
	m.now = t
	m.UpdateContent()
}

// GotoTop resets the scroll position.
func (m *HomePageModel) GotoTop() {
	m.viewport.GotoTop()
}

// UpdateContent refreshes the viewport content.
func (m *HomePageModel) UpdateContent() {
	var sb strings.Builder

	hero := m.styles.Title.Render(m.cfg.Shop.Name) + "\n" +
		m.styles.Subtitle.Render(m.cfg.Shop.Tagline)
	sb.WriteString(m.styles.Card.Render(hero))
	sb.WriteString("\n\n")

	if banner := m.renderPromo(); banner != "" {
		sb.WriteString(banner)
		sb.WriteString("\n\n")
	}

	featured := catalog.Featured()
	if len(featured) > 0 {
		sb.WriteString(m.styles.Title.Render("Featured Deals"))
		sb.WriteString("\n")
		for _, p := range featured {
			sb.WriteString(m.renderFeatured(p))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(m.styles.Muted.Render("Press s to browse the shop, g to jump to any page."))

	m.viewport.SetContent(sb.String())
}

// renderPromo builds the sale banner. Past the deadline the countdown
// freezes at zero rather than going negative.
func (m *HomePageModel) renderPromo() string {
	deadline := m.cfg.GetPromoDeadline()
	if deadline.IsZero() {
		return ""
	}

	remaining := deadline.Sub(m.now)
	countdown := ui.FormatCountdown(remaining)

	headline := m.styles.SaleBadge.Render(" " + m.cfg.Promo.Headline + " ")
	clock := m.styles.Bold.Render("Ends in " + countdown)
	return headline + "  " + clock
}

func (m *HomePageModel) renderFeatured(p catalog.Product) string {
	price := m.styles.Price.Render(ui.Money(m.cfg.Shop.Currency, p.Price))
	old := m.styles.OldPrice.Render(ui.Money(m.cfg.Shop.Currency, p.OriginalPrice))
	pct := int((1-p.Price/p.OriginalPrice)*100 + 0.5)
	badge := m.styles.SaleBadge.Render(fmt.Sprintf("-%d%%", pct))
	return fmt.Sprintf("  %s  %s %s %s", p.Name, price, old, badge)
}

// Update handles messages (viewport scrolling).
func (m HomePageModel) Update(msg tea.Msg) (HomePageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m HomePageModel) View() string {
	return m.viewport.View()
}
