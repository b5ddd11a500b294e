package shop

import (
	"fmt"
	"strings"

	"herbwala/cmd/herbwala/ui"
	"herbwala/internal/catalog"
	"herbwala/internal/config"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// ProductPageModel is the product detail page: price block, rating, image
// slideshow, benefits, and the markdown description.
type ProductPageModel struct {
	styles   ui.Styles
	renderer *glamour.TermRenderer
	viewport viewport.Model
	currency string

	product    catalog.Product
	found      bool
	slideIndex int

	// generation invalidates slideshow ticks from earlier mounts
	generation uint64

	flashNote string
	width     int
	height    int
}

// NewProductPageModel creates the product page component.
func NewProductPageModel(styles ui.Styles, renderer *glamour.TermRenderer) ProductPageModel {
	vp := viewport.New(80, 20)
	return ProductPageModel{
		styles:   styles,
		renderer: renderer,
		viewport: vp,
		currency: "Rs",
	}
}

// SetSize updates the size of the viewport.
func (m *ProductPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.UpdateContent()
}

// SetRenderer swaps in a rebuilt markdown renderer after a resize.
func (m *ProductPageModel) SetRenderer(r *glamour.TermRenderer) {
	m.renderer = r
	m.UpdateContent()
}

// SetConfig swaps in a hot-reloaded config.
func (m *ProductPageModel) SetConfig(cfg *config.Config) {
	m.currency = cfg.Shop.Currency
	m.UpdateContent()
}

// SetProduct mounts the page for a product id. Unknown ids render the
// not-found state. Each mount starts a fresh slideshow generation so ticks
// scheduled for the previous mount die quietly.
func (m *ProductPageModel) SetProduct(id int) {
	m.product, m.found = catalog.ByID(id)
	m.slideIndex = 0
	m.flashNote = ""
	m.generation++
	m.UpdateContent()
}

// Generation identifies the current mount for slideshow ticks.
func (m *ProductPageModel) Generation() uint64 {
	return m.generation
}

// HasSlideshow reports whether auto-advance ticks are worth scheduling.
func (m *ProductPageModel) HasSlideshow() bool {
	return m.found && len(m.product.ImageURLs) > 1
}

// AdvanceSlide moves to the next image, wrapping around.
func (m *ProductPageModel) AdvanceSlide() {
	if !m.HasSlideshow() {
		return
	}
	m.slideIndex = (m.slideIndex + 1) % len(m.product.ImageURLs)
	m.UpdateContent()
}

// PrevSlide moves to the previous image, wrapping around.
func (m *ProductPageModel) PrevSlide() {
	if !m.HasSlideshow() {
		return
	}
	m.slideIndex = (m.slideIndex + len(m.product.ImageURLs) - 1) % len(m.product.ImageURLs)
	m.UpdateContent()
}

// Product returns the mounted product.
func (m *ProductPageModel) Product() (catalog.Product, bool) {
	return m.product, m.found
}

// FlashAdded shows a transient added-to-cart note until the next mount.
func (m *ProductPageModel) FlashAdded(qty int) {
	m.flashNote = fmt.Sprintf("Added to cart (%d in cart)", qty)
	m.UpdateContent()
}

// GotoTop resets the scroll position.
func (m *ProductPageModel) GotoTop() {
	m.viewport.GotoTop()
}

// UpdateContent refreshes the viewport content.
func (m *ProductPageModel) UpdateContent() {
	if !m.found {
		body := m.styles.Title.Render("Product not found") + "\n" +
			m.styles.Body.Render("This product does not exist or is no longer stocked.") + "\n\n" +
			m.styles.Muted.Render("Press s to go back to the shop.")
		m.viewport.SetContent(m.styles.Card.Render(body))
		return
	}

	p := m.product
	var sb strings.Builder

	sb.WriteString(m.styles.Title.Render(p.Name))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render(p.Category) + "  " + m.styles.Rating.Render(ui.Stars(p.Rating)))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Price.Render(ui.Money(m.currency, p.Price)))
	if p.Discounted() {
		pct := int((1-p.Price/p.OriginalPrice)*100 + 0.5)
		sb.WriteString("  " + m.styles.OldPrice.Render(ui.Money(m.currency, p.OriginalPrice)))
		sb.WriteString("  " + m.styles.SaleBadge.Render(fmt.Sprintf("-%d%%", pct)))
	}
	sb.WriteString("\n")

	if m.flashNote != "" {
		sb.WriteString(m.styles.Success.Render(m.flashNote) + "\n")
	}
	sb.WriteString("\n")

	sb.WriteString(m.renderSlideshow())
	sb.WriteString("\n")

	if len(p.Benefits) > 0 {
		sb.WriteString(m.styles.Bold.Render("Benefits"))
		sb.WriteString("\n")
		for _, b := range p.Benefits {
			sb.WriteString("  • " + b + "\n")
		}
		sb.WriteString("\n")
	}

	sb.WriteString(renderMarkdown(m.renderer, p.Description))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("a: add to cart · ←/→: images · s: shop · c: checkout"))

	m.viewport.SetContent(sb.String())
}

// renderSlideshow draws the image frame: a terminal cannot show the photos,
// so it presents the current image URL with a position indicator.
func (m *ProductPageModel) renderSlideshow() string {
	urls := m.product.ImageURLs
	if len(urls) == 0 {
		if m.product.ImageURL == "" {
			return ""
		}
		urls = []string{m.product.ImageURL}
	}

	dots := make([]string, len(urls))
	for i := range urls {
		if i == m.slideIndex {
			dots[i] = "●"
		} else {
			dots[i] = "○"
		}
	}

	frame := m.styles.Muted.Render(fmt.Sprintf("Image %d/%d", m.slideIndex+1, len(urls))) + "\n" +
		m.styles.Info.Render(urls[m.slideIndex]) + "\n" +
		m.styles.Muted.Render(strings.Join(dots, " "))
	return m.styles.Card.Render(frame)
}

// Update handles messages (viewport scrolling).
func (m ProductPageModel) Update(msg tea.Msg) (ProductPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m ProductPageModel) View() string {
	return m.viewport.View()
}
