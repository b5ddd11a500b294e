package shop

import (
	"fmt"
	"strings"

	"herbwala/cmd/herbwala/ui"
	"herbwala/internal/catalog"
	"herbwala/internal/config"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// productItem adapts catalog.Product to list.Item
type productItem struct {
	product  catalog.Product
	currency string
}

func (i productItem) Title() string {
	title := i.product.Name + "  " + ui.Money(i.currency, i.product.Price)
	if i.product.Discounted() {
		title += "  SALE"
	}
	return title
}

func (i productItem) Description() string {
	return fmt.Sprintf("%s · %s · %s", i.product.Category, ui.Stars(i.product.Rating), ui.Truncate(i.product.Description, 60))
}

func (i productItem) FilterValue() string {
	return i.product.Name + " " + i.product.Category + " " + i.product.Description
}

// BrowsePageModel is the shop page: the full catalog as a filterable list
// with a category cycler.
type BrowsePageModel struct {
	styles     ui.Styles
	list       list.Model
	categories []string
	catIndex   int
	currency   string
	width      int
	height     int
}

// NewBrowsePageModel creates the shop page component.
func NewBrowsePageModel(cfg *config.Config, styles ui.Styles) BrowsePageModel {
	l := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	l.SetShowHelp(false)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.Title

	m := BrowsePageModel{
		styles:     styles,
		list:       l,
		categories: append([]string{"All"}, catalog.Categories()...),
		currency:   cfg.Shop.Currency,
	}
	m.rebuildItems()
	return m
}

// SetSize updates the list dimensions.
func (m *BrowsePageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.list.SetSize(w, h)
}

// SetConfig swaps in a hot-reloaded config.
func (m *BrowsePageModel) SetConfig(cfg *config.Config) {
	if cfg.Shop.Currency != m.currency {
		m.currency = cfg.Shop.Currency
		m.rebuildItems()
	}
}

// GotoTop resets the cursor to the first product.
func (m *BrowsePageModel) GotoTop() {
	m.list.ResetFilter()
	m.list.Select(0)
}

// Category returns the active category name.
func (m *BrowsePageModel) Category() string {
	return m.categories[m.catIndex]
}

// SelectedProduct returns the product under the cursor.
func (m *BrowsePageModel) SelectedProduct() (catalog.Product, bool) {
	if item, ok := m.list.SelectedItem().(productItem); ok {
		return item.product, true
	}
	return catalog.Product{}, false
}

// Filtering reports whether the list filter input is capturing keys.
func (m *BrowsePageModel) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

// rebuildItems reloads the list for the active category.
func (m *BrowsePageModel) rebuildItems() {
	var products []catalog.Product
	if m.catIndex == 0 {
		products = catalog.All()
	} else {
		products = catalog.ByCategory(m.Category())
	}

	items := make([]list.Item, 0, len(products))
	for _, p := range products {
		items = append(items, productItem{product: p, currency: m.currency})
	}
	m.list.SetItems(items)
	m.list.Select(0)
	m.list.Title = fmt.Sprintf("Shop · %s (%d)", m.Category(), len(products))
}

// Update handles messages. Left/right cycle the category when the filter
// input is not active; everything else goes to the list.
func (m BrowsePageModel) Update(msg tea.Msg) (BrowsePageModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch key.String() {
		case "left", "h":
			m.catIndex = (m.catIndex + len(m.categories) - 1) % len(m.categories)
			m.rebuildItems()
			return m, nil
		case "right", "l":
			m.catIndex = (m.catIndex + 1) % len(m.categories)
			m.rebuildItems()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View renders the page.
func (m BrowsePageModel) View() string {
	help := m.styles.Muted.Render(" ←/→: category · /: search · enter: view product · a: add to cart")
	return strings.TrimRight(m.list.View(), "\n") + "\n" + help
}
