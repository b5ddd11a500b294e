package shop

import (
	"context"
	"fmt"
	"strings"
	"time"

	"herbwala/cmd/herbwala/ui"
	"herbwala/internal/cart"
	"herbwala/internal/checkout"
	"herbwala/internal/config"
	"herbwala/internal/logging"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// checkoutFocus selects which half of the page owns the keyboard.
type checkoutFocus int

const (
	focusCart checkoutFocus = iota
	focusForm
)

// Billing form field order.
const (
	fieldName = iota
	fieldPhone
	fieldEmail
	fieldAddress
	fieldCity
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{"Name*", "Phone*", "Email", "Address*", "City*", "Notes"}

// CheckoutPageModel is the checkout page: editable cart lines, the billing
// form, and the two dispatch actions. After a dispatch it shows the order
// confirmation until the user navigates away.
type CheckoutPageModel struct {
	cfg      *config.Config
	cart     *cart.Cart
	launcher *checkout.Launcher
	styles   ui.Styles

	snap   cart.Snapshot
	cursor int

	focus      checkoutFocus
	inputs     [fieldCount]textinput.Model
	focusIndex int

	confirmation *checkout.Confirmation
	formError    string
	launchNote   string

	width  int
	height int
}

// NewCheckoutPageModel creates the checkout page component.
func NewCheckoutPageModel(cfg *config.Config, c *cart.Cart, styles ui.Styles) CheckoutPageModel {
	m := CheckoutPageModel{
		cfg:      cfg,
		cart:     c,
		launcher: checkout.NewLauncher(),
		styles:   styles,
	}

	placeholders := [fieldCount]string{
		"Kiran Baig", "0300 1234567", "you@example.com (optional)",
		"House, street, area", "Lahore", "delivery instructions (optional)",
	}
	for i := 0; i < fieldCount; i++ {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.Prompt = ""
		ti.CharLimit = 120
		ti.Width = 36
		m.inputs[i] = ti
	}

	m.Refresh()
	return m
}

// SetSize records the page dimensions.
func (m *CheckoutPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	fieldWidth := w - 14
	if fieldWidth > 48 {
		fieldWidth = 48
	}
	if fieldWidth < 16 {
		fieldWidth = 16
	}
	for i := range m.inputs {
		m.inputs[i].Width = fieldWidth
	}
}

// SetConfig swaps in a hot-reloaded config so dispatch targets stay current.
func (m *CheckoutPageModel) SetConfig(cfg *config.Config) {
	m.cfg = cfg
}

// Refresh re-reads the cart snapshot, clamping the cursor.
func (m *CheckoutPageModel) Refresh() {
	m.snap = m.cart.Snapshot()
	if m.cursor >= len(m.snap.Items) {
		m.cursor = len(m.snap.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ClearConfirmation drops the receipt when the user navigates away.
func (m *CheckoutPageModel) ClearConfirmation() {
	m.confirmation = nil
	m.launchNote = ""
	m.formError = ""
}

// GotoTop is a no-op; the page renders without an inner viewport.
func (m *CheckoutPageModel) GotoTop() {}

// Typing reports whether a billing field is capturing keystrokes.
func (m *CheckoutPageModel) Typing() bool {
	return m.focus == focusForm
}

// SetLaunchOutcome records the external handler result for display.
func (m *CheckoutPageModel) SetLaunchOutcome(err error) {
	if err != nil {
		m.launchNote = "Could not open the external app. The order summary was composed; check your URL handler."
	}
}

// billing collects the form values.
func (m *CheckoutPageModel) billing() checkout.BillingDetails {
	return checkout.BillingDetails{
		Name:    strings.TrimSpace(m.inputs[fieldName].Value()),
		Phone:   strings.TrimSpace(m.inputs[fieldPhone].Value()),
		Email:   strings.TrimSpace(m.inputs[fieldEmail].Value()),
		Address: strings.TrimSpace(m.inputs[fieldAddress].Value()),
		City:    strings.TrimSpace(m.inputs[fieldCity].Value()),
		Notes:   strings.TrimSpace(m.inputs[fieldNotes].Value()),
	}
}

// dispatch composes the order, freezes the confirmation, clears the cart,
// and hands the deep link to the OS handler in the background.
func (m *CheckoutPageModel) dispatch(viaEmail bool) tea.Cmd {
	snap := m.cart.Snapshot()
	if snap.Empty() {
		m.formError = "Your cart is empty."
		return nil
	}

	b := m.billing()
	if b.Name == "" || b.Phone == "" || b.Address == "" || b.City == "" {
		m.formError = "Name, phone, address and city are required."
		return nil
	}

	message := checkout.ComposeMessage(b, snap)
	var link string
	if viaEmail {
		if m.cfg.Contact.OrderEmail == "" {
			m.formError = "No order email configured."
			return nil
		}
		link = checkout.MailtoLink(m.cfg.Contact.OrderEmail, "New Order", message)
	} else {
		if m.cfg.Contact.WhatsApp == "" {
			m.formError = "No WhatsApp number configured."
			return nil
		}
		link = checkout.WhatsAppLink(m.cfg.Contact.WhatsApp, message)
	}

	conf := checkout.NewConfirmation(b, snap)
	m.confirmation = &conf
	m.formError = ""
	m.launchNote = ""
	m.cart.Clear()
	m.Refresh()

	launcher := m.launcher
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		err := launcher.Open(ctx, link)
		if err != nil {
			logging.CheckoutWarn("deep link handoff failed: %v", err)
		}
		return linkLaunchedMsg{err: err}
	}
}

// focusField moves form focus to index i.
func (m *CheckoutPageModel) focusField(i int) {
	m.focusIndex = (i + fieldCount) % fieldCount
	for j := range m.inputs {
		if j == m.focusIndex {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
}

// blurForm returns the keyboard to the cart lines.
func (m *CheckoutPageModel) blurForm() {
	m.focus = focusCart
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
}

// Update handles messages.
func (m CheckoutPageModel) Update(msg tea.Msg) (CheckoutPageModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	// A visible confirmation swallows everything except navigation keys,
	// which the parent already handled.
	if m.confirmation != nil {
		return m, nil
	}

	if m.focus == focusForm {
		return m.updateForm(key)
	}
	return m.updateCart(key)
}

func (m CheckoutPageModel) updateCart(key tea.KeyMsg) (CheckoutPageModel, tea.Cmd) {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.snap.Items)-1 {
			m.cursor++
		}
	case "+", "=":
		if item, ok := m.selectedLine(); ok {
			m.snap = m.cart.SetQuantity(item.Product.ID, item.Quantity+1)
		}
	case "-", "_":
		if item, ok := m.selectedLine(); ok {
			m.snap = m.cart.SetQuantity(item.Product.ID, item.Quantity-1)
			m.Refresh()
		}
	case "x", "delete", "backspace":
		if item, ok := m.selectedLine(); ok {
			m.snap = m.cart.Remove(item.Product.ID)
			m.Refresh()
		}
	case "i", "f", "tab":
		m.focus = focusForm
		m.focusField(m.focusIndex)
	case "w":
		return m, m.dispatch(false)
	case "e":
		return m, m.dispatch(true)
	}
	return m, nil
}

func (m CheckoutPageModel) updateForm(key tea.KeyMsg) (CheckoutPageModel, tea.Cmd) {
	switch key.Type {
	case tea.KeyEsc:
		m.blurForm()
		return m, nil
	case tea.KeyTab, tea.KeyDown:
		m.focusField(m.focusIndex + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusField(m.focusIndex - 1)
		return m, nil
	case tea.KeyEnter:
		if m.focusIndex == fieldCount-1 {
			m.blurForm()
			return m, nil
		}
		m.focusField(m.focusIndex + 1)
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(key)
	return m, cmd
}

func (m *CheckoutPageModel) selectedLine() (cart.LineItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.snap.Items) {
		return cart.LineItem{}, false
	}
	return m.snap.Items[m.cursor], true
}

// View renders the page.
func (m CheckoutPageModel) View() string {
	if m.confirmation != nil {
		return m.renderConfirmation()
	}

	if m.snap.Empty() {
		body := m.styles.Title.Render("Checkout") + "\n" +
			m.styles.Body.Render("Your cart is empty.") + "\n\n" +
			m.styles.Muted.Render("Press s to browse the shop.")
		return m.styles.Card.Render(body)
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Title.Render("Checkout"))
	sb.WriteString("\n")

	for i, item := range m.snap.Items {
		marker := "  "
		line := fmt.Sprintf("%-34s x%-3d %12s",
			ui.Truncate(item.Product.Name, 34), item.Quantity,
			ui.Money(m.cfg.Shop.Currency, item.Total()))
		if i == m.cursor && m.focus == focusCart {
			marker = "› "
			line = m.styles.Bold.Render(line)
		} else {
			line = m.styles.Body.Render(line)
		}
		sb.WriteString(marker + line + "\n")
	}

	sb.WriteString("\n")
	sb.WriteString(m.styles.Bold.Render(fmt.Sprintf("Subtotal (%d items): %s",
		m.snap.ItemCount, ui.Money(m.cfg.Shop.Currency, m.snap.Subtotal))))
	sb.WriteString("\n\n")

	sb.WriteString(m.styles.Title.Render("Billing Details"))
	sb.WriteString("\n")
	for i := range m.inputs {
		label := m.styles.FormLabel.Render(fmt.Sprintf("%-9s", fieldLabels[i]))
		sb.WriteString(label + " " + m.inputs[i].View() + "\n")
	}

	if m.formError != "" {
		sb.WriteString("\n" + m.styles.FormError.Render(m.formError) + "\n")
	}

	sb.WriteString("\n")
	if m.focus == focusForm {
		sb.WriteString(m.styles.Muted.Render(" tab/↑↓: fields · esc: back to cart"))
	} else {
		sb.WriteString(m.styles.Muted.Render(" ↑↓: select line · +/-: quantity · x: remove · f: edit billing · w: order via WhatsApp · e: order via email"))
	}

	return sb.String()
}

func (m CheckoutPageModel) renderConfirmation() string {
	c := m.confirmation
	var sb strings.Builder

	sb.WriteString(m.styles.Success.Render("Order placed"))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Muted.Render("Reference ") + m.styles.Bold.Render(c.Ref))
	sb.WriteString("\n")
	sb.WriteString(m.styles.Muted.Render("Placed at ") + m.styles.Body.Render(c.PlacedAt.Format("2006-01-02 15:04")))
	sb.WriteString("\n\n")

	for _, item := range c.Items {
		sb.WriteString(fmt.Sprintf("  %s x%d  %s\n",
			item.Product.Name, item.Quantity, ui.Money(m.cfg.Shop.Currency, item.Total())))
	}
	sb.WriteString("\n")
	sb.WriteString(m.styles.Bold.Render("Total: " + ui.Money(m.cfg.Shop.Currency, c.Total)))
	sb.WriteString("\n\n")
	sb.WriteString(m.styles.Body.Render(fmt.Sprintf("Thank you, %s. We will confirm your order shortly.", c.Billing.Name)))

	if m.launchNote != "" {
		sb.WriteString("\n" + m.styles.Warning.Render(m.launchNote))
	}

	sb.WriteString("\n\n" + m.styles.Muted.Render("Press s to keep shopping."))

	return m.styles.Card.Render(sb.String())
}
