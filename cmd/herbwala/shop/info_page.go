package shop

import (
	"fmt"

	"herbwala/cmd/herbwala/ui"
	"herbwala/internal/config"
	"herbwala/internal/route"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

const aboutContent = `# About Herb Wala

Herb Wala started as a single stall in Rawalpindi's Raja Bazaar and now
ships pure herbal products across Pakistan. We source directly from
growers and harvesters we know by name.

## What we stand for

- **Purity first.** No fillers, no artificial colors, no shortcuts.
  Every batch is lab tested before it reaches a shelf.
- **Direct sourcing.** Shilajit from Gilgit-Baltistan, ashwagandha from
  certified organic farms, honey from the Sidr orchards of Karak.
- **Fair prices.** Cutting out middlemen keeps quality up and prices
  honest.

## How ordering works

Browse the shop, fill your cart, and check out. Your order summary is
handed to WhatsApp or email so a real person confirms stock, delivery
time, and payment with you directly. No card details ever touch this
app.`

const contactContentTemplate = `# Contact Us

We answer fastest on WhatsApp, usually within the hour during business
hours (Mon-Sat, 10am-8pm PKT).

| Channel  | Address |
|----------|---------|
| WhatsApp | %s |
| Email    | %s |

## Wholesale and bulk orders

For orders above 5 kg or retail partnerships, mention **wholesale** in
your message and our sourcing team will follow up with rates.`

const refundPolicyContent = `# Refund Policy

We want you to be fully satisfied with every purchase.

## Returns

Unopened products in original packaging can be returned within **7
days** of delivery. Contact us on WhatsApp with your order reference to
arrange a pickup.

## Refunds

Refunds are issued to the original payment method within 5 working days
of receiving the returned item. Delivery charges are non-refundable.

## Damaged or wrong items

If an order arrives damaged or incorrect, send us a photo within 48
hours and we will replace it free of charge, no return needed.`

const privacyPolicyContent = `# Privacy Policy

Herb Wala keeps your data on your own device.

## What we store

Your account details (name and email) and the products in your cart are
stored locally. Nothing is uploaded to a server by this app.

## What we share

When you place an order, the order summary and the billing details you
typed are handed to WhatsApp or your email client. From that point the
conversation is governed by those services' own policies.

## What we never do

We never sell contact details, never send marketing messages you did
not ask for, and never store payment information.`

const termsContent = `# Terms of Service

By placing an order you agree to the following.

## Orders

An order is confirmed only after our team replies to your WhatsApp
message or email with availability and a delivery estimate. Prices
shown in the shop are in Pakistani Rupees and include all taxes.

## Delivery

Standard delivery takes 2-5 working days within major cities and up to
10 working days elsewhere. Risk passes to you on delivery.

## Product information

Our products are traditional herbal preparations, not medicines.
Descriptions are for general information and are not medical advice.
Consult a qualified practitioner before use if you are pregnant,
nursing, or taking prescription medication.`

// InfoPageModel renders the static content pages: about, contact, and the
// three policy documents. Content is markdown pushed through glamour into a
// scrollable viewport.
type InfoPageModel struct {
	cfg      *config.Config
	styles   ui.Styles
	renderer *glamour.TermRenderer
	viewport viewport.Model

	page   route.Page
	width  int
	height int
}

// NewInfoPageModel creates the info page component.
func NewInfoPageModel(cfg *config.Config, styles ui.Styles, renderer *glamour.TermRenderer) InfoPageModel {
	m := InfoPageModel{
		cfg:      cfg,
		styles:   styles,
		renderer: renderer,
		viewport: viewport.New(80, 20),
		page:     route.About,
	}
	m.UpdateContent()
	return m
}

// SetSize adjusts the viewport dimensions.
func (m *InfoPageModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = w
	m.viewport.Height = h
	m.UpdateContent()
}

// SetPage switches the document being shown.
func (m *InfoPageModel) SetPage(p route.Page) {
	m.page = p
	m.UpdateContent()
	m.viewport.GotoTop()
}

// SetRenderer swaps in a renderer rebuilt for a new width.
func (m *InfoPageModel) SetRenderer(r *glamour.TermRenderer) {
	m.renderer = r
	m.UpdateContent()
}

// SetConfig applies a reloaded configuration; the contact page shows live
// endpoints.
func (m *InfoPageModel) SetConfig(cfg *config.Config) {
	m.cfg = cfg
	m.UpdateContent()
}

// GotoTop scrolls back to the top.
func (m *InfoPageModel) GotoTop() {
	m.viewport.GotoTop()
}

func (m *InfoPageModel) content() string {
	switch m.page {
	case route.Contact:
		return fmt.Sprintf(contactContentTemplate, m.cfg.Contact.WhatsApp, m.cfg.Contact.OrderEmail)
	case route.RefundPolicy:
		return refundPolicyContent
	case route.PrivacyPolicy:
		return privacyPolicyContent
	case route.Terms:
		return termsContent
	default:
		return aboutContent
	}
}

// UpdateContent re-renders the active document into the viewport.
func (m *InfoPageModel) UpdateContent() {
	m.viewport.SetContent(renderMarkdown(m.renderer, m.content()))
}

// Update handles viewport scrolling.
func (m InfoPageModel) Update(msg tea.Msg) (InfoPageModel, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the page.
func (m InfoPageModel) View() string {
	return m.viewport.View()
}
