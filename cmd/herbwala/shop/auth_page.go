package shop

import (
	"errors"
	"fmt"
	"strings"

	"herbwala/cmd/herbwala/ui"
	"herbwala/internal/identity"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// authMode selects between the two forms on the auth page.
type authMode int

const (
	modeLogin authMode = iota
	modeRegister
)

// AuthPageModel is the account page: a login form, a register form, and the
// signed-in state with logout. Auth failures surface as inline messages.
type AuthPageModel struct {
	styles  ui.Styles
	manager *identity.Manager

	mode        authMode
	loginInputs [2]textinput.Model // email, password
	regInputs   [3]textinput.Model // name, email, password

	// focusIndex walks the inputs, then the submit button, then the
	// mode-switch link.
	focusIndex int

	formError string
}

// NewAuthPageModel creates the auth page component.
func NewAuthPageModel(styles ui.Styles) AuthPageModel {
	m := AuthPageModel{styles: styles}

	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.Prompt = ""
	email.CharLimit = 80
	email.Width = 36

	password := textinput.New()
	password.Placeholder = "password"
	password.Prompt = ""
	password.CharLimit = 80
	password.Width = 36
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	name := textinput.New()
	name.Placeholder = "Kiran Baig"
	name.Prompt = ""
	name.CharLimit = 80
	name.Width = 36

	m.loginInputs[0] = email
	m.loginInputs[1] = password
	m.regInputs[0] = name
	m.regInputs[1] = email
	m.regInputs[2] = password

	m.focusInput(0)
	return m
}

// SetManager injects the hydrated identity manager after boot.
func (m *AuthPageModel) SetManager(mgr *identity.Manager) {
	m.manager = mgr
}

// SetSize adjusts field widths.
func (m *AuthPageModel) SetSize(w, h int) {
	fieldWidth := w - 14
	if fieldWidth > 48 {
		fieldWidth = 48
	}
	if fieldWidth < 16 {
		fieldWidth = 16
	}
	for i := range m.loginInputs {
		m.loginInputs[i].Width = fieldWidth
	}
	for i := range m.regInputs {
		m.regInputs[i].Width = fieldWidth
	}
}

// Mount resets the page for a fresh visit.
func (m *AuthPageModel) Mount() {
	m.formError = ""
	m.focusInput(0)
}

// GotoTop is a no-op; the page renders without an inner viewport.
func (m *AuthPageModel) GotoTop() {}

// Typing reports whether a form field is capturing keystrokes.
func (m *AuthPageModel) Typing() bool {
	if m.signedIn() {
		return false
	}
	return m.focusIndex < m.inputCount()
}

func (m *AuthPageModel) signedIn() bool {
	if m.manager == nil {
		return false
	}
	_, ok := m.manager.Current()
	return ok
}

func (m *AuthPageModel) inputCount() int {
	if m.mode == modeRegister {
		return len(m.regInputs)
	}
	return len(m.loginInputs)
}

// positionCount is inputs + submit + switch.
func (m *AuthPageModel) positionCount() int {
	return m.inputCount() + 2
}

func (m *AuthPageModel) inputs() []*textinput.Model {
	if m.mode == modeRegister {
		return []*textinput.Model{&m.regInputs[0], &m.regInputs[1], &m.regInputs[2]}
	}
	return []*textinput.Model{&m.loginInputs[0], &m.loginInputs[1]}
}

func (m *AuthPageModel) focusInput(i int) {
	m.focusIndex = (i + m.positionCount()) % m.positionCount()
	for j, in := range m.inputs() {
		if j == m.focusIndex {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m *AuthPageModel) toggleMode() {
	if m.mode == modeLogin {
		m.mode = modeRegister
	} else {
		m.mode = modeLogin
	}
	m.formError = ""
	m.focusInput(0)
}

func (m *AuthPageModel) resetInputs() {
	for _, in := range []*textinput.Model{
		&m.loginInputs[0], &m.loginInputs[1],
		&m.regInputs[0], &m.regInputs[1], &m.regInputs[2],
	} {
		in.SetValue("")
	}
}

// submit runs the active form against the identity manager.
func (m *AuthPageModel) submit() tea.Cmd {
	if m.manager == nil {
		m.formError = "Still starting up, try again in a moment."
		return nil
	}

	var err error
	if m.mode == modeRegister {
		name := strings.TrimSpace(m.regInputs[0].Value())
		email := strings.TrimSpace(m.regInputs[1].Value())
		password := m.regInputs[2].Value()
		if name == "" || email == "" || password == "" {
			m.formError = "All fields are required."
			return nil
		}
		_, err = m.manager.Register(name, email, password)
	} else {
		email := strings.TrimSpace(m.loginInputs[0].Value())
		password := m.loginInputs[1].Value()
		if email == "" || password == "" {
			m.formError = "Email and password are required."
			return nil
		}
		_, err = m.manager.Login(email, password)
	}

	switch {
	case errors.Is(err, identity.ErrEmailTaken):
		m.formError = "That email is already registered."
		return nil
	case errors.Is(err, identity.ErrBadCredentials):
		m.formError = "Invalid email or password."
		return nil
	case err != nil:
		m.formError = "Something went wrong, please try again."
		return nil
	}

	m.formError = ""
	m.resetInputs()
	return func() tea.Msg { return authSuccessMsg{} }
}

// Update handles messages.
func (m AuthPageModel) Update(msg tea.Msg) (AuthPageModel, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.signedIn() {
		switch key.String() {
		case "enter", "o":
			m.manager.Logout()
			m.Mount()
		}
		return m, nil
	}

	inputCount := m.inputCount()
	submitPos := inputCount
	switchPos := inputCount + 1

	switch key.Type {
	case tea.KeyTab, tea.KeyDown:
		m.focusInput(m.focusIndex + 1)
		return m, nil
	case tea.KeyShiftTab, tea.KeyUp:
		m.focusInput(m.focusIndex - 1)
		return m, nil
	case tea.KeyEsc:
		// Park focus on the submit button so global keys work again.
		m.focusInput(submitPos)
		return m, nil
	case tea.KeyEnter:
		switch m.focusIndex {
		case submitPos:
			return m, m.submit()
		case switchPos:
			m.toggleMode()
			return m, nil
		default:
			if m.focusIndex == inputCount-1 {
				return m, m.submit()
			}
			m.focusInput(m.focusIndex + 1)
			return m, nil
		}
	}

	if m.focusIndex < inputCount {
		var cmd tea.Cmd
		in := m.inputs()[m.focusIndex]
		*in, cmd = in.Update(key)
		return m, cmd
	}
	return m, nil
}

// View renders the page.
func (m AuthPageModel) View() string {
	if m.signedIn() {
		session, _ := m.manager.Current()
		body := m.styles.Title.Render("Your Account") + "\n" +
			m.styles.Body.Render(fmt.Sprintf("Signed in as %s (%s)", session.Name, session.Email)) + "\n\n" +
			m.styles.Muted.Render("Press enter to log out.")
		return m.styles.Card.Render(body)
	}

	var sb strings.Builder

	labels := []string{"Email", "Password"}
	title := "Sign in"
	submitLabel := "Sign in"
	switchLabel := "Need an account? Create one"
	if m.mode == modeRegister {
		labels = []string{"Name", "Email", "Password"}
		title = "Create account"
		submitLabel = "Create account"
		switchLabel = "Already registered? Sign in"
	}

	sb.WriteString(m.styles.Title.Render(title))
	sb.WriteString("\n")

	for i, in := range m.inputs() {
		sb.WriteString(m.styles.FormLabel.Render(fmt.Sprintf("%-9s", labels[i])) + " " + in.View() + "\n")
	}
	sb.WriteString("\n")

	submit := "[ " + submitLabel + " ]"
	if m.focusIndex == m.inputCount() {
		submit = m.styles.Badge.Render(submit)
	} else {
		submit = m.styles.Bold.Render(submit)
	}
	sb.WriteString(submit + "\n")

	link := switchLabel
	if m.focusIndex == m.inputCount()+1 {
		link = m.styles.Badge.Render(link)
	} else {
		link = m.styles.Info.Render(link)
	}
	sb.WriteString(link + "\n")

	if m.formError != "" {
		sb.WriteString("\n" + m.styles.FormError.Render(m.formError) + "\n")
	}

	sb.WriteString("\n" + m.styles.Muted.Render(" tab/↑↓: move · enter: submit · esc: release keyboard"))

	return sb.String()
}
