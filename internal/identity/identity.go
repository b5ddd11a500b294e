// Package identity manages registered accounts and the active session.
// Accounts and the session survive restarts through a Repository; all
// reads after hydration are served from memory.
package identity

import (
	"context"
	"errors"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"herbwala/internal/logging"
)

var (
	// ErrEmailTaken is returned by Register when an account already exists
	// for the email.
	ErrEmailTaken = errors.New("identity: email already registered")

	// ErrBadCredentials is returned by Login when the email is unknown or
	// the password does not match.
	ErrBadCredentials = errors.New("identity: invalid email or password")
)

// Identity is a registered account as persisted in the users record.
// Passwords are stored as entered; the store lives on the shopper's own
// machine and is trusted the same way their browser profile would be.
type Identity struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the signed-in shopper, the subset of Identity that pages need.
type Session struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Repository persists identities and the active session. LoadSession returns
// (nil, nil) when no session is stored.
type Repository interface {
	LoadIdentities() ([]Identity, error)
	SaveIdentities(ids []Identity) error
	LoadSession() (*Session, error)
	SaveSession(s Session) error
	ClearSession() error
}

// Manager owns the in-memory account list and session, writing through to
// the repository on every mutation. Persistence failures are logged and the
// in-memory state still changes, so a broken store degrades to a
// single-run shop rather than a dead one.
type Manager struct {
	mu         sync.RWMutex
	repo       Repository
	identities []Identity
	session    *Session
}

// NewManager returns a manager over the repository. Call Hydrate before
// serving reads.
func NewManager(repo Repository) *Manager {
	return &Manager{repo: repo}
}

// Hydrate loads identities and the session concurrently. Load failures are
// logged and treated as empty state; Hydrate only fails on context
// cancellation.
func (m *Manager) Hydrate(ctx context.Context) error {
	timer := logging.StartTimer(logging.CategorySession, "Hydrate")
	defer timer.Stop()

	eg, _ := errgroup.WithContext(ctx)

	eg.Go(func() error {
		ids, err := m.repo.LoadIdentities()
		if err != nil {
			logging.SessionWarn("load identities failed, starting empty: %v", err)
			return nil
		}
		m.mu.Lock()
		m.identities = ids
		m.mu.Unlock()
		return nil
	})

	eg.Go(func() error {
		s, err := m.repo.LoadSession()
		if err != nil {
			logging.SessionWarn("load session failed, starting signed out: %v", err)
			return nil
		}
		m.mu.Lock()
		m.session = s
		m.mu.Unlock()
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	logging.Session("hydrated %d identities, signed in: %t", len(m.identities), m.session != nil)
	return nil
}

// Register creates an account and signs it in. The name and email are
// trimmed; emails must be unique by exact match against stored accounts.
func (m *Manager) Register(name, email, password string) (Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.identities {
		if id.Email == email {
			return Session{}, ErrEmailTaken
		}
	}

	m.identities = append(m.identities, Identity{Name: name, Email: email, Password: password})
	if err := m.repo.SaveIdentities(m.identities); err != nil {
		logging.SessionWarn("persist identities failed: %v", err)
	}

	s := Session{Name: name, Email: email}
	m.setSessionLocked(s)
	logging.Session("registered %s", email)
	return s, nil
}

// Login signs in an existing account. Unknown emails and wrong passwords
// both return ErrBadCredentials so the auth page shows one message for
// either.
func (m *Manager) Login(email, password string) (Session, error) {
	email = strings.TrimSpace(email)

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, id := range m.identities {
		if id.Email == email && id.Password == password {
			s := Session{Name: id.Name, Email: id.Email}
			m.setSessionLocked(s)
			logging.Session("login %s", email)
			return s, nil
		}
	}
	logging.SessionDebug("login rejected for %s", email)
	return Session{}, ErrBadCredentials
}

// Logout clears the session. Signing out while already signed out is a
// no-op.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.session == nil {
		return
	}
	logging.Session("logout %s", m.session.Email)
	m.session = nil
	if err := m.repo.ClearSession(); err != nil {
		logging.SessionWarn("clear session failed: %v", err)
	}
}

// Current returns the active session, or false when signed out.
func (m *Manager) Current() (Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

func (m *Manager) setSessionLocked(s Session) {
	m.session = &s
	if err := m.repo.SaveSession(s); err != nil {
		logging.SessionWarn("persist session failed: %v", err)
	}
}

// MemoryRepository keeps everything in process memory. It backs the shop
// when the on-disk store cannot be opened, and tests.
type MemoryRepository struct {
	mu      sync.Mutex
	ids     []Identity
	session *Session
}

// NewMemoryRepository returns an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

func (r *MemoryRepository) LoadIdentities() ([]Identity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Identity, len(r.ids))
	copy(out, r.ids)
	return out, nil
}

func (r *MemoryRepository) SaveIdentities(ids []Identity) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ids = make([]Identity, len(ids))
	copy(r.ids, ids)
	return nil
}

func (r *MemoryRepository) LoadSession() (*Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.session == nil {
		return nil, nil
	}
	s := *r.session
	return &s, nil
}

func (r *MemoryRepository) SaveSession(s Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = &s
	return nil
}

func (r *MemoryRepository) ClearSession() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = nil
	return nil
}
