package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failingRepository errors on every call, standing in for a broken store.
type failingRepository struct{}

func (failingRepository) LoadIdentities() ([]Identity, error) {
	return nil, errors.New("disk gone")
}
func (failingRepository) SaveIdentities([]Identity) error { return errors.New("disk gone") }
func (failingRepository) LoadSession() (*Session, error)  { return nil, errors.New("disk gone") }
func (failingRepository) SaveSession(Session) error       { return errors.New("disk gone") }
func (failingRepository) ClearSession() error             { return errors.New("disk gone") }

func TestRegisterSignsIn(t *testing.T) {
	m := NewManager(NewMemoryRepository())

	s, err := m.Register("Ayesha", "ayesha@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, Session{Name: "Ayesha", Email: "ayesha@example.com"}, s)

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, s, cur)
}

func TestRegisterTrimsNameAndEmail(t *testing.T) {
	m := NewManager(NewMemoryRepository())

	s, err := m.Register("  Bilal  ", " bilal@example.com ", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Bilal", s.Name)
	assert.Equal(t, "bilal@example.com", s.Email)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	m := NewManager(NewMemoryRepository())

	_, err := m.Register("First", "same@example.com", "one")
	require.NoError(t, err)

	_, err = m.Register("Second", "same@example.com", "two")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// The failed attempt must not replace the session.
	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "First", cur.Name)
}

func TestLoginKnownAccount(t *testing.T) {
	repo := NewMemoryRepository()
	m := NewManager(repo)
	_, err := m.Register("Dawood", "dawood@example.com", "herbal")
	require.NoError(t, err)
	m.Logout()

	s, err := m.Login("dawood@example.com", "herbal")
	require.NoError(t, err)
	assert.Equal(t, "Dawood", s.Name)

	_, ok := m.Current()
	assert.True(t, ok)
}

func TestLoginRejections(t *testing.T) {
	m := NewManager(NewMemoryRepository())
	_, err := m.Register("Eman", "eman@example.com", "right")
	require.NoError(t, err)
	m.Logout()

	t.Run("wrong password", func(t *testing.T) {
		_, err := m.Login("eman@example.com", "wrong")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := m.Login("nobody@example.com", "right")
		assert.ErrorIs(t, err, ErrBadCredentials)
	})

	_, ok := m.Current()
	assert.False(t, ok, "failed login must not create a session")
}

func TestLogoutClearsSession(t *testing.T) {
	repo := NewMemoryRepository()
	m := NewManager(repo)
	_, err := m.Register("Fatima", "fatima@example.com", "pw")
	require.NoError(t, err)

	m.Logout()

	_, ok := m.Current()
	assert.False(t, ok)

	stored, err := repo.LoadSession()
	require.NoError(t, err)
	assert.Nil(t, stored)

	// Logging out twice stays quiet.
	m.Logout()
}

func TestHydrateRestoresState(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.SaveIdentities([]Identity{
		{Name: "Ghazala", Email: "ghazala@example.com", Password: "pw"},
	}))
	require.NoError(t, repo.SaveSession(Session{Name: "Ghazala", Email: "ghazala@example.com"}))

	m := NewManager(repo)
	require.NoError(t, m.Hydrate(context.Background()))

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, "Ghazala", cur.Name)

	s, err := m.Login("ghazala@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Ghazala", s.Name)
}

func TestHydrateNoSession(t *testing.T) {
	repo := NewMemoryRepository()
	require.NoError(t, repo.SaveIdentities([]Identity{
		{Name: "Hamza", Email: "hamza@example.com", Password: "pw"},
	}))

	m := NewManager(repo)
	require.NoError(t, m.Hydrate(context.Background()))

	_, ok := m.Current()
	assert.False(t, ok)
}

func TestHydrateToleratesBrokenStore(t *testing.T) {
	m := NewManager(failingRepository{})

	require.NoError(t, m.Hydrate(context.Background()))

	_, ok := m.Current()
	assert.False(t, ok)

	// Mutations still work in memory when persistence fails.
	s, err := m.Register("Iqra", "iqra@example.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "Iqra", s.Name)

	cur, ok := m.Current()
	require.True(t, ok)
	assert.Equal(t, s, cur)
}

func TestHydrateCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := NewManager(NewMemoryRepository())
	err := m.Hydrate(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPersistenceWriteThrough(t *testing.T) {
	repo := NewMemoryRepository()
	m := NewManager(repo)

	_, err := m.Register("Junaid", "junaid@example.com", "pw")
	require.NoError(t, err)

	ids, err := repo.LoadIdentities()
	require.NoError(t, err)
	require.Len(t, ids, 1)
	assert.Equal(t, Identity{Name: "Junaid", Email: "junaid@example.com", Password: "pw"}, ids[0])

	s, err := repo.LoadSession()
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "junaid@example.com", s.Email)
}
