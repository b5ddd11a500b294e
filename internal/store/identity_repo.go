package store

import (
	"encoding/json"
	"fmt"

	"herbwala/internal/identity"
	"herbwala/internal/logging"
)

// Keys under which shop state is persisted. The JSON layouts match the web
// storefront's localStorage records, so a database seeded from one is
// readable by the other.
const (
	usersKey       = "users"
	currentUserKey = "currentUser"
)

// IdentityRepository persists the account registry and active session as
// JSON documents in the key-value store.
type IdentityRepository struct {
	kv *KV
}

var _ identity.Repository = (*IdentityRepository)(nil)

// NewIdentityRepository returns a repository over the key-value store.
func NewIdentityRepository(kv *KV) *IdentityRepository {
	return &IdentityRepository{kv: kv}
}

// LoadIdentities reads the account registry. An absent record is an empty
// registry, not an error.
func (r *IdentityRepository) LoadIdentities() ([]identity.Identity, error) {
	value, ok, err := r.kv.Get(usersKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var ids []identity.Identity
	if err := json.Unmarshal([]byte(value), &ids); err != nil {
		logging.StoreError("Corrupt %s record: %v", usersKey, err)
		return nil, fmt.Errorf("corrupt %s record: %w", usersKey, err)
	}
	return ids, nil
}

// SaveIdentities writes the whole account registry.
func (r *IdentityRepository) SaveIdentities(ids []identity.Identity) error {
	if ids == nil {
		ids = []identity.Identity{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshal identities: %w", err)
	}
	return r.kv.Set(usersKey, string(data))
}

// LoadSession reads the active session. Returns (nil, nil) when signed out.
func (r *IdentityRepository) LoadSession() (*identity.Session, error) {
	value, ok, err := r.kv.Get(currentUserKey)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var s identity.Session
	if err := json.Unmarshal([]byte(value), &s); err != nil {
		logging.StoreError("Corrupt %s record: %v", currentUserKey, err)
		return nil, fmt.Errorf("corrupt %s record: %w", currentUserKey, err)
	}
	return &s, nil
}

// SaveSession writes the active session.
func (r *IdentityRepository) SaveSession(s identity.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	return r.kv.Set(currentUserKey, string(data))
}

// ClearSession removes the session record.
func (r *IdentityRepository) ClearSession() error {
	return r.kv.Delete(currentUserKey)
}
