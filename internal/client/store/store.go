// Package store holds the client's shared state: current location, session
// and sudo tokens, and the fetched user.
//
// Every mutation runs its sync effect synchronously, keeping persistent
// storage and the navigator in line with memory. Each effect only acts when
// the new value differs from the external source of truth, which is also what
// keeps the two directions of location sync from feeding each other.
package store

import (
	"context"

	"github.com/authkeeper/authkeeper/internal/client/models"
	"github.com/authkeeper/authkeeper/internal/client/navigation"
	"github.com/authkeeper/authkeeper/internal/client/storage"
	"github.com/authkeeper/authkeeper/internal/client/token"
)

// Store is the single state container for a client process. It is not safe
// for concurrent use; the CLI mutates it from one goroutine only, mirroring
// the single-threaded runtime the protocol was designed for.
type Store struct {
	storage storage.Storage
	nav     navigation.Navigator

	location string
	session  *token.Token
	sudo     *token.Token

	user      *models.User
	userKnown bool
}

// New builds the store from persisted state and the navigator's current path.
//
// Stored tokens that fail to decode are dropped from storage. Sudo privilege
// cannot outlive its session: with no usable session any leftover sudo token
// is discarded too, in one atomic storage write, and the user is immediately
// known to be signed out. With a session present the user stays undetermined
// until the caller fetches it.
func New(ctx context.Context, st storage.Storage, nav navigation.Navigator) (*Store, error) {
	s := &Store{storage: st, nav: nav, location: nav.Path()}
	nav.SetListener(func(path string) {
		// Reverse direction of the location sync: traversal already moved
		// the navigator, so only memory needs updating.
		s.location = path
	})

	rawSession, err := st.Get(ctx, storage.KeySession)
	if err != nil {
		return nil, err
	}
	rawSudo, err := st.Get(ctx, storage.KeySudo)
	if err != nil {
		return nil, err
	}

	if s.session, err = token.Decode(rawSession); err != nil {
		return nil, err
	}
	if s.sudo, err = token.Decode(rawSudo); err != nil {
		return nil, err
	}
	if s.session == nil {
		s.sudo = nil
		s.user = nil
		s.userKnown = true // nothing to fetch without a session
	}

	var stale []storage.Key
	if rawSession != "" && s.session == nil {
		stale = append(stale, storage.KeySession)
	}
	if rawSudo != "" && s.sudo == nil {
		stale = append(stale, storage.KeySudo)
	}
	if len(stale) > 0 {
		if err := st.RemoveMany(ctx, stale...); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *Store) Location() string {
	return s.location
}

func (s *Store) Session() *token.Token {
	return s.session
}

func (s *Store) Sudo() *token.Token {
	return s.sudo
}

// User returns the current user. ok is false while the user has not been
// determined yet (a stored session exists but no fetch has completed). A nil
// user with ok true means known signed out.
func (s *Store) User() (u *models.User, ok bool) {
	return s.user, s.userKnown
}

// SetLocation navigates to path. A new history entry is pushed only when path
// differs from the navigator's current one, so re-applying a path that just
// arrived from back/forward traversal is a no-op.
func (s *Store) SetLocation(path string) {
	s.location = path
	if path != s.nav.Path() {
		s.nav.Push(path)
	}
}

// SetSession replaces the session token (nil to sign out) and reconciles
// persistent storage.
func (s *Store) SetSession(ctx context.Context, t *token.Token) error {
	s.session = t
	return s.syncToken(ctx, storage.KeySession, t)
}

// SetSudo replaces the sudo token (nil to drop elevation) and reconciles
// persistent storage.
func (s *Store) SetSudo(ctx context.Context, t *token.Token) error {
	s.sudo = t
	return s.syncToken(ctx, storage.KeySudo, t)
}

// SetUser records the fetched user; nil means known signed out.
func (s *Store) SetUser(u *models.User) {
	s.user = u
	s.userKnown = true
}

// syncToken writes the in-memory token through to storage only when the
// stored value actually differs, and clears storage only when a stored value
// is present.
func (s *Store) syncToken(ctx context.Context, key storage.Key, t *token.Token) error {
	raw, err := s.storage.Get(ctx, key)
	if err != nil {
		return err
	}
	if t != nil {
		if t.Raw != raw {
			return s.storage.Set(ctx, key, t.Raw)
		}
		return nil
	}
	if raw != "" {
		return s.storage.Remove(ctx, key)
	}
	return nil
}
