package store

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/authkeeper/authkeeper/internal/client/models"
	"github.com/authkeeper/authkeeper/internal/client/navigation"
	"github.com/authkeeper/authkeeper/internal/client/storage"
	"github.com/authkeeper/authkeeper/internal/client/token"
)

func mint(t *testing.T, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{"exp": time.Now().Add(expiresIn).Unix()}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return raw
}

func setupStorage(t *testing.T) storage.Storage {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := storage.Open(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return storage.NewSQLiteStorage(db)
}

func TestNew_FreshState(t *testing.T) {
	st := setupStorage(t)
	s, err := New(context.Background(), st, navigation.NewHistory("/"))
	require.NoError(t, err)

	require.Equal(t, "/", s.Location())
	require.Nil(t, s.Session())
	require.Nil(t, s.Sudo())

	user, known := s.User()
	require.True(t, known, "without a session the user is immediately known")
	require.Nil(t, user)
}

func TestNew_RestoresPersistedSession(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)
	raw := mint(t, time.Hour)
	require.NoError(t, st.Set(ctx, storage.KeySession, raw))

	s, err := New(ctx, st, navigation.NewHistory("/"))
	require.NoError(t, err)

	require.NotNil(t, s.Session())
	require.Equal(t, raw, s.Session().Raw)

	_, known := s.User()
	require.False(t, known, "with a session the user stays undetermined until fetched")
}

func TestNew_DropsExpiredSession(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)
	require.NoError(t, st.Set(ctx, storage.KeySession, mint(t, -time.Hour)))

	s, err := New(ctx, st, navigation.NewHistory("/"))
	require.NoError(t, err)

	require.Nil(t, s.Session())
	value, err := st.Get(ctx, storage.KeySession)
	require.NoError(t, err)
	require.Equal(t, "", value, "the stale session must be removed from storage")
}

func TestNew_SudoCannotOutliveSession(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)
	// A valid sudo token but no session at all.
	require.NoError(t, st.Set(ctx, storage.KeySudo, mint(t, time.Hour)))

	s, err := New(ctx, st, navigation.NewHistory("/"))
	require.NoError(t, err)

	require.Nil(t, s.Session())
	require.Nil(t, s.Sudo())

	value, err := st.Get(ctx, storage.KeySudo)
	require.NoError(t, err)
	require.Equal(t, "", value, "the orphaned sudo token must be removed from storage")
}

func TestSetSession_RoundTrip(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)

	s, err := New(ctx, st, navigation.NewHistory("/"))
	require.NoError(t, err)

	raw := mint(t, time.Hour)
	tok, err := token.Decode(raw)
	require.NoError(t, err)
	require.NoError(t, s.SetSession(ctx, tok))

	// A fresh store built over the same storage sees the same raw string.
	s2, err := New(ctx, st, navigation.NewHistory("/"))
	require.NoError(t, err)
	require.NotNil(t, s2.Session())
	require.Equal(t, raw, s2.Session().Raw)
}

func TestSetSession_NilRemovesPersistedValue(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)
	require.NoError(t, st.Set(ctx, storage.KeySession, mint(t, time.Hour)))

	s, err := New(ctx, st, navigation.NewHistory("/"))
	require.NoError(t, err)
	require.NoError(t, s.SetSession(ctx, nil))

	value, err := st.Get(ctx, storage.KeySession)
	require.NoError(t, err)
	require.Equal(t, "", value)
}

func TestSetSudo_Persists(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)
	require.NoError(t, st.Set(ctx, storage.KeySession, mint(t, time.Hour)))

	s, err := New(ctx, st, navigation.NewHistory("/"))
	require.NoError(t, err)

	raw := mint(t, 10*time.Minute)
	tok, err := token.Decode(raw)
	require.NoError(t, err)
	require.NoError(t, s.SetSudo(ctx, tok))

	value, err := st.Get(ctx, storage.KeySudo)
	require.NoError(t, err)
	require.Equal(t, raw, value)
}

func TestSetLocation_PushesOnlyWhenDiffering(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)
	nav := navigation.NewHistory("/")

	s, err := New(ctx, st, nav)
	require.NoError(t, err)

	s.SetLocation("/sign-in")
	require.Equal(t, "/sign-in", nav.Path(), "the navigator must follow the store")

	// Back/forward traversal updates the store without pushing.
	nav.Back()
	require.Equal(t, "/", s.Location())

	// Re-applying the path that traversal just delivered must not push: the
	// forward entry survives.
	s.SetLocation("/")
	nav.Forward()
	require.Equal(t, "/sign-in", s.Location())
}

func TestSetUser(t *testing.T) {
	ctx := context.Background()
	st := setupStorage(t)
	require.NoError(t, st.Set(ctx, storage.KeySession, mint(t, time.Hour)))

	s, err := New(ctx, st, navigation.NewHistory("/"))
	require.NoError(t, err)

	_, known := s.User()
	require.False(t, known)

	s.SetUser(&models.User{ID: 7, Email: "a@b.co", Name: "Ada"})
	user, known := s.User()
	require.True(t, known)
	require.Equal(t, int64(7), user.ID)

	s.SetUser(nil)
	user, known = s.User()
	require.True(t, known)
	require.Nil(t, user, "nil user means known signed out")
}
