package navigation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistory_PushAndTraverse(t *testing.T) {
	h := NewHistory("/")
	require.Equal(t, "/", h.Path())

	h.Push("/sign-in")
	h.Push("/change-password")
	require.Equal(t, "/change-password", h.Path())

	h.Back()
	require.Equal(t, "/sign-in", h.Path())
	h.Back()
	require.Equal(t, "/", h.Path())

	// Already at the oldest entry.
	h.Back()
	require.Equal(t, "/", h.Path())

	h.Forward()
	require.Equal(t, "/sign-in", h.Path())
	h.Forward()
	require.Equal(t, "/change-password", h.Path())

	// Already at the newest entry.
	h.Forward()
	require.Equal(t, "/change-password", h.Path())
}

func TestHistory_PushTruncatesForwardEntries(t *testing.T) {
	h := NewHistory("/")
	h.Push("/sign-in")
	h.Push("/sign-up")
	h.Back()
	h.Back()

	h.Push("/reset-password")
	require.Equal(t, "/reset-password", h.Path())

	// The old forward entries are gone.
	h.Forward()
	require.Equal(t, "/reset-password", h.Path())
}

func TestHistory_ListenerFiresOnTraversalOnly(t *testing.T) {
	h := NewHistory("/")

	var fired []string
	h.SetListener(func(path string) { fired = append(fired, path) })

	h.Push("/sign-in")
	require.Empty(t, fired, "Push must not notify, only traversal does")

	h.Back()
	h.Forward()
	require.Equal(t, []string{"/", "/sign-in"}, fired)
}
