// Package navigation abstracts the address-bar half of the client. The store
// mirrors a current path while something else owns the real history, here an
// in-memory stack the REPL drives with open/back/forward.
package navigation

// Navigator is the store's view of the location system.
//
// Path returns the current actual path. Push appends a new history entry and
// makes it current. SetListener registers the callback fired when the current
// entry changes through back/forward traversal rather than Push.
type Navigator interface {
	Path() string
	Push(path string)
	SetListener(fn func(path string))
}
