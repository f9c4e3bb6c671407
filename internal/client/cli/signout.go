package cli

import (
	"context"
	"fmt"
)

// signOut drops both tokens; the store effects clear the persisted copies.
func (a *App) signOut(ctx context.Context) {
	if err := a.store.SetSudo(ctx, nil); err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	if err := a.store.SetSession(ctx, nil); err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	a.store.SetUser(nil)
	fmt.Fprintln(a.out, "Signed out")
}
