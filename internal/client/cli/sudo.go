package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/authkeeper/authkeeper/internal/client/field"
	"github.com/authkeeper/authkeeper/internal/common"
)

// enterSudoMode re-verifies the password and keeps the returned sudo token
// in the store for sensitive operations like change-email.
func (a *App) enterSudoMode(ctx context.Context) {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first")
		return
	}
	a.store.SetLocation(RouteEnterSudoMode)

	password := field.New()
	value, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	password.Value = value
	if field.IsEmpty(password) {
		fmt.Fprintln(a.out, password.Error)
		return
	}

	if err := a.api.EnterSudoMode(ctx, password.Value); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Your session has expired, sign in again")
		} else {
			fmt.Fprintln(a.out, "Sudo elevation failed:", err)
		}
		return
	}
	fmt.Fprintln(a.out, "Sudo mode enabled")
	a.store.SetLocation(RouteRoot)
}
