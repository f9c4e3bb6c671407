package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/authkeeper/authkeeper/internal/client/field"
	"github.com/authkeeper/authkeeper/internal/common"
)

func (a *App) changePassword(ctx context.Context) {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first")
		return
	}
	a.store.SetLocation(RouteChangePassword)

	current := field.New()
	value, err := GetPassword("Enter current password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	current.Value = value
	if field.IsEmpty(current) {
		fmt.Fprintln(a.out, current.Error)
		return
	}

	newPassword, ok := a.readNewPassword()
	if !ok {
		return
	}

	if err := a.api.ChangePassword(ctx, current.Value, newPassword); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Your session has expired, sign in again")
		} else {
			fmt.Fprintln(a.out, "Password change failed:", err)
		}
		return
	}
	fmt.Fprintln(a.out, "Password changed")
	a.store.SetLocation(RouteRoot)
}
