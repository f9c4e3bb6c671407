package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/authkeeper/authkeeper/internal/client/field"
	"github.com/authkeeper/authkeeper/internal/common"
)

// changeEmail confirms an email change with the token delivered to the new
// address (open "/change-email?token=..." first, or paste it at the prompt).
// Requires an active sudo token.
func (a *App) changeEmail(ctx context.Context) {
	if !a.isSignedIn() {
		fmt.Fprintln(a.out, "Sign in first")
		return
	}
	if a.store.Sudo() == nil {
		fmt.Fprintln(a.out, "This operation needs sudo mode, run sudo first")
		return
	}
	a.store.SetLocation(RouteChangeEmail)

	confirmationToken, ok := a.queryToken()
	if !ok {
		tokenField := field.New()
		value, err := GetSimpleText(a.reader, "Enter the token from the confirmation email", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "error:", err)
			return
		}
		tokenField.Value = value
		if field.IsEmpty(tokenField) {
			fmt.Fprintln(a.out, tokenField.Error)
			return
		}
		confirmationToken = tokenField.Value
	}

	if err := a.api.ChangeEmail(ctx, confirmationToken); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Your sudo elevation has expired, run sudo again")
		} else {
			fmt.Fprintln(a.out, "Email change failed:", err)
		}
		return
	}
	fmt.Fprintln(a.out, "Email changed")
	a.store.SetLocation(RouteRoot)
}
