package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/authkeeper/authkeeper/internal/client/field"
)

// resetPassword mirrors signUp's two phases: request a reset email, or, with
// a link token in the current location, set the new password. The server
// signs the user in as part of a successful reset.
func (a *App) resetPassword(ctx context.Context) {
	a.store.SetLocation(RouteResetPassword)

	resetToken, ok := a.queryToken()
	if !ok {
		email := field.New()
		value, err := GetSimpleText(a.reader, "Enter email", a.out)
		if err != nil {
			fmt.Fprintln(a.out, "error:", err)
			return
		}
		email.Value = strings.ToLower(value)
		if field.IsEmpty(email) || field.IsEmailInvalid(email) {
			fmt.Fprintln(a.out, email.Error)
			return
		}

		if err := a.api.BeginPasswordReset(ctx, email.Value); err != nil {
			fmt.Fprintln(a.out, "Password reset failed:", err)
			return
		}
		fmt.Fprintln(a.out, "Reset email sent. Open the link from it here (open \"/reset-password?token=...\") and run reset-password again.")
		return
	}

	password, ok := a.readNewPassword()
	if !ok {
		return
	}

	if err := a.api.CompletePasswordReset(ctx, resetToken, password); err != nil {
		fmt.Fprintln(a.out, "Password reset failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Password changed, you are signed in")
	a.store.SetLocation(RouteRoot)
}
