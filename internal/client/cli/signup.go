package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/authkeeper/authkeeper/internal/client/field"
)

// signUp drives both halves of registration. Without a link token in the
// current location it requests a confirmation email; with one it creates the
// account. To finish: open "/sign-up?token=<from the email>" then sign-up.
func (a *App) signUp(ctx context.Context) {
	a.store.SetLocation(RouteSignUp)

	confirmationToken, ok := a.queryToken()
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

		if err := a.api.BeginSignUp(ctx, email.Value); err != nil {
			fmt.Fprintln(a.out, "Sign up failed:", err)
			return
		}
		fmt.Fprintln(a.out, "Confirmation email sent. Open the link from it here (open \"/sign-up?token=...\") and run sign-up again.")
		return
	}

	name := field.New()
	value, err := GetSimpleText(a.reader, "Enter name", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	name.Value = value
	if field.IsEmpty(name) {
		fmt.Fprintln(a.out, name.Error)
		return
	}

	password, ok := a.readNewPassword()
	if !ok {
		return
	}

	if err := a.api.CompleteSignUp(ctx, confirmationToken, name.Value, password); err != nil {
		fmt.Fprintln(a.out, "Sign up failed:", err)
		return
	}
	fmt.Fprintln(a.out, "Account created, you are signed in")
	a.store.SetLocation(RouteRoot)
}

// readNewPassword prompts for a new password and its confirmation, applying
// the length rules and the match check.
func (a *App) readNewPassword() (string, bool) {
	password := field.New()
	value, err := GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return "", false
	}
	password.Value = value
	if field.IsEmpty(password) || field.IsPasswordInvalid(password) {
		fmt.Fprintln(a.out, password.Error)
		return "", false
	}

	confirm := field.New()
	value, err = GetPassword("Confirm password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return "", false
	}
	confirm.Value = value
	if field.ArePasswordsDifferent(password, confirm) {
		fmt.Fprintln(a.out, confirm.Error)
		return "", false
	}

	return password.Value, true
}
