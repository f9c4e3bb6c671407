package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/authkeeper/authkeeper/internal/client/api"
	"github.com/authkeeper/authkeeper/internal/client/field"
)

func (a *App) signIn(ctx context.Context) {
	a.store.SetLocation(RouteSignIn)

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

	password := field.New()
	password.Value, err = GetPassword("Enter password", a.out)
	if err != nil {
		fmt.Fprintln(a.out, "error:", err)
		return
	}
	if field.IsEmpty(password) {
		fmt.Fprintln(a.out, password.Error)
		return
	}

	if err := a.api.SignIn(ctx, email.Value, password.Value); err != nil {
		var reqErr *api.RequestError
		if errors.As(err, &reqErr) && reqErr.Status == http.StatusUnauthorized {
			fmt.Fprintln(a.out, "Email or password is incorrect")
		} else {
			fmt.Fprintln(a.out, "Sign in failed:", err)
		}
		return
	}
	fmt.Fprintln(a.out, "Signed in")
	a.store.SetLocation(RouteRoot)
}
