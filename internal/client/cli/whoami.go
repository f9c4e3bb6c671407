package cli

import (
	"context"
	"fmt"
)

func (a *App) whoAmI(ctx context.Context) {
	user, known := a.store.User()
	if !known {
		if err := a.api.FetchUser(ctx); err != nil {
			fmt.Fprintln(a.out, "error:", err)
			return
		}
		user, _ = a.store.User()
	}
	if user == nil {
		fmt.Fprintln(a.out, "Not signed in")
		return
	}
	fmt.Fprintf(a.out, "%s <%s> (member since %s)\n", user.Name, user.Email, user.CreatedAt.Format("2006-01-02"))
}
