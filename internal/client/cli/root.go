package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	s := ""
	if user, known := a.store.User(); known && user != nil {
		s = user.Email
		if a.store.Sudo() != nil {
			s += " sudo"
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

func (a *App) Root(ctx context.Context) {
	fmt.Fprintln(a.out, "Welcome to authkeeper (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Fprintf(a.out, "auth %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isSignedIn() {
				fmt.Fprintln(a.out, "Available commands: whoami, change-password, sudo, change-email, sign-out, open, back, forward, where, exit")
			} else {
				fmt.Fprintln(a.out, "Available commands: sign-up, sign-in, reset-password, open, back, forward, where, exit")
			}
		case "sign-up":
			a.signUp(ctx)
		case "sign-in":
			a.signIn(ctx)
		case "reset-password":
			a.resetPassword(ctx)
		case "change-password":
			a.changePassword(ctx)
		case "change-email":
			a.changeEmail(ctx)
		case "sudo":
			a.enterSudoMode(ctx)
		case "whoami":
			a.whoAmI(ctx)
		case "sign-out":
			a.signOut(ctx)
		case "open":
			if len(args) == 0 {
				fmt.Fprintln(a.out, "Usage: open <path>")
				continue
			}
			a.store.SetLocation(args[0])
		case "back":
			a.nav.Back()
		case "forward":
			a.nav.Forward()
		case "where":
			fmt.Fprintln(a.out, a.store.Location())
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
	}
}
