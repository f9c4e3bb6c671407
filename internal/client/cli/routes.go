package cli

// Client-side routes. Each auth command navigates the store here before it
// runs, so one-time tokens delivered via link (open "/sign-up?token=...")
// are picked up from the location's query string.
const (
	RouteRoot           = "/"
	RouteSignUp         = "/sign-up"
	RouteSignIn         = "/sign-in"
	RouteResetPassword  = "/reset-password"
	RouteChangePassword = "/change-password"
	RouteChangeEmail    = "/change-email"
	RouteEnterSudoMode  = "/enter-sudo-mode"
)
