package api

import (
	"context"
	"net/http"

	"github.com/authkeeper/authkeeper/internal/client/models"
	"github.com/authkeeper/authkeeper/internal/client/token"
)

type sessionTokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

type createdSessionResponse struct {
	Session string       `json:"session"`
	User    *models.User `json:"user"`
}

type userResponse struct {
	User *models.User `json:"user"`
}

// BeginSignUp asks the server to email a confirmation token to the address.
func (c *Client) BeginSignUp(ctx context.Context, email string) error {
	res, err := c.do(ctx, http.MethodPost, "/user/token/confirmation", bearerNone, map[string]string{
		"email": email,
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return c.checkStatus(ctx, res, bearerNone)
}

// CompleteSignUp exchanges an emailed confirmation token for an account and
// applies the fresh session and user to the store.
func (c *Client) CompleteSignUp(ctx context.Context, confirmationToken, name, password string) error {
	res, err := c.do(ctx, http.MethodPost, "/user", bearerNone, map[string]string{
		"token":    confirmationToken,
		"name":     name,
		"password": encodePassword(password),
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if err := c.checkStatus(ctx, res, bearerNone); err != nil {
		return err
	}

	var body createdSessionResponse
	if err := decodeJSON(res, &body); err != nil {
		return err
	}
	return c.applySession(ctx, body.Session, body.User)
}

// SignIn trades credentials for a session token and applies it to the store.
func (c *Client) SignIn(ctx context.Context, email, password string) error {
	res, err := c.do(ctx, http.MethodPost, "/user/token/session", bearerNone, map[string]string{
		"email":    email,
		"password": encodePassword(password),
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if err := c.checkStatus(ctx, res, bearerNone); err != nil {
		return err
	}

	var body sessionTokenResponse
	if err := decodeJSON(res, &body); err != nil {
		return err
	}
	return c.applySession(ctx, body.Token, body.User)
}

// BeginPasswordReset asks the server to email a password-reset token.
func (c *Client) BeginPasswordReset(ctx context.Context, email string) error {
	res, err := c.do(ctx, http.MethodPost, "/user/token/password-reset", bearerNone, map[string]string{
		"email": email,
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return c.checkStatus(ctx, res, bearerNone)
}

// CompletePasswordReset sets a new password using an emailed reset token.
// The server signs the user in as part of the reset, so the store picks up
// the returned session and user.
func (c *Client) CompletePasswordReset(ctx context.Context, resetToken, password string) error {
	res, err := c.do(ctx, http.MethodPost, "/user/password-reset", bearerNone, map[string]string{
		"token":    resetToken,
		"password": encodePassword(password),
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if err := c.checkStatus(ctx, res, bearerNone); err != nil {
		return err
	}

	var body createdSessionResponse
	if err := decodeJSON(res, &body); err != nil {
		return err
	}
	return c.applySession(ctx, body.Session, body.User)
}

// FetchUser refreshes the current user. With no usable session it resolves
// locally to signed out without issuing the request. A 401 is the server
// saying the same thing, so it is recovered the same way rather than
// surfaced as an error.
func (c *Client) FetchUser(ctx context.Context) error {
	if c.store.Session() == nil {
		c.store.SetUser(nil)
		return nil
	}

	res, err := c.do(ctx, http.MethodGet, "/user", bearerSession, nil)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusUnauthorized {
		if err := c.store.SetSession(ctx, nil); err != nil {
			return err
		}
		c.store.SetUser(nil)
		return nil
	}
	if err := c.checkStatus(ctx, res, bearerNone); err != nil {
		return err
	}

	var body userResponse
	if err := decodeJSON(res, &body); err != nil {
		return err
	}
	c.store.SetUser(body.User)
	return nil
}

// ChangePassword replaces the account password. The existing session stays
// valid, so the store is left untouched.
func (c *Client) ChangePassword(ctx context.Context, password, newPassword string) error {
	res, err := c.do(ctx, http.MethodPut, "/user/password", bearerSession, map[string]string{
		"password":    encodePassword(password),
		"newPassword": encodePassword(newPassword),
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return c.checkStatus(ctx, res, bearerSession)
}

// EnterSudoMode re-verifies the password and stores the returned sudo token
// for the sensitive operations that require it.
func (c *Client) EnterSudoMode(ctx context.Context, password string) error {
	res, err := c.do(ctx, http.MethodPost, "/user/token/sudo", bearerSession, map[string]string{
		"password": encodePassword(password),
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if err := c.checkStatus(ctx, res, bearerSession); err != nil {
		return err
	}

	var body sessionTokenResponse
	if err := decodeJSON(res, &body); err != nil {
		return err
	}
	t, err := token.DecodeTrusted(body.Token)
	if err != nil {
		return err
	}
	return c.store.SetSudo(ctx, t)
}

// ChangeEmail confirms an email change using the token delivered to the new
// address. Requires sudo elevation.
func (c *Client) ChangeEmail(ctx context.Context, confirmationToken string) error {
	res, err := c.do(ctx, http.MethodPut, "/user/email", bearerSudo, map[string]string{
		"token": confirmationToken,
	})
	if err != nil {
		return err
	}
	defer res.Body.Close()
	return c.checkStatus(ctx, res, bearerSudo)
}

// applySession installs a just-issued session token and the user that came
// with it. The token is trusted: a decode failure here is a server contract
// violation and is returned, not recovered.
func (c *Client) applySession(ctx context.Context, raw string, user *models.User) error {
	t, err := token.DecodeTrusted(raw)
	if err != nil {
		return err
	}
	if err := c.store.SetSession(ctx, t); err != nil {
		return err
	}
	c.store.SetUser(user)
	return nil
}
