// Package api implements the HTTP client for the account API: sign-up,
// sign-in, password reset, password and email changes, sudo elevation, and
// the current-user fetch. Successful calls write fresh tokens and the user
// back into the store; failed credentials are dropped from it.
package api

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/authkeeper/authkeeper/internal/client/store"
	"github.com/authkeeper/authkeeper/internal/client/token"
	"github.com/authkeeper/authkeeper/internal/common"
	"github.com/authkeeper/authkeeper/internal/logging"
)

// Client issues requests against the account API.
type Client struct {
	baseURL string
	http    *http.Client
	store   *store.Store
	log     logging.Logger
}

// New returns a client rooted at baseURL (including the /api mount point),
// e.g. "https://localhost:8443/api".
func New(baseURL string, hc *http.Client, st *store.Store, log logging.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		store:   st,
		log:     log,
	}
}

// NewHTTPClient builds the transport used against the API. Development
// servers run on self-signed certificates, so verification can be switched
// off explicitly.
func NewHTTPClient(timeout time.Duration, insecureSkipVerify bool) *http.Client {
	hc := &http.Client{Timeout: timeout}
	if insecureSkipVerify {
		hc.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}
	return hc
}

// RequestError reports a non-2xx response that has no specific handling.
type RequestError struct {
	Status int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed with status %d", e.Status)
}

func (e *RequestError) Unwrap() error {
	return common.ErrRequestFailed
}

// bearerKind selects which store token, if any, authenticates a request.
// Tokens are read from the store at call time, never cached earlier.
type bearerKind int

const (
	bearerNone bearerKind = iota
	bearerSession
	bearerSudo
)

func (c *Client) bearerToken(kind bearerKind) *token.Token {
	switch kind {
	case bearerSession:
		return c.store.Session()
	case bearerSudo:
		return c.store.Sudo()
	default:
		return nil
	}
}

func (c *Client) do(ctx context.Context, method, path string, bearer bearerKind, body map[string]string) (*http.Response, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
	if t := c.bearerToken(bearer); t != nil {
		req.Header.Set("Authorization", "Bearer "+t.Raw)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return res, nil
}

// checkStatus enforces the uniform response policy: a 401 invalidates the
// token that authenticated the request, and any other non-2xx status becomes
// a RequestError.
func (c *Client) checkStatus(ctx context.Context, res *http.Response, bearer bearerKind) error {
	if res.StatusCode >= 200 && res.StatusCode < 300 {
		return nil
	}
	if res.StatusCode == http.StatusUnauthorized && bearer != bearerNone {
		c.log.Warn(ctx, "credential rejected by server, dropping it", "bearer", bearer)
		switch bearer {
		case bearerSession:
			if err := c.store.SetSession(ctx, nil); err != nil {
				return err
			}
			c.store.SetUser(nil)
		case bearerSudo:
			if err := c.store.SetSudo(ctx, nil); err != nil {
				return err
			}
		}
		return common.ErrUnauthorized
	}
	return &RequestError{Status: res.StatusCode}
}

// decodeJSON decodes the response body into v, but only when the server
// declares a JSON content type; any other body is treated as empty.
func decodeJSON(res *http.Response, v any) error {
	mt, _, err := mime.ParseMediaType(res.Header.Get("Content-Type"))
	if err != nil || mt != "application/json" {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(v)
}

// encodePassword applies the wire-format convention for passwords. This is
// not encryption; transport security comes from TLS.
func encodePassword(password string) string {
	return base64.StdEncoding.EncodeToString([]byte(password))
}
