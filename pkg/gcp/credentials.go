/*
Package gcp resolves Google Cloud credentials for the Discovery Engine
API. Application-default credentials are the only supported mechanism,
matching gcloud-based operator workflows.
*/
package gcp

import (
	"context"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// CloudPlatformScope is the OAuth scope required by the Discovery Engine API.
const CloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

/*
TokenSource yields a currently-valid access token. It is injected into
the registry client so tests can substitute a static fake.
*/
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// CredentialError represents a failure to resolve or refresh credentials.
type CredentialError struct {
	Err error
}

func (e *CredentialError) Error() string {
	return fmt.Sprintf("failed to acquire Google Cloud credentials: %v", e.Err)
}

func (e *CredentialError) Unwrap() error {
	return e.Err
}

/*
adcTokenSource resolves application-default credentials lazily, on the
first token request. Deferring resolution keeps configuration and state
precondition failures ahead of any credential lookup, and the wrapped
oauth2.TokenSource refreshes expired tokens on its own.
*/
type adcTokenSource struct {
	src oauth2.TokenSource
}

// NewADCTokenSource returns a TokenSource backed by application-default
// credentials with the cloud-platform scope.
func NewADCTokenSource() TokenSource {
	return &adcTokenSource{}
}

func (a *adcTokenSource) Token(ctx context.Context) (string, error) {
	if a.src == nil {
		creds, err := google.FindDefaultCredentials(ctx, CloudPlatformScope)

		if err != nil {
			return "", &CredentialError{Err: err}
		}

		a.src = creds.TokenSource
	}

	token, err := a.src.Token()

	if err != nil {
		return "", &CredentialError{Err: err}
	}

	return token.AccessToken, nil
}

/*
staticTokenSource always returns the same token. Test use only.
*/
type staticTokenSource struct {
	token string
}

// StaticTokenSource returns a TokenSource that always yields token.
func StaticTokenSource(token string) TokenSource {
	return &staticTokenSource{token: token}
}

func (s *staticTokenSource) Token(ctx context.Context) (string, error) {
	return s.token, nil
}
