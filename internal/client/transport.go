package client

import (
	"net/http"

	"github.com/savasana-io/savasana/internal/sessionstate"
)

// AuthTransport is an http.RoundTripper that attaches the current session
// credential to every outgoing request. When nobody is logged in, requests
// pass through unmodified. It never reacts to 401 responses; a rejected
// credential surfaces to the caller like any other error status.
type AuthTransport struct {
	Base    http.RoundTripper
	Session *sessionstate.Holder
}

// NewAuthTransport wraps base with credential attachment. A nil base uses
// http.DefaultTransport.
func NewAuthTransport(session *sessionstate.Holder, base http.RoundTripper) *AuthTransport {
	return &AuthTransport{Base: base, Session: session}
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip implements http.RoundTripper. The incoming request is never
// mutated; an authenticated call goes out on a clone.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	info := t.Session.SessionInformation()
	if info == nil {
		return t.base().RoundTrip(req)
	}

	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", info.Type+" "+info.Token)
	return t.base().RoundTrip(clone)
}
