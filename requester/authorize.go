package requester

import (
	"net/url"
	"strconv"
	"strings"
)

// AuthorizeURL builds the consent URL a user visits to approve the
// application. The caller supplies and later verifies the state value; this
// package does not track it.
func AuthorizeURL(clientID uint64, redirectURI, state string, scopes ...string) string {
	v := url.Values{}
	v.Set("response_type", "code")
	v.Set("client_id", strconv.FormatUint(clientID, 10))
	v.Set("redirect_uri", redirectURI)
	if state != "" {
		v.Set("state", state)
	}
	if len(scopes) > 0 {
		v.Set("scope", strings.Join(scopes, " "))
	}
	return BaseAuthorizeURI + "?" + v.Encode()
}
