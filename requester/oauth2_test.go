package requester_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jrsteele09/go-discord-oauth/requester"
	"github.com/stretchr/testify/require"
)

func TestOAuth2RequesterExchangeCode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "authorization_code", r.PostForm.Get("grant_type"))
		require.Equal(t, testCode, r.PostForm.Get("code"))
		require.Equal(t, "249608697955745802", r.PostForm.Get("client_id"))
		require.Equal(t, testClientSecret, r.PostForm.Get("client_secret"))
		require.Equal(t, testRedirectURI, r.PostForm.Get("redirect_uri"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tokenResponseBody))
	}))
	defer srv.Close()

	req := requester.NewOAuth2Requester(requester.WithTokenURI(srv.URL))
	resp, err := req.ExchangeCode(context.Background(), codeRequest())
	require.NoError(t, err)

	require.Equal(t, "abc", resp.AccessToken)
	require.Equal(t, "Bearer", resp.TokenType)
	require.Equal(t, 604800, resp.ExpiresIn)
	require.Equal(t, "def", resp.RefreshToken)
	require.Equal(t, "identify", resp.Scope)
}

func TestOAuth2RequesterExchangeRefreshToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		require.Equal(t, "refresh_token", r.PostForm.Get("grant_type"))
		require.Equal(t, testRefreshToken, r.PostForm.Get("refresh_token"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(tokenResponseBody))
	}))
	defer srv.Close()

	req := requester.NewOAuth2Requester(requester.WithTokenURI(srv.URL))
	resp, err := req.ExchangeRefreshToken(context.Background(), refreshRequest())
	require.NoError(t, err)

	require.Equal(t, "abc", resp.AccessToken)
	require.Equal(t, "def", resp.RefreshToken)
}

func TestOAuth2RequesterErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	req := requester.NewOAuth2Requester(requester.WithTokenURI(srv.URL))

	resp, err := req.ExchangeCode(context.Background(), codeRequest())
	require.ErrorIs(t, err, requester.ErrTransport)
	require.Nil(t, resp)

	var statusErr *requester.StatusError
	require.ErrorAs(t, err, &statusErr)
	require.Equal(t, http.StatusBadRequest, statusErr.StatusCode)
}

func TestOAuth2RequesterFetchUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "Bearer sometoken", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(userResponseBody))
	}))
	defer srv.Close()

	req := requester.NewOAuth2Requester(requester.WithUserURI(srv.URL))
	user, err := req.FetchUser(context.Background(), "sometoken")
	require.NoError(t, err)
	require.Equal(t, "123", user.ID)
}
