package oauthmodel_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jrsteele09/go-discord-oauth/oauthmodel"
	"github.com/stretchr/testify/require"
)

func TestAccessTokenResponseDecoding(t *testing.T) {
	body := `{"access_token":"abc","token_type":"Bearer","expires_in":604800,"refresh_token":"def","scope":"identify"}`

	var resp oauthmodel.AccessTokenResponse
	require.NoError(t, json.Unmarshal([]byte(body), &resp))

	require.Equal(t, "abc", resp.AccessToken)
	require.Equal(t, "Bearer", resp.TokenType)
	require.Equal(t, 604800, resp.ExpiresIn)
	require.Equal(t, "def", resp.RefreshToken)
	require.Equal(t, "identify", resp.Scope)
}

func TestAccessTokenResponseExpiry(t *testing.T) {
	resp := oauthmodel.AccessTokenResponse{ExpiresIn: 604800}
	issued := time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)

	require.Equal(t, issued.Add(7*24*time.Hour), resp.Expiry(issued))
}
