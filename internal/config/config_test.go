package config_test

import (
	"testing"

	"github.com/jrsteele09/go-discord-oauth/internal/config"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Setenv("DISCORD_CLIENT_ID", "249608697955745802")
	t.Setenv("DISCORD_CLIENT_SECRET", "secret")
	t.Setenv("DISCORD_SCOPES", "identify,email,guilds")
	t.Setenv("PORT", "9090")

	c, err := config.New()
	require.NoError(t, err)

	require.Equal(t, uint64(249608697955745802), c.ClientID)
	require.Equal(t, "secret", c.ClientSecret)
	require.Equal(t, []string{"identify", "email", "guilds"}, c.Scopes)
	require.Equal(t, ":9090", c.Addr())
	require.Equal(t, "http://localhost:8080/callback", c.RedirectURI)
}

func TestNewMissingCredentials(t *testing.T) {
	t.Setenv("DISCORD_CLIENT_ID", "")
	t.Setenv("DISCORD_CLIENT_SECRET", "")

	_, err := config.New()
	require.Error(t, err)
}

func TestAddrKeepsExistingColon(t *testing.T) {
	t.Setenv("DISCORD_CLIENT_ID", "1")
	t.Setenv("DISCORD_CLIENT_SECRET", "secret")
	t.Setenv("PORT", ":7070")

	c, err := config.New()
	require.NoError(t, err)
	require.Equal(t, ":7070", c.Addr())
}
