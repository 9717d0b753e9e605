package main

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/go-discord-oauth/internal/config"
	"github.com/jrsteele09/go-discord-oauth/oauthmodel"
	"github.com/jrsteele09/go-discord-oauth/requester"
	"github.com/rs/zerolog/log"
)

// stateTTL bounds how long a pending consent redirect stays valid.
const stateTTL = 10 * time.Minute

type server struct {
	config    config.Config
	requester requester.Requester

	statesLock sync.Mutex
	states     map[string]time.Time // state -> issued at
}

func newServer(c config.Config) *server {
	return &server{
		config:    c,
		requester: requester.New(requester.WithLogger(log.Logger)),
		states:    map[string]time.Time{},
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.loginHandler())
	mux.HandleFunc("/callback", s.callbackHandler())
	return mux
}

// loginHandler sends the user to Discord's consent screen with a fresh state
// value.
func (s *server) loginHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		state := uuid.NewString()
		s.rememberState(state)

		authorizeURL := requester.AuthorizeURL(s.config.ClientID, s.config.RedirectURI, state, s.config.Scopes...)
		http.Redirect(w, r, authorizeURL, http.StatusFound)
	}
}

// callbackHandler receives the redirect from Discord, exchanges the code and
// shows the resulting user profile.
func (s *server) callbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if errParam := r.FormValue("error"); errParam != "" {
			http.Error(w, "authorization failed: "+errParam+" - "+r.FormValue("error_description"), http.StatusBadRequest)
			return
		}

		code := r.FormValue("code")
		state := r.FormValue("state")
		if code == "" || state == "" {
			http.Error(w, "missing code or state parameter", http.StatusBadRequest)
			return
		}
		if !s.consumeState(state) {
			http.Error(w, "invalid state parameter", http.StatusBadRequest)
			return
		}

		exchangeReq := oauthmodel.NewAccessTokenExchangeRequest(s.config.ClientID, s.config.ClientSecret, code, s.config.RedirectURI)
		tokens, err := s.requester.ExchangeCode(r.Context(), exchangeReq)
		if err != nil {
			log.Error().Err(err).Msg("token exchange failed")
			http.Error(w, "token exchange failed", http.StatusBadGateway)
			return
		}

		user, err := s.requester.FetchUser(r.Context(), tokens.AccessToken)
		if err != nil {
			log.Error().Err(err).Msg("user fetch failed")
			http.Error(w, "user fetch failed", http.StatusBadGateway)
			return
		}
		log.Info().Str("user_id", user.ID).Str("tag", user.Tag()).Msg("user logged in")

		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		json.NewEncoder(w).Encode(map[string]any{
			"user":       user,
			"scope":      tokens.Scope,
			"expires_at": tokens.Expiry(time.Now().UTC()),
		})
	}
}

func (s *server) rememberState(state string) {
	s.statesLock.Lock()
	defer s.statesLock.Unlock()
	for value, issued := range s.states {
		if time.Since(issued) > stateTTL {
			delete(s.states, value)
		}
	}
	s.states[state] = time.Now()
}

func (s *server) consumeState(state string) bool {
	s.statesLock.Lock()
	defer s.statesLock.Unlock()
	issued, ok := s.states[state]
	if !ok {
		return false
	}
	delete(s.states, state)
	return time.Since(issued) <= stateTTL
}
