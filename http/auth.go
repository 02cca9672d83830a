package http

import (
	"net/http"
	"time"

	"github.com/awalczyk/biascope"
)

// credentials is the request body for /register and /login.
type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (c *credentials) Validate() error {
	if c.Username == "" {
		return biascope.Errorf(biascope.EINVALID, "username required")
	}
	if c.Password == "" {
		return biascope.Errorf(biascope.EINVALID, "password required")
	}
	return nil
}

// handleRegister creates a new account.
func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		s.Error(w, r, err)
		return
	}
	if err := creds.Validate(); err != nil {
		s.Error(w, r, err)
		return
	}

	hash, err := s.Hasher.Hash(creds.Password)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	user := &biascope.User{Username: creds.Username, PasswordHash: hash}
	if err := s.Users.CreateUser(r.Context(), user); err != nil {
		s.Error(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, map[string]string{"message": "User registered successfully"})
}

// handleLogin verifies credentials and issues a session cookie.
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var creds credentials
	if err := decodeJSON(r, &creds); err != nil {
		s.Error(w, r, err)
		return
	}
	if err := creds.Validate(); err != nil {
		s.Error(w, r, err)
		return
	}

	user, err := s.Users.FindUserByName(r.Context(), creds.Username)
	if err != nil {
		// Don't reveal whether the username exists.
		s.Error(w, r, biascope.Errorf(biascope.EUNAUTHORIZED, "invalid credentials"))
		return
	}

	if err := s.Hasher.Compare(user.PasswordHash, creds.Password); err != nil {
		s.Error(w, r, biascope.Errorf(biascope.EUNAUTHORIZED, "invalid credentials"))
		return
	}

	session, err := s.Sessions.CreateSession(r.Context(), user.Username, s.sessionTTL())
	if err != nil {
		s.Error(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    session.Token,
		Path:     "/",
		Expires:  session.ExpiresAt,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Login successful"})
}

// handleLogout invalidates the caller's session.
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	session, err := s.currentSession(r)
	if err != nil {
		s.Error(w, r, err)
		return
	}

	if err := s.Sessions.DeleteSession(r.Context(), session.Token); err != nil {
		s.Error(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	s.writeJSON(w, http.StatusOK, map[string]string{"message": "Logged out"})
}

// handleCheckAuth reports the caller's authentication state.
func (s *Server) handleCheckAuth(w http.ResponseWriter, r *http.Request) {
	session, err := s.currentSession(r)
	if err != nil {
		s.writeJSON(w, http.StatusUnauthorized, map[string]any{"authenticated": false})
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"user":          session.Username,
	})
}
