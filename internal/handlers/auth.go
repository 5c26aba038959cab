package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/snaptext/snaptext-backend/internal/services"
)

// Signup Request
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login Request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token Response
type TokenResponse struct {
	Token string `json:"token"`
}

// Verify Response
type VerifyResponse struct {
	Valid     bool   `json:"valid"`
	AccountID string `json:"account_id,omitempty"`
	Error     string `json:"error,omitempty"`
}

var accountService *services.AccountService

// InitAccountService wires the account orchestrator into the handlers.
func InitAccountService(s *services.AccountService) {
	accountService = s
}

// Signup handles account registration
func Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := accountService.SignUp(r.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingSignupFields):
			writeError(w, http.StatusBadRequest, "Username, email, and password are required")
		case errors.Is(err, services.ErrEmailTaken):
			writeError(w, http.StatusConflict, "Email already exists")
		case errors.Is(err, services.ErrUsernameTaken):
			writeError(w, http.StatusConflict, "Username already exists")
		default:
			log.Printf("ERROR: signup failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to create account")
		}
		return
	}

	writeJSON(w, http.StatusCreated, TokenResponse{Token: token})
}

// Login handles account login
func Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, err := accountService.LogIn(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingCredentials):
			writeError(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, services.ErrInvalidCredentials):
			writeError(w, http.StatusUnauthorized, "Invalid email or password")
		default:
			log.Printf("ERROR: login failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to log in")
		}
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

// VerifyToken reports whether the caller's bearer token is valid and its
// account still exists.
func VerifyToken(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, VerifyResponse{Valid: false, Error: "Missing bearer token"})
		return
	}

	accountID, err := accountService.VerifyToken(r.Context(), token)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAccountNotFound):
			writeJSON(w, http.StatusNotFound, VerifyResponse{Valid: false, Error: "User not found"})
		case errors.Is(err, services.ErrInvalidToken):
			writeJSON(w, http.StatusUnauthorized, VerifyResponse{Valid: false, Error: "Invalid or expired token"})
		default:
			log.Printf("ERROR: token verification failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to verify token")
		}
		return
	}

	writeJSON(w, http.StatusOK, VerifyResponse{Valid: true, AccountID: accountID})
}
