package http

import (
	"net/http"

	"github.com/Go4ItSports/go4it/internal/domain"
	"github.com/Go4ItSports/go4it/pkg/logger"
)

type UserHandler struct {
	userService domain.UserServiceInterface
	logger      logger.Logger
}

func NewUserHandler(userService domain.UserServiceInterface, logger logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

func (h *UserHandler) RegisterRoutes(mux *http.ServeMux, requireAuth Middleware) {
	// Public
	mux.HandleFunc("/api/users.signin", h.handleSignIn)
	mux.HandleFunc("/api/users.verify", h.handleVerifyCode)

	mux.Handle("/api/users.me", requireAuth(http.HandlerFunc(h.handleMe)))
	mux.Handle("/api/users.updateProfile", requireAuth(http.HandlerFunc(h.handleUpdateProfile)))
	mux.Handle("/api/users.logout", requireAuth(http.HandlerFunc(h.handleLogout)))
}

func (h *UserHandler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var input domain.SignInInput
	if !decodeJSON(w, r, &input) {
		return
	}

	code, err := h.userService.SignIn(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to sign in")
		return
	}

	// code is only returned outside production
	response := map[string]string{
		"message": "Magic code sent to your email",
	}
	if code != "" {
		response["code"] = code
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *UserHandler) handleVerifyCode(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var input domain.VerifyCodeInput
	if !decodeJSON(w, r, &input) {
		return
	}

	response, err := h.userService.VerifyCode(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to verify code")
		return
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *UserHandler) handleMe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	user, orgs, err := h.userService.Me(r.Context())
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to load current user")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"user":          user,
		"organizations": orgs,
	})
}

func (h *UserHandler) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var input domain.UpdateProfileInput
	if !decodeJSON(w, r, &input) {
		return
	}
	user, err := h.userService.UpdateProfile(r.Context(), input)
	if err != nil {
		writeServiceError(w, h.logger, err, "Failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"user": user})
}

func (h *UserHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		WriteJSONError(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := h.userService.Logout(r.Context()); err != nil {
		writeServiceError(w, h.logger, err, "Failed to log out")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
