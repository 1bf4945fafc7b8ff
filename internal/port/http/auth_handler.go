package http

import (
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

type AuthHandler struct {
	auth    Auth
	metrics *metrics.MetricsManager
	log     logger.Logger
}

// NewAuthHandler builds the handler. m may be nil.
func NewAuthHandler(auth Auth, m *metrics.MetricsManager, log logger.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, metrics: m, log: log}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Portal   string `json:"portal"`
}

type userResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type sessionResponse struct {
	Authenticated       bool            `json:"authenticated"`
	Session             *entity.Session `json:"session,omitempty"`
	CanAccessAdminPanel bool            `json:"canAccessAdminPanel"`
}

type strengthRequest struct {
	Password string `json:"password"`
}

type strengthResponse struct {
	Strength service.PasswordStrength `json:"strength"`
	Score    int                      `json:"score"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var in entity.RegisterInput
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}
	user, err := h.auth.Register(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, userResponse{
		ID:        user.ID,
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Role:      user.Role.String(),
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	portal, err := entity.ParsePortal(req.Portal)
	if err != nil {
		writeError(w, h.log, entity.InvalidArgument("auth.login", err))
		return
	}

	result, err := h.auth.Login(r.Context(), v.Session, req.Email, req.Password, portal)
	if err != nil {
		h.count(portal, entity.KindOf(err).String())
		writeError(w, h.log, err)
		return
	}
	h.count(portal, "ok")
	writeJSON(w, http.StatusOK, result)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	h.auth.Logout(r.Context(), v.Session)
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	v, ok := visitorOrFail(w, r, h.log)
	if !ok {
		return
	}
	resp := sessionResponse{}
	if current, ok := v.Session.Current(r.Context()); ok {
		resp.Authenticated = true
		resp.Session = &current
		resp.CanAccessAdminPanel = v.Session.CanAccessAdminPanel(r.Context())
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *AuthHandler) PasswordStrength(w http.ResponseWriter, r *http.Request) {
	var req strengthRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	strength, score := service.RatePassword(req.Password)
	writeJSON(w, http.StatusOK, strengthResponse{Strength: strength, Score: score})
}

func (h *AuthHandler) count(portal entity.Portal, result string) {
	if h.metrics != nil {
		h.metrics.LoginsTotal.WithLabelValues(string(portal), result).Inc()
	}
}
