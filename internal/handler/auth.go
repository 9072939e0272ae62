package handler

import (
	"net/http"

	"tallypos/internal/apierror"
	"tallypos/internal/dto"
	"tallypos/internal/middleware"
	"tallypos/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	svc          service.AuthService
	cookieMaxAge int // seconds; mirrors the session TTL
}

func NewAuthHandler(svc service.AuthService, cookieMaxAge int) *AuthHandler {
	return &AuthHandler{svc: svc, cookieMaxAge: cookieMaxAge}
}

// Login POST /api/login
// Issues both a session cookie and a bearer token mapped to the same
// identity; either satisfies later authorization checks.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, err := h.svc.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, result.SessionID, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, result.Response)
}

// Logout POST /api/logout
// Revokes the cookie session. The bearer token stays valid for its TTL.
func (h *AuthHandler) Logout(c *gin.Context) {
	if middleware.GetIdentity(c) == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("You have not been authenticated."))
		return
	}
	if sid, err := c.Cookie(middleware.SessionCookie); err == nil && sid != "" {
		if err := h.svc.Logout(c.Request.Context(), sid); err != nil {
			respondError(c, err)
			return
		}
	}
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, apierror.New("Logged out."))
}

// Me GET /api/me
func (h *AuthHandler) Me(c *gin.Context) {
	id := middleware.GetIdentity(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, apierror.New("You have not been authenticated."))
		return
	}
	c.JSON(http.StatusOK, dto.UserResponse{
		ID:       id.UserID,
		Username: id.Username,
		Role:     string(id.Role),
	})
}
