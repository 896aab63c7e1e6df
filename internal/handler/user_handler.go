package handler

import (
	"net/http"

	"Relief_Link/internal/middleware"
	"Relief_Link/internal/pkg"
	"Relief_Link/internal/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc          *service.UserService
	cookieSecure bool
}

type SignupReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func NewUserHandler(svc *service.UserService, cookieSecure bool) *UserHandler {
	return &UserHandler{svc: svc, cookieSecure: cookieSecure}
}

func (h *UserHandler) Signup(c *gin.Context) {
	var req SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	token, err := h.svc.Signup(req.Name, req.Email, req.Password, req.Phone, req.Location)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"token": token})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid params"})
		return
	}

	token, profile, err := h.svc.Login(req.Email, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	h.setTokenCookie(c, token, int(pkg.TokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "user": profile})
}

// Verify reads the token from the cookie only.
func (h *UserHandler) Verify(c *gin.Context) {
	cookie, err := c.Cookie(middleware.TokenCookieName)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	claims, err := h.svc.Verify(cookie)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": gin.H{"id": claims.UserID, "email": claims.Email}})
}

// Logout clears the cookie. Idempotent, always succeeds.
func (h *UserHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (h *UserHandler) setTokenCookie(c *gin.Context, token string, maxAge int) {
	if h.cookieSecure {
		// Cross-site SPA deployments need SameSite=None; that requires Secure.
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", h.cookieSecure, true)
}
