package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"cinema_rental/internal/config"
	"cinema_rental/internal/utils"
)

// AuthHandler implements login for the single administrator account. The
// admin credentials come from the environment; the password is hashed once
// at construction time and only the hash is kept.
type AuthHandler struct {
	cfg          config.Config
	passwordHash string
}

// NewAuthHandler hashes the configured admin password and returns the
// handler. A hashing failure is a startup misconfiguration (absurd bcrypt
// cost) and panics.
func NewAuthHandler(cfg config.Config) *AuthHandler {
	hash, err := utils.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		panic("hash admin password: " + err.Error())
	}
	return &AuthHandler{cfg: cfg, passwordHash: hash}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type loginResp struct {
	Email  string    `json:"email"`
	Access tokenPart `json:"access"`
}

// Login verifies the admin credentials and issues an access token. Wrong
// email and wrong password produce the same 401 body on purpose.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "email/password required"})
	}
	if email != strings.ToLower(h.cfg.AdminEmail) || !utils.VerifyPassword(h.passwordHash, req.Password) {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid credentials"})
	}

	access, err := utils.NewAccessToken(h.cfg.JWTSecret, email, h.cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(http.StatusOK, loginResp{
		Email:  email,
		Access: tokenPart{Token: access.Token, Expires: access.Exp},
	})
}
