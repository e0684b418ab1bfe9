package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/primeticket/primeticket-api/internal/config"
	"github.com/primeticket/primeticket-api/internal/identity"
	"github.com/primeticket/primeticket-api/internal/model"
	"github.com/primeticket/primeticket-api/internal/utils"
)

// AuthHandler bundles dependencies for auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Identity *identity.Store
}

func NewAuthHandler(cfg config.Config, ids *identity.Store) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Identity: ids}
}

// ----- DTOs -----

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}
type authResp struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	User    *model.Session `json:"user,omitempty"`
	Access  *tokenPart    `json:"access,omitempty"`
}

func (h *AuthHandler) respond(c echo.Context, okStatus int, res identity.Result) error {
	if !res.Success {
		return c.JSON(http.StatusBadRequest, authResp{Success: false, Message: res.Message})
	}
	access, err := utils.NewAccessToken(h.Cfg.JWTSecret, res.User.ID, h.Cfg.AccessTTLMin)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "issue access failed"})
	}
	return c.JSON(okStatus, authResp{
		Success: true,
		Message: res.Message,
		User:    res.User,
		Access:  &tokenPart{Token: access.Token, Expires: access.Exp},
	})
}

// Register: create the user, auto-login and return a token.
func (h *AuthHandler) Register(c echo.Context) error {
	var req identity.Registration
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Identity.Register(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return h.respond(c, http.StatusCreated, res)
}

// Login: verify credentials and establish the session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Identity.Login(ctx, req.Email, req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if !res.Success {
		// wrong credentials is 401, not 400; existing sessions stay intact
		return c.JSON(http.StatusUnauthorized, authResp{Success: false, Message: res.Message})
	}
	return h.respond(c, http.StatusOK, res)
}

// Logout clears the session pointer; the directory is untouched.
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Identity.Logout(ctx); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "logout failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the current session, password-stripped by construction.
func (h *AuthHandler) Me(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	sess, err := h.Identity.Current(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load session failed"})
	}
	if sess == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "not logged in"})
	}
	return c.JSON(http.StatusOK, sess)
}

// UpdateProfile merges caller-supplied fields into the current user.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	var req identity.ProfileUpdate
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	ctx, cancel := reqCtx(c)
	defer cancel()

	res, err := h.Identity.UpdateProfile(ctx, req)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	if !res.Success {
		return c.JSON(http.StatusBadRequest, authResp{Success: false, Message: res.Message})
	}
	return c.JSON(http.StatusOK, authResp{Success: true, Message: res.Message, User: res.User})
}

// reqCtx bounds store calls to the request with a hard timeout.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), 5*time.Second)
}
