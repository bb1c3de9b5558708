package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"sharedbid/internal/accounts"
	model "sharedbid/internal/models"
	"sharedbid/services/auction/helpers"
	"sharedbid/utils"
)

//go:generate mockgen -destination=mock_account_service.go -package=handler sharedbid/services/auction/handler AccountServiceInterface

type AccountServiceInterface interface {
	Register(ctx context.Context, reg accounts.Registration) (accounts.Session, error)
	Login(ctx context.Context, email, password string, role model.Role) (accounts.Session, error)
	GetUser(ctx context.Context, userID string) (model.User, error)
}

type AccountHandler struct {
	service AccountServiceInterface
}

func NewAccountHandler(service AccountServiceInterface) *AccountHandler {
	return &AccountHandler{service: service}
}

// RegisterHandler handles POST /auth/register
func (h *AccountHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	session, err := h.service.Register(c.Request.Context(), accounts.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		helpers.HandleServiceError(c, "RegisterHandler", "registration failed", err, map[string]any{"role": req.Role})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, session, "registered successfully")
	helpers.LogSuccess("RegisterHandler", "registered successfully", map[string]any{
		"user_id": session.User.UserID,
		"role":    session.User.Role,
	})
}

// LoginHandler handles POST /auth/login
func (h *AccountHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	session, err := h.service.Login(c.Request.Context(), req.Email, req.Password, req.Role)
	if err != nil {
		helpers.HandleServiceError(c, "LoginHandler", "login failed", err, map[string]any{"role": req.Role})
		return
	}

	utils.JSONResponse(c, http.StatusOK, session, "logged in successfully")
	helpers.LogSuccess("LoginHandler", "logged in successfully", map[string]any{
		"user_id": session.User.UserID,
		"role":    session.User.Role,
	})
}

// MeHandler handles GET /auth/me
func (h *AccountHandler) MeHandler(c *gin.Context) {
	claims, ok := requireClaims(c, "MeHandler")
	if !ok {
		return
	}

	user, err := h.service.GetUser(c.Request.Context(), claims.UserID())
	if err != nil {
		helpers.HandleServiceError(c, "MeHandler", "error retrieving user", err, map[string]any{"user_id": claims.UserID()})
		return
	}
	utils.JSONResponse(c, http.StatusOK, user, "user retrieved successfully")
}
