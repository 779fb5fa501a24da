package handler

import (
	"context"
	"net/http"
	"time"

	"chatboard/internal/domain/user"
	"chatboard/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// UserService is implemented by *services.UserService.
type UserService interface {
	CreateUser(ctx context.Context, u user.User) (user.SafeUser, error)
	GetUserByUsername(ctx context.Context, username string) (user.SafeUser, error)
	LoginUser(ctx context.Context, creds user.Credentials) (user.SafeUser, error)
	UpdateUser(ctx context.Context, username string, updates user.Updates) (user.SafeUser, error)
	DeleteUserByUsername(ctx context.Context, username string) (user.SafeUser, error)
}

type UserHandler struct {
	service UserService
	now     func() time.Time
}

func NewUserHandler(service UserService) *UserHandler {
	return &UserHandler{service: service, now: joinedNow}
}

// joinedNow is millisecond precision, the resolution BSON datetimes keep.
func joinedNow() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

// bindCredentials requires a non-empty username and password.
func bindCredentials(c *gin.Context) (httpdto.CredentialsRequest, bool) {
	var req httpdto.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid user body")
		return req, false
	}
	return req, true
}

func (h *UserHandler) Signup(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	created, err := h.service.CreateUser(c.Request.Context(), req.ToUser(h.now()))
	if err != nil {
		serviceFailure(c, "saving user", err)
		return
	}
	c.JSON(http.StatusOK, created)
}

func (h *UserHandler) Login(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	found, err := h.service.LoginUser(c.Request.Context(), req.ToCredentials())
	if err != nil {
		serviceFailure(c, "logging in user", err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *UserHandler) GetUser(c *gin.Context) {
	found, err := h.service.GetUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		serviceFailure(c, "retrieving user", err)
		return
	}
	c.JSON(http.StatusOK, found)
}

func (h *UserHandler) ResetPassword(c *gin.Context) {
	req, ok := bindCredentials(c)
	if !ok {
		return
	}

	updated, err := h.service.UpdateUser(c.Request.Context(), req.Username, req.ToUpdates())
	if err != nil {
		serviceFailure(c, "resetting password", err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	removed, err := h.service.DeleteUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		serviceFailure(c, "deleting user", err)
		return
	}
	c.JSON(http.StatusOK, removed)
}
