package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/models"
	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	Service user.UserService
}

func NewUserHandler(service user.UserService) *UserHandler {
	return &UserHandler{Service: service}
}

func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.Service.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, "list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *UserHandler) DeleteUser(c *gin.Context) {
	result, err := h.Service.DeleteUser(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "delete user", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// CheckAdmin handles GET /admin/:email. Unknown emails answer admin=false.
func (h *UserHandler) CheckAdmin(c *gin.Context) {
	isAdmin, err := h.Service.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "check admin", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": isAdmin})
}

func (h *UserHandler) MakeAdmin(c *gin.Context) {
	result, err := h.Service.MakeAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, "make admin", err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpsertProfile handles PUT /user/:email. An empty body only refreshes the
// token.
func (h *UserHandler) UpsertProfile(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil && !errors.Is(err, io.EOF) {
		respondBindError(c, "upsert profile", err)
		return
	}
	resp, err := h.Service.UpsertProfile(c.Request.Context(), c.Param("email"), profile)
	if err != nil {
		respondError(c, "upsert profile", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
