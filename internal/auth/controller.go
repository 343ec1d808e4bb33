package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"turfbook/internal/shared/utils/response"
)

type Controller struct {
	service Service
}

func NewController(service Service) *Controller {
	return &Controller{service: service}
}

// Token handles POST /api/v1/auth/token
func (c *Controller) Token(ctx *gin.Context) {
	var req TokenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RespondJSON(ctx, "error", http.StatusBadRequest, "Invalid request body", nil, err.Error())
		return
	}

	token, err := c.service.IssueToken(req.AdminKey)
	if err != nil {
		if errors.Is(err, ErrInvalidAdminKey) {
			response.RespondJSON(ctx, "error", http.StatusUnauthorized, "Invalid admin key", nil, nil)
			return
		}
		response.RespondJSON(ctx, "error", http.StatusInternalServerError, "Failed to issue token", nil, err.Error())
		return
	}

	response.RespondJSON(ctx, "success", http.StatusOK, "Token issued", token, nil)
}
