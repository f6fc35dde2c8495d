package handlers

import (
	"net/http"

	"tripplanner/internal/services"

	"github.com/gin-gonic/gin"
)

// POST /api/auth/register
func Register(c *gin.Context) {
	var in services.RegisterInput
	if !BindJSONOrError(c, &in) {
		return
	}
	res, err := authService(c).Register(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, res)
}

// POST /api/auth/login
func Login(c *gin.Context) {
	var in services.LoginInput
	if !BindJSONOrError(c, &in) {
		return
	}
	res, err := authService(c).Login(in)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
