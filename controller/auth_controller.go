// controller/auth_controller.go
package controller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/backoffice/errors"
	"github.com/dev-mohitbeniwal/backoffice/middleware"
	"github.com/dev-mohitbeniwal/backoffice/model"
	"github.com/dev-mohitbeniwal/backoffice/service"
	"github.com/dev-mohitbeniwal/backoffice/util"
)

type AuthController struct {
	authService  service.IAuthService
	cookieSecure bool
}

func NewAuthController(authService service.IAuthService, cookieSecure bool) *AuthController {
	return &AuthController{authService: authService, cookieSecure: cookieSecure}
}

// RegisterRoutes registers the public sign-in routes
func (ac *AuthController) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-in", ac.SignIn)
		auth.POST("/verification-code/:token", ac.VerifyCode)
		auth.POST("/sign-out", ac.SignOut)
	}
}

// SignIn endpoint
func (ac *AuthController) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid sign-in data", echo_errors.ErrInvalidFormData)
		return
	}

	token, err := ac.authService.SignIn(c.Request.Context(), req)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"verificationToken": token})
}

// VerifyCode endpoint
func (ac *AuthController) VerifyCode(c *gin.Context) {
	var req model.VerificationCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid verification code", echo_errors.ErrInvalidFormData)
		return
	}

	session, err := ac.authService.VerifyCode(c.Request.Context(), c.Param("token"), req.Code)
	if err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, session.Token, sessionMaxAge(session), "/", "", ac.cookieSecure, true)
	c.JSON(http.StatusOK, session)
}

// SignOut endpoint
func (ac *AuthController) SignOut(c *gin.Context) {
	token := middleware.SessionToken(c)
	if token == "" {
		c.Status(http.StatusNoContent)
		return
	}

	if err := ac.authService.SignOut(c.Request.Context(), token); err != nil {
		util.RespondWithMappedError(c, err)
		return
	}

	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", ac.cookieSecure, true)
	c.Status(http.StatusNoContent)
}

func sessionMaxAge(session *model.Session) int {
	seconds := int(time.Until(session.ExpiresAt).Seconds())
	if seconds < 1 {
		return 1
	}
	return seconds
}
