package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/khoahotran/foliohub/internal/application/usecase/auth"
	"github.com/khoahotran/foliohub/pkg/apperror"
)

type AuthHandler struct {
	signupUseCase *authUC.SignupUseCase
	loginUseCase  *authUC.LoginUseCase
}

func NewAuthHandler(signupUC *authUC.SignupUseCase, loginUC *authUC.LoginUseCase) *AuthHandler {
	return &AuthHandler{
		signupUseCase: signupUC,
		loginUseCase:  loginUC,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req signupRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Invalid request body", err))
		return
	}

	input := authUC.SignupInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.signupUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	// no token at signup, the client logs in separately
	c.JSON(http.StatusOK, successEnvelope(gin.H{
		"user": ToUserDTO(output.User),
	}, "User registered successfully"))
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.NewInvalidInput("Email and password are required", err))
		return
	}

	input := authUC.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	}

	output, err := h.loginUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, successEnvelope(gin.H{
		"user":  ToUserDTO(output.User),
		"token": output.AccessToken,
	}, "Login successful"))
}
