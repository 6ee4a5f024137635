package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mkarpenko/tasktrack/internal/common"
	"github.com/mkarpenko/tasktrack/internal/server/accounts"
)

func (s *Server) register(c *gin.Context) {

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Email and password are required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Email and password are required"})
		return
	}
	if len(req.Password) < accounts.MinPasswordLength {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Password must be at least 6 characters"})
		return
	}

	account, token, err := s.accounts.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorAlreadyExists):
			c.JSON(http.StatusConflict, messageResponse{Message: "User already exists"})
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, messageResponse{Message: "Email and password are required"})
		default:
			s.internalError(c, "registration failed", err)
		}
		return
	}

	s.logger.Info(c.Request.Context(), "account registered", "account_id", account.ID)
	c.JSON(http.StatusCreated, authResponse{Token: token, User: toUserResponse(account)})
}

func (s *Server) login(c *gin.Context) {

	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Email and password are required"})
		return
	}
	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, messageResponse{Message: "Email and password are required"})
		return
	}

	account, token, err := s.accounts.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrorUnauthorized):
			// Identical body for unknown email and wrong password.
			c.JSON(http.StatusUnauthorized, messageResponse{Message: "Invalid credentials"})
		case errors.Is(err, common.ErrorValidation):
			c.JSON(http.StatusBadRequest, messageResponse{Message: "Email and password are required"})
		default:
			s.internalError(c, "login failed", err)
		}
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, User: toUserResponse(account)})
}

// logout exists for client-side symmetry only: tokens are stateless, so
// there is nothing to revoke on the server.
func (s *Server) logout(c *gin.Context) {
	c.JSON(http.StatusOK, messageResponse{Message: "Logged out successfully"})
}

func (s *Server) me(c *gin.Context) {

	account, err := s.accounts.Current(c.Request.Context(), principalID(c))
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			s.rejectUnauthorized(c)
			return
		}
		s.internalError(c, "current account lookup failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": userDetailResponse{
		ID:        account.ID,
		Email:     account.Email,
		CreatedAt: account.CreatedAt,
	}})
}

func (s *Server) internalError(c *gin.Context, msg string, err error) {
	s.logger.Error(c.Request.Context(), msg, "error", err)
	c.JSON(http.StatusInternalServerError, messageResponse{Message: "internal error"})
}
