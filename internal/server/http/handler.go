package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/matchpredictor/internal/common"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	UserID string `json:"userId"`
	Token  string `json:"token"`
}

// POST /api/auth/signup
func (s *HTTPServer) signup(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := s.users.SignUp(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{UserID: res.UserID, Token: res.Token})
}

// POST /api/auth/login
func (s *HTTPServer) login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	res, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		s.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{UserID: res.UserID, Token: res.Token})
}

// GET /api/protected
func (s *HTTPServer) protected(c *gin.Context) {
	claims, ok := claimsFromContext(c)
	if !ok {
		// requireAuth always runs first on this route.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "This is a protected route",
		"user": gin.H{
			"userId": claims.UserID,
			"email":  claims.Email,
		},
	})
}

// GET /
func (s *HTTPServer) landing(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Title": "MatchPredictor",
	})
}

// GET /healthz
func (s *HTTPServer) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// statusFromError maps service errors to HTTP status codes. Conflicts are
// detected by error identity, not by matching message substrings.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, common.ErrCredentialsRequired),
		errors.Is(err, common.ErrInvalidEmailFormat),
		errors.Is(err, common.ErrPasswordTooShort):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrUserAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func (s *HTTPServer) renderError(c *gin.Context, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError {
		s.logger.Error(c.Request.Context(), "request failed", "error", err.Error())
		err = common.ErrorInternal
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
