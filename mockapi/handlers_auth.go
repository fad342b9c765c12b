package mockapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fintrack-labs/fintrack-go/models"
	"github.com/fintrack-labs/fintrack-go/utils"
)

func (s *Server) login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "email and password are required")
		return
	}

	user, hash, ok := s.store.FindUserByEmail(req.Email)
	if !ok || !utils.CheckPassword(req.Password, hash) {
		s.log.Warn("login rejected",
			zap.String("email", utils.MaskEmail(req.Email)),
			zap.String("ip", c.ClientIP()),
		)
		detail(c, http.StatusUnauthorized, "No active account found with the given credentials")
		return
	}
	s.log.Info("login", zap.String("email", utils.MaskEmail(req.Email)))

	access, refresh, err := s.issueTokens(user)
	if err != nil {
		detail(c, http.StatusInternalServerError, "could not issue tokens")
		return
	}

	c.JSON(http.StatusOK, models.LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         *user,
	})
}

func (s *Server) refresh(c *gin.Context) {
	var req models.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "refresh_token is required")
		return
	}

	claims, err := utils.ValidateToken(s.cfg.JWTSecret, req.RefreshToken, "refresh")
	if err != nil {
		s.log.Warn("refresh rejected", zap.String("token", utils.MaskToken(req.RefreshToken)))
		detail(c, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}

	user, ok := s.store.GetUser(claims.UserID)
	if !ok {
		detail(c, http.StatusUnauthorized, "Token is invalid or expired")
		return
	}

	access, refreshToken, err := s.issueTokens(user)
	if err != nil {
		detail(c, http.StatusInternalServerError, "could not issue tokens")
		return
	}

	c.JSON(http.StatusOK, models.TokenPair{AccessToken: access, RefreshToken: refreshToken})
}

func (s *Server) register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "email, password, first_name and last_name are required")
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		detail(c, http.StatusInternalServerError, "could not hash password")
		return
	}

	user, err := s.store.CreateUser(req.Email, req.FirstName, req.LastName, hash)
	if err != nil {
		detail(c, http.StatusBadRequest, "user with this email already exists")
		return
	}

	s.log.Info("user registered", zap.String("email", utils.MaskEmail(user.Email)))
	c.JSON(http.StatusCreated, user)
}

func (s *Server) me(c *gin.Context) {
	user, ok := s.store.GetUser(currentUserID(c))
	if !ok {
		detail(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		detail(c, http.StatusBadRequest, "invalid profile payload")
		return
	}

	user, ok := s.store.UpdateProfile(currentUserID(c), req)
	if !ok {
		detail(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) issueTokens(user *models.User) (access, refresh string, err error) {
	access, err = utils.GenerateToken(s.cfg.JWTSecret, user.ID, user.Email, "access", s.cfg.AccessTTL)
	if err != nil {
		return "", "", err
	}
	refresh, err = utils.GenerateToken(s.cfg.JWTSecret, user.ID, user.Email, "refresh", s.cfg.RefreshTTL)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}
