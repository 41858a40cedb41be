package handlers

import (
	"errors"
	"net/http"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/apperr"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/middleware"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type SessionsHandler struct {
	db     *gorm.DB
	secret []byte
}

func NewSessionsHandler(db *gorm.DB, secret []byte) *SessionsHandler {
	return &SessionsHandler{db: db, secret: secret}
}

type CreateSessionRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Create authenticates a user and returns a signed JWT. Unknown emails and
// wrong passwords get the same answer to avoid account enumeration.
func (h *SessionsHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if !bindJSON(c, &req) {
		return
	}

	var user models.User
	err := h.db.WithContext(c.Request.Context()).
		Where("email = ?", req.Email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			fail(c, apperr.WithStatus("Invalid email or password", http.StatusUnauthorized))
			return
		}
		fail(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		fail(c, apperr.WithStatus("Invalid email or password", http.StatusUnauthorized))
		return
	}

	token, err := middleware.GenerateToken(&user, h.secret)
	if err != nil {
		fail(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}
