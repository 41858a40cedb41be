package handlers

import (
	"errors"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/apperr"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// bcrypt work factor for password hashing
const hashCost = 8

type UsersHandler struct {
	db *gorm.DB
}

func NewUsersHandler(db *gorm.DB) *UsersHandler {
	return &UsersHandler{db: db}
}

type CreateUserRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Create registers a new user. Email uniqueness is enforced by the unique
// index: the insert is a single atomic statement and a duplicate key comes
// back as a domain error, so concurrent signups cannot race past a check.
func (h *UsersHandler) Create(c *gin.Context) {
	var req CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	name := strings.TrimSpace(req.Name)
	if utf8.RuneCountInString(name) < 2 {
		fail(c, apperr.New("name must be at least 2 characters"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), hashCost)
	if err != nil {
		fail(c, err)
		return
	}

	user := models.User{
		Name:     name,
		Email:    req.Email,
		Password: string(hash),
		Role:     models.RoleCustomer,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			fail(c, apperr.WithStatus("User with same email already exists", http.StatusConflict))
			return
		}
		fail(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}
