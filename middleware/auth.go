package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/apperr"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type Claims struct {
	Role models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user. The subject carries
// the user id and the role claim carries the user's role.
func GenerateToken(user *models.User, secret []byte) (string, error) {
	claims := Claims{
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// EnsureAuthenticated validates the bearer JWT and injects the caller's
// identity into the request context.
func EnsureAuthenticated(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			abort(c, apperr.WithStatus("JWT token not found", http.StatusUnauthorized))
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return secret, nil
		})
		if err != nil || !token.Valid {
			abort(c, apperr.WithStatus("Invalid JWT token", http.StatusUnauthorized))
			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			abort(c, apperr.WithStatus("Invalid JWT token", http.StatusUnauthorized))
			return
		}

		c.Set("userID", userID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// VerifyUserAuthorization enforces that the authenticated caller has one of
// the allowed roles. Both a missing identity and a role outside the set are
// answered with 401.
func VerifyUserAuthorization(roles ...models.Role) gin.HandlerFunc {
	allowed := make(map[models.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}

	return func(c *gin.Context) {
		roleVal, exists := c.Get("role")
		if !exists {
			abort(c, apperr.WithStatus("Unauthorized", http.StatusUnauthorized))
			return
		}
		role, ok := roleVal.(models.Role)
		if !ok {
			abort(c, apperr.WithStatus("Unauthorized", http.StatusUnauthorized))
			return
		}
		if _, ok := allowed[role]; !ok {
			abort(c, apperr.WithStatus("Unauthorized", http.StatusUnauthorized))
			return
		}
		c.Next()
	}
}

// GetUserID extracts the caller's user id from context
func GetUserID(c *gin.Context) uuid.UUID {
	val, _ := c.Get("userID")
	id, _ := val.(uuid.UUID)
	return id
}

// GetRole extracts the caller's role from context
func GetRole(c *gin.Context) models.Role {
	val, _ := c.Get("role")
	role, _ := val.(models.Role)
	return role
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
