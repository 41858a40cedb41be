package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/Dev-HideyukiTakahashi/rocketlog-api/config"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/database"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/middleware"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/models"
	"github.com/Dev-HideyukiTakahashi/rocketlog-api/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

// newTestApp builds the real router over a fresh sqlite database.
func newTestApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	cfg := &config.Config{JWTSecret: testSecret, Port: 3333}

	r := gin.New()
	r.Use(middleware.ErrorHandler(zerolog.Nop()))
	routes.SetupRoutes(r, db, cfg)
	return r, db
}

func createUser(t *testing.T, db *gorm.DB, name, email string, role models.Role) models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{Name: name, Email: email, Password: string(hash), Role: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createDelivery(t *testing.T, db *gorm.DB, user models.User, status models.DeliveryStatus) models.Delivery {
	t.Helper()
	delivery := models.Delivery{UserID: user.ID, Description: "Test package", Status: status}
	require.NoError(t, db.Create(&delivery).Error)
	return delivery
}

func authToken(t *testing.T, user models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(&user, []byte(testSecret))
	require.NoError(t, err)
	return token
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
