package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Affsyamf/pemesananhotel-sub000/models"
	"github.com/Affsyamf/pemesananhotel-sub000/utils"
)

func authTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", RequireAuth(), func(c *gin.Context) {
		p, _ := CurrentPrincipal(c)
		c.JSON(http.StatusOK, gin.H{"user_id": p.UserID, "admin": p.IsAdmin()})
	})
	r.GET("/admin", RequireAuth(), RequireAdmin(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func doGet(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authTestRouter()

	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", "").Code)
	assert.Equal(t, http.StatusUnauthorized, doGet(r, "/me", "garbage").Code)

	token, err := utils.GenerateToken(42, models.RoleUser)
	require.NoError(t, err)

	w := doGet(r, "/me", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":42`)
}

func TestRequireAdmin(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	r := authTestRouter()

	userToken, err := utils.GenerateToken(1, models.RoleUser)
	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, doGet(r, "/admin", userToken).Code)

	adminToken, err := utils.GenerateToken(2, models.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, doGet(r, "/admin", adminToken).Code)
}
