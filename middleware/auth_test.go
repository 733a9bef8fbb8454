package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smarttravelhq/smart-travel-backend/utils"
)

func newAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/probe", Auth(secret), func(c *gin.Context) {
		userID, _ := CurrentUserID(c)
		c.JSON(http.StatusOK, gin.H{"status": "success", "user_id": userID})
	})
	return router
}

func TestAuth_RejectsMissingSession(t *testing.T) {
	router := newAuthRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"error"`)
	assert.Contains(t, w.Body.String(), "Not logged in")
}

func TestAuth_RejectsBadToken(t *testing.T) {
	router := newAuthRouter("secret")

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: "garbage"})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_AcceptsCookieSession(t *testing.T) {
	router := newAuthRouter("secret")

	token, err := utils.GenerateToken("secret", 3, "Alice", 0)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":3`)
}

func TestAuth_AcceptsBearerToken(t *testing.T) {
	router := newAuthRouter("secret")

	token, err := utils.GenerateToken("secret", 5, "Bob", 0)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"user_id":5`)
}

func TestAuth_RejectsTokenSignedWithOtherSecret(t *testing.T) {
	router := newAuthRouter("secret")

	token, err := utils.GenerateToken("other-secret", 3, "Alice", 0)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/probe", nil)
	req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
