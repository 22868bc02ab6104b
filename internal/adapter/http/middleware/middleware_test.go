package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bloodlink/internal/adapter/http/middleware"
	"bloodlink/internal/core/ports"
	"bloodlink/internal/core/ports/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestJWTAuth_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokenSvc := mocks.NewMockTokenService(ctrl)
	subjectID := uuid.New()
	tokenSvc.EXPECT().Validate("good").
		Return(&ports.TokenClaims{SubjectID: subjectID, Role: ports.RoleBank}, nil)

	r := newEngine()
	r.GET("/x", middleware.JWTAuth(tokenSvc, zerolog.Nop()), func(c *gin.Context) {
		id, _ := c.Get(middleware.CtxSubjectID)
		assert.Equal(t, subjectID, id)
		assert.Equal(t, ports.RoleBank, c.GetString(middleware.CtxRole))
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Authorization", "Bearer good")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestJWTAuth_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := newEngine()
	r.GET("/x", middleware.JWTAuth(mocks.NewMockTokenService(ctrl), zerolog.Nop()), func(c *gin.Context) {
		t.Fatal("handler should not run")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole(t *testing.T) {
	r := newEngine()
	r.GET("/x",
		func(c *gin.Context) { c.Set(middleware.CtxRole, ports.RoleHospital) },
		middleware.RequireRole(ports.RoleBank),
		func(c *gin.Context) { c.Status(http.StatusNoContent) },
	)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRecovery(t *testing.T) {
	r := newEngine()
	r.Use(middleware.Recovery(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) { panic("kaboom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "SYS_003")
}

func TestMaxBodySize(t *testing.T) {
	r := newEngine()
	r.Use(middleware.MaxBodySize(16))
	r.POST("/x", func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}
		c.Status(http.StatusNoContent)
	})

	big := strings.NewReader(`{"payload":"` + strings.Repeat("a", 64) + `"}`)
	req := httptest.NewRequest(http.MethodPost, "/x", big)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}
