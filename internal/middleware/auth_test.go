package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/models"
	"github.com/Ernest-Dike/Movie-recommendation-latest/internal/service"
)

// =============================================================================
// Mock AuthService
// =============================================================================

type mockAuthService struct {
	verifyTokenFunc func(token string) (int64, error)
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (*models.UserPublic, error) {
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (*service.LoginResponse, error) {
	return nil, errors.New("not implemented")
}

func (m *mockAuthService) VerifyToken(token string) (int64, error) {
	if m.verifyTokenFunc != nil {
		return m.verifyTokenFunc(token)
	}
	return 0, errors.New("not implemented")
}

// =============================================================================
// Test Helpers
// =============================================================================

func setupAuthMiddleware(authService service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/protected", Auth(authService), func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "user id missing"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})
	return router
}

func doGet(router *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// =============================================================================
// Auth Middleware Tests
// =============================================================================

func TestAuth_ValidToken(t *testing.T) {
	router := setupAuthMiddleware(&mockAuthService{
		verifyTokenFunc: func(token string) (int64, error) {
			if token != "good-token" {
				t.Errorf("VerifyToken(%q), want good-token", token)
			}
			return 7, nil
		},
	})

	w := doGet(router, "Bearer good-token")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body: %s)", w.Code, http.StatusOK, w.Body)
	}
}

func TestAuth_MissingToken(t *testing.T) {
	router := setupAuthMiddleware(&mockAuthService{})

	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"empty bearer", "Bearer"},
		{"wrong scheme", "Basic dXNlcjpwdw=="},
		{"token without scheme", "just-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doGet(router, tt.header)
			if w.Code != http.StatusUnauthorized {
				t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
			}
		})
	}
}

func TestAuth_InvalidToken(t *testing.T) {
	router := setupAuthMiddleware(&mockAuthService{
		verifyTokenFunc: func(token string) (int64, error) {
			return 0, service.ErrInvalidToken
		},
	})

	w := doGet(router, "Bearer expired-or-forged")

	if w.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
	}
}

func TestAuth_CaseInsensitiveScheme(t *testing.T) {
	router := setupAuthMiddleware(&mockAuthService{
		verifyTokenFunc: func(token string) (int64, error) {
			return 7, nil
		},
	})

	w := doGet(router, "bearer good-token")

	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d for lowercase scheme", w.Code, http.StatusOK)
	}
}

func TestUserID_NotSet(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	if _, ok := UserID(c); ok {
		t.Error("UserID() should report absence when middleware has not run")
	}
}
