package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"smart-table-api/models"
)

func testUser(role models.UserRole) *models.User {
	return &models.User{ID: 7, Name: "Test", Email: "test@example.com", Role: role}
}

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(testUser(models.RoleAdmin))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	claims, err := ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != 7 {
		t.Errorf("expected user id 7, got %d", claims.UserID)
	}
	if claims.Role != models.RoleAdmin {
		t.Errorf("expected admin role, got %s", claims.Role)
	}
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	if _, err := ParseToken("not.a.token"); err == nil {
		t.Fatal("expected error for malformed token")
	}
}

func protectedRouter(roles ...models.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/", AuthRequired())
	if len(roles) > 0 {
		group.Use(RoleRequired(roles...))
	}
	group.GET("/secret", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"user_id": GetUserID(c), "role": GetRole(c)})
	})
	return r
}

func request(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secret", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestAuthRequired(t *testing.T) {
	r := protectedRouter()

	t.Run("missing header", func(t *testing.T) {
		if rec := request(r, ""); rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("wrong scheme", func(t *testing.T) {
		if rec := request(r, "Basic abc"); rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})

	t.Run("valid token", func(t *testing.T) {
		token, _ := GenerateToken(testUser(models.RoleStaff))
		if rec := request(r, "Bearer "+token); rec.Code != http.StatusOK {
			t.Errorf("expected 200, got %d", rec.Code)
		}
	})
}

func TestRoleRequired(t *testing.T) {
	r := protectedRouter(models.RoleAdmin)

	staffToken, _ := GenerateToken(testUser(models.RoleStaff))
	if rec := request(r, "Bearer "+staffToken); rec.Code != http.StatusForbidden {
		t.Errorf("staff on admin route: expected 403, got %d", rec.Code)
	}

	adminToken, _ := GenerateToken(testUser(models.RoleAdmin))
	if rec := request(r, "Bearer "+adminToken); rec.Code != http.StatusOK {
		t.Errorf("admin on admin route: expected 200, got %d", rec.Code)
	}
}
