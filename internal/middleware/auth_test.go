package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"kdos-backend/internal/models"
	"kdos-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.Log.SetOutput(io.Discard)
}

func newAuthRouter(roles ...models.Role) *gin.Engine {
	r := gin.New()
	handlers := []gin.HandlerFunc{AuthMiddleware()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"accountId": c.GetUint(ContextAccountID),
			"role":      c.MustGet(ContextRole),
		})
	})
	r.GET("/secure", handlers...)
	return r
}

func get(r http.Handler, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	utils.SetTokenSecret("middleware-secret")
	r := newAuthRouter()

	valid, err := utils.GenerateToken(7, "STAFF")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	unknownRole, _ := utils.GenerateToken(7, "OWNER")
	noAccount, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"role": "STAFF"}).
		SignedString([]byte("middleware-secret"))

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + valid, http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"unknown role", "Bearer " + unknownRole, http.StatusUnauthorized},
		{"missing account id", "Bearer " + noAccount, http.StatusUnauthorized},
		{"valid", "Bearer " + valid, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := get(r, tt.header)
			if w.Code != tt.want {
				t.Errorf("expected %d, got %d: %s", tt.want, w.Code, w.Body.String())
			}
		})
	}

	w := get(r, "Bearer "+valid)
	if body := w.Body.String(); body != `{"accountId":7,"role":"STAFF"}` {
		t.Errorf("unexpected context values %s", body)
	}
}

func TestRequireRoles(t *testing.T) {
	utils.SetTokenSecret("middleware-secret")
	r := newAuthRouter(models.RoleAdmin, models.RoleStaff)

	for role, want := range map[models.Role]int{
		models.RoleAdmin:    http.StatusOK,
		models.RoleStaff:    http.StatusOK,
		models.RoleCustomer: http.StatusForbidden,
	} {
		token, err := utils.GenerateToken(1, role.String())
		if err != nil {
			t.Fatalf("GenerateToken: %v", err)
		}
		if w := get(r, "Bearer "+token); w.Code != want {
			t.Errorf("role %s: expected %d, got %d", role, want, w.Code)
		}
	}
}
