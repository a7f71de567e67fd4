package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub string, role domain.Role) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": string(role),
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authRouter(extra ...ginext.HandlerFunc) http.Handler {
	r := ginext.New("test")
	handlers := append([]ginext.HandlerFunc{Auth(testSecret)}, extra...)
	handlers = append(handlers, func(c *ginext.Context) {
		actor := ActorFromContext(c)
		c.JSON(http.StatusOK, ginext.H{"user_id": actor.UserID, "role": string(actor.Role)})
	})
	r.GET("/protected", handlers...)
	return r
}

func doAuth(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuth_ValidToken(t *testing.T) {
	r := authRouter()

	token := signToken(t, testSecret, "u1", domain.RoleClient)
	w := doAuth(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "u1")
	assert.Contains(t, w.Body.String(), string(domain.RoleClient))
}

func TestAuth_MissingHeader(t *testing.T) {
	r := authRouter()

	w := doAuth(r, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MalformedToken(t *testing.T) {
	r := authRouter()

	w := doAuth(r, "Bearer not.a.token")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_WrongSecret(t *testing.T) {
	r := authRouter()

	token := signToken(t, "other-secret", "u1", domain.RoleClient)
	w := doAuth(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuth_MissingSubject(t *testing.T) {
	r := authRouter()

	token := signToken(t, testSecret, "", domain.RoleClient)
	w := doAuth(r, "Bearer "+token)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireRole_AllowsStaff(t *testing.T) {
	r := authRouter(RequireRole(domain.RoleEmployee, domain.RoleAdmin))

	token := signToken(t, testSecret, "staff1", domain.RoleEmployee)
	w := doAuth(r, "Bearer "+token)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_RejectsClient(t *testing.T) {
	r := authRouter(RequireRole(domain.RoleEmployee, domain.RoleAdmin))

	token := signToken(t, testSecret, "u1", domain.RoleClient)
	w := doAuth(r, "Bearer "+token)

	assert.Equal(t, http.StatusForbidden, w.Code)
}
