package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"

	"github.com/MoisesNEY/hotel-management-system-sub001/internal/domain"
)

// RequireRole aborts with 403 unless the authenticated actor holds one of
// the given roles. Services re-check roles themselves; this gate just keeps
// obviously unauthorized traffic out of the handlers.
func RequireRole(roles ...domain.Role) ginext.HandlerFunc {
	allowed := make(map[domain.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *ginext.Context) {
		actor := ActorFromContext(c)
		if !actor.Authenticated() || !allowed[actor.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, ginext.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}
