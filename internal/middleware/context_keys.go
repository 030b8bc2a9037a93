package middleware

import "github.com/gin-gonic/gin"

// actorIDKey is the key used to store the authenticated actor's ID in the
// request context. The core records this id for audit attribution; it does
// not authenticate beyond token validity.
const actorIDKey = contextKey("actorID")

// GetActorIDFromContext retrieves the authenticated actor ID from the Gin context.
// It returns the actor ID and a boolean indicating if it was found.
func GetActorIDFromContext(c *gin.Context) (string, bool) {
	if v := c.Request.Context().Value(actorIDKey); v != nil {
		if actorID, ok := v.(string); ok {
			return actorID, true
		}
	}
	return "", false
}
