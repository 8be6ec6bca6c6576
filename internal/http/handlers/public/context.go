package public

import "github.com/gin-gonic/gin"

// ContextUserIDKey gin context key set by the auth middleware.
const ContextUserIDKey = "auth_user_id"

// currentUserID reads the authenticated user ID from the request context.
func currentUserID(c *gin.Context) (uint, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint)
	if !ok || userID == 0 {
		return 0, false
	}
	return userID, true
}
