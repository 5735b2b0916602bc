package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/seungyeah/tootodo-be/pkg/apierrors"
)

const userIDKey = "user_id"

// UserHeader carries the authenticated user's id, set by the auth gateway
// in front of this service. Token verification happens there, not here.
const UserHeader = "X-User-ID"

// IdentityMiddleware rejects requests without a valid user identity and
// stashes the parsed id for handlers.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := GetLang(c)

		userID, err := uuid.Parse(c.GetHeader(UserHeader))
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				apierrors.CreateError(http.StatusUnauthorized, apierrors.MsgInvalidUser, lang),
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func GetUserID(c *gin.Context) uuid.UUID {
	if value, exists := c.Get(userIDKey); exists {
		if id, ok := value.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
