package public

import (
	handlershared "github.com/timeless-style/salon-api/internal/http/handlers/shared"

	"github.com/gin-gonic/gin"
)

func getMemberID(c *gin.Context) (uint, bool) {
	return handlershared.GetContextUint(c, "member_id")
}

func isAdmin(c *gin.Context) bool {
	return handlershared.GetContextBool(c, "is_admin")
}
