package middlewares

import (
	"net/http"
	"strings"

	"gin-marketplace/constants"
	"gin-marketplace/services"

	"github.com/gin-gonic/gin"
)

func AuthMiddleware(authService services.IAuthService) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if header == "" {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
			return
		}

		if !strings.HasPrefix(header, "Bearer ") {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		identity, err := authService.VerifyToken(tokenString)
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
			return
		}

		ctx.Set("identity", identity)

		ctx.Next()
	}
}
