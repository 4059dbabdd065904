package middlewares

import (
	"net/http"

	"gin-marketplace/constants"
	"gin-marketplace/services"

	"github.com/gin-gonic/gin"
)

// RoleBasedAccessControl 指定されたロールのみアクセスを許可するミドルウェア。
// AuthMiddlewareの後に使用することを想定（ctxに"identity"が設定されている必要がある）。
// ロールチェックはすべてここに集約し、各ハンドラーには書かない
func RoleBasedAccessControl(allowedRoles ...string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		identity, exists := ctx.Get("identity")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
			return
		}

		identityModel, ok := identity.(*services.Identity)
		if !ok {
			ctx.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": constants.ErrMsgUnauthenticated})
			return
		}

		hasAccess := false
		for _, allowedRole := range allowedRoles {
			if identityModel.Role == allowedRole {
				hasAccess = true
				break
			}
		}

		// 対象リソースの有無にかかわらず、ロールが合わなければ403
		if !hasAccess {
			ctx.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": constants.ErrMsgForbidden})
			return
		}

		ctx.Next()
	}
}
