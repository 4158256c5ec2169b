package middleware

import (
	"strings"

	"newsroom-cms/helper"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog/log"
)

// Claims carried by editor tokens. Tokens are minted outside this service.
type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware guards the editorial routes with an HMAC signed bearer token.
func AuthMiddleware(secret []byte, httpHelper *helper.HTTPHelper) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httpHelper.SendUnauthorizedError(c, "Authorization header required", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			httpHelper.SendUnauthorizedError(c, "Bearer token required", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return secret, nil
		})
		if err != nil {
			log.Debug().Err(err).Msg("rejected bearer token")
			httpHelper.SendUnauthorizedError(c, "Invalid token: "+err.Error(), httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		if !token.Valid {
			httpHelper.SendUnauthorizedError(c, "Token is not valid", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		c.Next()
	}
}

// RequireRole lets the request through only for the listed roles.
func RequireRole(httpHelper *helper.HTTPHelper, roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole, exists := c.Get("role")
		if !exists {
			httpHelper.SendUnauthorizedError(c, "User role not found", httpHelper.EmptyJsonMap())
			c.Abort()
			return
		}

		roleStr, _ := userRole.(string)
		for _, role := range roles {
			if roleStr == role {
				c.Next()
				return
			}
		}

		httpHelper.SendUnauthorizedError(c, "Insufficient permissions", httpHelper.EmptyJsonMap())
		c.Abort()
	}
}
