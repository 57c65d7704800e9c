package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"alumni-connect-backend/config"
	"alumni-connect-backend/internal/delivery/http/response"
	"alumni-connect-backend/internal/domain"
	"alumni-connect-backend/pkg/auth"
	"alumni-connect-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// InjectIdentity stores the authenticated identity on both the gin context
// (for handlers using c.GetString) and the request context (for usecases
// reading the typed keys). c.Set alone is not enough: usecases receive
// c.Request.Context(), which never sees gin's key/value store.
func InjectIdentity(c *gin.Context, userID, email, role string) {
	c.Set(string(domain.KeyUserID), userID)
	c.Set(string(domain.KeyUserEmail), email)
	c.Set(string(domain.KeyUserRole), role)

	ctx := c.Request.Context()
	ctx = context.WithValue(ctx, domain.KeyUserID, userID)
	ctx = context.WithValue(ctx, domain.KeyUserEmail, email)
	ctx = context.WithValue(ctx, domain.KeyUserRole, role)
	c.Request = c.Request.WithContext(ctx)
}

func AuthMiddleware(jwksProvider *auth.Provider, cfg *config.Config, authUC domain.AuthUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		var tokenString string

		if authHeader != "" {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		} else {
			cookie, err := c.Cookie("auth_token")
			if err == nil && cookie != "" {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "Authorization header or auth_token cookie required", nil)
			c.Abort()
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); ok {
				// HS256 - Supabase project JWT secret
				if cfg.SupabaseJWTSecret == "" {
					return nil, fmt.Errorf("HS256 token received but SUPABASE_JWT_SECRET is not configured")
				}
				return []byte(cfg.SupabaseJWTSecret), nil
			}

			if _, ok := token.Method.(*jwt.SigningMethodRSA); ok {
				// RS256 - resolve via JWKS
				return jwksProvider.KeyFunc(token)
			}

			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		})

		if err != nil || !token.Valid {
			logger.Log.Debug("Token validation failed", "error", err)
			response.Error(c, http.StatusUnauthorized, "Invalid token", nil)
			c.Abort()
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "Invalid claims", nil)
			c.Abort()
			return
		}

		sub, _ := claims["sub"].(string)
		email, _ := claims["email"].(string)

		// Mirror the Supabase user into the local users table on first sight,
		// then read the role from the DB. The JWT role claim is not trusted:
		// it is usually just "authenticated" and can be stale.
		if err := authUC.EnsureUserExists(c.Request.Context(), &domain.User{ID: sub, Email: email}); err != nil {
			response.Error(c, http.StatusUnauthorized, "User sync failed", nil)
			c.Abort()
			return
		}

		user, err := authUC.GetCurrentUser(c.Request.Context(), sub)
		if err != nil {
			response.Error(c, http.StatusUnauthorized, "User not found", nil)
			c.Abort()
			return
		}

		role := user.Role
		if role == "" {
			role = domain.RoleStudent
		}

		InjectIdentity(c, sub, email, role)

		c.Next()
	}
}
