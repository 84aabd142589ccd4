package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"go-storefront/internal/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const authCookie = "access_token"

// ContextUserEmail is the gin context key carrying the logged-in email.
const ContextUserEmail = "user_email"

// AuthMiddleware requires a valid session token and injects the email it
// carries. The token only binds an email to the session; there is no
// credential verification behind it.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, err := emailFromCookie(c)
		if err != nil {
			code := "UNAUTHORIZED"
			message := "Login required"
			if strings.Contains(err.Error(), "expired") {
				code = "TOKEN_EXPIRED"
				message = "Session expired, please login again"
			}
			response.Error(c, http.StatusUnauthorized, code, message, nil)
			c.Abort()
			return
		}

		c.Set(ContextUserEmail, email)
		c.Next()
	}
}

// OptionalAuthMiddleware injects the email when a valid token is present
// and lets guests through otherwise.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if email, err := emailFromCookie(c); err == nil {
			c.Set(ContextUserEmail, email)
		}
		c.Next()
	}
}

// UserEmail reads the authenticated email from the gin context; empty for
// guests.
func UserEmail(c *gin.Context) string {
	return c.GetString(ContextUserEmail)
}

func emailFromCookie(c *gin.Context) (string, error) {
	tokenString, err := c.Cookie(authCookie)
	if err != nil {
		return "", err
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return []byte(os.Getenv("JWT_SECRET")), nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", fmt.Errorf("invalid token claims")
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", fmt.Errorf("email not found in token")
	}
	return email, nil
}
