package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"portfolio-backend/internal/config"
	"portfolio-backend/internal/models"
	"portfolio-backend/internal/repositories"
	"portfolio-backend/internal/utils"
)

type contextKey string

const UserKey contextKey = "user"

var jwtSecret = config.Envs.JWTSecret

func unauthorized(w http.ResponseWriter, message string) {
	utils.JSONResponse(w, http.StatusUnauthorized, utils.Payload{
		Success: false,
		Message: message,
	})
}

// Protect verifies the bearer token and attaches the authenticated user to
// the request context.
func Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, "Not authorized, no token provided")
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			unauthorized(w, "Not authorized, malformed authorization header")
			return
		}

		token, err := jwt.Parse(strings.TrimSpace(tokenStr), func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			unauthorized(w, "Not authorized, token failed verification")
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			unauthorized(w, "Not authorized, token failed verification")
			return
		}

		userID, ok := claims["userId"].(string)
		if !ok || userID == "" {
			unauthorized(w, "Not authorized, token failed verification")
			return
		}

		var user models.User
		if err := repositories.DB.Where("id = ?", userID).First(&user).Error; err != nil {
			unauthorized(w, "Not authorized, user not found for this token")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, &user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Admin requires an authenticated admin user. Runs Protect itself, so routes
// wrap one or the other, never both.
func Admin(next http.Handler) http.Handler {
	return Protect(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := UserFrom(r.Context())
		if user == nil || !user.IsAdmin {
			utils.JSONResponse(w, http.StatusForbidden, utils.Payload{
				Success: false,
				Message: "Not authorized as an admin",
			})
			return
		}
		next.ServeHTTP(w, r)
	}))
}

// UserFrom returns the authenticated user, or nil outside Protect.
func UserFrom(ctx context.Context) *models.User {
	user, _ := ctx.Value(UserKey).(*models.User)
	return user
}
