package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// loginHandler checks the single CEO account and issues a signed bearer
// token. The error message stays generic on any mismatch.
func (s *server) loginHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	_ = c.ShouldBindJSON(&req) // a malformed body fails the credential check

	email := strings.ToLower(strings.TrimSpace(req.Email))
	password := strings.TrimSpace(req.Password)

	if email != s.cfg.CEOEmail || !s.passwordAllowed(password) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Incorrect email or password"})
		return
	}

	token, err := s.generateToken(email)
	if err != nil {
		slog.Error("failed to sign access token", "err", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "failed to generate token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token, "token_type": "bearer"})
}

func (s *server) passwordAllowed(password string) bool {
	for _, hash := range s.ceoHashes {
		if bcrypt.CompareHashAndPassword(hash, []byte(password)) == nil {
			return true
		}
	}
	return false
}

func (s *server) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  email,
		"role": "CEO",
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(s.cfg.TokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.JWTSecret))
}

// authRequired guards the few endpoints that do verify the bearer token.
func (s *server) authRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		token, err := jwt.Parse(authHeader[7:], func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return []byte(s.cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "invalid claims"})
			c.Abort()
			return
		}
		email, _ := claims["sub"].(string)
		c.Set("email", email)
		c.Next()
	}
}

func (s *server) meHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"email": c.GetString("email"), "role": "CEO"})
}
