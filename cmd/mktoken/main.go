package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"hugamara-ceo-portal/config"
)

// Prints a signed portal token for curl-based testing:
//
//	curl -H "Authorization: Bearer $(go run ./cmd/mktoken)" ...
func main() {
	email := flag.String("email", "", "token subject (defaults to CEO_EMAIL)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load configuration: ", err)
	}

	sub := *email
	if sub == "" {
		sub = cfg.CEOEmail
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  sub,
		"role": "CEO",
		"iat":  now.Unix(),
		"exp":  now.Add(*ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	if err != nil {
		log.Fatal("failed to sign token: ", err)
	}
	fmt.Println(signed)
}
