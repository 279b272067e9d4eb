package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"hugamara-ceo-portal/config"
	"hugamara-ceo-portal/pkg/ingestion"
)

// server wires the upload registry and configuration into the handlers. The
// registry is an explicit dependency, constructed once in main and injected
// here, rather than a package-level global.
type server struct {
	cfg       *config.Config
	store     *ingestion.Store
	ceoHashes [][]byte
}

func newServer(cfg *config.Config, store *ingestion.Store) (*server, error) {
	hashes := make([][]byte, 0, len(cfg.CEOPasswords))
	for _, pw := range cfg.CEOPasswords {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hashes = append(hashes, h)
	}
	return &server{cfg: cfg, store: store, ceoHashes: hashes}, nil
}

func (s *server) router() *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())
	setupRoutes(r, s)
	return r
}

// corsMiddleware mirrors the permissive policy the hosted demo runs with:
// the portal front-end may be served from anywhere.
func corsMiddleware() gin.HandlerFunc {
	c := cors.DefaultConfig()
	c.AllowAllOrigins = true
	c.AllowHeaders = append(c.AllowHeaders, "Authorization")
	return cors.New(c)
}
