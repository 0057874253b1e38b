// issue-token mints a session token for local development against a running
// API, signed with SESSION_JWT_SECRET.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dimitrije/intervue-api/internal/config"
	"github.com/dimitrije/intervue-api/internal/services"
)

func main() {
	if len(os.Args) < 2 || len(os.Args) > 3 {
		fmt.Println("Usage: issue-token <external_id> [email]")
		os.Exit(1)
	}

	var email string
	if len(os.Args) == 3 {
		email = os.Args[2]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	jwtService := services.NewJWTService(cfg.Session.Secret, cfg.Session.Issuer, 24*time.Hour)

	token, err := jwtService.GenerateToken(os.Args[1], email)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}

	fmt.Println(token)
}
