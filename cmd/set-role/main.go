package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/dimitrije/intervue-api/internal/config"
	"github.com/dimitrije/intervue-api/internal/database"
	"github.com/dimitrije/intervue-api/internal/models"
	"github.com/dimitrije/intervue-api/internal/services"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: set-role <external_id> <interviewer|candidate|none>")
		os.Exit(1)
	}

	externalID := os.Args[1]
	role := os.Args[2]
	if role == "none" {
		role = ""
	}
	if role != "" && !models.IsValidRole(role) {
		log.Fatalf("Unknown role: %s", os.Args[2])
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	err = services.NewUserService(db).SetRole(ctx, externalID, role)
	if errors.Is(err, services.ErrUserNotFound) {
		log.Fatalf("No user found with external id: %s", externalID)
	}
	if err != nil {
		log.Fatalf("Failed to update user: %v", err)
	}

	if role == "" {
		fmt.Printf("Cleared role for %s\n", externalID)
		return
	}
	fmt.Printf("Successfully set role of %s to %s\n", externalID, role)
}
