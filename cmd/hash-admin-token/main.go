package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/playmatatu/poolsim/internal/admin"
)

// Prints a bcrypt hash of ADMIN_TOKEN (or the first argument) for use as
// ADMIN_TOKEN_HASH.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	adminToken := os.Getenv("ADMIN_TOKEN")
	if len(os.Args) > 1 {
		adminToken = os.Args[1]
	}
	if adminToken == "" {
		log.Fatal("Usage: hash-admin-token <token> (or set ADMIN_TOKEN)")
	}
	if len(adminToken) < 12 {
		log.Printf("WARNING: admin token is shorter than 12 characters")
	}

	hash, err := admin.HashToken(adminToken)
	if err != nil {
		log.Fatalf("Failed to hash admin token: %v", err)
	}

	log.Println("✓ Admin token hashed. Add this to your environment:")
	fmt.Printf("ADMIN_TOKEN_HASH=%s\n", hash)
}
