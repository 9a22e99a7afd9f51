// Command seed_admin creates the first admin trainer account. Trainer
// accounts are otherwise created through the admin-only register endpoint,
// which needs an existing admin to call it.
package main

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/AmrIbrahim41/tfg-backend/config"
	"github.com/AmrIbrahim41/tfg-backend/internal/database"
	"github.com/AmrIbrahim41/tfg-backend/internal/models"
)

func main() {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	email := os.Getenv("ADMIN_EMAIL")
	if username == "" || password == "" || email == "" {
		log.Fatal("ADMIN_USERNAME, ADMIN_PASSWORD and ADMIN_EMAIL must be set")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var existing models.User
	if err := db.Where("username = ?", username).First(&existing).Error; err == nil {
		log.Printf("Admin %q already exists", username)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := models.User{
		Name:         username,
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		IsAdmin:      true,
	}
	if err := db.Create(&admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}
	log.Printf("Created admin %q", username)
}
