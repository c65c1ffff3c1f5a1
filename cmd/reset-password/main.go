package main

import (
	"flag"
	"log"

	"go-gudang-api/internal/repository"
	"go-gudang-api/pkg/config"
	"go-gudang-api/pkg/database"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	username := flag.String("username", "admin", "username admin yang akan direset")
	password := flag.String("password", "", "password baru")
	flag.Parse()

	if *password == "" {
		log.Fatal("flag -password wajib diisi")
	}

	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, relying on system env")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Database
	db, err := database.Connect(cfg.DB)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 3. Find Admin
	adminRepo := repository.NewAdminRepo(db)
	admin, err := adminRepo.FindByUsername(*username)
	if err != nil {
		log.Fatalf("Admin %s not found in database: %v", *username, err)
	}

	// 4. Hash new password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	// 5. Update
	if err := adminRepo.UpdatePassword(admin.AdminID, string(hashedPassword)); err != nil {
		log.Fatalf("Failed to update password in DB: %v", err)
	}

	log.Printf("Success! Password for %s has been reset", *username)
}
