package db

import (
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/programmermistery-hub/BarberCRM/models"
)

// Migrate creates or updates the usuarios, clientes and agendamentos
// tables, including the unique index on (data, horario).
func Migrate() {
	err := DB.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Appointment{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}
	log.Println("✅ Migrations applied successfully!")
}

// SeedAdmin inserts the default staff login once. Replaces the old
// one-off seed script; a second run is a no-op.
func SeedAdmin() {
	login := os.Getenv("SEED_ADMIN_LOGIN")
	if login == "" {
		login = "admin"
	}

	var existing models.User
	if DB.Where("login = ?", login).First(&existing).RowsAffected > 0 {
		return
	}

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Failed to hash seed password: ", err)
	}

	user := models.User{Login: login, PasswordHash: string(hash)}
	if err := DB.Create(&user).Error; err != nil {
		log.Fatal("Failed to seed admin user: ", err)
	}
	log.Printf("✅ Seeded default user %q", login)
}
