package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/AdamLouly/quizzapp/config"
	"github.com/AdamLouly/quizzapp/database"
	"github.com/AdamLouly/quizzapp/models"

	"golang.org/x/crypto/bcrypt"
)

// One-off bulk importer: loads Roster.csv and provisions user accounts.
// Expected columns: client_id,firstname,lastname,username,email,role,password
func main() {
	config.LoadConfig()
	db := database.Connect()

	file, err := os.Open("Roster.csv")
	if err != nil {
		log.Fatalf("Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		log.Fatalf("Failed to read CSV file: %v", err)
	}

	if len(records) < 2 {
		log.Fatal("CSV file has no data rows")
	}

	imported := 0
	skipped := 0

	// Skip the header row
	for i, record := range records[1:] {
		if len(record) < 7 {
			log.Printf("Row %d: expected 7 columns, got %d, skipping", i+2, len(record))
			skipped++
			continue
		}

		clientID, err := strconv.ParseUint(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			log.Printf("Row %d: invalid client_id %q, skipping", i+2, record[0])
			skipped++
			continue
		}

		role := strings.ToUpper(strings.TrimSpace(record[5]))
		if role != "TEACHER" && role != "STUDENT" {
			log.Printf("Row %d: invalid role %q, skipping", i+2, record[5])
			skipped++
			continue
		}

		username := strings.TrimSpace(record[3])
		email := strings.TrimSpace(record[4])

		var existing models.User
		if err := db.Where("username = ? OR email = ?", username, email).First(&existing).Error; err == nil {
			log.Printf("Row %d: user %s already exists, skipping", i+2, username)
			skipped++
			continue
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(strings.TrimSpace(record[6])), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Row %d: failed to hash password: %v", i+2, err)
			skipped++
			continue
		}

		user := models.User{
			FirstName:       strings.TrimSpace(record[1]),
			LastName:        strings.TrimSpace(record[2]),
			Username:        username,
			Email:           email,
			Password:        string(hashed),
			Role:            role,
			ClientID:        uint(clientID),
			IsEmailVerified: true,
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("Row %d: failed to create user %s: %v", i+2, username, err)
			skipped++
			continue
		}
		imported++
	}

	log.Printf("Roster import finished: %d imported, %d skipped", imported, skipped)
}
