package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with sample accounts for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		db, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		defer db.Close()

		if clearData {
			for _, table := range []string{"job_applications", "jobs", "user_profiles", "users"} {
				if _, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)); err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		password := "password"
		hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

		accounts := []struct {
			Email     string
			Username  string
			FirstName string
			Role      string
			IsStaff   bool
		}{
			{"recruiter@mail.com", "recruiter", "Rina", "RECRUITER", false},
			{"candidate@mail.com", "candidate", "Candra", "CANDIDATE", false},
			{"admin@mail.com", "admin", "Ayu", "RECRUITER", true},
		}

		for _, a := range accounts {
			var exists int
			if err := db.QueryRow("SELECT 1 FROM users WHERE email = $1", a.Email).Scan(&exists); err == nil {
				fmt.Println("user already exists:", a.Email)
				continue
			}

			_, err := db.Exec(
				`INSERT INTO users (uid, username, first_name, email, password_hash, role, is_staff, is_active, created_at, updated_at)
				 VALUES ($1, $2, $3, $4, $5, $6, $7, true, now(), now())`,
				uuid.NewString(), a.Username, a.FirstName, a.Email, string(hash), a.Role, a.IsStaff)
			if err != nil {
				log.Fatalf("failed to insert user %s: %v", a.Email, err)
			}
			fmt.Println("Seeded user:", a.Email)
		}

		fmt.Println("Done. All seeded accounts use password:", password)
	},
}
