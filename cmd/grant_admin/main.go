package main

import (
	"fmt"
	"os"

	"venturepulse/app/config"
	"venturepulse/app/database"
	"venturepulse/app/models"
)

// Promotes an existing user to admin, or creates the account when it does
// not exist yet. Creating the first admin on a fresh database goes through
// the same command:
//
//	grant_admin partner@fund.vc
//	grant_admin partner@fund.vc <password> [first] [last]
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: grant_admin <email> [password] [first] [last]")
		os.Exit(1)
	}
	email := os.Args[1]

	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	err := database.SetUserAdmin(db, email)
	if err == nil {
		fmt.Printf("Granted admin to %s\n", email)
		return
	}
	if err.Error() != "user not found" {
		fmt.Printf("Error granting admin to %s: %v\n", email, err)
		os.Exit(1)
	}

	if len(os.Args) < 3 {
		fmt.Printf("User %s does not exist. To create the account:\n", email)
		fmt.Println("  grant_admin <email> <password> [first] [last]")
		os.Exit(1)
	}
	password := os.Args[2]
	if len(password) < 8 {
		fmt.Println("Password must be at least 8 characters")
		os.Exit(1)
	}

	user := &models.User{
		Email:     email,
		Password:  password,
		FirstName: "Admin",
		LastName:  "User",
		IsAdmin:   true,
	}
	if len(os.Args) > 3 {
		user.FirstName = os.Args[3]
	}
	if len(os.Args) > 4 {
		user.LastName = os.Args[4]
	}

	if err := database.CreateUser(db, user); err != nil {
		fmt.Printf("Error creating admin %s: %v\n", email, err)
		os.Exit(1)
	}

	fmt.Printf("Created admin account %s (%s)\n", email, user.ID)
}
