package main

import (
	"fmt"
	"os"

	"github.com/Amiradha/Major-Project/app/config"
	"github.com/Amiradha/Major-Project/app/database"
)

// Seeds one staff credential row. The users table stores the password as
// given; the login comparison is exact string equality.
func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: add_user <username> <password>")
		os.Exit(1)
	}
	username, password := os.Args[1], os.Args[2]

	config.Load()
	config.InitDB()
	db := config.GetDB()
	if db == nil {
		fmt.Println("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		fmt.Printf("Error running migrations: %v\n", err)
		os.Exit(1)
	}

	_, err := db.Exec(`INSERT INTO users (username, password) VALUES ($1, $2)`, username, password)
	if err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("User created successfully: %s\n", username)
}
