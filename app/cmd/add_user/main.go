package main

import (
	"fmt"
	"os"

	"github.com/Santhoshjk159/PMT-sub000/app/config"
	"github.com/Santhoshjk159/PMT-sub000/app/database"
	"github.com/Santhoshjk159/PMT-sub000/app/models"
)

// Seeds the first Admin account from the environment so a fresh install
// can log in.
func main() {
	config.InitDB()
	db := config.GetDB()
	defer db.Close()

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		fmt.Println("Set ADMIN_EMAIL and ADMIN_PASSWORD to seed the first account")
		os.Exit(1)
	}

	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Administrator"
	}

	user := &models.User{
		Name:  name,
		Email: email,
		Role:  models.RoleAdmin,
	}

	if err := database.CreateUser(db, user, password); err != nil {
		fmt.Printf("Error creating user: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Admin user created: %s (%s)\n", user.Name, user.Email)
}
