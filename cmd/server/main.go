package main

import (
	"log"

	"github.com/joho/godotenv"

	"quotemint/go_backend/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using OS environment")
	}
	app.Run()
}
