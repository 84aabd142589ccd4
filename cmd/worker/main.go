package main

import (
	"log"

	"go-storefront/internal/app"
	"go-storefront/internal/pkg/apperror"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	apperror.Init()

	if err := app.RunWorker(); err != nil {
		log.Fatal(err)
	}
}
