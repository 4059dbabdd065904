package infra

import (
	"log"

	"github.com/joho/godotenv"
)

// Initialize .envがあれば読み込む。環境変数が優先される
func Initialize() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found; using environment variables")
	}
}
