package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

func LoadEnv() {
	err := godotenv.Load()

	if err != nil {
		// deployed environments configure the process env directly
		log.Println("no .env file loaded:", err)
	}
}
