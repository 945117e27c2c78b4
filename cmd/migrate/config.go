package main

import (
	"os"

	"github.com/joho/godotenv"
)

// loadEnvFiles pulls in .env and .env.local; variables the runtime already
// set (e.g. by Docker) keep their values.
func loadEnvFiles() {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

// migrationsDir is db/migrations unless MIGRATIONS_DIR points elsewhere.
func migrationsDir() string {
	if dir := os.Getenv("MIGRATIONS_DIR"); dir != "" {
		return dir
	}
	return "db/migrations"
}
