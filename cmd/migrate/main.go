package main

import (
	"database/sql"
	"errors"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/pageza/fittrack/backend/config"
	"github.com/pageza/fittrack/backend/internal/database"
)

func main() {
	rollback := flag.Bool("rollback", false, "Rollback the last migration")
	dir := flag.String("dir", "migrations", "Directory holding NNNN_name.up.sql / .down.sql files")
	flag.Parse()

	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			log.Fatalf("DATABASE_URL is not set and config failed to load: %v", err)
		}
		dsn = database.PostgresDSN(cfg)
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	if *rollback {
		name, err := database.RollbackSQL(db, *dir)
		if errors.Is(err, database.ErrNoMigrations) {
			log.Println("No migrations to roll back")
			return
		}
		if err != nil {
			log.Fatalf("rollback failed: %v", err)
		}
		log.Printf("Rolled back %s", name)
		return
	}

	applied, err := database.ApplySQL(db, *dir)
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if len(applied) == 0 {
		log.Println("Database is up to date")
		return
	}
	for _, name := range applied {
		log.Printf("Applied %s", name)
	}
}
