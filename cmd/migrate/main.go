package main

import (
	"database/sql"
	"flag"
	"fmt"
	"os"
	"strconv"

	_ "github.com/lib/pq"

	"github.com/student-store/backend/internal/infrastructure/config"
	"github.com/student-store/backend/internal/infrastructure/logger"
	"github.com/student-store/backend/internal/infrastructure/migration"
)

func main() {
	var (
		migrationsPath = flag.String("path", "migrations", "Path to migrations directory")
		logLevel       = flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	)
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  *logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: " + err.Error())
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to open database: " + err.Error())
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: " + err.Error())
	}

	migrator, err := migration.New(db, *migrationsPath, log)
	if err != nil {
		log.Fatal("Failed to create migrator: " + err.Error())
	}
	defer migrator.Close()

	command := args[0]

	switch command {
	case "up":
		if err := migrator.Up(); err != nil {
			log.Fatal("Migration up failed: " + err.Error())
		}

	case "down":
		if err := migrator.Down(); err != nil {
			log.Fatal("Migration down failed: " + err.Error())
		}

	case "step":
		if len(args) < 2 {
			log.Fatal("step command requires a number argument")
		}
		n, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid step count: " + args[1])
		}
		if err := migrator.Steps(n); err != nil {
			log.Fatal("Migration step failed: " + err.Error())
		}

	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			log.Fatal("Failed to get version: " + err.Error())
		}
		fmt.Printf("Version: %d, Dirty: %v\n", version, dirty)

	case "force":
		if len(args) < 2 {
			log.Fatal("force command requires a version argument")
		}
		version, err := strconv.Atoi(args[1])
		if err != nil {
			log.Fatal("Invalid version: " + args[1])
		}
		if err := migrator.Force(version); err != nil {
			log.Fatal("Force version failed: " + err.Error())
		}

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`Usage: migrate [flags] <command> [args]

Commands:
  up              Apply all pending migrations
  down            Roll back all migrations
  step <n>        Apply n migrations (negative rolls back)
  version         Show current migration version
  force <version> Set version without running migrations (fixes dirty state)

Flags:
  -path string       Path to migrations directory (default "migrations")
  -log-level string  Log level (default "info")

Environment:
  Database connection comes from config.toml or STORE_DATABASE_* variables.`)
}
