package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"inkwell/app/config"
	"inkwell/app/repositories"
	"inkwell/app/routes"
)

const cliVersion = "1.0.0"

// exit is swapped out in tests.
var exit = os.Exit

func main() {
	RealMain()
}

// RealMain dispatches on the first argument.
func RealMain() {
	if len(os.Args) < 2 {
		printHelp()
		exit(1)
		return
	}

	cmd := strings.ToLower(os.Args[1])
	switch cmd {
	case "help":
		printHelp()
	case "version":
		fmt.Printf("inkwell version %s\n", cliVersion)
	case "serve":
		serve()
	default:
		fmt.Printf("Unknown command: %s\n\n", os.Args[1])
		printHelp()
		exit(1)
	}
}

func printHelp() {
	helpText := `Usage: inkwell <command>
Commands:
  help                           Display this help message.
  version                        Show version information.
  serve                          Run the blog API server.
`
	fmt.Println(helpText)
}

// serve loads the configuration, opens the store and runs the API server.
func serve() {
	cfg := config.Load()

	db, err := repositories.Open(cfg.DataDir)
	if err != nil {
		slog.Error("failed to open database", "dir", cfg.DataDir, "error", err)
		exit(1)
		return
	}
	defer db.Close()

	router := routes.SetupRoutes(db, cfg)

	slog.Info("server starting", "addr", cfg.Addr, "data_dir", cfg.DataDir)
	if err := routes.StartServer(cfg.Addr, router); err != nil {
		slog.Error("server failed", "error", err)
		exit(1)
	}
}
