// Command token mints a bearer token for local development, signed with the
// server's configured secret.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/mmynk/tontine/internal/auth"
	"github.com/mmynk/tontine/internal/config"
	"github.com/mmynk/tontine/pkg/logging"
)

func main() {
	envFile := flag.String("env", ".env", "optional .env file")
	userID := flag.String("user", "", "user ID (required)")
	email := flag.String("email", "", "email used to match group members")
	flag.Parse()

	logging.Setup("info")

	cfg, err := config.Load(*envFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	token, err := auth.NewJWTManager(cfg.JWTSecret, cfg.TokenDuration).Generate(*userID, *email)
	if err != nil {
		slog.Error("Failed to generate token", "error", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
