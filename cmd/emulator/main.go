// Command emulator runs the emulated game backend locally so SDK consumers
// can be exercised without a real account.
package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"go.uber.org/zap"

	"github.com/alexbotov/tarkov/internal/config"
	"github.com/alexbotov/tarkov/internal/emulator"
	"github.com/alexbotov/tarkov/internal/logging"
)

func main() {
	logger, err := logging.New(config.LogConfig{Level: getEnv("EMULATOR_LOG_LEVEL", "info"), Encoding: "console"})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	srv := emulator.New(emulator.Options{
		TokenSecret: os.Getenv("EMULATOR_TOKEN_SECRET"),
		Logger:      logger,
	})
	defer srv.Close()

	acc, err := accountFromEnv()
	if err != nil {
		logger.Fatal("Invalid account settings", zap.Error(err))
	}
	if err := srv.AddAccount(acc); err != nil {
		logger.Fatal("Failed to add account", zap.Error(err))
	}

	fmt.Println("Tarkov backend emulator")
	fmt.Printf("Listening on %s\n", srv.URL)
	fmt.Printf("Point TARKOV_LAUNCHER_ENDPOINT, TARKOV_PROD_ENDPOINT, TARKOV_TRADING_ENDPOINT and TARKOV_RAGFAIR_ENDPOINT at it\n")
	logger.Info("account ready", zap.String("email", acc.Email), zap.Uint64("aid", acc.ID))

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logger.Info("shutting down", zap.Int("requests", srv.TotalCalls()))
}

// accountFromEnv builds the seeded account from EMULATOR_* variables.
func accountFromEnv() (emulator.Account, error) {
	raw := getEnv("EMULATOR_ACCOUNT_ID", "1234567")
	aid, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return emulator.Account{}, fmt.Errorf("EMULATOR_ACCOUNT_ID %q: %w", raw, err)
	}

	return emulator.Account{
		Email:          getEnv("EMULATOR_EMAIL", "player@example.com"),
		Password:       getEnv("EMULATOR_PASSWORD", "password"),
		ID:             aid,
		ActivationCode: os.Getenv("EMULATOR_ACTIVATION_CODE"),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
