package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/account-service/internal/adapter"
	"github.com/MKhiriev/account-service/internal/client"
	"github.com/MKhiriev/account-service/internal/config"
	"github.com/MKhiriev/account-service/internal/logger"
)

func main() {
	log := logger.NewLogger("account-client",
		logger.WithOutput(os.Stderr),
		logger.WithLevel("warn"),
	)

	cfg, args, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		fmt.Fprint(os.Stderr, client.Usage)
		log.Fatal().Err(err).Msg("error getting configs")
	}

	accounts, err := adapter.NewHTTPAccountsAdapter(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating adapter")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = client.NewApp(accounts, os.Stdout, log).Run(ctx, args); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			fmt.Fprint(os.Stderr, client.Usage)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
