package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/mkraev/sellerboard/internal/config"
	"github.com/mkraev/sellerboard/internal/deps"
	"github.com/mkraev/sellerboard/internal/ozon"
	"github.com/mkraev/sellerboard/internal/server"
	"github.com/mkraev/sellerboard/internal/storage"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config := config.NewConfig()
	storage, err := storage.NewPostgresStorage(ctx, config.DatabaseURI)
	if err != nil {
		config.Logger.Fatal(err)
	}

	deps := deps.NewDependencies(config.Logger, config.Key)
	ozonClient := ozon.NewClient(config.OzonAPIAddress, config.Logger)

	srv := server.NewServer(storage, ozonClient, config, deps)
	if err := srv.Run(ctx); err != nil {
		config.Logger.Fatal(err)
	}
}
