package config

import (
	"flag"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	RunAddress     string
	DatabaseURI    string
	OzonAPIAddress string
	Key            string
	Logger         *zap.SugaredLogger
}

func NewConfig() *Config {
	// .env для локального запуска, отсутствие файла не ошибка
	_ = godotenv.Load()

	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{"stdout", "server.log"}

	logger := zap.Must(logCfg.Build())

	cfg := &Config{}
	flag.StringVar(&cfg.RunAddress, "a", "localhost:8080", "HTTP server address")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "DB connection string")
	flag.StringVar(&cfg.OzonAPIAddress, "r", "https://api-seller.ozon.ru", "Ozon seller API or proxy address")
	flag.StringVar(&cfg.Key, "k", "", "Token signing key")
	flag.Parse()

	cfg.Logger = logger.Sugar()

	ReadServerEnvironment(cfg)

	return cfg
}

func ReadServerEnvironment(cfg *Config) {
	if runAddress := os.Getenv("RUN_ADDRESS"); runAddress != "" {
		cfg.RunAddress = runAddress
	}

	if databaseURI := os.Getenv("DATABASE_URI"); databaseURI != "" {
		cfg.DatabaseURI = databaseURI
	}

	if ozonAPIAddress := os.Getenv("OZON_API_ADDRESS"); ozonAPIAddress != "" {
		cfg.OzonAPIAddress = ozonAPIAddress
	}

	if key := os.Getenv("SELLERBOARD_KEY"); key != "" {
		cfg.Key = key
	}
}
