package deps

import (
	"github.com/mkraev/sellerboard/internal/auth"
	"go.uber.org/zap"
)

type Deps struct {
	Logger       *zap.SugaredLogger
	TokenManager *auth.TokenManager
}

func NewDependencies(logger *zap.SugaredLogger, secretKey string) *Deps {
	return &Deps{
		Logger:       logger,
		TokenManager: auth.NewTokenManager(secretKey),
	}
}
