package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

var errConfigValueMissing error = errors.New("configuration value missing")

const (
	apiPortKey       = "API_PORT"
	dbConnKey        = "DB_CONNECTION_URL"
	solanaRPCKey     = "SOLANA_RPC_URL"
	jwtSecretKey     = "JWT_SECRET"
	redisAddrKey     = "REDIS_ADDR"
	redisPasswordKey = "REDIS_PASSWORD"
	walletSecretKey  = "WALLET_SECRET"
	logLevelKey      = "LOG_LEVEL"
)

type App struct {
	Port            string
	DBConnectionURL string
	SolanaRPCURL    string
	JWTSecret       string
	RedisAddr       string
	RedisPassword   string
	WalletSecret    string
	LogLevel        string
}

// NewApp reads configuration from the environment. The Redis settings and
// WALLET_SECRET are optional; everything else is required.
func NewApp() (App, error) {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault(logLevelKey, "info")

	for _, key := range []string{apiPortKey, dbConnKey, solanaRPCKey, jwtSecretKey} {
		if v.GetString(key) == "" {
			return App{}, fmt.Errorf("%w: %s", errConfigValueMissing, key)
		}
	}

	return App{
		Port:            v.GetString(apiPortKey),
		DBConnectionURL: v.GetString(dbConnKey),
		SolanaRPCURL:    v.GetString(solanaRPCKey),
		JWTSecret:       v.GetString(jwtSecretKey),
		RedisAddr:       v.GetString(redisAddrKey),
		RedisPassword:   v.GetString(redisPasswordKey),
		WalletSecret:    v.GetString(walletSecretKey),
		LogLevel:        v.GetString(logLevelKey),
	}, nil
}
