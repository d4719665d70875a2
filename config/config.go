package config

import (
	"errors"
	"time"

	"github.com/spf13/viper"
)

// Config carries the runtime settings for the gateway engine. Everything has
// a workable default so the binary starts with no config file present.
type Config struct {
	ListenAddr string

	WalletAPIBaseURL string
	MarketAPIBaseURL string
	AuthVerifyURL    string
	PaymentWidgetURL string

	MerchantID string

	DBPath string

	MarketPollInterval time.Duration
	FallbackDelay      time.Duration

	// DemoMode gates local credential synthesis when the wallet service is
	// unreachable. Off means provisioning failures surface to the caller.
	DemoMode bool
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.SetDefault("listen_addr", ":8080")
	viper.SetDefault("wallet_api_base_url", "https://v0-crypto-wallet-api.vercel.app")
	viper.SetDefault("market_api_base_url", "https://v0-crypto-wallet-api.vercel.app")
	viper.SetDefault("auth_verify_url", "https://api.likhonsheikh.xyz/verify")
	viper.SetDefault("payment_widget_url", "")
	viper.SetDefault("merchant_id", "VJ30UOFJMO")
	viper.SetDefault("db_path", "tetheros.db")
	viper.SetDefault("market_poll_interval", "30s")
	viper.SetDefault("fallback_delay", "1500ms")
	viper.SetDefault("demo_mode", true)

	viper.SetEnvPrefix("tetheros")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	return &Config{
		ListenAddr:         viper.GetString("listen_addr"),
		WalletAPIBaseURL:   viper.GetString("wallet_api_base_url"),
		MarketAPIBaseURL:   viper.GetString("market_api_base_url"),
		AuthVerifyURL:      viper.GetString("auth_verify_url"),
		PaymentWidgetURL:   viper.GetString("payment_widget_url"),
		MerchantID:         viper.GetString("merchant_id"),
		DBPath:             viper.GetString("db_path"),
		MarketPollInterval: viper.GetDuration("market_poll_interval"),
		FallbackDelay:      viper.GetDuration("fallback_delay"),
		DemoMode:           viper.GetBool("demo_mode"),
	}, nil
}
