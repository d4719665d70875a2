package services

import (
	"database/sql"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/config"
)

type service struct {
	dataDB          *sql.DB
	cfg             *config.Config
	walletStore     WalletStoreService
	walletService   WalletService
	exchangeService ExchangeService
	log             *zap.Logger
}

// Tracked trading pairs, keyed by upstream pair name.
const (
	PairUSDT = "USDT/USD"
	PairBTC  = "BTC/USD"
	PairETH  = "ETH/USD"
)

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: time.Second * 15}
}
