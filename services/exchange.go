package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/models"
)

// feeRate is the fixed purchase fee applied to every conversion.
var feeRate = decimal.NewFromFloat(0.01)

// ExchangeService converts user-entered USD amounts into stablecoin amounts
// at the current market rate. Quote is pure; degenerate input yields no quote
// rather than an error so callers can simply clear the derived field.
type ExchangeService interface {
	Quote(inputUSD, usdtPrice string) (*models.ConversionQuote, bool)
	BuildOrder(amountUSD string) (*models.OrderDescriptor, bool)
}

func NewExchangeService(log *zap.Logger) ExchangeService {
	return &exchangeService{
		service: service{log: log},
	}
}

type exchangeService struct {
	service
}

func (e *exchangeService) Quote(inputUSD, usdtPrice string) (*models.ConversionQuote, bool) {
	input, err := decimal.NewFromString(strings.TrimSpace(inputUSD))
	if err != nil || input.IsNegative() {
		return nil, false
	}

	rate, err := decimal.NewFromString(strings.TrimSpace(usdtPrice))
	if err != nil || rate.IsZero() {
		// A missing or unusable rate degrades to parity pricing rather
		// than blocking the quote.
		rate = decimal.NewFromInt(1)
	}

	output := input.Div(rate).Mul(decimal.NewFromInt(1).Sub(feeRate)).Round(2)

	return &models.ConversionQuote{
		InputUSD:    input,
		OutputToken: output,
	}, true
}

func (e *exchangeService) BuildOrder(amountUSD string) (*models.OrderDescriptor, bool) {
	amount, err := decimal.NewFromString(strings.TrimSpace(amountUSD))
	if err != nil || amount.IsNegative() {
		return nil, false
	}

	return &models.OrderDescriptor{
		OrderID:   fmt.Sprintf("ORD-%d-%d", time.Now().UnixMilli(), rand.Intn(1000)),
		AmountUSD: amount,
	}, true
}
