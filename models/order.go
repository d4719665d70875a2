package models

import "github.com/shopspring/decimal"

// OrderDescriptor identifies a purchase handed to the payment collaborator.
// It is never stored; the OrderID combines a millisecond timestamp with a
// random suffix for collision resistance.
type OrderDescriptor struct {
	OrderID   string          `json:"order_id"`
	AmountUSD decimal.Decimal `json:"amount_usd"`
}

// PaymentOrder is the payload shape the external payment widget expects.
type PaymentOrder struct {
	MerchantID  string  `json:"merchantId"`
	OrderID     string  `json:"orderId"`
	OrderAmount float64 `json:"orderAmount"`
}

// ConversionQuote is the derived USD to token conversion, never stored.
type ConversionQuote struct {
	InputUSD    decimal.Decimal `json:"input_usd"`
	OutputToken decimal.Decimal `json:"output_token"`
}
