package requests

type CreateOrderRequest struct {
	AmountUSD string `json:"amount_usd" validate:"required"`
}
