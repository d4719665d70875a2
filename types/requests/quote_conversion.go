package requests

type QuoteConversionRequest struct {
	Amount string `query:"amount" validate:"required"`
}
