package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/errors"
	"github.com/likhonsheikh/tetheros-go/models"
	"github.com/likhonsheikh/tetheros-go/services"
	"github.com/likhonsheikh/tetheros-go/types/requests"
	"github.com/likhonsheikh/tetheros-go/types/responses"
	"github.com/likhonsheikh/tetheros-go/utils"
)

type MarketHandler interface {
	FetchSnapshot(w http.ResponseWriter, r *http.Request)
	QuoteConversion(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewMarketHandler(marketService services.MarketFeedService, exchangeService services.ExchangeService, log *zap.Logger) MarketHandler {
	return &marketHandler{
		handler: handler{marketService: marketService, exchangeService: exchangeService, log: log},
	}
}

type marketHandler struct {
	handler
}

func (m *marketHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/market", m.FetchSnapshot)
	mux.HandleFunc("GET /api/v1/quote", m.QuoteConversion)
}

func (m *marketHandler) FetchSnapshot(w http.ResponseWriter, r *http.Request) {
	snapshot := m.marketService.Snapshot()

	utils.JSON(w, 200, &responses.Response[models.MarketSnapshot]{
		Status: "successful",
		Data:   snapshot,
	})
}

func (m *marketHandler) QuoteConversion(w http.ResponseWriter, r *http.Request) {
	req := new(requests.QuoteConversionRequest)
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	quote, ok := m.exchangeService.Quote(req.Amount, m.marketService.Snapshot().USDT.Price)
	if !ok {
		errors.NewValidationError("amount must be a non-negative number").Serialize(w)
		return
	}

	utils.JSON(w, 200, &responses.Response[*models.ConversionQuote]{
		Status: "successful",
		Data:   quote,
	})
}
