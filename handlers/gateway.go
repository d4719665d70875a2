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

type GatewayHandler interface {
	FetchStatus(w http.ResponseWriter, r *http.Request)
	CreateWallet(w http.ResponseWriter, r *http.Request)
	FetchBackup(w http.ResponseWriter, r *http.Request)
	AcknowledgeBackup(w http.ResponseWriter, r *http.Request)
	RefreshBalance(w http.ResponseWriter, r *http.Request)
	CreateOrder(w http.ResponseWriter, r *http.Request)

	ServeHttp(*http.ServeMux)
}

func NewGatewayHandler(gatewayService services.GatewayService, middlewares MiddleWareHandler, log *zap.Logger) GatewayHandler {
	return &gatewayHandler{
		handler: handler{gatewayService: gatewayService, middlewares: middlewares, log: log},
	}
}

type gatewayHandler struct {
	handler
}

func (g *gatewayHandler) ServeHttp(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/wallet", g.middlewares.ValidateSession(g.FetchStatus))
	mux.HandleFunc("POST /api/v1/wallet", g.middlewares.ValidateSession(g.CreateWallet))
	mux.HandleFunc("GET /api/v1/wallet/backup", g.middlewares.ValidateSession(g.FetchBackup))
	mux.HandleFunc("POST /api/v1/wallet/backup/ack", g.middlewares.ValidateSession(g.AcknowledgeBackup))
	mux.HandleFunc("POST /api/v1/wallet/balance/refresh", g.middlewares.ValidateSession(g.RefreshBalance))
	mux.HandleFunc("POST /api/v1/orders", g.middlewares.ValidateSession(g.CreateOrder))
}

func (g *gatewayHandler) FetchStatus(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, 200, &responses.Response[*responses.GatewayStatusResponseData]{
		Status: "successful",
		Data: &responses.GatewayStatusResponseData{
			State:  g.gatewayService.State(),
			Wallet: g.gatewayService.Wallet(),
		},
	})
}

func (g *gatewayHandler) CreateWallet(w http.ResponseWriter, r *http.Request) {
	backup, err := g.gatewayService.CreateWallet(r.Context())
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 201, &responses.Response[*models.WalletBackup]{
		Status: "successful",
		Data:   backup,
	})
}

func (g *gatewayHandler) FetchBackup(w http.ResponseWriter, r *http.Request) {
	backup, err := g.gatewayService.Backup()
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, &responses.Response[*models.WalletBackup]{
		Status: "successful",
		Data:   backup,
	})
}

func (g *gatewayHandler) AcknowledgeBackup(w http.ResponseWriter, r *http.Request) {
	if err := g.gatewayService.AcknowledgeBackup(); err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 200, &responses.Response[*responses.GatewayStatusResponseData]{
		Status: "successful",
		Data: &responses.GatewayStatusResponseData{
			State:  g.gatewayService.State(),
			Wallet: g.gatewayService.Wallet(),
		},
	})
}

func (g *gatewayHandler) RefreshBalance(w http.ResponseWriter, r *http.Request) {
	g.gatewayService.RefreshBalance(r.Context())

	utils.JSON(w, 200, &responses.Response[*models.WalletRecord]{
		Status: "successful",
		Data:   g.gatewayService.Wallet(),
	})
}

func (g *gatewayHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	req := new(requests.CreateOrderRequest)
	if err := utils.Bind(r, req); err != nil {
		errors.HandleBindError(err).Serialize(w)
		return
	}

	order, err := g.gatewayService.SubmitOrder(req.AmountUSD)
	if err != nil {
		errors.AsAppError(err).Serialize(w)
		return
	}

	utils.JSON(w, 202, &responses.Response[*responses.CreateOrderResponseData]{
		Status: "successful",
		Data:   &responses.CreateOrderResponseData{Order: order},
	})
}
