package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/services"
)

type handler struct {
	gatewayService  services.GatewayService
	marketService   services.MarketFeedService
	exchangeService services.ExchangeService
	authService     services.AuthService
	middlewares     MiddleWareHandler

	log *zap.Logger
}

type Handler interface {
	ServeHttp(*http.ServeMux)
}
