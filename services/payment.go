package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/config"
	"github.com/likhonsheikh/tetheros-go/models"
)

// ErrGatewayNotReady signals that the payment collaborator has not finished
// initializing. It is a transient condition; the user retries by resubmitting.
var ErrGatewayNotReady = errors.New("payment gateway not ready")

// PaymentGateway is the injected payment collaborator. Pay is fire-and-forget
// from the orchestrator's point of view.
type PaymentGateway interface {
	Pay(order *models.PaymentOrder) error
}

// NewWidgetPaymentGateway adapts the hosted payment widget. Until the widget
// endpoint is configured the gateway reports not-ready instead of failing.
func NewWidgetPaymentGateway(cfg *config.Config, log *zap.Logger) PaymentGateway {
	return &widgetPaymentGateway{
		service: service{cfg: cfg, log: log},
		client:  newHTTPClient(),
	}
}

type widgetPaymentGateway struct {
	service
	client *http.Client
}

func (p *widgetPaymentGateway) Pay(order *models.PaymentOrder) error {
	if p.cfg.PaymentWidgetURL == "" {
		return ErrGatewayNotReady
	}

	body, err := json.Marshal(order)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, p.cfg.PaymentWidgetURL, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("content-type", "application/json")

	res, err := p.client.Do(req)
	if err != nil {
		// Fire-and-forget: the widget owns retries and settlement.
		p.log.Warn("dispatching payment order", zap.Error(err), zap.String("order_id", order.OrderID))
		return nil
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	p.log.Info("payment order dispatched", zap.String("order_id", order.OrderID), zap.Int("status", res.StatusCode))
	return nil
}
