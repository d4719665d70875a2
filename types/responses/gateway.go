package responses

import "github.com/likhonsheikh/tetheros-go/models"

type GatewayStatusResponseData struct {
	State  models.GatewayState  `json:"state"`
	Wallet *models.WalletRecord `json:"wallet"`
}

type CreateOrderResponseData struct {
	Order *models.OrderDescriptor `json:"order"`
}
