package responses

// CreateWalletResponse is the wire shape of the upstream create-with-backup
// endpoint. A response is treated as canonical when Success is set or a
// wallet id is present.
type CreateWalletResponse struct {
	Success    bool   `json:"success"`
	WalletID   string `json:"wallet_id"`
	Address    string `json:"address"`
	Mnemonic   string `json:"mnemonic"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
}

type WalletBalanceResponse struct {
	Success bool   `json:"success"`
	Balance string `json:"balance"`
}

type VerifyAccessKeyResponse struct {
	Success *bool  `json:"success"`
	Message string `json:"message"`
}
