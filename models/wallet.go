package models

// WalletRecord is the durable, non-secret wallet identity plus the live
// balance. ID and Address never change once provisioned; Balance is refreshed
// from the wallet service and defaults to "0.00" until a fetch succeeds.
type WalletRecord struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Balance string `json:"balance"`
}

// WalletBackup is the full secret credential bundle produced exactly once at
// provisioning time. It must never be persisted; only the {WalletID, Address}
// subset is written to storage.
type WalletBackup struct {
	Mnemonic   string `json:"mnemonic"`
	PrivateKey string `json:"private_key"`
	PublicKey  string `json:"public_key"`
	Address    string `json:"address"`
	WalletID   string `json:"wallet_id"`
}
