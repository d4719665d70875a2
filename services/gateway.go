package services

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/config"
	"github.com/likhonsheikh/tetheros-go/errors"
	"github.com/likhonsheikh/tetheros-go/models"
)

// GatewayService sequences the wallet lifecycle behind the exchange screen:
// provisioning, the one-time backup disclosure, and the steady state. Market
// data is independent of this state machine and is wired separately.
type GatewayService interface {
	State() models.GatewayState
	// Wallet returns a copy of the current record, or nil before provisioning.
	Wallet() *models.WalletRecord

	// CreateWallet provisions a new wallet. Exclusive: a second call while
	// one is in flight is rejected. On success the identity is persisted
	// before the backup becomes observable.
	CreateWallet(ctx context.Context) (*models.WalletBackup, error)
	// Backup returns the secret bundle, only during disclosure.
	Backup() (*models.WalletBackup, error)
	// AcknowledgeBackup discards the secret bundle and enters the steady
	// state. The backup is unrecoverable afterwards.
	AcknowledgeBackup() error

	RefreshBalance(ctx context.Context)
	SubmitOrder(amountUSD string) (*models.OrderDescriptor, error)
}

func NewGatewayService(
	store WalletStoreService,
	wallets WalletService,
	exchange ExchangeService,
	payments PaymentGateway,
	cfg *config.Config,
	log *zap.Logger,
) GatewayService {
	g := &gatewayService{
		service: service{
			cfg:             cfg,
			walletStore:     store,
			walletService:   wallets,
			exchangeService: exchange,
			log:             log,
		},
		payments: payments,
		state:    models.GatewayStateIdle,
	}

	record, err := store.Load(context.Background())
	switch {
	case err != nil:
		// Treat an unreadable store as absent; the engine stays usable.
		log.Error("loading wallet identity", zap.Error(err))
	case record != nil:
		g.wallet = record
		g.state = models.GatewayStateReady
		go g.RefreshBalance(context.Background())
	}

	return g
}

type gatewayService struct {
	service
	payments PaymentGateway

	mu         sync.Mutex
	state      models.GatewayState
	wallet     *models.WalletRecord
	backup     *models.WalletBackup
	isCreating bool
}

func (g *gatewayService) State() models.GatewayState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

func (g *gatewayService) Wallet() *models.WalletRecord {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.wallet == nil {
		return nil
	}
	record := *g.wallet
	return &record
}

func (g *gatewayService) CreateWallet(ctx context.Context) (*models.WalletBackup, error) {
	g.mu.Lock()
	if g.isCreating {
		g.mu.Unlock()
		return nil, errors.NewStateConflictError("wallet creation already in progress")
	}
	if g.wallet != nil {
		g.mu.Unlock()
		return nil, errors.NewStateConflictError("wallet already provisioned")
	}
	g.isCreating = true
	g.state = models.GatewayStateProvisioning
	g.mu.Unlock()

	backup, err := g.walletService.CreateWithBackup(ctx)

	g.mu.Lock()
	defer g.mu.Unlock()
	g.isCreating = false

	if err != nil {
		g.state = models.GatewayStateIdle
		return nil, err
	}

	// Persist the identity before the backup is observable, so a reload mid
	// disclosure still recovers the wallet.
	if err := g.walletStore.Save(ctx, backup.WalletID, backup.Address); err != nil {
		g.state = models.GatewayStateIdle
		return nil, err
	}

	g.wallet = &models.WalletRecord{
		ID:      backup.WalletID,
		Address: backup.Address,
		Balance: "0.00",
	}
	g.backup = backup
	g.state = models.GatewayStateBackupDisclosure

	return backup, nil
}

func (g *gatewayService) Backup() (*models.WalletBackup, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != models.GatewayStateBackupDisclosure || g.backup == nil {
		return nil, errors.NewNotFoundError("no backup available for disclosure")
	}

	backup := *g.backup
	return &backup, nil
}

func (g *gatewayService) AcknowledgeBackup() error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != models.GatewayStateBackupDisclosure {
		return errors.NewStateConflictError("no backup disclosure in progress")
	}

	g.backup = nil
	g.state = models.GatewayStateReady

	return nil
}

func (g *gatewayService) RefreshBalance(ctx context.Context) {
	g.mu.Lock()
	if g.wallet == nil {
		g.mu.Unlock()
		return
	}
	walletID := g.wallet.ID
	g.mu.Unlock()

	balance, ok := g.walletService.FetchBalance(ctx, walletID)
	if !ok {
		// Stale over blank: keep whatever balance was displayed before.
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.wallet != nil && g.wallet.ID == walletID {
		g.wallet.Balance = balance
	}
}

func (g *gatewayService) SubmitOrder(amountUSD string) (*models.OrderDescriptor, error) {
	g.mu.Lock()
	if g.state != models.GatewayStateReady {
		g.mu.Unlock()
		return nil, errors.NewStateConflictError("gateway is not ready for purchases")
	}
	g.mu.Unlock()

	if amountUSD == "" {
		return nil, errors.NewValidationError("amount is required")
	}

	order, ok := g.exchangeService.BuildOrder(amountUSD)
	if !ok {
		return nil, errors.NewValidationError("amount must be a positive number")
	}

	amount, _ := order.AmountUSD.Float64()
	err := g.payments.Pay(&models.PaymentOrder{
		MerchantID:  g.cfg.MerchantID,
		OrderID:     order.OrderID,
		OrderAmount: amount,
	})
	if errors.Is(err, ErrGatewayNotReady) {
		return nil, errors.NewFailedDependencyError("Secure payment gateway is initializing. Please try again in a few seconds.")
	}
	if err != nil {
		return nil, errors.NewFailedDependencyError("payment gateway rejected the order")
	}

	return order, nil
}
