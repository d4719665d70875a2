package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/config"
	apperrors "github.com/likhonsheikh/tetheros-go/errors"
	"github.com/likhonsheikh/tetheros-go/models"
	"github.com/likhonsheikh/tetheros-go/services"
)

type fakeStore struct {
	mu     sync.Mutex
	record *models.WalletRecord
	saves  int
}

func (f *fakeStore) Load(context.Context) (*models.WalletRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.record == nil {
		return nil, nil
	}
	record := *f.record
	return &record, nil
}

func (f *fakeStore) Save(_ context.Context, walletID, address string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	f.record = &models.WalletRecord{ID: walletID, Address: address, Balance: "0.00"}
	return nil
}

type stubWalletService struct {
	backup  *models.WalletBackup
	err     error
	balance string
	ok      bool

	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (s *stubWalletService) CreateWithBackup(context.Context) (*models.WalletBackup, error) {
	s.mu.Lock()
	s.calls++
	s.mu.Unlock()
	if s.entered != nil {
		s.entered <- struct{}{}
	}
	if s.release != nil {
		<-s.release
	}
	if s.err != nil {
		return nil, s.err
	}
	backup := *s.backup
	return &backup, nil
}

func (s *stubWalletService) FetchBalance(context.Context, string) (string, bool) {
	return s.balance, s.ok
}

func (s *stubWalletService) createCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

type fakePayments struct {
	err error

	mu     sync.Mutex
	orders []*models.PaymentOrder
}

func (f *fakePayments) Pay(order *models.PaymentOrder) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.orders = append(f.orders, order)
	return nil
}

var demoBackup = &models.WalletBackup{
	WalletID:   "w_abc123456",
	Address:    "0x0123456789abcdef0123456789abcdef01234567",
	Mnemonic:   "witch collapse practice feed shame open despair creek road again ice least abundant ghost",
	PrivateKey: "0xab",
	PublicKey:  "0xcd",
}

func newGateway(store services.WalletStoreService, wallets services.WalletService, payments services.PaymentGateway) services.GatewayService {
	return services.NewGatewayService(
		store,
		wallets,
		services.NewExchangeService(zap.NewNop()),
		payments,
		&config.Config{MerchantID: "VJ30UOFJMO"},
		zap.NewNop(),
	)
}

func Test_GatewayLifecycle(t *testing.T) {
	t.Run("ok, starts idle without a stored wallet", func(t *testing.T) {
		gateway := newGateway(&fakeStore{}, &stubWalletService{}, &fakePayments{})
		require.Equal(t, models.GatewayStateIdle, gateway.State())
		require.Nil(t, gateway.Wallet())
	})

	t.Run("ok, starts ready with a stored wallet and refreshes balance", func(t *testing.T) {
		store := &fakeStore{record: &models.WalletRecord{ID: "w_abc123456", Address: demoBackup.Address, Balance: "0.00"}}
		wallets := &stubWalletService{balance: "42.00", ok: true}

		gateway := newGateway(store, wallets, &fakePayments{})
		require.Equal(t, models.GatewayStateReady, gateway.State())

		require.Eventually(t, func() bool {
			return gateway.Wallet().Balance == "42.00"
		}, time.Second, time.Millisecond*10)
	})

	t.Run("ok, create walks disclosure and discards the backup on ack", func(t *testing.T) {
		store := &fakeStore{}
		gateway := newGateway(store, &stubWalletService{backup: demoBackup}, &fakePayments{})

		backup, err := gateway.CreateWallet(context.Background())
		require.NoError(t, err)
		require.Equal(t, demoBackup.Mnemonic, backup.Mnemonic)
		require.Equal(t, models.GatewayStateBackupDisclosure, gateway.State())

		// Identity was persisted before disclosure.
		record, err := store.Load(context.Background())
		require.NoError(t, err)
		require.Equal(t, demoBackup.WalletID, record.ID)

		disclosed, err := gateway.Backup()
		require.NoError(t, err)
		require.Equal(t, demoBackup.PrivateKey, disclosed.PrivateKey)

		require.NoError(t, gateway.AcknowledgeBackup())
		require.Equal(t, models.GatewayStateReady, gateway.State())

		// One-time disclosure: the secret bundle is gone, the identity is not.
		_, err = gateway.Backup()
		require.Error(t, err)
		require.Equal(t, demoBackup.WalletID, gateway.Wallet().ID)
	})

	t.Run("fail, concurrent creation is guarded", func(t *testing.T) {
		wallets := &stubWalletService{
			backup:  demoBackup,
			entered: make(chan struct{}, 1),
			release: make(chan struct{}),
		}
		gateway := newGateway(&fakeStore{}, wallets, &fakePayments{})

		done := make(chan error, 1)
		go func() {
			_, err := gateway.CreateWallet(context.Background())
			done <- err
		}()

		<-wallets.entered
		require.Equal(t, models.GatewayStateProvisioning, gateway.State())

		_, err := gateway.CreateWallet(context.Background())
		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, apperrors.ErrStateConflict, appErr.Type)

		close(wallets.release)
		require.NoError(t, <-done)
		require.Equal(t, 1, wallets.createCalls())
	})

	t.Run("fail, create with an existing wallet", func(t *testing.T) {
		store := &fakeStore{record: &models.WalletRecord{ID: "w_abc123456", Address: demoBackup.Address, Balance: "0.00"}}
		gateway := newGateway(store, &stubWalletService{}, &fakePayments{})

		_, err := gateway.CreateWallet(context.Background())
		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, apperrors.ErrStateConflict, appErr.Type)
	})

	t.Run("fail, provisioning error returns to idle", func(t *testing.T) {
		wallets := &stubWalletService{err: apperrors.NewFailedDependencyError("wallet service is unavailable")}
		gateway := newGateway(&fakeStore{}, wallets, &fakePayments{})

		_, err := gateway.CreateWallet(context.Background())
		require.Error(t, err)
		require.Equal(t, models.GatewayStateIdle, gateway.State())
	})

	t.Run("fail, ack without a disclosure in progress", func(t *testing.T) {
		gateway := newGateway(&fakeStore{}, &stubWalletService{}, &fakePayments{})
		require.Error(t, gateway.AcknowledgeBackup())
	})

	t.Run("ok, failed balance refresh keeps the prior balance", func(t *testing.T) {
		store := &fakeStore{record: &models.WalletRecord{ID: "w_abc123456", Address: demoBackup.Address, Balance: "0.00"}}
		gateway := newGateway(store, &stubWalletService{ok: false}, &fakePayments{})

		gateway.RefreshBalance(context.Background())
		require.Equal(t, "0.00", gateway.Wallet().Balance)
	})
}

func Test_GatewaySubmitOrder(t *testing.T) {
	readyGateway := func(payments services.PaymentGateway) services.GatewayService {
		store := &fakeStore{record: &models.WalletRecord{ID: "w_abc123456", Address: demoBackup.Address, Balance: "0.00"}}
		return newGateway(store, &stubWalletService{}, payments)
	}

	t.Run("ok, hands the order to the payment collaborator", func(t *testing.T) {
		payments := &fakePayments{}
		gateway := readyGateway(payments)

		order, err := gateway.SubmitOrder("150.50")
		require.NoError(t, err)
		require.Contains(t, order.OrderID, "ORD-")

		payments.mu.Lock()
		defer payments.mu.Unlock()
		require.Len(t, payments.orders, 1)
		require.Equal(t, "VJ30UOFJMO", payments.orders[0].MerchantID)
		require.Equal(t, order.OrderID, payments.orders[0].OrderID)
		require.Equal(t, 150.50, payments.orders[0].OrderAmount)
	})

	t.Run("fail, only reachable from ready", func(t *testing.T) {
		gateway := newGateway(&fakeStore{}, &stubWalletService{}, &fakePayments{})

		_, err := gateway.SubmitOrder("100")
		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, apperrors.ErrStateConflict, appErr.Type)
	})

	t.Run("fail, empty amount", func(t *testing.T) {
		gateway := readyGateway(&fakePayments{})

		_, err := gateway.SubmitOrder("")
		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, apperrors.ErrValidation, appErr.Type)
	})

	t.Run("fail, collaborator not ready is transient", func(t *testing.T) {
		gateway := readyGateway(&fakePayments{err: services.ErrGatewayNotReady})

		_, err := gateway.SubmitOrder("100")
		var appErr apperrors.AppError
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, apperrors.ErrFailedDependency, appErr.Type)
		require.Contains(t, appErr.Message, "initializing")
	})
}
