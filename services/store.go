package services

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"
	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/errors"
	"github.com/likhonsheikh/tetheros-go/models"
)

// WalletStoreService is the durable record of the non-secret wallet identity.
// It is local to the device and is not a source of truth for balance.
type WalletStoreService interface {
	// Load returns the stored identity, or nil when none has been saved.
	Load(ctx context.Context) (*models.WalletRecord, error)
	// Save persists the identity pair. Both fields are written in a single
	// statement; the store never holds an id without its address.
	Save(ctx context.Context, walletID, address string) error
}

func NewWalletStoreService(dataDatabase *sql.DB, log *zap.Logger) WalletStoreService {
	return &walletStoreService{
		service: service{
			dataDB: dataDatabase,
			log:    log,
		},
	}
}

type walletStoreService struct {
	service
}

func (w *walletStoreService) Load(ctx context.Context) (*models.WalletRecord, error) {
	row := sq.
		Select("wallet_id", "wallet_address").
		From("wallet_identity").
		Where(sq.Eq{"id": 1}).
		RunWith(w.dataDB).
		QueryRowContext(ctx)

	record := &models.WalletRecord{Balance: "0.00"}
	err := row.Scan(&record.ID, &record.Address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.HandleDataDBError(err)
	}

	return record, nil
}

func (w *walletStoreService) Save(ctx context.Context, walletID, address string) error {
	_, err := sq.
		Replace("wallet_identity").
		Columns("id", "wallet_id", "wallet_address").
		Values(1, walletID, address).
		RunWith(w.dataDB).
		ExecContext(ctx)
	if err != nil {
		return errors.HandleDataDBError(err)
	}

	return nil
}
