package services_test

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/likhonsheikh/tetheros-go/db"
	"github.com/likhonsheikh/tetheros-go/services"
)

func newWalletStore(t *testing.T) services.WalletStoreService {
	t.Helper()
	conn, err := db.Open(filepath.Join(t.TempDir(), "store.db"))
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return services.NewWalletStoreService(conn, zap.NewNop())
}

func Test_WalletStore(t *testing.T) {
	ctx := context.Background()

	t.Run("ok, empty store loads nil", func(t *testing.T) {
		store := newWalletStore(t)

		record, err := store.Load(ctx)
		require.NoError(t, err)
		require.Nil(t, record)
	})

	t.Run("ok, persisted identity is idempotent", func(t *testing.T) {
		store := newWalletStore(t)
		address := "0x" + strings.Repeat("a1", 20)

		require.NoError(t, store.Save(ctx, "w_abc123", address))

		first, err := store.Load(ctx)
		require.NoError(t, err)
		second, err := store.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, first, second)
		require.Equal(t, "w_abc123", first.ID)
		require.Equal(t, address, first.Address)
		require.Equal(t, "0.00", first.Balance)

		// Saving the same pair again changes nothing observable.
		require.NoError(t, store.Save(ctx, "w_abc123", address))
		third, err := store.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, first, third)
	})

	t.Run("ok, save replaces both fields atomically", func(t *testing.T) {
		store := newWalletStore(t)

		require.NoError(t, store.Save(ctx, "w_one", "0x"+strings.Repeat("0a", 20)))
		require.NoError(t, store.Save(ctx, "w_two", "0x"+strings.Repeat("0b", 20)))

		record, err := store.Load(ctx)
		require.NoError(t, err)
		require.Equal(t, "w_two", record.ID)
		require.Equal(t, "0x"+strings.Repeat("0b", 20), record.Address)
	})
}
