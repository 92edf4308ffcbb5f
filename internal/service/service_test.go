package service

import (
	"sync"
	"testing"

	"marketofmanycards/market-api/db"
	"marketofmanycards/market-api/internal/model"
	"marketofmanycards/market-api/internal/store"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newTestRepo(t *testing.T) *store.Store {
	t.Helper()

	gdb, err := db.Open("sqlite", ":memory:")
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return store.New(gdb)
}

type sentNotification struct {
	email string
	kind  string
	title string
	id    uint
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
	err  error
}

func (f *fakeNotifier) ListingCreated(seller *model.User, kind, title string, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.sent = append(f.sent, sentNotification{email: seller.Email, kind: kind, title: title, id: id})
	return f.err
}

func (f *fakeNotifier) Sent() []sentNotification {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]sentNotification(nil), f.sent...)
}
