package service

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"connectrpc.com/connect"

	"github.com/mmynk/kiranakart/internal/billing"
	"github.com/mmynk/kiranakart/internal/catalog"
	"github.com/mmynk/kiranakart/internal/ledger"
	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/settings"
	"github.com/mmynk/kiranakart/internal/storage"
	"github.com/mmynk/kiranakart/internal/storage/sqlite"
)

type testClients struct {
	inventory *InventoryClient
	sales     *SalesClient
	account   *AccountClient
}

// setupTestServer serves all three services over a fresh SQLite database.
func setupTestServer(t *testing.T) *testClients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return setupTestServerWithStore(t, store)
}

// setupTestServerWithStore serves all three services over store and closes
// it when the test ends.
func setupTestServerWithStore(t *testing.T, store storage.Store) *testClients {
	t.Helper()

	cat := catalog.New(store)
	led := ledger.New(store)
	st := settings.New(store)
	engine := billing.New(store, cat, led)

	mux := http.NewServeMux()
	mux.Handle(NewInventoryServiceHandler(NewInventoryService(cat, st)))
	mux.Handle(NewSalesServiceHandler(NewSalesService(cat, led, engine, st)))
	mux.Handle(NewAccountServiceHandler(NewAccountService(st)))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &testClients{
		inventory: NewInventoryClient(http.DefaultClient, server.URL),
		sales:     NewSalesClient(http.DefaultClient, server.URL),
		account:   NewAccountClient(http.DefaultClient, server.URL),
	}
}

func createItem(t *testing.T, c *testClients, form models.ItemForm) models.Item {
	t.Helper()
	resp, err := c.inventory.CreateItem(context.Background(), connect.NewRequest(&CreateItemRequest{Item: form}))
	if err != nil {
		t.Fatalf("CreateItem(%s) failed: %v", form.Name, err)
	}
	return resp.Msg.Item
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		t.Fatalf("expected connect error, got %T: %v", err, err)
	}
	if connectErr.Code() != want {
		t.Errorf("expected code %v, got %v (%s)", want, connectErr.Code(), connectErr.Message())
	}
}
