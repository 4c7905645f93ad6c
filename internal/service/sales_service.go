package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/mmynk/kiranakart/internal/billing"
	"github.com/mmynk/kiranakart/internal/cart"
	"github.com/mmynk/kiranakart/internal/catalog"
	"github.com/mmynk/kiranakart/internal/ledger"
	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/settings"
)

// SalesService implements the Connect SalesService
type SalesService struct {
	catalog  *catalog.Catalog
	ledger   *ledger.Ledger
	billing  *billing.Engine
	settings *settings.Settings
}

// NewSalesService creates a new SalesService.
func NewSalesService(cat *catalog.Catalog, led *ledger.Ledger, engine *billing.Engine, st *settings.Settings) *SalesService {
	return &SalesService{catalog: cat, ledger: led, billing: engine, settings: st}
}

// Checkout builds a cart from the request lines against the current catalog,
// then finalizes, bills and commits it. Quantities above stock are clamped and
// reported as warnings rather than failing the sale.
func (s *SalesService) Checkout(ctx context.Context, req *connect.Request[CheckoutRequest]) (*connect.Response[CheckoutResponse], error) {
	slog.Info("Checkout request received", "lines", len(req.Msg.Lines))

	items, err := s.catalog.List(ctx)
	if err != nil {
		slog.Error("Checkout failed to load catalog", "error", err)
		return nil, toConnectError(err)
	}

	session := cart.New(items)
	var warnings []models.OutOfStockWarning
	for _, line := range req.Msg.Lines {
		if err := session.Toggle(line.ItemID); err != nil {
			return nil, toConnectError(err)
		}
		if !lastSelected(session, line.ItemID) {
			return nil, connect.NewError(connect.CodeInvalidArgument,
				fmt.Errorf("item %s listed more than once", line.ItemID))
		}

		q, err := session.SetQuantity(line.ItemID, line.Quantity)
		if err != nil {
			return nil, toConnectError(err)
		}
		if q.Warning != nil {
			slog.Debug("Quantity clamped to stock", "item_id", line.ItemID, "max", q.Warning.Max)
			warnings = append(warnings, *q.Warning)
		}
	}

	bill, err := s.billing.Checkout(ctx, session)
	if err != nil {
		var commitErr *billing.CommitError
		if errors.As(err, &commitErr) {
			slog.Error("Checkout commit failed", "bill_id", commitErr.BillID, "stage", commitErr.Stage, "error", err)
			return nil, commitFailure(commitErr)
		}
		slog.Warn("Checkout rejected", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Bill committed", "bill_id", bill.ID, "total", bill.Total.String(), "lines", len(bill.Lines))
	return connect.NewResponse(&CheckoutResponse{Bill: bill, Warnings: warnings}), nil
}

// ListBills returns the sales history, most recent first.
func (s *SalesService) ListBills(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListBillsResponse], error) {
	bills, err := s.ledger.List(ctx)
	if err != nil {
		slog.Error("ListBills failed", "error", err)
		return nil, toConnectError(err)
	}

	summary, err := s.ledger.Summary(ctx)
	if err != nil {
		slog.Error("ListBills summary failed", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ListBillsResponse{Bills: bills, Summary: summary}), nil
}

// GetReceipt renders a stored bill as a printable invoice.
func (s *SalesService) GetReceipt(ctx context.Context, req *connect.Request[GetReceiptRequest]) (*connect.Response[GetReceiptResponse], error) {
	bill, err := s.ledger.Get(ctx, req.Msg.BillID)
	if err != nil {
		slog.Error("GetReceipt failed", "bill_id", req.Msg.BillID, "error", err)
		return nil, toConnectError(err)
	}

	// A receipt without the shop header is still useful.
	var profile *models.UserProfile
	if p, err := s.settings.Profile(ctx); err == nil {
		profile = &p
	} else if !errors.Is(err, models.ErrNotFound) {
		return nil, toConnectError(err)
	}

	var b strings.Builder
	if err := billing.WriteReceipt(&b, bill, profile); err != nil {
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&GetReceiptResponse{
		InvoiceNumber: billing.InvoiceNumber(bill),
		Text:          b.String(),
	}), nil
}

// ClearBills empties the sales history.
func (s *SalesService) ClearBills(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[Empty], error) {
	slog.Info("ClearBills request received")

	if err := s.ledger.Clear(ctx); err != nil {
		slog.Error("ClearBills failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

// commitFailure converts a failed commit into a Connect error carrying the
// bill ID and stage as a detail. With stage "catalog" the bill is already in
// the ledger and its stock needs reconciling.
func commitFailure(commitErr *billing.CommitError) error {
	connectErr := toConnectError(commitErr).(*connect.Error)
	fields, err := structpb.NewStruct(map[string]any{
		"billId": commitErr.BillID,
		"stage":  commitErr.Stage,
	})
	if err != nil {
		return connectErr
	}
	if detail, err := connect.NewErrorDetail(fields); err == nil {
		connectErr.AddDetail(detail)
	}
	return connectErr
}

// lastSelected reports whether itemID is the most recently selected line,
// which is false when Toggle removed it again because it was a duplicate.
func lastSelected(session *cart.Session, itemID string) bool {
	lines := session.Lines()
	return len(lines) > 0 && lines[len(lines)-1].Item.ID == itemID
}
