package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kiranakart/internal/catalog"
	"github.com/mmynk/kiranakart/internal/settings"
)

// InventoryService implements the Connect InventoryService
type InventoryService struct {
	catalog  *catalog.Catalog
	settings *settings.Settings
}

// NewInventoryService creates a new InventoryService.
func NewInventoryService(cat *catalog.Catalog, st *settings.Settings) *InventoryService {
	return &InventoryService{catalog: cat, settings: st}
}

// CreateItem validates the item form and adds the item to the catalog.
func (s *InventoryService) CreateItem(ctx context.Context, req *connect.Request[CreateItemRequest]) (*connect.Response[ItemResponse], error) {
	slog.Info("CreateItem request received", "name", req.Msg.Item.Name)

	draft, err := catalog.ParseForm(req.Msg.Item)
	if err != nil {
		slog.Warn("CreateItem validation failed", "error", err)
		return nil, toConnectError(err)
	}

	item, err := s.catalog.Create(ctx, draft)
	if err != nil {
		slog.Error("CreateItem failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Item created", "item_id", item.ID, "stock", item.Stock)
	return connect.NewResponse(&ItemResponse{Item: item}), nil
}

// UpdateItem replaces an existing item.
func (s *InventoryService) UpdateItem(ctx context.Context, req *connect.Request[UpdateItemRequest]) (*connect.Response[ItemResponse], error) {
	slog.Info("UpdateItem request received", "item_id", req.Msg.ID)

	draft, err := catalog.ParseForm(req.Msg.Item)
	if err != nil {
		slog.Warn("UpdateItem validation failed", "item_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	item, err := s.catalog.Update(ctx, req.Msg.ID, draft)
	if err != nil {
		slog.Error("UpdateItem failed", "item_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&ItemResponse{Item: item}), nil
}

// DeleteItem removes an item. Unknown IDs succeed.
func (s *InventoryService) DeleteItem(ctx context.Context, req *connect.Request[DeleteItemRequest]) (*connect.Response[Empty], error) {
	slog.Info("DeleteItem request received", "item_id", req.Msg.ID)

	if err := s.catalog.Delete(ctx, req.Msg.ID); err != nil {
		slog.Error("DeleteItem failed", "item_id", req.Msg.ID, "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&Empty{}), nil
}

// ListItems returns the filtered inventory along with its categories.
func (s *InventoryService) ListItems(ctx context.Context, req *connect.Request[ListItemsRequest]) (*connect.Response[ListItemsResponse], error) {
	items, err := s.catalog.Query(ctx, catalog.Filter{
		Search:   req.Msg.Search,
		Category: req.Msg.Category,
		SortBy:   catalog.SortBy(req.Msg.SortBy),
	})
	if err != nil {
		slog.Error("ListItems failed", "error", err)
		return nil, toConnectError(err)
	}

	categories, err := s.catalog.Categories(ctx)
	if err != nil {
		slog.Error("ListItems categories failed", "error", err)
		return nil, toConnectError(err)
	}

	prefs, err := s.settings.Preferences(ctx)
	if err != nil {
		slog.Error("ListItems preferences failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Debug("ListItems successful", "count", len(items))
	return connect.NewResponse(&ListItemsResponse{
		Items:       items,
		Categories:  categories,
		MinQuantity: prefs.MinQuantity,
	}), nil
}

// LowStock lists items below the requested threshold, or below the saved
// minimum quantity when none is given.
func (s *InventoryService) LowStock(ctx context.Context, req *connect.Request[LowStockRequest]) (*connect.Response[LowStockResponse], error) {
	threshold := req.Msg.Threshold
	if threshold <= 0 {
		prefs, err := s.settings.Preferences(ctx)
		if err != nil {
			slog.Error("LowStock preferences failed", "error", err)
			return nil, toConnectError(err)
		}
		threshold = prefs.MinQuantity
	}

	items, err := s.catalog.FindLowStock(ctx, threshold)
	if err != nil {
		slog.Error("LowStock failed", "threshold", threshold, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&LowStockResponse{Threshold: threshold, Items: items}), nil
}
