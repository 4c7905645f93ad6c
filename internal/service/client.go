package service

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/kiranakart/internal/models"
)

func clientOptions(opts []connect.ClientOption) []connect.ClientOption {
	return append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
}

// InventoryClient calls InventoryService.
type InventoryClient struct {
	createItem *connect.Client[CreateItemRequest, ItemResponse]
	updateItem *connect.Client[UpdateItemRequest, ItemResponse]
	deleteItem *connect.Client[DeleteItemRequest, Empty]
	listItems  *connect.Client[ListItemsRequest, ListItemsResponse]
	lowStock   *connect.Client[LowStockRequest, LowStockResponse]
}

// NewInventoryClient creates a client for the server at baseURL.
func NewInventoryClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *InventoryClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &InventoryClient{
		createItem: connect.NewClient[CreateItemRequest, ItemResponse](httpClient, baseURL+InventoryServiceCreateItemProcedure, opts...),
		updateItem: connect.NewClient[UpdateItemRequest, ItemResponse](httpClient, baseURL+InventoryServiceUpdateItemProcedure, opts...),
		deleteItem: connect.NewClient[DeleteItemRequest, Empty](httpClient, baseURL+InventoryServiceDeleteItemProcedure, opts...),
		listItems:  connect.NewClient[ListItemsRequest, ListItemsResponse](httpClient, baseURL+InventoryServiceListItemsProcedure, opts...),
		lowStock:   connect.NewClient[LowStockRequest, LowStockResponse](httpClient, baseURL+InventoryServiceLowStockProcedure, opts...),
	}
}

func (c *InventoryClient) CreateItem(ctx context.Context, req *connect.Request[CreateItemRequest]) (*connect.Response[ItemResponse], error) {
	return c.createItem.CallUnary(ctx, req)
}

func (c *InventoryClient) UpdateItem(ctx context.Context, req *connect.Request[UpdateItemRequest]) (*connect.Response[ItemResponse], error) {
	return c.updateItem.CallUnary(ctx, req)
}

func (c *InventoryClient) DeleteItem(ctx context.Context, req *connect.Request[DeleteItemRequest]) (*connect.Response[Empty], error) {
	return c.deleteItem.CallUnary(ctx, req)
}

func (c *InventoryClient) ListItems(ctx context.Context, req *connect.Request[ListItemsRequest]) (*connect.Response[ListItemsResponse], error) {
	return c.listItems.CallUnary(ctx, req)
}

func (c *InventoryClient) LowStock(ctx context.Context, req *connect.Request[LowStockRequest]) (*connect.Response[LowStockResponse], error) {
	return c.lowStock.CallUnary(ctx, req)
}

// SalesClient calls SalesService.
type SalesClient struct {
	checkout   *connect.Client[CheckoutRequest, CheckoutResponse]
	listBills  *connect.Client[Empty, ListBillsResponse]
	getReceipt *connect.Client[GetReceiptRequest, GetReceiptResponse]
	clearBills *connect.Client[Empty, Empty]
}

// NewSalesClient creates a client for the server at baseURL.
func NewSalesClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *SalesClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &SalesClient{
		checkout:   connect.NewClient[CheckoutRequest, CheckoutResponse](httpClient, baseURL+SalesServiceCheckoutProcedure, opts...),
		listBills:  connect.NewClient[Empty, ListBillsResponse](httpClient, baseURL+SalesServiceListBillsProcedure, opts...),
		getReceipt: connect.NewClient[GetReceiptRequest, GetReceiptResponse](httpClient, baseURL+SalesServiceGetReceiptProcedure, opts...),
		clearBills: connect.NewClient[Empty, Empty](httpClient, baseURL+SalesServiceClearBillsProcedure, opts...),
	}
}

func (c *SalesClient) Checkout(ctx context.Context, req *connect.Request[CheckoutRequest]) (*connect.Response[CheckoutResponse], error) {
	return c.checkout.CallUnary(ctx, req)
}

func (c *SalesClient) ListBills(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ListBillsResponse], error) {
	return c.listBills.CallUnary(ctx, req)
}

func (c *SalesClient) GetReceipt(ctx context.Context, req *connect.Request[GetReceiptRequest]) (*connect.Response[GetReceiptResponse], error) {
	return c.getReceipt.CallUnary(ctx, req)
}

func (c *SalesClient) ClearBills(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[Empty], error) {
	return c.clearBills.CallUnary(ctx, req)
}

// AccountClient calls AccountService.
type AccountClient struct {
	signup            *connect.Client[models.UserProfile, ProfileResponse]
	getProfile        *connect.Client[Empty, ProfileResponse]
	updateProfile     *connect.Client[models.ProfileUpdate, ProfileResponse]
	deleteAccount     *connect.Client[Empty, Empty]
	getPreferences    *connect.Client[Empty, PreferencesResponse]
	updatePreferences *connect.Client[UpdatePreferencesRequest, PreferencesResponse]
}

// NewAccountClient creates a client for the server at baseURL.
func NewAccountClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) *AccountClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &AccountClient{
		signup:            connect.NewClient[models.UserProfile, ProfileResponse](httpClient, baseURL+AccountServiceSignupProcedure, opts...),
		getProfile:        connect.NewClient[Empty, ProfileResponse](httpClient, baseURL+AccountServiceGetProfileProcedure, opts...),
		updateProfile:     connect.NewClient[models.ProfileUpdate, ProfileResponse](httpClient, baseURL+AccountServiceUpdateProfileProcedure, opts...),
		deleteAccount:     connect.NewClient[Empty, Empty](httpClient, baseURL+AccountServiceDeleteAccountProcedure, opts...),
		getPreferences:    connect.NewClient[Empty, PreferencesResponse](httpClient, baseURL+AccountServiceGetPreferencesProcedure, opts...),
		updatePreferences: connect.NewClient[UpdatePreferencesRequest, PreferencesResponse](httpClient, baseURL+AccountServiceUpdatePreferencesProcedure, opts...),
	}
}

func (c *AccountClient) Signup(ctx context.Context, req *connect.Request[models.UserProfile]) (*connect.Response[ProfileResponse], error) {
	return c.signup.CallUnary(ctx, req)
}

func (c *AccountClient) GetProfile(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileResponse], error) {
	return c.getProfile.CallUnary(ctx, req)
}

func (c *AccountClient) UpdateProfile(ctx context.Context, req *connect.Request[models.ProfileUpdate]) (*connect.Response[ProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

func (c *AccountClient) DeleteAccount(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[Empty], error) {
	return c.deleteAccount.CallUnary(ctx, req)
}

func (c *AccountClient) GetPreferences(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[PreferencesResponse], error) {
	return c.getPreferences.CallUnary(ctx, req)
}

func (c *AccountClient) UpdatePreferences(ctx context.Context, req *connect.Request[UpdatePreferencesRequest]) (*connect.Response[PreferencesResponse], error) {
	return c.updatePreferences.CallUnary(ctx, req)
}
