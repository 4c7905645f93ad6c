package service

import (
	"net/http"

	"connectrpc.com/connect"
)

const (
	InventoryServiceName = "kiranakart.v1.InventoryService"
	SalesServiceName     = "kiranakart.v1.SalesService"
	AccountServiceName   = "kiranakart.v1.AccountService"
)

// Fully-qualified procedure names, used as HTTP paths and in metrics labels.
const (
	InventoryServiceCreateItemProcedure = "/" + InventoryServiceName + "/CreateItem"
	InventoryServiceUpdateItemProcedure = "/" + InventoryServiceName + "/UpdateItem"
	InventoryServiceDeleteItemProcedure = "/" + InventoryServiceName + "/DeleteItem"
	InventoryServiceListItemsProcedure  = "/" + InventoryServiceName + "/ListItems"
	InventoryServiceLowStockProcedure   = "/" + InventoryServiceName + "/LowStock"

	SalesServiceCheckoutProcedure   = "/" + SalesServiceName + "/Checkout"
	SalesServiceListBillsProcedure  = "/" + SalesServiceName + "/ListBills"
	SalesServiceGetReceiptProcedure = "/" + SalesServiceName + "/GetReceipt"
	SalesServiceClearBillsProcedure = "/" + SalesServiceName + "/ClearBills"

	AccountServiceSignupProcedure            = "/" + AccountServiceName + "/Signup"
	AccountServiceGetProfileProcedure        = "/" + AccountServiceName + "/GetProfile"
	AccountServiceUpdateProfileProcedure     = "/" + AccountServiceName + "/UpdateProfile"
	AccountServiceDeleteAccountProcedure     = "/" + AccountServiceName + "/DeleteAccount"
	AccountServiceGetPreferencesProcedure    = "/" + AccountServiceName + "/GetPreferences"
	AccountServiceUpdatePreferencesProcedure = "/" + AccountServiceName + "/UpdatePreferences"
)

// withCodec puts the JSON codec ahead of caller options.
func withCodec(opts []connect.HandlerOption) []connect.HandlerOption {
	return append([]connect.HandlerOption{connect.WithCodec(jsonCodec{})}, opts...)
}

// NewInventoryServiceHandler builds an HTTP handler for the inventory procedures.
// It returns the path on which to mount the handler and the handler itself.
func NewInventoryServiceHandler(svc *InventoryService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(InventoryServiceCreateItemProcedure, connect.NewUnaryHandler(InventoryServiceCreateItemProcedure, svc.CreateItem, opts...))
	mux.Handle(InventoryServiceUpdateItemProcedure, connect.NewUnaryHandler(InventoryServiceUpdateItemProcedure, svc.UpdateItem, opts...))
	mux.Handle(InventoryServiceDeleteItemProcedure, connect.NewUnaryHandler(InventoryServiceDeleteItemProcedure, svc.DeleteItem, opts...))
	mux.Handle(InventoryServiceListItemsProcedure, connect.NewUnaryHandler(InventoryServiceListItemsProcedure, svc.ListItems, opts...))
	mux.Handle(InventoryServiceLowStockProcedure, connect.NewUnaryHandler(InventoryServiceLowStockProcedure, svc.LowStock, opts...))
	return "/" + InventoryServiceName + "/", mux
}

// NewSalesServiceHandler builds an HTTP handler for checkout and the sales history.
func NewSalesServiceHandler(svc *SalesService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(SalesServiceCheckoutProcedure, connect.NewUnaryHandler(SalesServiceCheckoutProcedure, svc.Checkout, opts...))
	mux.Handle(SalesServiceListBillsProcedure, connect.NewUnaryHandler(SalesServiceListBillsProcedure, svc.ListBills, opts...))
	mux.Handle(SalesServiceGetReceiptProcedure, connect.NewUnaryHandler(SalesServiceGetReceiptProcedure, svc.GetReceipt, opts...))
	mux.Handle(SalesServiceClearBillsProcedure, connect.NewUnaryHandler(SalesServiceClearBillsProcedure, svc.ClearBills, opts...))
	return "/" + SalesServiceName + "/", mux
}

// NewAccountServiceHandler builds an HTTP handler for profile and preferences.
func NewAccountServiceHandler(svc *AccountService, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = withCodec(opts)
	mux := http.NewServeMux()
	mux.Handle(AccountServiceSignupProcedure, connect.NewUnaryHandler(AccountServiceSignupProcedure, svc.Signup, opts...))
	mux.Handle(AccountServiceGetProfileProcedure, connect.NewUnaryHandler(AccountServiceGetProfileProcedure, svc.GetProfile, opts...))
	mux.Handle(AccountServiceUpdateProfileProcedure, connect.NewUnaryHandler(AccountServiceUpdateProfileProcedure, svc.UpdateProfile, opts...))
	mux.Handle(AccountServiceDeleteAccountProcedure, connect.NewUnaryHandler(AccountServiceDeleteAccountProcedure, svc.DeleteAccount, opts...))
	mux.Handle(AccountServiceGetPreferencesProcedure, connect.NewUnaryHandler(AccountServiceGetPreferencesProcedure, svc.GetPreferences, opts...))
	mux.Handle(AccountServiceUpdatePreferencesProcedure, connect.NewUnaryHandler(AccountServiceUpdatePreferencesProcedure, svc.UpdatePreferences, opts...))
	return "/" + AccountServiceName + "/", mux
}
