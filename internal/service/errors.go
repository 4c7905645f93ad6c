package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/kiranakart/internal/cart"
	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/storage"
)

// toConnectError maps domain errors onto Connect codes.
func toConnectError(err error) error {
	var (
		verr       *models.ValidationError
		storageErr *storage.Error
	)
	switch {
	case errors.As(err, &verr):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case errors.Is(err, models.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, cart.ErrNotSelected),
		errors.Is(err, cart.ErrFinalized):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	case errors.As(err, &storageErr):
		return connect.NewError(connect.CodeUnavailable, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}
