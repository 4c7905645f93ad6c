package service

import (
	"context"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/settings"
)

// AccountService implements the Connect AccountService
type AccountService struct {
	settings *settings.Settings
}

// NewAccountService creates a new AccountService.
func NewAccountService(st *settings.Settings) *AccountService {
	return &AccountService{settings: st}
}

// Signup saves the shopkeeper profile.
func (s *AccountService) Signup(ctx context.Context, req *connect.Request[models.UserProfile]) (*connect.Response[ProfileResponse], error) {
	slog.Info("Signup request received", "shop", req.Msg.Shop)

	profile, err := s.settings.Signup(ctx, *req.Msg)
	if err != nil {
		slog.Warn("Signup failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

// GetProfile returns the saved profile.
func (s *AccountService) GetProfile(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[ProfileResponse], error) {
	profile, err := s.settings.Profile(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

// UpdateProfile applies a partial profile edit.
func (s *AccountService) UpdateProfile(ctx context.Context, req *connect.Request[models.ProfileUpdate]) (*connect.Response[ProfileResponse], error) {
	profile, err := s.settings.UpdateProfile(ctx, *req.Msg)
	if err != nil {
		slog.Warn("UpdateProfile failed", "error", err)
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&ProfileResponse{Profile: profile}), nil
}

// DeleteAccount removes the profile and all shop data.
func (s *AccountService) DeleteAccount(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[Empty], error) {
	slog.Info("DeleteAccount request received")

	if err := s.settings.DeleteAccount(ctx); err != nil {
		slog.Error("DeleteAccount failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Account deleted")
	return connect.NewResponse(&Empty{}), nil
}

// GetPreferences returns the saved preferences.
func (s *AccountService) GetPreferences(ctx context.Context, req *connect.Request[Empty]) (*connect.Response[PreferencesResponse], error) {
	prefs, err := s.settings.Preferences(ctx)
	if err != nil {
		return nil, toConnectError(err)
	}
	return connect.NewResponse(&PreferencesResponse{Preferences: prefs}), nil
}

// UpdatePreferences saves the fields set in the request.
func (s *AccountService) UpdatePreferences(ctx context.Context, req *connect.Request[UpdatePreferencesRequest]) (*connect.Response[PreferencesResponse], error) {
	prefs, err := s.settings.UpdatePreferences(ctx, settings.PreferencesUpdate{
		Theme:       req.Msg.Theme,
		FontScale:   req.Msg.FontScale,
		MinQuantity: req.Msg.MinQuantity,
	})
	if err != nil {
		slog.Warn("UpdatePreferences failed", "error", err)
		return nil, toConnectError(err)
	}
	slog.Info("Preferences updated",
		"theme", prefs.Theme.String(),
		"font_scale", prefs.FontScale.String(),
		"min_quantity", prefs.MinQuantity,
	)
	return connect.NewResponse(&PreferencesResponse{Preferences: prefs}), nil
}
