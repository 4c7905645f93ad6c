// Package settings persists the shop's preferences and user profile.
package settings

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mmynk/kiranakart/internal/models"
	"github.com/mmynk/kiranakart/internal/storage"
)

var phonePattern = regexp.MustCompile(`^\d{10}$`)

const msgMinQuantity = "Minimum quantity must be greater than 0"

// Settings reads and writes Preferences and the UserProfile.
type Settings struct {
	store storage.Store
}

// New creates Settings persisting through store.
func New(store storage.Store) *Settings {
	return &Settings{store: store}
}

// Preferences loads the saved preferences, using the defaults for any
// setting that was never saved.
func (s *Settings) Preferences(ctx context.Context) (models.Preferences, error) {
	prefs := models.DefaultPreferences()

	if _, err := storage.GetJSON(ctx, s.store, storage.KeyTheme, &prefs.Theme); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to load theme: %w", err)
	}
	if _, err := storage.GetJSON(ctx, s.store, storage.KeyFontScale, &prefs.FontScale); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to load font scale: %w", err)
	}
	if _, err := storage.GetJSON(ctx, s.store, storage.KeyMinQuantity, &prefs.MinQuantity); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to load min quantity: %w", err)
	}
	return prefs, nil
}

// SetTheme saves the theme.
func (s *Settings) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return invalid("theme", fmt.Sprintf("unknown theme %d", theme))
	}
	return s.save(ctx, storage.KeyTheme, theme)
}

// SetFontScale saves the font scale.
func (s *Settings) SetFontScale(ctx context.Context, scale models.FontScale) error {
	if !scale.Valid() {
		return invalid("fontScale", fmt.Sprintf("unknown font scale %d", scale))
	}
	return s.save(ctx, storage.KeyFontScale, scale)
}

// SetMinQuantity saves the low-stock threshold, which must be positive.
func (s *Settings) SetMinQuantity(ctx context.Context, n int) error {
	if n <= 0 {
		return invalid("minQuantity", msgMinQuantity)
	}
	return s.save(ctx, storage.KeyMinQuantity, n)
}

// PreferencesUpdate changes only the fields that are set.
type PreferencesUpdate struct {
	Theme       *models.Theme
	FontScale   *models.FontScale
	MinQuantity *int
}

// UpdatePreferences validates every set field before writing any of them, so
// a rejected update leaves the saved preferences unchanged. The writes go in
// one batch when the store supports it.
func (s *Settings) UpdatePreferences(ctx context.Context, update PreferencesUpdate) (models.Preferences, error) {
	verr := &models.ValidationError{}
	var batch storage.Batch
	if update.Theme != nil {
		if !update.Theme.Valid() {
			verr.Add("theme", fmt.Sprintf("unknown theme %d", *update.Theme))
		} else if err := batch.Put(storage.KeyTheme, *update.Theme); err != nil {
			return models.Preferences{}, err
		}
	}
	if update.FontScale != nil {
		if !update.FontScale.Valid() {
			verr.Add("fontScale", fmt.Sprintf("unknown font scale %d", *update.FontScale))
		} else if err := batch.Put(storage.KeyFontScale, *update.FontScale); err != nil {
			return models.Preferences{}, err
		}
	}
	if update.MinQuantity != nil {
		if *update.MinQuantity <= 0 {
			verr.Add("minQuantity", msgMinQuantity)
		} else if err := batch.Put(storage.KeyMinQuantity, *update.MinQuantity); err != nil {
			return models.Preferences{}, err
		}
	}
	if err := verr.OrNil(); err != nil {
		return models.Preferences{}, err
	}

	if err := s.apply(ctx, batch); err != nil {
		return models.Preferences{}, fmt.Errorf("failed to save preferences: %w", err)
	}
	return s.Preferences(ctx)
}

func (s *Settings) apply(ctx context.Context, batch storage.Batch) error {
	if len(batch.Sets) == 0 {
		return nil
	}
	if batcher, ok := s.store.(storage.Batcher); ok {
		return batcher.Apply(ctx, batch)
	}
	for _, key := range storage.AccountKeys {
		if raw, ok := batch.Sets[key]; ok {
			if err := s.store.Set(ctx, key, raw); err != nil {
				return err
			}
		}
	}
	return nil
}

// Signup validates and saves the profile, replacing any existing one.
func (s *Settings) Signup(ctx context.Context, profile models.UserProfile) (models.UserProfile, error) {
	profile = trimProfile(profile)
	if err := validateProfile(profile); err != nil {
		return models.UserProfile{}, err
	}
	if err := s.save(ctx, storage.KeyUser, profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// Profile returns the saved profile.
func (s *Settings) Profile(ctx context.Context) (models.UserProfile, error) {
	var profile models.UserProfile
	ok, err := storage.GetJSON(ctx, s.store, storage.KeyUser, &profile)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return models.UserProfile{}, &models.NotFoundError{Kind: "profile"}
	}
	return profile, nil
}

// UpdateProfile merges update into the saved profile.
func (s *Settings) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.UserProfile, error) {
	profile, err := s.Profile(ctx)
	if err != nil {
		return models.UserProfile{}, err
	}

	if update.Name != nil {
		profile.Name = *update.Name
	}
	if update.Shop != nil {
		profile.Shop = *update.Shop
	}
	if update.Address != nil {
		profile.Address = *update.Address
	}
	if update.Phone != nil {
		profile.Phone = *update.Phone
	}

	profile = trimProfile(profile)
	if err := validateProfile(profile); err != nil {
		return models.UserProfile{}, err
	}
	if err := s.save(ctx, storage.KeyUser, profile); err != nil {
		return models.UserProfile{}, err
	}
	return profile, nil
}

// DeleteAccount removes the profile, every preference, the item catalog and
// the sales ledger in one store call.
func (s *Settings) DeleteAccount(ctx context.Context) error {
	if err := s.store.RemoveMany(ctx, storage.AccountKeys); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}

func (s *Settings) save(ctx context.Context, key string, v any) error {
	if err := storage.SetJSON(ctx, s.store, key, v); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func trimProfile(p models.UserProfile) models.UserProfile {
	p.Name = strings.TrimSpace(p.Name)
	p.Shop = strings.TrimSpace(p.Shop)
	p.Address = strings.TrimSpace(p.Address)
	p.Phone = strings.TrimSpace(p.Phone)
	return p
}

// validateProfile applies the signup form rules.
func validateProfile(p models.UserProfile) error {
	verr := &models.ValidationError{}
	if utf8.RuneCountInString(p.Name) < 2 {
		verr.Add("name", "Enter a valid name")
	}
	if utf8.RuneCountInString(p.Shop) < 2 {
		verr.Add("shop", "Enter a valid shop name")
	}
	if utf8.RuneCountInString(p.Address) < 5 {
		verr.Add("address", "Enter a proper address")
	}
	if !phonePattern.MatchString(p.Phone) {
		verr.Add("phone", "Phone must be 10 digits")
	}
	return verr.OrNil()
}

func invalid(field, msg string) error {
	verr := &models.ValidationError{}
	verr.Add(field, msg)
	return verr
}
