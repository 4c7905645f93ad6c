package models

// Theme selects the colour scheme.
type Theme int

const (
	ThemeSystem Theme = iota
	ThemeLight
	ThemeDark
)

// Valid reports whether t is one of the known themes.
func (t Theme) Valid() bool {
	return t >= ThemeSystem && t <= ThemeDark
}

func (t Theme) String() string {
	switch t {
	case ThemeSystem:
		return "system"
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "unknown"
	}
}

// FontScale selects the text size preset.
type FontScale int

const (
	FontSmall FontScale = iota
	FontMedium
	FontLarge
)

// Valid reports whether f is one of the known presets.
func (f FontScale) Valid() bool {
	return f >= FontSmall && f <= FontLarge
}

func (f FontScale) String() string {
	switch f {
	case FontSmall:
		return "small"
	case FontMedium:
		return "medium"
	case FontLarge:
		return "large"
	default:
		return "unknown"
	}
}

// Preferences are the per-installation settings.
// Components receive a Preferences value rather than reading settings themselves.
type Preferences struct {
	Theme     Theme     `json:"theme"`
	FontScale FontScale `json:"fontScale"`

	// MinQuantity is the low-stock threshold: items with stock below it are
	// flagged on the inventory screens.
	MinQuantity int `json:"minQuantity"`
}

// DefaultPreferences returns the settings used when nothing has been saved yet.
func DefaultPreferences() Preferences {
	return Preferences{
		Theme:       ThemeSystem,
		FontScale:   FontMedium,
		MinQuantity: 1,
	}
}
