package storage

// Persisted keys. The values are kept byte-compatible with the keys the
// mobile app already wrote so an exported store can be read back.
const (
	KeyUser        = "KiranaKart_User"
	KeyTheme       = "KiranaKart_Theme"
	KeyFontScale   = "KiranaKart_FontSize"
	KeyMinQuantity = "KiranaKart_MinQuantity"
	KeyItems       = "KiranaKart_Items"
	KeyBills       = "@bills"
)

// AccountKeys are every key owned by an installation. Deleting the account
// removes all of them at once.
var AccountKeys = []string{
	KeyUser,
	KeyTheme,
	KeyFontScale,
	KeyMinQuantity,
	KeyItems,
	KeyBills,
}
