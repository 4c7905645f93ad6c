package models

// UserProfile holds the shopkeeper's details.
// There is exactly one profile per installation; it is created at signup and
// removed together with all other persisted state when the account is deleted.
type UserProfile struct {
	// Name is the shopkeeper's full name.
	Name string `json:"name"`

	// Shop is the shop name printed at the top of every receipt.
	Shop string `json:"shop"`

	Address string `json:"address"`

	// Phone is a 10-digit phone number.
	Phone string `json:"phone"`
}

// ProfileUpdate is a partial edit of a UserProfile. Nil fields are left untouched.
type ProfileUpdate struct {
	Name    *string `json:"name,omitempty"`
	Shop    *string `json:"shop,omitempty"`
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
}
