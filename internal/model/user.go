package model

// User is the authenticated account as reported by the backend. The company
// fields feed the FROM block of invoice previews.
type User struct {
	ID                int64    `json:"id"`
	Username          string   `json:"username"`
	Email             string   `json:"email"`
	CompanyName       *string  `json:"company_name"`
	CompanyAddress    *string  `json:"company_address"`
	PreferredCurrency Currency `json:"preferred_currency"`
	IsActive          bool     `json:"is_active"`
	CreatedAt         string   `json:"created_at"`
}

// DisplayCurrency returns the user's preferred currency, falling back to the
// application default when unset or unknown.
func (u User) DisplayCurrency() Currency {
	if u.PreferredCurrency.Valid() {
		return u.PreferredCurrency
	}
	return DefaultCurrency
}

// BillerName returns the name shown in the FROM block: company name when
// present, username otherwise.
func (u User) BillerName() string {
	if u.CompanyName != nil && *u.CompanyName != "" {
		return *u.CompanyName
	}
	return u.Username
}
