package model

import "time"

// Source types: a source is the payment account or method a transaction is
// recorded against.
const (
	SourceCash    = "cash"
	SourceDebit   = "debit"
	SourceCredit  = "credit"
	SourceEWallet = "e-wallet"
	SourceBank    = "bank"
	SourceOther   = "other"
)

type Source struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // cash, debit, credit, e-wallet, bank or other
	Color     string    `json:"color,omitempty"`
	Icon      string    `json:"icon,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ValidSourceType reports whether t is a known source type.
func ValidSourceType(t string) bool {
	switch t {
	case SourceCash, SourceDebit, SourceCredit, SourceEWallet, SourceBank, SourceOther:
		return true
	}
	return false
}
