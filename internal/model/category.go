package model

import "time"

// Transaction and category types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

type Category struct {
	ID        string    `json:"id,omitempty"`
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"` // income or expense
	Color     string    `json:"color,omitempty"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// ValidCategoryType reports whether t is one of the two category types.
func ValidCategoryType(t string) bool {
	return t == TypeIncome || t == TypeExpense
}
