package model

import (
	"time"

	"github.com/google/uuid"
)

type Transaction struct {
	ID          string    `json:"id,omitempty"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"` // income or expense
	Amount      Amount    `json:"amount"`
	Description string    `json:"description,omitempty"`
	Date        Date      `json:"date"`
	CategoryID  *string   `json:"category_id"`
	SourceID    *string   `json:"source_id"`
	CreatedAt   time.Time `json:"created_at,omitempty"`

	// Resolved display objects, attached after secondary lookups. Never sent
	// to the store: reads set them, writes carry them as nil so the JSON
	// payload omits the keys.
	Category *DisplayRef `json:"category,omitempty"`
	Source   *DisplayRef `json:"source,omitempty"`
}

// DisplayRef is the denormalized view of a referenced category or source.
type DisplayRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Type  string `json:"type,omitempty"`
}

// GenerateID assigns a new UUID if the transaction does not have one yet.
func (t *Transaction) GenerateID() {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
}
