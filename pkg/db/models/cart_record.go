package models

import "time"

// CartRecord is the single persisted slot for a shopper's serialized cart.
// The payload is the full cart state, rewritten on every mutation.
type CartRecord struct {
	SessionID string `gorm:"primaryKey;size:64"`
	Payload   []byte `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name stable regardless of GORM pluralization.
func (CartRecord) TableName() string {
	return "cart_records"
}
