package model

import "time"

// StateDocument holds one persisted store document per storage namespace
// (auth-storage, progress-storage). The document is always written whole.
type StateDocument struct {
	Namespace string    `json:"namespace" gorm:"primaryKey"`
	Data      []byte    `json:"data" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}
