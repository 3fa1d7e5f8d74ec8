package model

import "time"

// ColumnPreference records which list columns a browser has hidden for a resource.
type ColumnPreference struct {
	ClientID  string    `json:"client_id"`
	Resource  string    `json:"resource"`
	Hidden    []string  `json:"hidden"`
	UpdatedAt time.Time `json:"updated_at"`
}
