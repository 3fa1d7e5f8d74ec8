package model

import "time"

// Document is a personal file (ID card, diploma, certificate...) stored for the user.
type Document struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	OriginalFilename string    `json:"original_filename"`
	Path             string    `json:"path"`
	MimeType         string    `json:"mime_type"`
	Size             int64     `json:"size"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (d Document) GetID() string { return d.ID }
