package model

// Template is a CV or application letter layout offered by the backend.
type Template struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Language  string `json:"language"`
	Preview   string `json:"preview"`
	IsPremium bool   `json:"is_premium"`
}

func (t Template) GetID() string { return t.ID }
