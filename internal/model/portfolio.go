package model

import "time"

// Portfolio is a showcased project.
type Portfolio struct {
	ID               string           `json:"id"`
	Title            string           `json:"title"`
	Slug             string           `json:"slug"`
	ShortDescription string           `json:"sort_description"`
	Description      string           `json:"description"`
	RoleTitle        string           `json:"role_title"`
	ProjectType      string           `json:"project_type"`
	Industry         string           `json:"industry"`
	Month            int              `json:"month"`
	Year             int              `json:"year"`
	LiveURL          string           `json:"live_url"`
	RepoURL          string           `json:"repo_url"`
	Cover            string           `json:"cover"`
	Medias           []PortfolioMedia `json:"medias"`
	Tools            []PortfolioTool  `json:"tools"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

func (p Portfolio) GetID() string { return p.ID }

type PortfolioMedia struct {
	Path    string `json:"path"`
	Caption string `json:"caption"`
}

type PortfolioTool struct {
	Name string `json:"name"`
}
