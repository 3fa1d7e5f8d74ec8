package model

import "time"

// Company is an employer profile managed by administrators.
type Company struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Description    string    `json:"description"`
	Logo           string    `json:"logo"`
	EmployeeSize   string    `json:"employee_size"`
	BusinessSector string    `json:"business_sector"`
	WebsiteURL     string    `json:"website_url"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	IsVerified     bool      `json:"is_verified"`
	JobCount       int       `json:"job_count"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func (c Company) GetID() string { return c.ID }

// JobRole is the normalized role a job is posted under.
type JobRole struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
