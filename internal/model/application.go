package model

import "time"

// Application tracks one job application through the hiring pipeline.
type Application struct {
	ID           string     `json:"id"`
	CompanyName  string     `json:"company_name"`
	CompanyURL   string     `json:"company_url"`
	Position     string     `json:"position"`
	JobSource    string     `json:"job_source"`
	JobType      string     `json:"job_type"`
	WorkSystem   string     `json:"work_system"`
	SalaryMin    int64      `json:"salary_min"`
	SalaryMax    int64      `json:"salary_max"`
	Location     string     `json:"location"`
	DateApplied  *time.Time `json:"date_applied,omitempty"`
	Status       string     `json:"status"`
	ResultStatus string     `json:"result_status"`
	ContactName  string     `json:"contact_name"`
	ContactEmail string     `json:"contact_email"`
	ContactPhone string     `json:"contact_phone"`
	JobURL       string     `json:"job_url"`
	Notes        string     `json:"notes"`
	FollowUpDate *time.Time `json:"follow_up_date,omitempty"`
	FollowUpNote string     `json:"follow_up_note"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (a Application) GetID() string { return a.ID }
