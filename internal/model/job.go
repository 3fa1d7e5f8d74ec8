package model

import "time"

// Job is a vacancy. The API embeds its Company and JobRole.
type Job struct {
	ID                   string     `json:"id"`
	Slug                 string     `json:"slug"`
	Title                string     `json:"title"`
	CompanyID            string     `json:"company_id"`
	Company              *Company   `json:"company,omitempty"`
	JobRoleID            string     `json:"job_role_id"`
	JobRole              *JobRole   `json:"job_role,omitempty"`
	Location             string     `json:"location"`
	JobType              string     `json:"job_type"`
	WorkSystem           string     `json:"work_system"`
	EducationLevel       string     `json:"education_level"`
	MinYearsOfExperience int        `json:"min_years_of_experience"`
	SalaryMin            int64      `json:"salary_min"`
	SalaryMax            int64      `json:"salary_max"`
	IsSalaryVisible      bool       `json:"is_salary_visible"`
	Description          string     `json:"description"`
	Requirements         string     `json:"requirements"`
	ExternalURL          string     `json:"external_url"`
	ContactEmail         string     `json:"contact_email"`
	Status               string     `json:"status"`
	ExpirationDate       *time.Time `json:"expiration_date,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

func (j Job) GetID() string { return j.ID }

// CompanyName is the embedded company label, if the API included it.
func (j Job) CompanyName() string {
	if j.Company == nil {
		return ""
	}
	return j.Company.Name
}

// RoleName is the embedded job role label, if the API included it.
func (j Job) RoleName() string {
	if j.JobRole == nil {
		return ""
	}
	return j.JobRole.Name
}
