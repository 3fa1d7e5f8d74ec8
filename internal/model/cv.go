package model

import "time"

// CV is a curriculum vitae rendered from a backend template.
type CV struct {
	ID          string         `json:"id"`
	TemplateID  string         `json:"template_id"`
	Name        string         `json:"name"`
	Headline    string         `json:"headline"`
	Email       string         `json:"email"`
	Phone       string         `json:"phone"`
	Address     string         `json:"address"`
	About       string         `json:"about"`
	Photo       string         `json:"photo"`
	Language    string         `json:"language"`
	Slug        string         `json:"slug"`
	Visibility  string         `json:"visibility"`
	Views       int            `json:"views"`
	Educations  []CVEducation  `json:"educations"`
	Experiences []CVExperience `json:"experiences"`
	Skills      []CVSkill      `json:"skills"`
	Links       []CVSocialLink `json:"social_links"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (c CV) GetID() string { return c.ID }

type CVEducation struct {
	Degree      string `json:"degree"`
	SchoolName  string `json:"school_name"`
	SchoolLoc   string `json:"school_location"`
	Major       string `json:"major"`
	StartMonth  int    `json:"start_month"`
	StartYear   int    `json:"start_year"`
	EndMonth    int    `json:"end_month"`
	EndYear     int    `json:"end_year"`
	IsCurrent   bool   `json:"is_current"`
	GPA         string `json:"gpa"`
	Description string `json:"description"`
}

type CVExperience struct {
	JobTitle    string `json:"job_title"`
	CompanyName string `json:"company_name"`
	CompanyLoc  string `json:"company_location"`
	JobType     string `json:"job_type"`
	StartMonth  int    `json:"start_month"`
	StartYear   int    `json:"start_year"`
	EndMonth    int    `json:"end_month"`
	EndYear     int    `json:"end_year"`
	IsCurrent   bool   `json:"is_current"`
	Description string `json:"description"`
}

type CVSkill struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

type CVSocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}
