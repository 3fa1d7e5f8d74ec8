package model

import "time"

// ApplicationLetter is a cover letter rendered from a backend template.
type ApplicationLetter struct {
	ID               string     `json:"id"`
	TemplateID       string     `json:"template_id"`
	Name             string     `json:"name"`
	BirthPlaceDate   string     `json:"birth_place_date"`
	Gender           string     `json:"gender"`
	MaritalStatus    string     `json:"marital_status"`
	Education        string     `json:"education"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Address          string     `json:"address"`
	SubjectLine      string     `json:"subject"`
	ApplicantCity    string     `json:"applicant_city"`
	ApplicationDate  *time.Time `json:"application_date,omitempty"`
	ReceiverTitle    string     `json:"receiver_title"`
	CompanyName      string     `json:"company_name"`
	CompanyCity      string     `json:"company_city"`
	CompanyAddress   string     `json:"company_address"`
	OpeningParagraph string     `json:"opening_paragraph"`
	BodyParagraph    string     `json:"body_paragraph"`
	AttachmentsText  string     `json:"attachments"`
	ClosingParagraph string     `json:"closing_paragraph"`
	Signature        string     `json:"signature"`
	Language         string     `json:"language"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (l ApplicationLetter) GetID() string { return l.ID }
