package resource

import (
	"encoding/json"
	"time"

	"karirkit/internal/form"
	"karirkit/internal/model"
	"karirkit/internal/upload"
)

// UploadReceiver is implemented by payloads that keep more than the stored
// path of an uploaded file.
type UploadReceiver interface {
	ReceiveUpload(field string, res *upload.Result)
}

func dateOnly(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(time.DateOnly)
}

func slugFrom(slug *string, title string) {
	if *slug == "" {
		*slug = form.Slugify(title)
	}
}

// JobPayload is the admin job form.
type JobPayload struct {
	Title                string `json:"title" form:"title" label:"Judul" validate:"required,max=200"`
	Slug                 string `json:"slug" form:"slug" label:"Slug" help:"Kosongkan untuk dibuat dari judul" validate:"required,slug,max=220"`
	CompanyID            string `json:"company_id" form:"company_id" label:"Perusahaan" input:"select" options:"companies" validate:"required"`
	JobRoleID            string `json:"job_role_id" form:"job_role_id" label:"Peran" input:"select" options:"job_roles" validate:"required"`
	Location             string `json:"location" form:"location" label:"Lokasi" validate:"required,max=150"`
	JobType              string `json:"job_type" form:"job_type" label:"Tipe pekerjaan" input:"select" options:"job_type" validate:"required,oneof=full_time part_time contract internship freelance"`
	WorkSystem           string `json:"work_system" form:"work_system" label:"Sistem kerja" input:"select" options:"work_system" validate:"required,oneof=onsite remote hybrid"`
	EducationLevel       string `json:"education_level" form:"education_level" label:"Pendidikan minimal" input:"select" options:"education_level" validate:"required,oneof=sma d3 s1 s2 s3 any"`
	MinYearsOfExperience int    `json:"min_years_of_experience" form:"min_years_of_experience" label:"Pengalaman minimal (tahun)" input:"number" validate:"gte=0,lte=50"`
	SalaryMin            int64  `json:"salary_min" form:"salary_min" label:"Gaji minimum" input:"number" validate:"gte=0"`
	SalaryMax            int64  `json:"salary_max" form:"salary_max" label:"Gaji maksimum" input:"number" validate:"omitempty,gtefield=SalaryMin"`
	IsSalaryVisible      bool   `json:"is_salary_visible" form:"is_salary_visible" label:"Tampilkan gaji" input:"checkbox"`
	Description          string `json:"description" form:"description" label:"Deskripsi" input:"richtext" validate:"required"`
	Requirements         string `json:"requirements" form:"requirements" label:"Persyaratan" input:"richtext"`
	ExternalURL          string `json:"external_url" form:"external_url" label:"Tautan lamaran" input:"url" validate:"omitempty,url"`
	ContactEmail         string `json:"contact_email" form:"contact_email" label:"Email kontak" input:"email" validate:"omitempty,email"`
	Status               string `json:"status" form:"status" label:"Status" input:"select" options:"job_status" validate:"required,oneof=draft published closed archived"`
	ExpirationDate       string `json:"expiration_date,omitempty" form:"expiration_date" label:"Tanggal kedaluwarsa" input:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (p *JobPayload) Normalize() { slugFrom(&p.Slug, p.Title) }

func newJobPayload(j *model.Job) any {
	p := &JobPayload{Status: "draft", WorkSystem: "onsite", JobType: "full_time"}
	if j == nil {
		return p
	}
	*p = JobPayload{
		Title: j.Title, Slug: j.Slug, CompanyID: j.CompanyID, JobRoleID: j.JobRoleID,
		Location: j.Location, JobType: j.JobType, WorkSystem: j.WorkSystem,
		EducationLevel: j.EducationLevel, MinYearsOfExperience: j.MinYearsOfExperience,
		SalaryMin: j.SalaryMin, SalaryMax: j.SalaryMax, IsSalaryVisible: j.IsSalaryVisible,
		Description: j.Description, Requirements: j.Requirements, ExternalURL: j.ExternalURL,
		ContactEmail: j.ContactEmail, Status: j.Status, ExpirationDate: dateOnly(j.ExpirationDate),
	}
	return p
}

// ApplicationPayload is the job application tracker form.
type ApplicationPayload struct {
	CompanyName  string `json:"company_name" form:"company_name" label:"Perusahaan" validate:"required,max=150"`
	CompanyURL   string `json:"company_url" form:"company_url" label:"Situs perusahaan" input:"url" validate:"omitempty,url"`
	Position     string `json:"position" form:"position" label:"Posisi" validate:"required,max=150"`
	JobSource    string `json:"job_source" form:"job_source" label:"Sumber lowongan" input:"select" options:"job_source" validate:"required,oneof=linkedin jobstreet glints kalibrr company_website referral karirkit other"`
	JobType      string `json:"job_type" form:"job_type" label:"Tipe pekerjaan" input:"select" options:"job_type" validate:"required,oneof=full_time part_time contract internship freelance"`
	WorkSystem   string `json:"work_system" form:"work_system" label:"Sistem kerja" input:"select" options:"work_system" validate:"required,oneof=onsite remote hybrid"`
	SalaryMin    int64  `json:"salary_min" form:"salary_min" label:"Gaji minimum" input:"number" validate:"gte=0"`
	SalaryMax    int64  `json:"salary_max" form:"salary_max" label:"Gaji maksimum" input:"number" validate:"omitempty,gtefield=SalaryMin"`
	Location     string `json:"location" form:"location" label:"Lokasi" validate:"max=150"`
	DateApplied  string `json:"date_applied" form:"date_applied" label:"Tanggal melamar" input:"date" validate:"required,datetime=2006-01-02"`
	Status       string `json:"status" form:"status" label:"Status" input:"select" options:"application_status" validate:"required,oneof=draft submitted administration_screening hr_screening online_test psychological_test technical_test hr_interview user_interview final_interview medical_checkup offering accepted rejected"`
	ResultStatus string `json:"result_status" form:"result_status" label:"Hasil" input:"select" options:"result_status" validate:"required,oneof=pending passed failed"`
	ContactName  string `json:"contact_name" form:"contact_name" label:"Nama kontak" validate:"max=100"`
	ContactEmail string `json:"contact_email" form:"contact_email" label:"Email kontak" input:"email" validate:"omitempty,email"`
	ContactPhone string `json:"contact_phone" form:"contact_phone" label:"Telepon kontak" validate:"max=30"`
	JobURL       string `json:"job_url" form:"job_url" label:"Tautan lowongan" input:"url" validate:"omitempty,url"`
	Notes        string `json:"notes" form:"notes" label:"Catatan" input:"textarea"`
	FollowUpDate string `json:"follow_up_date,omitempty" form:"follow_up_date" label:"Tanggal tindak lanjut" input:"date" validate:"omitempty,datetime=2006-01-02"`
	FollowUpNote string `json:"follow_up_note" form:"follow_up_note" label:"Catatan tindak lanjut" input:"textarea"`
}

func newApplicationPayload(a *model.Application) any {
	if a == nil {
		return &ApplicationPayload{
			Status:       "submitted",
			ResultStatus: "pending",
			DateApplied:  time.Now().Format(time.DateOnly),
		}
	}
	return &ApplicationPayload{
		CompanyName: a.CompanyName, CompanyURL: a.CompanyURL, Position: a.Position,
		JobSource: a.JobSource, JobType: a.JobType, WorkSystem: a.WorkSystem,
		SalaryMin: a.SalaryMin, SalaryMax: a.SalaryMax, Location: a.Location,
		DateApplied: dateOnly(a.DateApplied), Status: a.Status, ResultStatus: a.ResultStatus,
		ContactName: a.ContactName, ContactEmail: a.ContactEmail, ContactPhone: a.ContactPhone,
		JobURL: a.JobURL, Notes: a.Notes, FollowUpDate: dateOnly(a.FollowUpDate), FollowUpNote: a.FollowUpNote,
	}
}

// CVPayload is the CV form. Nested education and experience sections are
// carried over unchanged on update; skills are edited one per line.
type CVPayload struct {
	TemplateID  string               `json:"template_id" form:"template_id" label:"Template" input:"select" options:"cv_templates" validate:"required"`
	Name        string               `json:"name" form:"name" label:"Nama lengkap" validate:"required,max=150"`
	Headline    string               `json:"headline" form:"headline" label:"Headline" validate:"required,max=200"`
	Email       string               `json:"email" form:"email" label:"Email" input:"email" validate:"required,email"`
	Phone       string               `json:"phone" form:"phone" label:"Telepon" validate:"required,max=30"`
	Address     string               `json:"address" form:"address" label:"Alamat" input:"textarea"`
	About       string               `json:"about" form:"about" label:"Tentang saya" input:"textarea"`
	Photo       string               `json:"photo" form:"photo" label:"Foto" input:"image"`
	Language    string               `json:"language" form:"language" label:"Bahasa" input:"select" options:"language" validate:"required,oneof=id en"`
	Slug        string               `json:"slug" form:"slug" label:"Slug publik" validate:"omitempty,slug,max=100"`
	Visibility  string               `json:"visibility" form:"visibility" label:"Visibilitas" input:"select" options:"visibility" validate:"required,oneof=private public"`
	Skills      form.Lines           `json:"-" form:"skills" label:"Keahlian" input:"lines" help:"Satu keahlian per baris" validate:"max=50"`
	Educations  []model.CVEducation  `json:"educations" form:"-"`
	Experiences []model.CVExperience `json:"experiences" form:"-"`
	Links       []model.CVSocialLink `json:"social_links" form:"-"`

	levels map[string]string
}

func (p CVPayload) MarshalJSON() ([]byte, error) {
	type alias CVPayload
	skills := make([]model.CVSkill, 0, len(p.Skills))
	for _, s := range p.Skills {
		skills = append(skills, model.CVSkill{Name: s, Level: p.levels[s]})
	}
	return json.Marshal(struct {
		alias
		Skills []model.CVSkill `json:"skills"`
	}{alias(p), skills})
}

func newCVPayload(c *model.CV) any {
	if c == nil {
		return &CVPayload{Language: "id", Visibility: "private"}
	}
	p := &CVPayload{
		TemplateID: c.TemplateID, Name: c.Name, Headline: c.Headline, Email: c.Email,
		Phone: c.Phone, Address: c.Address, About: c.About, Photo: c.Photo,
		Language: c.Language, Slug: c.Slug, Visibility: c.Visibility,
		Educations: c.Educations, Experiences: c.Experiences, Links: c.Links,
		levels: make(map[string]string, len(c.Skills)),
	}
	for _, s := range c.Skills {
		p.Skills = append(p.Skills, s.Name)
		p.levels[s.Name] = s.Level
	}
	return p
}

// LetterPayload is the application letter form.
type LetterPayload struct {
	TemplateID       string `json:"template_id" form:"template_id" label:"Template" input:"select" options:"letter_templates" validate:"required"`
	Language         string `json:"language" form:"language" label:"Bahasa" input:"select" options:"language" validate:"required,oneof=id en"`
	Name             string `json:"name" form:"name" label:"Nama lengkap" validate:"required,max=150"`
	BirthPlaceDate   string `json:"birth_place_date" form:"birth_place_date" label:"Tempat, tanggal lahir" validate:"required,max=150"`
	Gender           string `json:"gender" form:"gender" label:"Jenis kelamin" input:"select" options:"gender" validate:"required,oneof=male female"`
	MaritalStatus    string `json:"marital_status" form:"marital_status" label:"Status pernikahan" input:"select" options:"marital_status" validate:"required,oneof=single married widowed"`
	Education        string `json:"education" form:"education" label:"Pendidikan" validate:"required,max=150"`
	Phone            string `json:"phone" form:"phone" label:"Telepon" validate:"required,max=30"`
	Email            string `json:"email" form:"email" label:"Email" input:"email" validate:"required,email"`
	Address          string `json:"address" form:"address" label:"Alamat" input:"textarea" validate:"required"`
	SubjectLine      string `json:"subject" form:"subject" label:"Perihal" validate:"required,max=200"`
	ApplicantCity    string `json:"applicant_city" form:"applicant_city" label:"Kota pelamar" validate:"required,max=100"`
	ApplicationDate  string `json:"application_date" form:"application_date" label:"Tanggal surat" input:"date" validate:"required,datetime=2006-01-02"`
	ReceiverTitle    string `json:"receiver_title" form:"receiver_title" label:"Ditujukan kepada" validate:"required,max=150"`
	CompanyName      string `json:"company_name" form:"company_name" label:"Perusahaan" validate:"required,max=150"`
	CompanyCity      string `json:"company_city" form:"company_city" label:"Kota perusahaan" validate:"max=100"`
	CompanyAddress   string `json:"company_address" form:"company_address" label:"Alamat perusahaan" input:"textarea"`
	OpeningParagraph string `json:"opening_paragraph" form:"opening_paragraph" label:"Paragraf pembuka" input:"textarea" validate:"required"`
	BodyParagraph    string `json:"body_paragraph" form:"body_paragraph" label:"Isi surat" input:"textarea" validate:"required"`
	AttachmentsText  string `json:"attachments" form:"attachments" label:"Lampiran" input:"textarea"`
	ClosingParagraph string `json:"closing_paragraph" form:"closing_paragraph" label:"Paragraf penutup" input:"textarea" validate:"required"`
	Signature        string `json:"signature" form:"signature" label:"Tanda tangan" input:"image"`
}

func newLetterPayload(l *model.ApplicationLetter) any {
	if l == nil {
		return &LetterPayload{Language: "id", ApplicationDate: time.Now().Format(time.DateOnly)}
	}
	return &LetterPayload{
		TemplateID: l.TemplateID, Language: l.Language, Name: l.Name, BirthPlaceDate: l.BirthPlaceDate,
		Gender: l.Gender, MaritalStatus: l.MaritalStatus, Education: l.Education, Phone: l.Phone,
		Email: l.Email, Address: l.Address, SubjectLine: l.SubjectLine, ApplicantCity: l.ApplicantCity,
		ApplicationDate: dateOnly(l.ApplicationDate), ReceiverTitle: l.ReceiverTitle,
		CompanyName: l.CompanyName, CompanyCity: l.CompanyCity, CompanyAddress: l.CompanyAddress,
		OpeningParagraph: l.OpeningParagraph, BodyParagraph: l.BodyParagraph,
		AttachmentsText: l.AttachmentsText, ClosingParagraph: l.ClosingParagraph, Signature: l.Signature,
	}
}

// PortfolioPayload is the portfolio form. Media galleries are kept on update.
type PortfolioPayload struct {
	Title            string                 `json:"title" form:"title" label:"Judul" validate:"required,max=200"`
	Slug             string                 `json:"slug" form:"slug" label:"Slug" help:"Kosongkan untuk dibuat dari judul" validate:"required,slug,max=220"`
	ShortDescription string                 `json:"sort_description" form:"sort_description" label:"Ringkasan" input:"textarea" validate:"required,max=300"`
	Description      string                 `json:"description" form:"description" label:"Deskripsi" input:"richtext"`
	RoleTitle        string                 `json:"role_title" form:"role_title" label:"Peran" validate:"required,max=150"`
	ProjectType      string                 `json:"project_type" form:"project_type" label:"Jenis proyek" input:"select" options:"project_type" validate:"required,oneof=work freelance personal academic"`
	Industry         string                 `json:"industry" form:"industry" label:"Industri" validate:"max=100"`
	Month            int                    `json:"month" form:"month" label:"Bulan" input:"number" validate:"required,gte=1,lte=12"`
	Year             int                    `json:"year" form:"year" label:"Tahun" input:"number" validate:"required,gte=1900,lte=2100"`
	LiveURL          string                 `json:"live_url" form:"live_url" label:"Tautan demo" input:"url" validate:"omitempty,url"`
	RepoURL          string                 `json:"repo_url" form:"repo_url" label:"Tautan repositori" input:"url" validate:"omitempty,url"`
	Cover            string                 `json:"cover" form:"cover" label:"Sampul" input:"image"`
	Tools            form.Lines             `json:"-" form:"tools" label:"Tools" input:"lines" help:"Satu tool per baris" validate:"max=30"`
	Medias           []model.PortfolioMedia `json:"medias" form:"-"`
}

func (p *PortfolioPayload) Normalize() { slugFrom(&p.Slug, p.Title) }

func (p PortfolioPayload) MarshalJSON() ([]byte, error) {
	type alias PortfolioPayload
	tools := make([]model.PortfolioTool, 0, len(p.Tools))
	for _, t := range p.Tools {
		tools = append(tools, model.PortfolioTool{Name: t})
	}
	medias := p.Medias
	if medias == nil {
		medias = []model.PortfolioMedia{}
	}
	return json.Marshal(struct {
		alias
		Tools  []model.PortfolioTool  `json:"tools"`
		Medias []model.PortfolioMedia `json:"medias"`
	}{alias(p), tools, medias})
}

func newPortfolioPayload(p *model.Portfolio) any {
	if p == nil {
		now := time.Now()
		return &PortfolioPayload{ProjectType: "work", Month: int(now.Month()), Year: now.Year()}
	}
	out := &PortfolioPayload{
		Title: p.Title, Slug: p.Slug, ShortDescription: p.ShortDescription, Description: p.Description,
		RoleTitle: p.RoleTitle, ProjectType: p.ProjectType, Industry: p.Industry, Month: p.Month,
		Year: p.Year, LiveURL: p.LiveURL, RepoURL: p.RepoURL, Cover: p.Cover, Medias: p.Medias,
	}
	for _, t := range p.Tools {
		out.Tools = append(out.Tools, t.Name)
	}
	return out
}

// DocumentPayload registers an uploaded personal document.
type DocumentPayload struct {
	Type             string `json:"type" form:"type" label:"Jenis dokumen" input:"select" options:"document_type" validate:"required,oneof=ktp npwp ijazah transkrip sertifikat skck kartu_keluarga surat_keterangan_sehat cv portfolio other"`
	Path             string `json:"path" form:"path" label:"Berkas" input:"file" help:"PDF, DOC, DOCX atau gambar" validate:"required"`
	OriginalFilename string `json:"original_filename" form:"-"`
	MimeType         string `json:"mime_type" form:"-"`
	Size             int64  `json:"size" form:"-"`
}

func (p *DocumentPayload) ReceiveUpload(field string, res *upload.Result) {
	if field != "path" {
		return
	}
	p.OriginalFilename = res.Filename
	p.MimeType = res.ContentType
	p.Size = res.Size
}

func newDocumentPayload(d *model.Document) any {
	if d == nil {
		return &DocumentPayload{}
	}
	return &DocumentPayload{Type: d.Type, Path: d.Path, OriginalFilename: d.OriginalFilename, MimeType: d.MimeType, Size: d.Size}
}

// BlogPayload is the admin blog editor.
type BlogPayload struct {
	Title         string     `json:"title" form:"title" label:"Judul" validate:"required,max=200"`
	Slug          string     `json:"slug" form:"slug" label:"Slug" help:"Kosongkan untuk dibuat dari judul" validate:"required,slug,max=220"`
	Excerpt       string     `json:"excerpt" form:"excerpt" label:"Ringkasan" input:"textarea" validate:"max=500"`
	Content       string     `json:"content" form:"content" label:"Konten" input:"richtext" validate:"required"`
	FeaturedImage string     `json:"featured_image" form:"featured_image" label:"Gambar utama" input:"image"`
	CategoryID    string     `json:"category_id" form:"category_id" label:"Kategori" input:"select" options:"blog_categories" validate:"required"`
	Status        string     `json:"status" form:"status" label:"Status" input:"select" options:"blog_status" validate:"required,oneof=draft published archived"`
	ReadTime      int        `json:"read_time" form:"read_time" label:"Waktu baca (menit)" input:"number" validate:"gte=0,lte=240"`
	Tags          form.Lines `json:"tags" form:"tags" label:"Tag" input:"lines" help:"Satu tag per baris atau pisahkan dengan koma" validate:"max=20"`
}

func (p *BlogPayload) Normalize() {
	slugFrom(&p.Slug, p.Title)
	if p.Tags == nil {
		p.Tags = form.Lines{}
	}
}

func newBlogPayload(b *model.Blog) any {
	if b == nil {
		return &BlogPayload{Status: "draft"}
	}
	p := &BlogPayload{
		Title: b.Title, Slug: b.Slug, Excerpt: b.Excerpt, Content: b.Content,
		FeaturedImage: b.FeaturedImage, CategoryID: b.CategoryID, Status: b.Status, ReadTime: b.ReadTime,
	}
	if p.CategoryID == "" && b.Category != nil {
		p.CategoryID = b.Category.ID
	}
	for _, t := range b.Tags {
		p.Tags = append(p.Tags, t.Name)
	}
	return p
}

// CompanyPayload is the admin company form.
type CompanyPayload struct {
	Name           string `json:"name" form:"name" label:"Nama perusahaan" validate:"required,max=150"`
	Slug           string `json:"slug" form:"slug" label:"Slug" help:"Kosongkan untuk dibuat dari nama" validate:"required,slug,max=170"`
	Description    string `json:"description" form:"description" label:"Deskripsi" input:"richtext"`
	Logo           string `json:"logo" form:"logo" label:"Logo" input:"image"`
	EmployeeSize   string `json:"employee_size" form:"employee_size" label:"Jumlah karyawan" input:"select" options:"employee_size" validate:"omitempty,oneof=one_to_ten eleven_to_fifty fifty_one_to_two_hundred two_hundred_one_to_five_hundred five_hundred_plus"`
	BusinessSector string `json:"business_sector" form:"business_sector" label:"Sektor usaha" validate:"max=100"`
	WebsiteURL     string `json:"website_url" form:"website_url" label:"Situs web" input:"url" validate:"omitempty,url"`
	Email          string `json:"email" form:"email" label:"Email" input:"email" validate:"omitempty,email"`
	Phone          string `json:"phone" form:"phone" label:"Telepon" validate:"max=30"`
	IsVerified     bool   `json:"is_verified" form:"is_verified" label:"Terverifikasi" input:"checkbox"`
}

func (p *CompanyPayload) Normalize() { slugFrom(&p.Slug, p.Name) }

func newCompanyPayload(c *model.Company) any {
	if c == nil {
		return &CompanyPayload{}
	}
	return &CompanyPayload{
		Name: c.Name, Slug: c.Slug, Description: c.Description, Logo: c.Logo,
		EmployeeSize: c.EmployeeSize, BusinessSector: c.BusinessSector, WebsiteURL: c.WebsiteURL,
		Email: c.Email, Phone: c.Phone, IsVerified: c.IsVerified,
	}
}

// UserCreatePayload requires a password; UserUpdatePayload keeps the current
// one when left blank.
type UserCreatePayload struct {
	Name     string `json:"name" form:"name" label:"Nama" validate:"required,max=150"`
	Username string `json:"username" form:"username" label:"Username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" form:"email" label:"Email" input:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" label:"Telepon" validate:"max=30"`
	Role     string `json:"role" form:"role" label:"Peran" input:"select" options:"role" validate:"required,oneof=user admin"`
	Avatar   string `json:"avatar" form:"avatar" label:"Avatar" input:"image"`
	Password string `json:"password" form:"password" label:"Kata sandi" input:"password" validate:"required,min=8,max=72"`
}

type UserUpdatePayload struct {
	Name     string `json:"name" form:"name" label:"Nama" validate:"required,max=150"`
	Username string `json:"username" form:"username" label:"Username" validate:"required,min=3,max=50,alphanum"`
	Email    string `json:"email" form:"email" label:"Email" input:"email" validate:"required,email"`
	Phone    string `json:"phone" form:"phone" label:"Telepon" validate:"max=30"`
	Role     string `json:"role" form:"role" label:"Peran" input:"select" options:"role" validate:"required,oneof=user admin"`
	Avatar   string `json:"avatar" form:"avatar" label:"Avatar" input:"image"`
	Password string `json:"password,omitempty" form:"password" label:"Kata sandi baru" input:"password" help:"Kosongkan jika tidak diganti" validate:"omitempty,min=8,max=72"`
}

func newUserPayload(u *model.User) any {
	if u == nil {
		return &UserCreatePayload{Role: "user"}
	}
	return &UserUpdatePayload{Name: u.Name, Username: u.Username, Email: u.Email, Phone: u.Phone, Role: u.Role, Avatar: u.Avatar}
}
