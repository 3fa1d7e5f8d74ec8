package resource

import (
	"strconv"

	"karirkit/internal/listing"
	"karirkit/internal/model"
	"karirkit/internal/view"
)

// Jobs is the public job board: browse only.
func Jobs() Descriptor[model.Job] {
	return Descriptor[model.Job]{
		Key: "jobs", Title: "Lowongan", Singular: "lowongan", Group: GroupSeeker,
		WebPath: "/jobs", APIPath: "/jobs",
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "title", Label: "Posisi", Sortable: true, Locked: true},
				{Key: "company", Label: "Perusahaan"},
				{Key: "location", Label: "Lokasi", Sortable: true},
				{Key: "job_type", Label: "Tipe"},
				{Key: "work_system", Label: "Sistem kerja"},
				{Key: "salary", Label: "Gaji", HiddenByDefault: true},
				{Key: "created_at", Label: "Diposting", Sortable: true},
			},
			Filters: []listing.Filter{
				{Key: "job_type", Label: "Tipe", Options: JobTypes},
				{Key: "work_system", Label: "Sistem kerja", Options: WorkSystems},
				{Key: "education_level", Label: "Pendidikan", Options: EducationLevels},
			},
			DefaultSort: "created_at", DefaultOrder: listing.OrderDesc,
		},
		Cells:  jobCells,
		Label:  func(j model.Job) string { return j.Title },
		Detail: jobDetail,
	}
}

// AdminJobs manages every job posting.
func AdminJobs() Descriptor[model.Job] {
	d := Jobs()
	d.Key, d.Title, d.Group = "admin-jobs", "Kelola lowongan", GroupAdmin
	d.WebPath, d.APIPath = "/admin/jobs", "/admin/jobs"
	d.AdminOnly, d.AllowCreate, d.AllowEdit, d.AllowDelete = true, true, true, true
	d.List.Columns = append(d.List.Columns, listing.Column{Key: "status", Label: "Status", Sortable: true})
	d.List.Filters = append(d.List.Filters, listing.Filter{Key: "status", Label: "Status", Options: JobStatuses})
	d.DynamicFilters = []DynamicFilter{{Key: "company_id", Label: "Perusahaan", Lookup: LookupCompanies}}
	d.Lookups = []string{LookupCompanies, LookupJobRoles}
	d.Invalidates = []string{"jobs"}
	d.NewPayload = func(j *model.Job) any { return newJobPayload(j) }
	return d
}

func jobCells(j model.Job) map[string]view.Cell {
	salary := "-"
	if j.IsSalaryVisible {
		salary = view.SalaryRange(j.SalaryMin, j.SalaryMax)
	}
	return map[string]view.Cell{
		"title":       view.Text(j.Title),
		"company":     view.Text(j.CompanyName()),
		"location":    view.Text(j.Location),
		"job_type":    view.Badge(Label(JobTypes, j.JobType)),
		"work_system": view.Badge(Label(WorkSystems, j.WorkSystem)),
		"salary":      view.Text(salary),
		"status":      view.Badge(Label(JobStatuses, j.Status)),
		"created_at":  view.Date(j.CreatedAt),
	}
}

func jobDetail(j model.Job) []view.DetailRow {
	var logo string
	if j.Company != nil {
		logo = j.Company.Logo
	}
	rows := []view.DetailRow{
		view.Detail("Logo", view.Image(logo)),
		view.Detail("Perusahaan", view.Text(j.CompanyName())),
		view.Detail("Peran", view.Text(j.RoleName())),
		view.Detail("Lokasi", view.Text(j.Location)),
		view.Detail("Tipe", view.Badge(Label(JobTypes, j.JobType))),
		view.Detail("Sistem kerja", view.Badge(Label(WorkSystems, j.WorkSystem))),
		view.Detail("Pendidikan minimal", view.Text(Label(EducationLevels, j.EducationLevel))),
		view.Detail("Pengalaman minimal", view.Text(strconv.Itoa(j.MinYearsOfExperience)+" tahun")),
	}
	if j.IsSalaryVisible {
		rows = append(rows, view.Detail("Gaji", view.Text(view.SalaryRange(j.SalaryMin, j.SalaryMax))))
	}
	return append(rows,
		view.Detail("Deskripsi", view.Text(j.Description)),
		view.Detail("Persyaratan", view.Text(j.Requirements)),
		view.Detail("Lamar di", view.Link(j.ExternalURL, j.ExternalURL)),
		view.Detail("Email kontak", view.Text(j.ContactEmail)),
		view.Detail("Status", view.Badge(Label(JobStatuses, j.Status))),
		view.Detail("Kedaluwarsa", view.Date(j.ExpirationDate)),
		view.Detail("Diposting", view.Date(j.CreatedAt)),
	)
}

// Applications is the personal application tracker.
func Applications() Descriptor[model.Application] {
	return Descriptor[model.Application]{
		Key: "applications", Title: "Lamaran", Singular: "lamaran", Group: GroupSeeker,
		WebPath: "/applications", APIPath: "/applications",
		AllowCreate: true, AllowEdit: true, AllowDelete: true,
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "company_name", Label: "Perusahaan", Sortable: true, Locked: true},
				{Key: "position", Label: "Posisi", Sortable: true},
				{Key: "job_source", Label: "Sumber", HiddenByDefault: true},
				{Key: "status", Label: "Status", Sortable: true},
				{Key: "result_status", Label: "Hasil"},
				{Key: "salary", Label: "Gaji", HiddenByDefault: true},
				{Key: "date_applied", Label: "Tanggal melamar", Sortable: true},
				{Key: "follow_up_date", Label: "Tindak lanjut", Sortable: true, HiddenByDefault: true},
			},
			Filters: []listing.Filter{
				{Key: "status", Label: "Status", Options: ApplicationStatuses},
				{Key: "result_status", Label: "Hasil", Options: ResultStatuses},
				{Key: "job_type", Label: "Tipe", Options: JobTypes},
				{Key: "work_system", Label: "Sistem kerja", Options: WorkSystems},
			},
			DefaultSort: "date_applied", DefaultOrder: listing.OrderDesc,
		},
		Cells: func(a model.Application) map[string]view.Cell {
			return map[string]view.Cell{
				"company_name":   view.Text(a.CompanyName),
				"position":       view.Text(a.Position),
				"job_source":     view.Text(Label(JobSources, a.JobSource)),
				"status":         view.Badge(Label(ApplicationStatuses, a.Status)),
				"result_status":  view.Badge(Label(ResultStatuses, a.ResultStatus)),
				"salary":         view.Text(view.SalaryRange(a.SalaryMin, a.SalaryMax)),
				"date_applied":   view.Date(a.DateApplied),
				"follow_up_date": view.Date(a.FollowUpDate),
			}
		},
		Label: func(a model.Application) string { return a.Position + " · " + a.CompanyName },
		Detail: func(a model.Application) []view.DetailRow {
			return []view.DetailRow{
				view.Detail("Perusahaan", view.Text(a.CompanyName)),
				view.Detail("Situs perusahaan", view.Link(a.CompanyURL, a.CompanyURL)),
				view.Detail("Posisi", view.Text(a.Position)),
				view.Detail("Sumber", view.Text(Label(JobSources, a.JobSource))),
				view.Detail("Tipe", view.Badge(Label(JobTypes, a.JobType))),
				view.Detail("Sistem kerja", view.Badge(Label(WorkSystems, a.WorkSystem))),
				view.Detail("Gaji", view.Text(view.SalaryRange(a.SalaryMin, a.SalaryMax))),
				view.Detail("Lokasi", view.Text(a.Location)),
				view.Detail("Tanggal melamar", view.Date(a.DateApplied)),
				view.Detail("Status", view.Badge(Label(ApplicationStatuses, a.Status))),
				view.Detail("Hasil", view.Badge(Label(ResultStatuses, a.ResultStatus))),
				view.Detail("Kontak", view.Text(a.ContactName)),
				view.Detail("Email kontak", view.Text(a.ContactEmail)),
				view.Detail("Telepon kontak", view.Text(a.ContactPhone)),
				view.Detail("Tautan lowongan", view.Link(a.JobURL, a.JobURL)),
				view.Detail("Catatan", view.Text(a.Notes)),
				view.Detail("Tindak lanjut", view.Date(a.FollowUpDate)),
				view.Detail("Catatan tindak lanjut", view.Text(a.FollowUpNote)),
			}
		},
		NewPayload: func(a *model.Application) any { return newApplicationPayload(a) },
	}
}

// CVs are the user's curricula vitae.
func CVs() Descriptor[model.CV] {
	return Descriptor[model.CV]{
		Key: "cvs", Title: "CV", Singular: "CV", Group: GroupSeeker,
		WebPath: "/cvs", APIPath: "/cvs",
		AllowCreate: true, AllowEdit: true, AllowDelete: true,
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "name", Label: "Nama", Sortable: true, Locked: true},
				{Key: "headline", Label: "Headline"},
				{Key: "language", Label: "Bahasa"},
				{Key: "visibility", Label: "Visibilitas"},
				{Key: "views", Label: "Dilihat", Sortable: true, HiddenByDefault: true},
				{Key: "updated_at", Label: "Diperbarui", Sortable: true},
			},
			Filters: []listing.Filter{
				{Key: "language", Label: "Bahasa", Options: Languages},
				{Key: "visibility", Label: "Visibilitas", Options: Visibilities},
			},
			DefaultSort: "updated_at", DefaultOrder: listing.OrderDesc,
		},
		DynamicFilters: []DynamicFilter{{Key: "template_id", Label: "Template", Lookup: LookupCVTemplates}},
		Lookups:        []string{LookupCVTemplates},
		Cells: func(c model.CV) map[string]view.Cell {
			return map[string]view.Cell{
				"name":       view.Text(c.Name),
				"headline":   view.Text(c.Headline),
				"language":   view.Badge(Label(Languages, c.Language)),
				"visibility": view.Badge(Label(Visibilities, c.Visibility)),
				"views":      view.Number(c.Views),
				"updated_at": view.Date(c.UpdatedAt),
			}
		},
		Label: func(c model.CV) string { return c.Name },
		Detail: func(c model.CV) []view.DetailRow {
			rows := []view.DetailRow{
				view.Detail("Foto", view.Image(c.Photo)),
				view.Detail("Nama", view.Text(c.Name)),
				view.Detail("Headline", view.Text(c.Headline)),
				view.Detail("Email", view.Text(c.Email)),
				view.Detail("Telepon", view.Text(c.Phone)),
				view.Detail("Alamat", view.Text(c.Address)),
				view.Detail("Tentang", view.Text(c.About)),
				view.Detail("Bahasa", view.Badge(Label(Languages, c.Language))),
				view.Detail("Visibilitas", view.Badge(Label(Visibilities, c.Visibility))),
			}
			for _, e := range c.Educations {
				rows = append(rows, view.Detail("Pendidikan", view.Text(e.Degree+" "+e.Major+", "+e.SchoolName)))
			}
			for _, e := range c.Experiences {
				rows = append(rows, view.Detail("Pengalaman", view.Text(e.JobTitle+" · "+e.CompanyName)))
			}
			for _, s := range c.Skills {
				rows = append(rows, view.Detail("Keahlian", view.Text(s.Name)))
			}
			return rows
		},
		NewPayload: func(c *model.CV) any { return newCVPayload(c) },
	}
}

// ApplicationLetters are cover letters.
func ApplicationLetters() Descriptor[model.ApplicationLetter] {
	return Descriptor[model.ApplicationLetter]{
		Key: "application-letters", Title: "Surat lamaran", Singular: "surat lamaran", Group: GroupSeeker,
		WebPath: "/application-letters", APIPath: "/application-letters",
		AllowCreate: true, AllowEdit: true, AllowDelete: true,
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "subject", Label: "Perihal", Sortable: true, Locked: true},
				{Key: "company_name", Label: "Perusahaan", Sortable: true},
				{Key: "language", Label: "Bahasa"},
				{Key: "application_date", Label: "Tanggal surat", Sortable: true},
				{Key: "updated_at", Label: "Diperbarui", Sortable: true, HiddenByDefault: true},
			},
			Filters: []listing.Filter{
				{Key: "language", Label: "Bahasa", Options: Languages},
			},
			DefaultSort: "updated_at", DefaultOrder: listing.OrderDesc,
		},
		DynamicFilters: []DynamicFilter{{Key: "template_id", Label: "Template", Lookup: LookupLetterTemplates}},
		Lookups:        []string{LookupLetterTemplates},
		Cells: func(l model.ApplicationLetter) map[string]view.Cell {
			return map[string]view.Cell{
				"subject":          view.Text(l.SubjectLine),
				"company_name":     view.Text(l.CompanyName),
				"language":         view.Badge(Label(Languages, l.Language)),
				"application_date": view.Date(l.ApplicationDate),
				"updated_at":       view.Date(l.UpdatedAt),
			}
		},
		Label: func(l model.ApplicationLetter) string { return l.SubjectLine },
		Detail: func(l model.ApplicationLetter) []view.DetailRow {
			return []view.DetailRow{
				view.Detail("Perihal", view.Text(l.SubjectLine)),
				view.Detail("Nama", view.Text(l.Name)),
				view.Detail("Perusahaan", view.Text(l.CompanyName)),
				view.Detail("Ditujukan kepada", view.Text(l.ReceiverTitle)),
				view.Detail("Kota", view.Text(l.ApplicantCity)),
				view.Detail("Tanggal surat", view.Date(l.ApplicationDate)),
				view.Detail("Pembuka", view.Text(l.OpeningParagraph)),
				view.Detail("Isi", view.Text(l.BodyParagraph)),
				view.Detail("Lampiran", view.Text(l.AttachmentsText)),
				view.Detail("Penutup", view.Text(l.ClosingParagraph)),
				view.Detail("Tanda tangan", view.Image(l.Signature)),
			}
		},
		NewPayload: func(l *model.ApplicationLetter) any { return newLetterPayload(l) },
	}
}

// Portfolios are showcased projects.
func Portfolios() Descriptor[model.Portfolio] {
	return Descriptor[model.Portfolio]{
		Key: "portfolios", Title: "Portofolio", Singular: "portofolio", Group: GroupSeeker,
		WebPath: "/portfolios", APIPath: "/portfolios",
		AllowCreate: true, AllowEdit: true, AllowDelete: true,
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "cover", Label: "Sampul"},
				{Key: "title", Label: "Judul", Sortable: true, Locked: true},
				{Key: "role_title", Label: "Peran"},
				{Key: "project_type", Label: "Jenis"},
				{Key: "industry", Label: "Industri", HiddenByDefault: true},
				{Key: "period", Label: "Periode"},
				{Key: "created_at", Label: "Dibuat", Sortable: true, HiddenByDefault: true},
			},
			Filters: []listing.Filter{
				{Key: "project_type", Label: "Jenis", Options: ProjectTypes},
			},
			DefaultSort: "created_at", DefaultOrder: listing.OrderDesc,
		},
		Cells: func(p model.Portfolio) map[string]view.Cell {
			return map[string]view.Cell{
				"cover":        view.Image(p.Cover),
				"title":        view.Text(p.Title),
				"role_title":   view.Text(p.RoleTitle),
				"project_type": view.Badge(Label(ProjectTypes, p.ProjectType)),
				"industry":     view.Text(p.Industry),
				"period":       view.Text(period(p.Month, p.Year)),
				"created_at":   view.Date(p.CreatedAt),
			}
		},
		Label: func(p model.Portfolio) string { return p.Title },
		Detail: func(p model.Portfolio) []view.DetailRow {
			rows := []view.DetailRow{
				view.Detail("Sampul", view.Image(p.Cover)),
				view.Detail("Judul", view.Text(p.Title)),
				view.Detail("Ringkasan", view.Text(p.ShortDescription)),
				view.Detail("Deskripsi", view.Text(p.Description)),
				view.Detail("Peran", view.Text(p.RoleTitle)),
				view.Detail("Jenis", view.Badge(Label(ProjectTypes, p.ProjectType))),
				view.Detail("Industri", view.Text(p.Industry)),
				view.Detail("Periode", view.Text(period(p.Month, p.Year))),
				view.Detail("Demo", view.Link(p.LiveURL, p.LiveURL)),
				view.Detail("Repositori", view.Link(p.RepoURL, p.RepoURL)),
			}
			for _, t := range p.Tools {
				rows = append(rows, view.Detail("Tool", view.Badge(t.Name)))
			}
			for _, m := range p.Medias {
				rows = append(rows, view.Detail("Media", view.Image(m.Path)))
			}
			return rows
		},
		NewPayload: func(p *model.Portfolio) any { return newPortfolioPayload(p) },
	}
}

func period(month, year int) string {
	if year == 0 {
		return "-"
	}
	if month < 1 || month > 12 {
		return strconv.Itoa(year)
	}
	return strconv.Itoa(month) + "/" + strconv.Itoa(year)
}

// Documents are personal files. They are created by uploading and cannot be edited.
func Documents() Descriptor[model.Document] {
	return Descriptor[model.Document]{
		Key: "documents", Title: "Dokumen", Singular: "dokumen", Group: GroupSeeker,
		WebPath: "/documents", APIPath: "/documents",
		AllowCreate: true, AllowDelete: true,
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "original_filename", Label: "Nama berkas", Sortable: true, Locked: true},
				{Key: "type", Label: "Jenis"},
				{Key: "mime_type", Label: "Format", HiddenByDefault: true},
				{Key: "size", Label: "Ukuran", Sortable: true},
				{Key: "created_at", Label: "Diunggah", Sortable: true},
			},
			Filters: []listing.Filter{
				{Key: "type", Label: "Jenis", Options: DocumentTypes},
			},
			DefaultSort: "created_at", DefaultOrder: listing.OrderDesc,
		},
		Cells: func(d model.Document) map[string]view.Cell {
			return map[string]view.Cell{
				"original_filename": view.Link(d.OriginalFilename, d.Path),
				"type":              view.Badge(Label(DocumentTypes, d.Type)),
				"mime_type":         view.Text(d.MimeType),
				"size":              view.Text(humanSize(d.Size)),
				"created_at":        view.Date(d.CreatedAt),
			}
		},
		Label: func(d model.Document) string { return d.OriginalFilename },
		Detail: func(d model.Document) []view.DetailRow {
			return []view.DetailRow{
				view.Detail("Nama berkas", view.Link(d.OriginalFilename, d.Path)),
				view.Detail("Jenis", view.Badge(Label(DocumentTypes, d.Type))),
				view.Detail("Format", view.Text(d.MimeType)),
				view.Detail("Ukuran", view.Text(humanSize(d.Size))),
				view.Detail("Diunggah", view.Date(d.CreatedAt)),
			}
		},
		NewPayload: func(d *model.Document) any { return newDocumentPayload(d) },
	}
}

func humanSize(n int64) string {
	const unit = 1024
	switch {
	case n < unit:
		return strconv.FormatInt(n, 10) + " B"
	case n < unit*unit:
		return strconv.FormatFloat(float64(n)/unit, 'f', 1, 64) + " KB"
	}
	return strconv.FormatFloat(float64(n)/(unit*unit), 'f', 1, 64) + " MB"
}

// Blogs is the admin blog editor.
func Blogs() Descriptor[model.Blog] {
	return Descriptor[model.Blog]{
		Key: "blogs", Title: "Blog", Singular: "artikel", Group: GroupAdmin,
		WebPath: "/admin/blogs", APIPath: "/admin/blogs",
		AdminOnly: true, AllowCreate: true, AllowEdit: true, AllowDelete: true,
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "featured_image", Label: "Gambar"},
				{Key: "title", Label: "Judul", Sortable: true, Locked: true},
				{Key: "category", Label: "Kategori"},
				{Key: "author", Label: "Penulis", HiddenByDefault: true},
				{Key: "status", Label: "Status", Sortable: true},
				{Key: "views_count", Label: "Dilihat", Sortable: true, HiddenByDefault: true},
				{Key: "published_at", Label: "Terbit", Sortable: true},
			},
			Filters: []listing.Filter{
				{Key: "status", Label: "Status", Options: BlogStatuses},
			},
			DefaultSort: "created_at", DefaultOrder: listing.OrderDesc,
		},
		DynamicFilters: []DynamicFilter{{Key: "category_id", Label: "Kategori", Lookup: LookupBlogCategories}},
		Lookups:        []string{LookupBlogCategories},
		Cells: func(b model.Blog) map[string]view.Cell {
			return map[string]view.Cell{
				"featured_image": view.Image(b.FeaturedImage),
				"title":          view.Text(b.Title),
				"category":       view.Badge(b.CategoryName()),
				"author":         view.Text(b.AuthorName()),
				"status":         view.Badge(Label(BlogStatuses, b.Status)),
				"views_count":    view.Number(b.ViewsCount),
				"published_at":   view.Date(b.PublishedAt),
			}
		},
		Label: func(b model.Blog) string { return b.Title },
		Detail: func(b model.Blog) []view.DetailRow {
			rows := []view.DetailRow{
				view.Detail("Gambar utama", view.Image(b.FeaturedImage)),
				view.Detail("Judul", view.Text(b.Title)),
				view.Detail("Slug", view.Text(b.Slug)),
				view.Detail("Kategori", view.Badge(b.CategoryName())),
				view.Detail("Penulis", view.Text(b.AuthorName())),
				view.Detail("Status", view.Badge(Label(BlogStatuses, b.Status))),
				view.Detail("Ringkasan", view.Text(b.Excerpt)),
				view.Detail("Waktu baca", view.Text(strconv.Itoa(b.ReadTime)+" menit")),
				view.Detail("Dilihat", view.Number(b.ViewsCount)),
				view.Detail("Terbit", view.Date(b.PublishedAt)),
			}
			for _, t := range b.Tags {
				rows = append(rows, view.Detail("Tag", view.Badge(t.Name)))
			}
			return rows
		},
		NewPayload: func(b *model.Blog) any { return newBlogPayload(b) },
	}
}

// Companies is the admin company directory.
func Companies() Descriptor[model.Company] {
	return Descriptor[model.Company]{
		Key: "companies", Title: "Perusahaan", Singular: "perusahaan", Group: GroupAdmin,
		WebPath: "/admin/companies", APIPath: "/admin/companies",
		AdminOnly: true, AllowCreate: true, AllowEdit: true, AllowDelete: true,
		Invalidates: []string{"jobs", "admin-jobs"},
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "logo", Label: "Logo"},
				{Key: "name", Label: "Nama", Sortable: true, Locked: true},
				{Key: "business_sector", Label: "Sektor"},
				{Key: "employee_size", Label: "Karyawan", HiddenByDefault: true},
				{Key: "job_count", Label: "Lowongan", Sortable: true},
				{Key: "is_verified", Label: "Terverifikasi"},
				{Key: "created_at", Label: "Dibuat", Sortable: true, HiddenByDefault: true},
			},
			Filters: []listing.Filter{
				{Key: "employee_size", Label: "Karyawan", Options: EmployeeSizes},
				{Key: "is_verified", Label: "Verifikasi", Options: Verified},
			},
			DefaultSort: "created_at", DefaultOrder: listing.OrderDesc,
		},
		Cells: func(c model.Company) map[string]view.Cell {
			return map[string]view.Cell{
				"logo":            view.Image(c.Logo),
				"name":            view.Text(c.Name),
				"business_sector": view.Text(c.BusinessSector),
				"employee_size":   view.Text(Label(EmployeeSizes, c.EmployeeSize)),
				"job_count":       view.Number(c.JobCount),
				"is_verified":     view.Bool(c.IsVerified),
				"created_at":      view.Date(c.CreatedAt),
			}
		},
		Label: func(c model.Company) string { return c.Name },
		Detail: func(c model.Company) []view.DetailRow {
			return []view.DetailRow{
				view.Detail("Logo", view.Image(c.Logo)),
				view.Detail("Nama", view.Text(c.Name)),
				view.Detail("Slug", view.Text(c.Slug)),
				view.Detail("Deskripsi", view.Text(c.Description)),
				view.Detail("Sektor", view.Text(c.BusinessSector)),
				view.Detail("Karyawan", view.Text(Label(EmployeeSizes, c.EmployeeSize))),
				view.Detail("Situs web", view.Link(c.WebsiteURL, c.WebsiteURL)),
				view.Detail("Email", view.Text(c.Email)),
				view.Detail("Telepon", view.Text(c.Phone)),
				view.Detail("Terverifikasi", view.Bool(c.IsVerified)),
				view.Detail("Lowongan", view.Number(c.JobCount)),
			}
		},
		NewPayload: func(c *model.Company) any { return newCompanyPayload(c) },
	}
}

// Users is the admin account list.
func Users() Descriptor[model.User] {
	return Descriptor[model.User]{
		Key: "users", Title: "Pengguna", Singular: "pengguna", Group: GroupAdmin,
		WebPath: "/admin/users", APIPath: "/admin/users",
		AdminOnly: true, AllowCreate: true, AllowEdit: true, AllowDelete: true,
		List: listing.Schema{
			Columns: []listing.Column{
				{Key: "avatar", Label: "Avatar", HiddenByDefault: true},
				{Key: "name", Label: "Nama", Sortable: true, Locked: true},
				{Key: "username", Label: "Username", Sortable: true},
				{Key: "email", Label: "Email", Sortable: true},
				{Key: "phone", Label: "Telepon", HiddenByDefault: true},
				{Key: "role", Label: "Peran"},
				{Key: "created_at", Label: "Terdaftar", Sortable: true},
			},
			Filters: []listing.Filter{
				{Key: "role", Label: "Peran", Options: Roles},
			},
			DefaultSort: "created_at", DefaultOrder: listing.OrderDesc,
		},
		Cells: func(u model.User) map[string]view.Cell {
			return map[string]view.Cell{
				"avatar":     view.Image(u.Avatar),
				"name":       view.Text(u.Name),
				"username":   view.Text(u.Username),
				"email":      view.Text(u.Email),
				"phone":      view.Text(u.Phone),
				"role":       view.Badge(Label(Roles, u.Role)),
				"created_at": view.Date(u.CreatedAt),
			}
		},
		Label: func(u model.User) string { return u.Name },
		Detail: func(u model.User) []view.DetailRow {
			return []view.DetailRow{
				view.Detail("Avatar", view.Image(u.Avatar)),
				view.Detail("Nama", view.Text(u.Name)),
				view.Detail("Username", view.Text(u.Username)),
				view.Detail("Email", view.Text(u.Email)),
				view.Detail("Telepon", view.Text(u.Phone)),
				view.Detail("Peran", view.Badge(Label(Roles, u.Role))),
				view.Detail("Terdaftar", view.Date(u.CreatedAt)),
			}
		},
		NewPayload: func(u *model.User) any { return newUserPayload(u) },
	}
}
