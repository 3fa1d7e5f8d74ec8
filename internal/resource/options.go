package resource

import (
	"karirkit/internal/form"
	"karirkit/internal/listing"
)

func opts(pairs ...string) []listing.Option {
	out := make([]listing.Option, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, listing.Option{Value: pairs[i], Label: pairs[i+1]})
	}
	return out
}

// Static option sets. Their values are the enumerations the API accepts and
// must stay in sync with the oneof rules on the payloads.
var (
	JobTypes = opts(
		"full_time", "Penuh waktu",
		"part_time", "Paruh waktu",
		"contract", "Kontrak",
		"internship", "Magang",
		"freelance", "Lepas",
	)
	WorkSystems = opts(
		"onsite", "Di kantor",
		"remote", "Jarak jauh",
		"hybrid", "Hybrid",
	)
	EducationLevels = opts(
		"sma", "SMA/SMK",
		"d3", "D3",
		"s1", "S1",
		"s2", "S2",
		"s3", "S3",
		"any", "Semua jenjang",
	)
	JobStatuses = opts(
		"draft", "Draft",
		"published", "Tayang",
		"closed", "Ditutup",
		"archived", "Diarsipkan",
	)
	ApplicationStatuses = opts(
		"draft", "Draft",
		"submitted", "Terkirim",
		"administration_screening", "Seleksi administrasi",
		"hr_screening", "Screening HR",
		"online_test", "Tes online",
		"psychological_test", "Psikotes",
		"technical_test", "Tes teknis",
		"hr_interview", "Interview HR",
		"user_interview", "Interview user",
		"final_interview", "Interview akhir",
		"medical_checkup", "Medical check-up",
		"offering", "Penawaran",
		"accepted", "Diterima",
		"rejected", "Ditolak",
	)
	ResultStatuses = opts(
		"pending", "Menunggu",
		"passed", "Lolos",
		"failed", "Gagal",
	)
	JobSources = opts(
		"linkedin", "LinkedIn",
		"jobstreet", "JobStreet",
		"glints", "Glints",
		"kalibrr", "Kalibrr",
		"company_website", "Situs perusahaan",
		"referral", "Referensi",
		"karirkit", "KarirKit",
		"other", "Lainnya",
	)
	Languages = opts(
		"id", "Bahasa Indonesia",
		"en", "English",
	)
	Visibilities = opts(
		"private", "Pribadi",
		"public", "Publik",
	)
	Genders = opts(
		"male", "Laki-laki",
		"female", "Perempuan",
	)
	MaritalStatuses = opts(
		"single", "Belum menikah",
		"married", "Menikah",
		"widowed", "Cerai",
	)
	ProjectTypes = opts(
		"work", "Pekerjaan",
		"freelance", "Freelance",
		"personal", "Pribadi",
		"academic", "Akademik",
	)
	BlogStatuses = opts(
		"draft", "Draft",
		"published", "Terbit",
		"archived", "Diarsipkan",
	)
	Roles = opts(
		"user", "Pengguna",
		"admin", "Admin",
	)
	EmployeeSizes = opts(
		"one_to_ten", "1-10",
		"eleven_to_fifty", "11-50",
		"fifty_one_to_two_hundred", "51-200",
		"two_hundred_one_to_five_hundred", "201-500",
		"five_hundred_plus", "500+",
	)
	DocumentTypes = opts(
		"ktp", "KTP",
		"npwp", "NPWP",
		"ijazah", "Ijazah",
		"transkrip", "Transkrip nilai",
		"sertifikat", "Sertifikat",
		"skck", "SKCK",
		"kartu_keluarga", "Kartu keluarga",
		"surat_keterangan_sehat", "Surat keterangan sehat",
		"cv", "CV",
		"portfolio", "Portofolio",
		"other", "Lainnya",
	)
	Verified = opts(
		"true", "Terverifikasi",
		"false", "Belum terverifikasi",
	)
)

// Label returns the label of value in options, or value itself.
func Label(options []listing.Option, value string) string {
	for _, o := range options {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}

// Static is the form.Options map of the fixed enumerations.
func Static() form.Options {
	return form.Options{
		"job_type":           JobTypes,
		"work_system":        WorkSystems,
		"education_level":    EducationLevels,
		"job_status":         JobStatuses,
		"application_status": ApplicationStatuses,
		"result_status":      ResultStatuses,
		"job_source":         JobSources,
		"language":           Languages,
		"visibility":         Visibilities,
		"gender":             Genders,
		"marital_status":     MaritalStatuses,
		"project_type":       ProjectTypes,
		"blog_status":        BlogStatuses,
		"role":               Roles,
		"employee_size":      EmployeeSizes,
		"document_type":      DocumentTypes,
	}
}
