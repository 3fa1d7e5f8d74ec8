package view

import (
	"bytes"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"karirkit/internal/form"
	"karirkit/internal/listing"
	"karirkit/internal/model"
)

var jakarta = time.FixedZone("WIB", 7*3600)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 1, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "1 Februari 2026", FormatDate(ts, jakarta))
	assert.Equal(t, "31 Januari 2026", FormatDate(&ts, time.UTC))
	assert.Equal(t, "17 Agustus 2025", FormatDate("2025-08-17", nil))
	assert.Equal(t, "5 Mei 2024", FormatDate("2024-05-05T10:00:00Z", time.UTC))
	assert.Equal(t, "-", FormatDate("not a date", nil))
	assert.Equal(t, "-", FormatDate((*time.Time)(nil), nil))
	assert.Equal(t, "-", FormatDate(time.Time{}, nil))
	assert.Equal(t, "-", FormatDate(42, nil))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatMoney(0))
	assert.Equal(t, "Rp 950", FormatMoney(950))
	assert.Equal(t, "Rp 5.000.000", FormatMoney(5_000_000))
	assert.Equal(t, "Rp 12.500", FormatMoney(12500))
	assert.Equal(t, "-Rp 1.000", FormatMoney(-1000))
}

func TestSalaryRange(t *testing.T) {
	assert.Equal(t, "-", SalaryRange(0, 0))
	assert.Equal(t, "Rp 5.000.000", SalaryRange(5_000_000, 0))
	assert.Equal(t, "Rp 5.000.000 - Rp 8.000.000", SalaryRange(5_000_000, 8_000_000))
	assert.Equal(t, "≤ Rp 8.000.000", SalaryRange(0, 8_000_000))
}

var testSchema = listing.Schema{
	Columns: []listing.Column{
		{Key: "title", Label: "Judul", Sortable: true, Locked: true},
		{Key: "status", Label: "Status"},
	},
	Filters: []listing.Filter{{Key: "status", Label: "Status", Options: []listing.Option{{Value: "draft", Label: "Draft"}}}},
}

func render(t *testing.T, name string, data any, layout ...string) string {
	t.Helper()
	e := New("https://cdn.karirkit.test", time.UTC)
	require.NoError(t, e.Load())
	var buf bytes.Buffer
	require.NoError(t, e.Render(&buf, name, data, layout...))
	return buf.String()
}

func listPage(n, perPage, page, total int) ListPage {
	st := listing.Parse(url.Values{"page": {"2"}, "q": {"go dev"}}, testSchema)
	rows := make([]Row, 0, n)
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		rows = append(rows, Row{ID: id, Label: "Row " + id, Cells: []Cell{Text("Row " + id), Badge("draft")}})
	}
	return ListPage{
		Resource: Resource{Key: "blogs", Title: "Blog", Singular: "blog", Path: "/admin/blogs", AllowCreate: true, AllowEdit: true, AllowDelete: true},
		State:    st,
		Columns:  testSchema.Columns,
		Rows:     rows,
		Pager:    listing.NewPager(model.Pagination{Page: page, PerPage: perPage, TotalItems: total, TotalPages: (total + perPage - 1) / perPage}),
		PerPage:  listing.PerPageOptions,
	}
}

func TestRender_List(t *testing.T) {
	html := render(t, "list", Page{Title: "Blog", Data: listPage(3, 10, 2, 23)})

	assert.Equal(t, 3, strings.Count(html, `<tr data-id=`))
	assert.Contains(t, html, `<span class="indicator">2 / 3</span>`)
	assert.Contains(t, html, `href="/admin/blogs?page=3&amp;q=go+dev"`)
	assert.Contains(t, html, `href="/admin/blogs?q=go+dev"`, "page 1 omits the page parameter")
	assert.Contains(t, html, `<a class="button primary" href="/admin/blogs/new">`)
	assert.Contains(t, html, `<span class="badge">draft</span>`)
	assert.Contains(t, html, `<span class="page current" aria-current="page">2</span>`)
	assert.Contains(t, html, "11-20 dari 23")
}

func TestRender_ListFirstAndLastPage(t *testing.T) {
	html := render(t, "list", Page{Data: listPage(2, 10, 1, 2)})

	assert.Contains(t, html, `<span class="prev disabled" aria-disabled="true">`)
	assert.Contains(t, html, `<span class="next disabled" aria-disabled="true">`)
	assert.Contains(t, html, `1 / 1`)
}

func TestRender_ListEmpty(t *testing.T) {
	html := render(t, "list", Page{Data: listPage(0, 10, 1, 0)})

	assert.Contains(t, html, "Tidak ada data yang cocok.")
	assert.Contains(t, html, `1 / 1`)
	assert.NotContains(t, html, `<tr data-id=`)
}

func TestRender_ListSelection(t *testing.T) {
	lp := listPage(2, 10, 1, 2)
	lp.Rows[0].Selected = true
	lp.Rows[1].Selected = true
	lp.Selected = []string{"a", "b"}
	lp.AllSelected = true

	html := render(t, "list", Page{Data: lp})

	assert.Contains(t, html, `2 dipilih`)
	assert.Contains(t, html, `name="select" value="none"`)
	assert.Equal(t, 2, strings.Count(html, `name="ids" value=`))
	assert.Equal(t, 2, strings.Count(html, `class="selected"`))
}

func TestRender_Form(t *testing.T) {
	type payload struct {
		Title string `form:"title" label:"Judul" validate:"required"`
		Logo  string `form:"logo" label:"Logo" input:"image"`
		Pass  string `form:"password" label:"Kata sandi" input:"password"`
	}
	p := payload{Logo: "/uploads/image/x.png", Pass: "secret"}
	errs := form.Errors{"title": {"Judul is required"}}

	html := render(t, "form", Page{Title: "Tambah", Data: FormPage{
		Resource: Resource{Path: "/admin/companies"},
		Action:   "/admin/companies",
		Cancel:   "/admin/companies",
		Fields:   form.Fields(&p, nil, errs),
		Errors:   errs,
	}})

	assert.Contains(t, html, `<p class="error">Judul is required</p>`)
	assert.Contains(t, html, `src="https://cdn.karirkit.test/uploads/image/x.png"`)
	assert.Contains(t, html, `name="logo_file"`)
	assert.NotContains(t, html, "secret")
	assert.Contains(t, html, `enctype="multipart/form-data"`)
}

func TestRender_ConfirmAndLogin(t *testing.T) {
	html := render(t, "confirm", Page{Data: ConfirmPage{
		Resource: Resource{Singular: "perusahaan"},
		Action:   "/admin/companies/mass-delete",
		Cancel:   "/admin/companies?page=2",
		Message:  "2 data akan dihapus.",
		IDs:      []string{"a", "b"},
	}})
	assert.Contains(t, html, `name="action" value="confirm"`)
	assert.Contains(t, html, `name="action" value="cancel"`)
	assert.Equal(t, 2, strings.Count(html, `name="ids"`))

	login := render(t, "login", Page{Title: "Masuk", Data: LoginPage{Next: "/cvs", Error: "Email atau kata sandi salah"}}, "bare")
	assert.Contains(t, login, `value="/cvs"`)
	assert.Contains(t, login, "Email atau kata sandi salah")
	assert.NotContains(t, login, `class="sidebar"`)
}

func TestRender_UnknownTemplate(t *testing.T) {
	e := New("", time.UTC)
	err := e.Render(&bytes.Buffer{}, "nope", nil)
	assert.EqualError(t, err, `view: unknown template "nope"`)
}

func TestListURL(t *testing.T) {
	st := listing.Parse(url.Values{}, testSchema)
	assert.Equal(t, "/admin/blogs", ListURL("/admin/blogs", st))
	assert.Equal(t, "/admin/blogs?page=4", ListURL("/admin/blogs", st.WithPage(4)))
}
