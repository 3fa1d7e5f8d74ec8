package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"karirkit/internal/apiclient"
	"karirkit/internal/cache"
	"karirkit/internal/http/middleware"
	"karirkit/internal/model"
	"karirkit/internal/repository/memory"
	"karirkit/internal/resource"
	"karirkit/internal/service"
	serviceMocks "karirkit/internal/service/mocks"
	"karirkit/internal/storage"
	storageMocks "karirkit/internal/storage/mocks"
	"karirkit/internal/upload"
	"karirkit/internal/view"
)

const (
	testToken    = "tok-123"
	testClientID = "6f1c2a7e-3b1d-4c55-9d1e-2f4b8a9c0d11"
)

var (
	admin  = &model.User{ID: "u1", Name: "Admin", Role: "admin"}
	seeker = &model.User{ID: "u2", Name: "Sinta", Role: "user"}
)

type mockAccount struct {
	mock.Mock
}

func (m *mockAccount) Me(ctx context.Context) (*model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *mockAccount) Login(ctx context.Context, identifier, password string) (*apiclient.LoginResult, error) {
	args := m.Called(ctx, identifier, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*apiclient.LoginResult), args.Error(1)
}

func (m *mockAccount) Logout(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) Upload(ctx context.Context, f upload.File) (*upload.Result, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*upload.Result), args.Error(1)
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type testEnv struct {
	app       *fiber.App
	account   *mockAccount
	companies *serviceMocks.MockAPI[model.Company]
	documents *serviceMocks.MockAPI[model.Document]
	uploader  *mockUploader
	store     *storageMocks.MockStorage
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	c, err := cache.New(time.Minute, prometheus.NewRegistry())
	require.NoError(t, err)

	env := &testEnv{
		account:   new(mockAccount),
		companies: &serviceMocks.MockAPI[model.Company]{ResourceName: "companies"},
		documents: &serviceMocks.MockAPI[model.Document]{ResourceName: "documents"},
		uploader:  new(mockUploader),
		store:     new(storageMocks.MockStorage),
	}

	shell := NewShell(resource.Documents().Entry(), resource.Companies().Entry())
	deps := PageDeps{
		Shell:    shell,
		Lookups:  resource.NewLookups(resource.LookupSources{}, c, nil),
		Prefs:    service.NewPreferenceService(memory.NewPreferenceMemory(), nil),
		Uploader: env.uploader,
		PerPage:  10,
	}
	modules := []Module{
		NewPages(resource.Documents(), service.NewResourceService[model.Document](env.documents, c, nil), deps),
		NewPages(resource.Companies(), service.NewResourceService[model.Company](env.companies, c, nil), deps),
	}

	env.app = fiber.New(fiber.Config{
		Views:        view.New("", time.UTC),
		ErrorHandler: ErrorHandler(nil),
	})
	env.app.Use(middleware.RequestID())
	env.app.Use(middleware.ClientID(false))
	env.app.Use(middleware.Session())
	env.app.Use(middleware.Flash())

	RegisterRoutes(env.app, Routes{
		Upstream: pingFunc(func(context.Context) error { return nil }),
		Users:    env.account,
		Auth:     NewAuth(env.account, shell, nil, false),
		Shell:    shell,
		Modules:  modules,
		API:      NewAPI(modules, deps.Prefs, env.uploader, nil),
		Store:    env.store,
	})
	return env
}

// signIn makes Me return u for the test token.
func (e *testEnv) signIn(u *model.User) {
	e.account.On("Me", mock.Anything).Return(u, nil)
}

func (e *testEnv) do(t *testing.T, req *http.Request, signedIn bool) (*http.Response, string) {
	t.Helper()
	cookies := []string{middleware.ClientIDCookie + "=" + testClientID}
	if signedIn {
		cookies = append(cookies, middleware.TokenCookie+"="+testToken)
	}
	req.Header.Set("Cookie", strings.Join(cookies, "; "))
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, string(body)
}

func cookie(resp *http.Response, name string) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func get(path string) *http.Request {
	return httptest.NewRequest(http.MethodGet, path, nil)
}

func post(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func companyPage(n, page, perPage, total int) *model.Page[model.Company] {
	p := &model.Page[model.Company]{Pagination: model.Pagination{
		Page: page, PerPage: perPage, TotalItems: total, TotalPages: (total + perPage - 1) / perPage,
	}}
	for i := 0; i < n; i++ {
		id := string(rune('a' + i))
		p.Items = append(p.Items, model.Company{ID: "c-" + id, Name: "PT " + strings.ToUpper(id), BusinessSector: "Teknologi"})
	}
	return p
}

func TestHealthCheck(t *testing.T) {
	db, dbMock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	upstreamErr := error(nil)
	app := fiber.New()
	app.Get("/health", HealthCheck(db, pingFunc(func(context.Context) error { return upstreamErr })))

	t.Run("healthy", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)

		resp, _ := app.Test(get("/health"))

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var body map[string]string
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "healthy", body["status"])
	})

	t.Run("database down", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(errors.New("db error"))

		resp, _ := app.Test(get("/health"))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "SERVICE_UNAVAILABLE", body.Error.Code)
	})

	t.Run("api down", func(t *testing.T) {
		dbMock.ExpectPing().WillReturnError(nil)
		upstreamErr = errors.New("connection refused")

		resp, _ := app.Test(get("/health"))

		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
		var body errorPayload
		json.NewDecoder(resp.Body).Decode(&body)
		assert.Equal(t, "api unavailable", body.Error.Message)
	})

	assert.NoError(t, dbMock.ExpectationsWereMet())
}

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	resp, _ := app.Test(get("/healthz"))

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestUnknownRoutes(t *testing.T) {
	env := newTestEnv(t)

	t.Run("page", func(t *testing.T) {
		resp, body := env.do(t, get("/nope"), false)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Contains(t, body, "Halaman atau data tidak ditemukan.")
	})

	t.Run("api", func(t *testing.T) {
		resp, body := env.do(t, get("/api/nope"), false)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var payload errorPayload
		require.NoError(t, json.Unmarshal([]byte(body), &payload))
		assert.Equal(t, "NOT_FOUND", payload.Error.Code)
	})

	t.Run("method not allowed", func(t *testing.T) {
		resp, _ := env.do(t, httptest.NewRequest(http.MethodDelete, "/healthz", nil), false)
		assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	})
}

func TestPages_RequireSession(t *testing.T) {
	env := newTestEnv(t)

	t.Run("anonymous page visit goes to login", func(t *testing.T) {
		resp, _ := env.do(t, get("/documents?page=2"), false)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/login?next=%2Fdocuments%3Fpage%3D2", resp.Header.Get("Location"))
	})

	t.Run("anonymous api call is rejected", func(t *testing.T) {
		resp, body := env.do(t, get("/api/slug?text=x"), false)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "UNAUTHORIZED")
	})
}

func TestPages_AdminResourceNeedsRole(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(seeker)

	resp, body := env.do(t, get("/admin/companies"), true)

	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, body, "Anda tidak memiliki akses")
	env.companies.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestList_RowsAndPager(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("List", mock.Anything, mock.MatchedBy(func(p url.Values) bool {
		return p.Get("page") == "1" && p.Get("per_page") == "10"
	})).Return(companyPage(3, 1, 10, 3), nil)

	resp, body := env.do(t, get("/admin/companies"), true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 3, strings.Count(body, "<tr data-id="))
	assert.Contains(t, body, `<span class="indicator">1 / 1</span>`)
	assert.Contains(t, body, `class="prev disabled"`)
	assert.Contains(t, body, `class="next disabled"`)
	assert.Contains(t, body, "PT B")
	// five default columns plus the select and action headers
	assert.Equal(t, 7, strings.Count(body, "</th>"))
}

func TestList_SecondPageEnablesPrev(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("List", mock.Anything, mock.Anything).Return(companyPage(2, 2, 10, 22), nil)

	resp, body := env.do(t, get("/admin/companies?page=2"), true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 2, strings.Count(body, "<tr data-id="))
	assert.Contains(t, body, `<span class="indicator">2 / 3</span>`)
	assert.Contains(t, body, `<a class="prev"`)
	assert.Contains(t, body, `<a class="next"`)
}

func TestList_PageBeyondLastRedirects(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("List", mock.Anything, mock.Anything).Return(companyPage(0, 9, 10, 22), nil)

	resp, _ := env.do(t, get("/admin/companies?page=9"), true)

	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Location"), "page=3")
}

func TestList_SelectAllSelectsDisplayedRows(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("List", mock.Anything, mock.Anything).Return(companyPage(3, 1, 10, 3), nil)

	resp, body := env.do(t, get("/admin/companies?select=all&ids=gone"), true)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	for _, id := range []string{"c-a", "c-b", "c-c"} {
		assert.Contains(t, body, `name="ids" value="`+id+`" checked`)
	}
	assert.NotContains(t, body, `value="gone"`)
	assert.Contains(t, body, "3 dipilih")
	assert.Contains(t, body, `value="none"`)

	_, body = env.do(t, get("/admin/companies?select=none&ids=c-a"), true)
	assert.NotContains(t, body, " checked aria-label")
	assert.NotContains(t, body, "dipilih")
}

func TestColumns_SaveAndReset(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("List", mock.Anything, mock.Anything).Return(companyPage(1, 1, 10, 1), nil)

	resp, _ := env.do(t, post("/admin/companies/columns", url.Values{
		"visible": {"name", "employee_size"},
		"return":  {"/admin/companies?page=1"},
	}), true)
	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/companies?page=1", resp.Header.Get("Location"))

	_, body := env.do(t, get("/admin/companies"), true)
	assert.Equal(t, 4, strings.Count(body, "</th>"))
	assert.NotContains(t, body, "Teknologi", "business sector column is hidden")

	resp, _ = env.do(t, post("/admin/companies/columns", url.Values{
		"reset":  {"1"},
		"return": {"https://evil.example"},
	}), true)
	assert.Equal(t, "/admin/companies", resp.Header.Get("Location"))

	_, body = env.do(t, get("/admin/companies"), true)
	assert.Contains(t, body, "Teknologi")
}

func TestCreate_RequiredFieldsSkipAPI(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)

	resp, body := env.do(t, post("/admin/companies", url.Values{"name": {""}}), true)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "Nama perusahaan is required")
	env.companies.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreate_Success(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("Create", mock.Anything, mock.MatchedBy(func(p any) bool {
		cp, ok := p.(*resource.CompanyPayload)
		return ok && cp.Name == "PT Maju Jaya" && cp.Slug == "pt-maju-jaya" && cp.IsVerified
	})).Return(&model.Company{ID: "c-new", Name: "PT Maju Jaya"}, nil).Once()

	resp, _ := env.do(t, post("/admin/companies", url.Values{
		"name":        {"PT Maju Jaya"},
		"is_verified": {"true"},
	}), true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/companies", resp.Header.Get("Location"))
	require.NotNil(t, cookie(resp, middleware.FlashCookie))
	assert.NotEmpty(t, cookie(resp, middleware.FlashCookie).Value)
	env.companies.AssertExpectations(t)
}

func TestCreate_RemoteValidationKeepsInput(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("Create", mock.Anything, mock.Anything).Return(nil, &apiclient.APIError{
		Status: http.StatusUnprocessableEntity, Message: "invalid",
		Fields: map[string][]string{"slug": {"slug sudah dipakai"}},
	}).Once()

	resp, body := env.do(t, post("/admin/companies", url.Values{"name": {"PT Lama"}}), true)

	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body, "slug sudah dipakai")
	assert.Contains(t, body, `value="PT Lama"`)
	assert.Contains(t, body, "Data ditolak server.")
}

func TestCreate_UpstreamFailureRendersForm(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("Create", mock.Anything, mock.Anything).
		Return(nil, &apiclient.APIError{Status: http.StatusInternalServerError, Message: "boom"}).Once()

	resp, body := env.do(t, post("/admin/companies", url.Values{"name": {"PT Baru"}}), true)

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Contains(t, body, "Gagal menyimpan.")
	assert.NotContains(t, body, "boom")
}

func TestCreate_AttachesUpload(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.uploader.On("Upload", mock.Anything, mock.MatchedBy(func(f upload.File) bool {
		return f.Kind == upload.KindImage && f.Filename == "logo.png"
	})).Return(&upload.Result{Path: "/uploads/image/x.png", ContentType: "image/png", Size: 4}, nil).Once()
	env.companies.On("Create", mock.Anything, mock.MatchedBy(func(p any) bool {
		cp, ok := p.(*resource.CompanyPayload)
		return ok && cp.Logo == "/uploads/image/x.png"
	})).Return(&model.Company{ID: "c-new"}, nil).Once()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	w.WriteField("name", "PT Logo")
	part, _ := w.CreateFormFile("logo_file", "logo.png")
	part.Write([]byte("\x89PNG"))
	w.Close()
	req := httptest.NewRequest(http.MethodPost, "/admin/companies", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, _ := env.do(t, req, true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	env.uploader.AssertExpectations(t)
	env.companies.AssertExpectations(t)
}

func TestUpdate_BindsOverCurrentEntity(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	current := &model.Company{ID: "c-1", Name: "PT Lama", Slug: "pt-lama", Phone: "021-555"}
	env.companies.On("Get", mock.Anything, "c-1").Return(current, nil)
	env.companies.On("Update", mock.Anything, "c-1", mock.MatchedBy(func(p any) bool {
		cp, ok := p.(*resource.CompanyPayload)
		return ok && cp.Name == "PT Baru" && cp.Slug == "pt-lama" && cp.Phone == "021-555"
	})).Return(current, nil).Once()

	resp, _ := env.do(t, post("/admin/companies/c-1", url.Values{"name": {"PT Baru"}}), true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/admin/companies/c-1", resp.Header.Get("Location"))
	env.companies.AssertExpectations(t)
}

func TestShow(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("Get", mock.Anything, "c-1").Return(&model.Company{ID: "c-1", Name: "PT Satu", Slug: "pt-satu"}, nil)
	env.companies.On("Get", mock.Anything, "missing").Return(nil, &apiclient.APIError{Status: http.StatusNotFound})

	resp, body := env.do(t, get("/admin/companies/c-1"), true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, body, "pt-satu")

	resp, _ = env.do(t, get("/admin/companies/missing"), true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDocuments_NoEditRoutes(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(seeker)

	resp, _ := env.do(t, get("/documents/d-1/edit"), true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = env.do(t, post("/documents/d-1", url.Values{"name": {"x"}}), true)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	env.documents.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestDelete(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("Get", mock.Anything, "c-1").Return(&model.Company{ID: "c-1", Name: "PT Satu"}, nil)

	t.Run("confirm page", func(t *testing.T) {
		resp, body := env.do(t, get("/admin/companies/c-1/delete"), true)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, "PT Satu")
		assert.Contains(t, body, `action="/admin/companies/c-1/delete"`)
	})

	t.Run("cancel makes no call", func(t *testing.T) {
		resp, _ := env.do(t, post("/admin/companies/c-1/delete", url.Values{"action": {"cancel"}}), true)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		env.companies.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("confirm deletes exactly once", func(t *testing.T) {
		env.companies.On("Delete", mock.Anything, "c-1").Return(nil).Once()

		resp, _ := env.do(t, post("/admin/companies/c-1/delete", url.Values{"action": {"confirm"}}), true)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/companies", resp.Header.Get("Location"))
		env.companies.AssertNumberOfCalls(t, "Delete", 1)
	})
}

func TestMassDelete(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)
	env.companies.On("List", mock.Anything, mock.Anything).Return(companyPage(3, 1, 10, 3), nil)

	t.Run("confirm keeps only displayed rows", func(t *testing.T) {
		resp, body := env.do(t, post("/admin/companies/mass-delete/confirm", url.Values{
			"ids":  {"c-a", "c-c", "elsewhere"},
			"page": {"1"},
		}), true)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `name="ids" value="c-a"`)
		assert.Contains(t, body, `name="ids" value="c-c"`)
		assert.NotContains(t, body, "elsewhere")
		assert.Contains(t, body, "2 data akan dihapus")
	})

	t.Run("empty selection bounces back", func(t *testing.T) {
		resp, _ := env.do(t, post("/admin/companies/mass-delete/confirm", url.Values{"page": {"1"}}), true)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/admin/companies"))
	})

	t.Run("cancel makes no call", func(t *testing.T) {
		resp, _ := env.do(t, post("/admin/companies/mass-delete", url.Values{
			"action": {"cancel"}, "ids": {"c-a"}, "return": {"/admin/companies?page=1"},
		}), true)
		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		env.companies.AssertNotCalled(t, "MassDelete", mock.Anything, mock.Anything)
	})

	t.Run("confirm sends one request", func(t *testing.T) {
		env.companies.On("MassDelete", mock.Anything, []string{"c-a", "c-c"}).Return(nil).Once()

		resp, _ := env.do(t, post("/admin/companies/mass-delete", url.Values{
			"action": {"confirm"}, "ids": {"c-a", "c-c"}, "return": {"/admin/companies?page=1"},
		}), true)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/companies?page=1", resp.Header.Get("Location"))
		env.companies.AssertNumberOfCalls(t, "MassDelete", 1)
	})

	t.Run("confirm drops ids that are not on the page", func(t *testing.T) {
		env.companies.On("MassDelete", mock.Anything, []string{"c-b"}).Return(nil).Once()

		resp, _ := env.do(t, post("/admin/companies/mass-delete", url.Values{
			"action": {"confirm"}, "ids": {"c-b", "never-shown"}, "return": {"/admin/companies?page=1"},
		}), true)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		env.companies.AssertCalled(t, "MassDelete", mock.Anything, []string{"c-b"})
		env.companies.AssertNotCalled(t, "MassDelete", mock.Anything, []string{"c-b", "never-shown"})
	})

	t.Run("confirm with only foreign ids makes no call", func(t *testing.T) {
		resp, _ := env.do(t, post("/admin/companies/mass-delete", url.Values{
			"action": {"confirm"}, "ids": {"never-shown"}, "return": {"/admin/companies?page=1"},
		}), true)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/admin/companies?page=1", resp.Header.Get("Location"))
		env.companies.AssertNumberOfCalls(t, "MassDelete", 2)
	})
}

func TestDashboard(t *testing.T) {
	t.Run("admin sees every resource", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(admin)
		env.companies.On("List", mock.Anything, mock.Anything).Return(companyPage(1, 1, 10, 42), nil)
		env.documents.On("List", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		resp, body := env.do(t, get("/"), true)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `<p class="total">42</p>`)
		assert.Contains(t, body, `<p class="total">-</p>`)
	})

	t.Run("admin resources are hidden from seekers", func(t *testing.T) {
		env := newTestEnv(t)
		env.signIn(seeker)
		env.documents.On("List", mock.Anything, mock.Anything).Return(&model.Page[model.Document]{
			Pagination: model.Pagination{Page: 1, PerPage: 10, TotalItems: 5, TotalPages: 1},
		}, nil)

		resp, body := env.do(t, get("/"), true)

		require.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `<p class="total">5</p>`)
		assert.NotContains(t, body, "/admin/companies")
		env.companies.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
	})
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)

	t.Run("form", func(t *testing.T) {
		resp, body := env.do(t, get("/login?next=/documents"), false)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, body, `name="next" value="/documents"`)
	})

	t.Run("missing fields", func(t *testing.T) {
		resp, body := env.do(t, post("/login", url.Values{"identifier": {"sinta"}}), false)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		assert.Contains(t, body, "wajib diisi")
		env.account.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("wrong password", func(t *testing.T) {
		env.account.On("Login", mock.Anything, "sinta", "wrong").
			Return(nil, &apiclient.APIError{Status: http.StatusUnauthorized, Message: "invalid credentials"}).Once()

		resp, body := env.do(t, post("/login", url.Values{"identifier": {"sinta"}, "password": {"wrong"}}), false)

		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		assert.Contains(t, body, "kata sandi salah")
		assert.Contains(t, body, `value="sinta"`)
	})

	t.Run("api down", func(t *testing.T) {
		env.account.On("Login", mock.Anything, "sinta", "down").Return(nil, errors.New("dial tcp: refused")).Once()

		resp, _ := env.do(t, post("/login", url.Values{"identifier": {"sinta"}, "password": {"down"}}), false)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	})

	t.Run("success sets the token and follows next", func(t *testing.T) {
		env.account.On("Login", mock.Anything, "sinta", "secret").
			Return(&apiclient.LoginResult{Token: "fresh", User: *seeker}, nil).Once()

		resp, _ := env.do(t, post("/login", url.Values{
			"identifier": {"sinta"}, "password": {"secret"}, "next": {"/documents"},
		}), false)

		assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
		assert.Equal(t, "/documents", resp.Header.Get("Location"))
		require.NotNil(t, cookie(resp, middleware.TokenCookie))
		assert.Equal(t, "fresh", cookie(resp, middleware.TokenCookie).Value)
	})

	t.Run("next cannot leave the site", func(t *testing.T) {
		env.account.On("Login", mock.Anything, "sinta", "secret2").
			Return(&apiclient.LoginResult{Token: "t", User: *seeker}, nil).Once()

		resp, _ := env.do(t, post("/login", url.Values{
			"identifier": {"sinta"}, "password": {"secret2"}, "next": {"//evil.example/x"},
		}), false)

		assert.Equal(t, "/", resp.Header.Get("Location"))
	})
}

func TestLogout(t *testing.T) {
	env := newTestEnv(t)
	env.account.On("Logout", mock.Anything).Return(errors.New("already revoked")).Once()

	resp, _ := env.do(t, post("/logout", nil), true)

	assert.Equal(t, http.StatusSeeOther, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get("Location"))
	require.NotNil(t, cookie(resp, middleware.TokenCookie))
	assert.Empty(t, cookie(resp, middleware.TokenCookie).Value)
	env.account.AssertExpectations(t)
}

func TestPreferenceAPI(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(admin)

	decode := func(t *testing.T, body string) model.ColumnPreference {
		t.Helper()
		var p model.ColumnPreference
		require.NoError(t, json.Unmarshal([]byte(body), &p))
		return p
	}

	resp, body := env.do(t, get("/api/preferences/companies"), true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"employee_size", "created_at"}, decode(t, body).Hidden)

	req := httptest.NewRequest(http.MethodPut, "/api/preferences/companies", strings.NewReader(`{"hidden":["logo","name","bogus"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, body = env.do(t, req, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"logo"}, decode(t, body).Hidden, "locked and unknown columns are dropped")

	_, body = env.do(t, get("/api/preferences/companies"), true)
	assert.Equal(t, []string{"logo"}, decode(t, body).Hidden)

	resp, _ = env.do(t, httptest.NewRequest(http.MethodDelete, "/api/preferences/companies", nil), true)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body = env.do(t, get("/api/preferences/companies"), true)
	assert.Equal(t, []string{"employee_size", "created_at"}, decode(t, body).Hidden)

	resp, body = env.do(t, get("/api/preferences/nope"), true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Contains(t, body, "NOT_FOUND")

	req = httptest.NewRequest(http.MethodPut, "/api/preferences/companies", strings.NewReader(`{`))
	req.Header.Set("Content-Type", "application/json")
	resp, body = env.do(t, req, true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "INVALID_BODY")
}

func uploadRequest(t *testing.T, kind, filename string, content []byte) *http.Request {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	if kind != "" {
		require.NoError(t, w.WriteField("type", kind))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		part.Write(content)
	}
	require.NoError(t, w.Close())
	req := httptest.NewRequest(http.MethodPost, "/api/uploads", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadAPI(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(seeker)

	t.Run("stored", func(t *testing.T) {
		env.uploader.On("Upload", mock.Anything, mock.MatchedBy(func(f upload.File) bool {
			return f.Filename == "cv.pdf" && f.Kind == upload.KindDocument
		})).Return(&upload.Result{Path: "/uploads/document/a.pdf", ContentType: "application/pdf", Size: 8, Filename: "cv.pdf"}, nil).Once()

		resp, body := env.do(t, uploadRequest(t, "document", "cv.pdf", []byte("%PDF-1.4")), true)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		var res upload.Result
		require.NoError(t, json.Unmarshal([]byte(body), &res))
		assert.Equal(t, "/uploads/document/a.pdf", res.Path)
		assert.Equal(t, "application/pdf", res.ContentType)
	})

	t.Run("too large", func(t *testing.T) {
		env.uploader.On("Upload", mock.Anything, mock.MatchedBy(func(f upload.File) bool {
			return f.Filename == "huge.png"
		})).Return(nil, upload.ErrTooLarge).Once()

		resp, body := env.do(t, uploadRequest(t, "image", "huge.png", []byte("x")), true)

		assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
		assert.Contains(t, body, "FILE_TOO_LARGE")
	})

	t.Run("unsupported type", func(t *testing.T) {
		env.uploader.On("Upload", mock.Anything, mock.MatchedBy(func(f upload.File) bool {
			return f.Filename == "run.exe"
		})).Return(nil, upload.ErrUnsupportedType).Once()

		resp, _ := env.do(t, uploadRequest(t, "image", "run.exe", []byte("MZ")), true)

		assert.Equal(t, http.StatusUnsupportedMediaType, resp.StatusCode)
	})

	t.Run("missing file", func(t *testing.T) {
		resp, body := env.do(t, uploadRequest(t, "image", "", nil), true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "FILE_REQUIRED")
	})

	t.Run("unknown kind", func(t *testing.T) {
		resp, body := env.do(t, uploadRequest(t, "video", "a.mp4", []byte("x")), true)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, body, "INVALID_TYPE")
	})
}

func TestSlugAPI(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(seeker)

	resp, body := env.do(t, get("/api/slug?text="+url.QueryEscape("Lowongan Kerja: Barista!")), true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"slug":"lowongan-kerja-barista"}`, body)

	resp, body = env.do(t, get("/api/slug?text=+"), true)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body, "TEXT_REQUIRED")
}

func TestServeUploads(t *testing.T) {
	env := newTestEnv(t)
	env.signIn(seeker)
	env.store.On("Get", mock.Anything, "uploads/image/a.png").
		Return(io.NopCloser(strings.NewReader("png-bytes")), storage.ObjectInfo{Size: 9, ContentType: "image/png", ETag: "abc"}, nil)
	env.store.On("Get", mock.Anything, "uploads/image/missing.png").
		Return(nil, storage.ObjectInfo{}, storage.ErrObjectNotFound)

	resp, body := env.do(t, get("/uploads/image/a.png"), true)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "png-bytes", body)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))

	resp, _ = env.do(t, get("/uploads/image/missing.png"), true)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSafeReturn(t *testing.T) {
	assert.Equal(t, "/jobs?page=2", safeReturn("/jobs?page=2", "/"))
	assert.Equal(t, "/", safeReturn("https://evil.example", "/"))
	assert.Equal(t, "/", safeReturn("//evil.example", "/"))
	assert.Equal(t, "/", safeReturn(`/\evil.example`, "/"))
	assert.Equal(t, "/x", safeReturn("", "/x"))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, classify(service.ErrNotFound).status)
	assert.Equal(t, http.StatusUnauthorized, classify(&apiclient.APIError{Status: 401}).status)
	assert.Equal(t, http.StatusForbidden, classify(&apiclient.APIError{Status: 403}).status)
	assert.Equal(t, http.StatusBadGateway, classify(&apiclient.APIError{Status: 500}).status)
	assert.Equal(t, http.StatusTooManyRequests, classify(fiber.ErrTooManyRequests).status)
	assert.Equal(t, "INTERNAL_ERROR", classify(errors.New("boom")).code)
}
