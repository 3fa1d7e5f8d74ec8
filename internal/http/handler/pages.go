package handler

import (
	"context"
	"errors"
	"mime/multipart"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"karirkit/internal/apiclient"
	"karirkit/internal/form"
	"karirkit/internal/http/middleware"
	"karirkit/internal/listing"
	"karirkit/internal/logging"
	"karirkit/internal/model"
	"karirkit/internal/resource"
	"karirkit/internal/service"
	"karirkit/internal/upload"
	"karirkit/internal/view"
)

// Module is a mounted resource as the rest of the app sees it.
type Module interface {
	Entry() resource.Entry
	Columns() []listing.Column
	Count(ctx context.Context) (int, error)
	Mount(r fiber.Router, guard ...fiber.Handler)
}

// PageDeps are shared by every resource's pages.
type PageDeps struct {
	Shell    *Shell
	Lookups  *resource.Lookups
	Prefs    *service.PreferenceService
	Uploader upload.Uploader
	Log      logging.Logger
	// PerPage is the page size when the resource does not set its own.
	PerPage int
}

// Pages serves the list, form, detail and delete screens of one resource.
type Pages[T model.Entity] struct {
	desc resource.Descriptor[T]
	svc  *service.ResourceService[T]
	deps PageDeps
}

var _ Module = (*Pages[model.Job])(nil)

func NewPages[T model.Entity](d resource.Descriptor[T], svc *service.ResourceService[T], deps PageDeps) *Pages[T] {
	if deps.Log == nil {
		deps.Log = logging.Nop()
	}
	deps.Log = deps.Log.With("resource", d.Key)
	if d.List.DefaultPerPage == 0 {
		d.List.DefaultPerPage = deps.PerPage
	}
	return &Pages[T]{desc: d, svc: svc, deps: deps}
}

func (p *Pages[T]) Entry() resource.Entry     { return p.desc.Entry() }
func (p *Pages[T]) Columns() []listing.Column { return p.desc.List.Columns }

// Count returns the resource total for the dashboard.
func (p *Pages[T]) Count(ctx context.Context) (int, error) {
	page, err := p.svc.List(ctx, listing.Parse(nil, p.desc.List))
	if err != nil {
		return 0, err
	}
	if page.Pagination.TotalItems == 0 {
		return len(page.Items), nil
	}
	return page.Pagination.TotalItems, nil
}

// Mount registers the routes. Fixed segments come before :id.
func (p *Pages[T]) Mount(r fiber.Router, guard ...fiber.Handler) {
	path := p.desc.WebPath
	with := func(h fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler(nil), guard...), h)
	}
	writable := p.desc.NewPayload != nil

	r.Get(path, with(p.list)...)
	r.Post(path+"/columns", with(p.columns)...)
	if p.desc.AllowCreate && writable {
		r.Get(path+"/new", with(p.newForm)...)
		r.Post(path, with(p.create)...)
	}
	if p.desc.AllowDelete {
		r.Post(path+"/mass-delete/confirm", with(p.massDeleteConfirm)...)
		r.Post(path+"/mass-delete", with(p.massDelete)...)
	}
	r.Get(path+"/:id", with(p.show)...)
	if p.desc.AllowEdit && writable {
		r.Get(path+"/:id/edit", with(p.editForm)...)
		r.Post(path+"/:id", with(p.update)...)
	}
	if p.desc.AllowDelete {
		r.Get(path+"/:id/delete", with(p.deleteConfirm)...)
		r.Post(path+"/:id/delete", with(p.delete)...)
	}
}

func (p *Pages[T]) schema(ctx context.Context) listing.Schema {
	return p.desc.Schema(ctx, p.deps.Lookups)
}

func (p *Pages[T]) list(c *fiber.Ctx) error {
	ctx := c.UserContext()
	q := queryValues(c)
	st := listing.Parse(q, p.schema(ctx))

	page, err := p.svc.List(ctx, st)
	if err != nil {
		return err
	}
	if tp := page.Pagination.TotalPages; tp > 0 && st.Page > tp {
		return c.Redirect(view.ListURL(p.desc.WebPath, st.WithPage(tp)), fiber.StatusFound)
	}

	displayed := model.IDs(page.Items)
	sel := listing.NewSelection(q["ids"]...)
	switch q.Get("select") {
	case "all":
		sel.SelectAll(displayed)
	case "none":
		sel.Clear()
	}
	sel.Prune(displayed)

	hidden := p.deps.Prefs.Hidden(ctx, middleware.ClientIDFrom(c), p.desc.Key, p.desc.List.Columns)
	visible := listing.VisibleColumns(p.desc.List.Columns, hidden)
	shown := make(map[string]bool, len(visible))
	for _, col := range visible {
		shown[col.Key] = true
	}

	data := view.ListPage{
		Resource:    p.desc.View(),
		State:       st,
		Columns:     visible,
		Pager:       listing.NewPager(page.Pagination),
		PerPage:     listing.PerPageOptions,
		Selected:    sel.IDs(),
		AllSelected: sel.AllSelected(displayed),
	}
	for _, col := range p.desc.List.Columns {
		data.Toggles = append(data.Toggles, view.ColumnToggle{Column: col, Visible: shown[col.Key]})
	}
	for _, f := range st.Schema().Filters {
		data.Filters = append(data.Filters, view.FilterView{Filter: f, Value: st.Filters[f.Key]})
	}
	for _, item := range page.Items {
		data.Rows = append(data.Rows, p.desc.Row(item, visible, sel.Has(item.GetID())))
	}
	return p.deps.Shell.Render(c, fiber.StatusOK, "list", p.desc.Title, data)
}

func (p *Pages[T]) columns(c *fiber.Ctx) error {
	ctx := c.UserContext()
	cid := middleware.ClientIDFrom(c)
	back := safeReturn(c.FormValue("return"), p.desc.WebPath)

	var err error
	if c.FormValue("reset") != "" {
		err = p.deps.Prefs.Reset(ctx, cid, p.desc.Key)
	} else {
		on := map[string]bool{}
		for _, k := range formValues(c, "visible") {
			on[k] = true
		}
		hidden := []string{}
		for _, col := range p.desc.List.Columns {
			if !col.Locked && !on[col.Key] {
				hidden = append(hidden, col.Key)
			}
		}
		_, err = p.deps.Prefs.Save(ctx, cid, p.desc.Key, p.desc.List.Columns, hidden)
	}
	if err != nil {
		p.deps.Log.Warn(ctx, "column preference not saved", "error", err)
		middleware.SetFlash(c, "error", "Pengaturan kolom gagal disimpan.")
	} else {
		middleware.SetFlash(c, "success", "Pengaturan kolom disimpan.")
	}
	return redirect(c, back)
}

func (p *Pages[T]) newForm(c *fiber.Ctx) error {
	return p.renderForm(c, fiber.StatusOK, p.desc.NewPayload(nil), "", nil, false)
}

func (p *Pages[T]) create(c *fiber.Ctx) error {
	payload := p.desc.NewPayload(nil)
	if err := form.Bind(c, payload); err != nil {
		return fiber.ErrBadRequest
	}
	if errs := p.attachUploads(c, payload); errs != nil {
		return p.renderForm(c, fiber.StatusUnprocessableEntity, payload, "", errs, false)
	}
	if _, err := p.svc.Create(c.UserContext(), payload); err != nil {
		return p.formFailed(c, payload, "", err)
	}
	middleware.SetFlash(c, "success", capitalize(p.desc.Singular)+" berhasil ditambahkan.")
	return redirect(c, p.desc.WebPath)
}

func (p *Pages[T]) show(c *fiber.Ctx) error {
	item, err := p.svc.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	data := view.ShowPage{
		Resource: p.desc.View(),
		ID:       (*item).GetID(),
		Label:    p.desc.Label(*item),
		Rows:     p.desc.Detail(*item),
	}
	return p.deps.Shell.Render(c, fiber.StatusOK, "show", p.desc.Title, data)
}

func (p *Pages[T]) editForm(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := p.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return p.renderForm(c, fiber.StatusOK, p.desc.NewPayload(item), id, nil, false)
}

// update binds over the current entity so fields the form does not carry
// (nested CV sections, media galleries) survive.
func (p *Pages[T]) update(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := p.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	payload := p.desc.NewPayload(item)
	if err := form.Bind(c, payload); err != nil {
		return fiber.ErrBadRequest
	}
	if errs := p.attachUploads(c, payload); errs != nil {
		return p.renderForm(c, fiber.StatusUnprocessableEntity, payload, id, errs, false)
	}
	if _, err := p.svc.Update(c.UserContext(), id, payload); err != nil {
		return p.formFailed(c, payload, id, err)
	}
	middleware.SetFlash(c, "success", capitalize(p.desc.Singular)+" berhasil diperbarui.")
	return redirect(c, p.desc.WebPath+"/"+url.PathEscape(id))
}

func (p *Pages[T]) deleteConfirm(c *fiber.Ctx) error {
	id := c.Params("id")
	item, err := p.svc.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	data := view.ConfirmPage{
		Resource: p.desc.View(),
		Action:   p.desc.WebPath + "/" + url.PathEscape(id) + "/delete",
		Cancel:   p.desc.WebPath,
		Message:  "Data yang dihapus tidak dapat dikembalikan.",
		IDs:      []string{id},
		Labels:   []string{p.desc.Label(*item)},
	}
	return p.deps.Shell.Render(c, fiber.StatusOK, "confirm", "Hapus "+p.desc.Singular, data)
}

func (p *Pages[T]) delete(c *fiber.Ctx) error {
	back := safeReturn(c.FormValue("return"), p.desc.WebPath)
	if c.FormValue("action") != "confirm" {
		return redirect(c, back)
	}
	if err := p.svc.Delete(c.UserContext(), c.Params("id")); err != nil {
		if fatal(err) {
			return err
		}
		p.deps.Log.Warn(c.UserContext(), "delete failed", "id", c.Params("id"), "error", err)
		middleware.SetFlash(c, "error", capitalize(p.desc.Singular)+" gagal dihapus.")
		return redirect(c, back)
	}
	middleware.SetFlash(c, "success", capitalize(p.desc.Singular)+" berhasil dihapus.")
	return redirect(c, p.desc.WebPath)
}

// massDeleteConfirm re-reads the page the selection was made on, so only
// rows that are still displayed can be deleted.
func (p *Pages[T]) massDeleteConfirm(c *fiber.Ctx) error {
	ctx := c.UserContext()
	vals := postValues(c)
	st := listing.Parse(vals, p.schema(ctx))
	back := view.ListURL(p.desc.WebPath, st)

	page, sel, err := p.displayedSelection(ctx, st, vals["ids"])
	if err != nil {
		return err
	}
	if sel.Len() == 0 {
		middleware.SetFlash(c, "error", "Pilih minimal satu data untuk dihapus.")
		return redirect(c, back)
	}

	data := view.ConfirmPage{
		Resource: p.desc.View(),
		Action:   p.desc.WebPath + "/mass-delete",
		Cancel:   back,
		Message:  strconv.Itoa(sel.Len()) + " data akan dihapus dan tidak dapat dikembalikan.",
		IDs:      sel.IDs(),
	}
	for _, item := range page.Items {
		if sel.Has(item.GetID()) {
			data.Labels = append(data.Labels, p.desc.Label(item))
		}
	}
	return p.deps.Shell.Render(c, fiber.StatusOK, "confirm", "Hapus "+p.desc.Title, data)
}

// displayedSelection keeps the ids that are rows of the page st describes.
func (p *Pages[T]) displayedSelection(ctx context.Context, st listing.State, ids []string) (*model.Page[T], *listing.Selection, error) {
	page, err := p.svc.List(ctx, st)
	if err != nil {
		return nil, nil, err
	}
	sel := listing.NewSelection(ids...)
	sel.Prune(model.IDs(page.Items))
	return page, sel, nil
}

func (p *Pages[T]) massDelete(c *fiber.Ctx) error {
	vals := postValues(c)
	back := safeReturn(vals.Get("return"), p.desc.WebPath)
	if vals.Get("action") != "confirm" {
		return redirect(c, back)
	}

	// The posted ids are checked again against the page named by return.
	ctx := c.UserContext()
	var q url.Values
	if u, err := url.Parse(back); err == nil {
		q = u.Query()
	}
	_, sel, err := p.displayedSelection(ctx, listing.Parse(q, p.schema(ctx)), vals["ids"])
	if err != nil {
		return err
	}
	ids := sel.IDs()
	err = p.svc.MassDelete(ctx, ids)
	switch {
	case errors.Is(err, service.ErrNothingSelected):
		middleware.SetFlash(c, "error", "Pilih minimal satu data untuk dihapus.")
	case err != nil:
		if fatal(err) {
			return err
		}
		p.deps.Log.Warn(c.UserContext(), "mass delete failed", "count", len(ids), "error", err)
		middleware.SetFlash(c, "error", "Data terpilih gagal dihapus.")
	default:
		middleware.SetFlash(c, "success", strconv.Itoa(len(ids))+" data berhasil dihapus.")
	}
	return redirect(c, back)
}

func (p *Pages[T]) renderForm(c *fiber.Ctx, status int, payload any, id string, errs form.Errors, remote bool) error {
	opts := p.deps.Lookups.Options(c.UserContext(), p.desc.Lookups...)
	data := view.FormPage{
		Resource: p.desc.View(),
		Action:   p.desc.WebPath,
		Cancel:   p.desc.WebPath,
		ID:       id,
		Fields:   form.Fields(payload, opts, errs),
		Errors:   errs,
		Remote:   remote,
	}
	title := "Tambah " + p.desc.Singular
	if id != "" {
		data.Action = p.desc.WebPath + "/" + url.PathEscape(id)
		data.Cancel = data.Action
		title = "Ubah " + p.desc.Singular
	}
	return p.deps.Shell.Render(c, status, "form", title, data)
}

// formFailed re-renders the form with what went wrong, keeping the input.
func (p *Pages[T]) formFailed(c *fiber.Ctx, payload any, id string, err error) error {
	var ve *service.ValidationError
	if errors.As(err, &ve) {
		return p.renderForm(c, fiber.StatusUnprocessableEntity, payload, id, ve.Fields, ve.Remote)
	}
	if fatal(err) {
		return err
	}
	p.deps.Log.Error(c.UserContext(), "save failed", "id", id, "error", err)
	errs := form.Errors{}
	errs.Add("_", "Gagal menyimpan. Coba lagi beberapa saat lagi.")
	return p.renderForm(c, fiber.StatusBadGateway, payload, id, errs, true)
}

// fatal errors go to the error handler instead of a toast: the session is
// gone, access is denied or the entity no longer exists.
func fatal(err error) bool {
	return apiclient.IsUnauthorized(err) || apiclient.IsForbidden(err) || errors.Is(err, service.ErrNotFound)
}

// attachUploads stores files picked for image and file inputs and writes the
// stored path into the matching payload field.
func (p *Pages[T]) attachUploads(c *fiber.Ctx, payload any) form.Errors {
	mf, err := c.MultipartForm()
	if err != nil || p.deps.Uploader == nil {
		return nil
	}
	var errs form.Errors
	for _, f := range form.Fields(payload, nil, nil) {
		if f.Input != form.InputImage && f.Input != form.InputFile {
			continue
		}
		files := mf.File[f.Name+"_file"]
		if len(files) == 0 || files[0].Size == 0 {
			continue
		}
		kind := upload.KindImage
		if f.Input == form.InputFile {
			kind = upload.KindDocument
		}
		res, err := storeUpload(c.UserContext(), p.deps.Uploader, files[0], kind)
		if err != nil {
			if errs == nil {
				errs = form.Errors{}
			}
			errs.Add(f.Name, uploadMessage(err))
			continue
		}
		form.SetValue(payload, f.Name, res.Path)
		if r, ok := payload.(resource.UploadReceiver); ok {
			r.ReceiveUpload(f.Name, res)
		}
	}
	return errs
}

func storeUpload(ctx context.Context, u upload.Uploader, fh *multipart.FileHeader, kind upload.Kind) (*upload.Result, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return u.Upload(ctx, upload.File{
		Kind:        kind,
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	})
}

func uploadMessage(err error) string {
	switch {
	case errors.Is(err, upload.ErrEmptyFile):
		return "Berkas kosong."
	case errors.Is(err, upload.ErrTooLarge):
		return "Berkas terlalu besar."
	case errors.Is(err, upload.ErrUnsupportedType):
		return "Jenis berkas tidak didukung."
	}
	return "Berkas gagal diunggah."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
