package handler

import (
	"errors"
	"path"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"karirkit/internal/form"
	"karirkit/internal/http/middleware"
	"karirkit/internal/logging"
	"karirkit/internal/service"
	"karirkit/internal/storage"
	"karirkit/internal/upload"
)

// API serves the JSON endpoints used by the pages' scripts.
type API struct {
	modules  map[string]Module
	prefs    *service.PreferenceService
	uploader upload.Uploader
	log      logging.Logger
}

func NewAPI(modules []Module, prefs *service.PreferenceService, uploader upload.Uploader, log logging.Logger) *API {
	if log == nil {
		log = logging.Nop()
	}
	byKey := make(map[string]Module, len(modules))
	for _, m := range modules {
		byKey[m.Entry().Key] = m
	}
	return &API{modules: byKey, prefs: prefs, uploader: uploader, log: log}
}

type preferenceRequest struct {
	Hidden []string `json:"hidden"`
}

func (a *API) module(c *fiber.Ctx) (Module, bool) {
	m, ok := a.modules[c.Params("resource")]
	return m, ok
}

func (a *API) preferenceFailed(c *fiber.Ctx, err error) error {
	if errors.Is(err, service.ErrClientIDRequired) {
		return writeError(c, fiber.StatusBadRequest, "CLIENT_ID_REQUIRED", "client id cookie is required")
	}
	a.log.Error(c.UserContext(), "preference store failed", "error", err)
	return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
}

// GetPreference returns the hidden columns of a resource list.
//
//	@Summary	Get column preference
//	@Tags		preferences
//	@Produce	json
//	@Param		resource	path		string	true	"Resource key"
//	@Success	200			{object}	model.ColumnPreference
//	@Failure	404			{object}	errorPayload
//	@Router		/api/preferences/{resource} [get]
func (a *API) GetPreference(c *fiber.Ctx) error {
	m, ok := a.module(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "unknown resource")
	}
	p, err := a.prefs.Get(c.UserContext(), middleware.ClientIDFrom(c), m.Entry().Key, m.Columns())
	if err != nil {
		return a.preferenceFailed(c, err)
	}
	return c.JSON(p)
}

// PutPreference replaces the hidden columns of a resource list.
//
//	@Summary	Save column preference
//	@Tags		preferences
//	@Accept		json
//	@Produce	json
//	@Param		resource	path		string				true	"Resource key"
//	@Param		body		body		preferenceRequest	true	"Hidden column keys"
//	@Success	200			{object}	model.ColumnPreference
//	@Failure	400			{object}	errorPayload
//	@Failure	404			{object}	errorPayload
//	@Router		/api/preferences/{resource} [put]
func (a *API) PutPreference(c *fiber.Ctx) error {
	m, ok := a.module(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "unknown resource")
	}
	var req preferenceRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_BODY", "invalid request body")
	}
	p, err := a.prefs.Save(c.UserContext(), middleware.ClientIDFrom(c), m.Entry().Key, m.Columns(), req.Hidden)
	if err != nil {
		return a.preferenceFailed(c, err)
	}
	return c.JSON(p)
}

// DeletePreference restores the default columns.
//
//	@Summary	Reset column preference
//	@Tags		preferences
//	@Param		resource	path	string	true	"Resource key"
//	@Success	204
//	@Failure	404	{object}	errorPayload
//	@Router		/api/preferences/{resource} [delete]
func (a *API) DeletePreference(c *fiber.Ctx) error {
	m, ok := a.module(c)
	if !ok {
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "unknown resource")
	}
	if err := a.prefs.Reset(c.UserContext(), middleware.ClientIDFrom(c), m.Entry().Key); err != nil {
		return a.preferenceFailed(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Upload stores one file (multipart/form-data, field name: file).
//
//	@Summary	Upload a file
//	@Tags		uploads
//	@Accept		multipart/form-data
//	@Produce	json
//	@Param		file	formData	file	true	"File"
//	@Param		type	formData	string	false	"image or document"
//	@Success	201		{object}	upload.Result
//	@Failure	400		{object}	errorPayload
//	@Failure	413		{object}	errorPayload
//	@Failure	415		{object}	errorPayload
//	@Router		/api/uploads [post]
func (a *API) Upload(c *fiber.Ctx) error {
	kind, err := upload.ParseKind(c.FormValue("type"))
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "INVALID_TYPE", "type must be image or document")
	}
	fh, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "FILE_REQUIRED", "file is required")
	}

	res, err := storeUpload(c.UserContext(), a.uploader, fh, kind)
	switch {
	case err == nil:
		return c.Status(fiber.StatusCreated).JSON(res)
	case errors.Is(err, upload.ErrEmptyFile):
		return writeError(c, fiber.StatusBadRequest, "FILE_EMPTY", "file is empty")
	case errors.Is(err, upload.ErrTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file is too large")
	case errors.Is(err, upload.ErrUnsupportedType):
		return writeError(c, fiber.StatusUnsupportedMediaType, "UNSUPPORTED_TYPE", "file type is not allowed")
	}
	return err
}

// Slug previews the slug the forms derive from a title.
//
//	@Summary	Preview a slug
//	@Tags		utilities
//	@Produce	json
//	@Param		text	query		string	true	"Source text"
//	@Success	200		{object}	map[string]string
//	@Failure	400		{object}	errorPayload
//	@Router		/api/slug [get]
func (a *API) Slug(c *fiber.Ctx) error {
	text := strings.TrimSpace(c.Query("text"))
	if text == "" {
		return writeError(c, fiber.StatusBadRequest, "TEXT_REQUIRED", "text is required")
	}
	return c.JSON(fiber.Map{"slug": form.Slugify(text)})
}

// ServeUploads streams stored objects back when uploads live in object storage.
func ServeUploads(store storage.Storage) fiber.Handler {
	return func(c *fiber.Ctx) error {
		rel := c.Params("*")
		key := path.Clean(upload.KeyPrefix + "/" + rel)
		if rel == "" || !strings.HasPrefix(key, upload.KeyPrefix+"/") {
			return fiber.ErrNotFound
		}
		body, info, err := store.Get(c.UserContext(), key)
		if errors.Is(err, storage.ErrObjectNotFound) {
			return fiber.ErrNotFound
		}
		if err != nil {
			return err
		}
		if info.ContentType != "" {
			c.Set(fiber.HeaderContentType, info.ContentType)
		}
		if info.ETag != "" {
			c.Set(fiber.HeaderETag, strconv.Quote(info.ETag))
		}
		c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
		return c.SendStream(body, int(info.Size))
	}
}
