package resource

import (
	"context"
	"net/url"

	"karirkit/internal/apiclient"
	"karirkit/internal/cache"
	"karirkit/internal/form"
	"karirkit/internal/listing"
	"karirkit/internal/logging"
	"karirkit/internal/model"
)

// Dynamic option sets, loaded from the API.
const (
	LookupCompanies       = "companies"
	LookupJobRoles        = "job_roles"
	LookupBlogCategories  = "blog_categories"
	LookupCVTemplates     = "cv_templates"
	LookupLetterTemplates = "letter_templates"
)

// Lister is the read side of a resource API.
type Lister[T any] interface {
	Name() string
	List(ctx context.Context, params url.Values) (*model.Page[T], error)
}

type source struct {
	cacheKey string
	load     func(ctx context.Context) ([]listing.Option, error)
}

// Lookups resolves select options that come from other resources. Results are
// cached per user scope; a failing source yields no options.
type Lookups struct {
	sources map[string]source
	cache   *cache.Cache
	log     logging.Logger
}

// LookupSources are the listers behind each dynamic option set.
type LookupSources struct {
	Companies      Lister[model.Company]
	JobRoles       Lister[model.JobRole]
	BlogCategories Lister[model.BlogCategory]
	Templates      Lister[model.Template]
}

// NewLookups wires the lookup sources. Nil sources are skipped.
func NewLookups(src LookupSources, c *cache.Cache, log logging.Logger) *Lookups {
	if log == nil {
		log = logging.Nop()
	}
	l := &Lookups{sources: map[string]source{}, cache: c, log: log}
	all := url.Values{"per_page": {"100"}}
	if src.Companies != nil {
		add(l, LookupCompanies, src.Companies, all, func(c model.Company) listing.Option {
			return listing.Option{Value: c.ID, Label: c.Name}
		})
	}
	if src.JobRoles != nil {
		add(l, LookupJobRoles, src.JobRoles, all, func(r model.JobRole) listing.Option {
			return listing.Option{Value: r.ID, Label: r.Name}
		})
	}
	if src.BlogCategories != nil {
		add(l, LookupBlogCategories, src.BlogCategories, all, func(b model.BlogCategory) listing.Option {
			return listing.Option{Value: b.ID, Label: b.Name}
		})
	}
	if src.Templates != nil {
		tpl := func(t model.Template) listing.Option {
			return listing.Option{Value: t.ID, Label: t.Name}
		}
		add(l, LookupCVTemplates, src.Templates, url.Values{"type": {"cv"}, "per_page": {"100"}}, tpl)
		add(l, LookupLetterTemplates, src.Templates, url.Values{"type": {"application_letter"}, "per_page": {"100"}}, tpl)
	}
	return l
}

func add[T any](l *Lookups, name string, api Lister[T], params url.Values, conv func(T) listing.Option) {
	l.sources[name] = source{
		cacheKey: api.Name(),
		load: func(ctx context.Context) ([]listing.Option, error) {
			page, err := api.List(ctx, params)
			if err != nil {
				return nil, err
			}
			out := make([]listing.Option, 0, len(page.Items))
			for _, it := range page.Items {
				out = append(out, conv(it))
			}
			return out, nil
		},
	}
}

// Options returns the static sets plus the named dynamic ones.
func (l *Lookups) Options(ctx context.Context, names ...string) form.Options {
	out := Static()
	for _, name := range names {
		out[name] = l.Get(ctx, name)
	}
	return out
}

// Get loads one dynamic option set.
func (l *Lookups) Get(ctx context.Context, name string) []listing.Option {
	if l == nil {
		return nil
	}
	src, ok := l.sources[name]
	if !ok {
		return nil
	}
	load := src.load
	var (
		opts []listing.Option
		err  error
	)
	if l.cache == nil {
		opts, err = load(ctx)
	} else {
		key := cache.Key(src.cacheKey, cache.Scope(apiclient.TokenFrom(ctx)), url.Values{"lookup": {name}})
		opts, err = cache.Get(ctx, l.cache, src.cacheKey, key, load)
	}
	if err != nil {
		l.log.Warn(ctx, "lookup failed", "lookup", name, "error", err)
		return nil
	}
	return opts
}
