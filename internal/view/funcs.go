package view

import (
	"html/template"
	"strconv"
	"strings"
	"time"

	"karirkit/internal/listing"
	"karirkit/internal/upload"
)

var months = [...]string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatDate renders t as "2 Januari 2026" in loc. Accepted inputs are
// time.Time, *time.Time and strings in RFC 3339 or 2006-01-02 layout. Zero
// and unparseable values render as "-".
func FormatDate(v any, loc *time.Location) string {
	var t time.Time
	switch x := v.(type) {
	case time.Time:
		t = x
	case *time.Time:
		if x == nil {
			return "-"
		}
		t = *x
	case string:
		parsed, ok := parseDate(x)
		if !ok {
			return "-"
		}
		t = parsed
	default:
		return "-"
	}
	if t.IsZero() {
		return "-"
	}
	if loc != nil {
		t = t.In(loc)
	}
	return strconv.Itoa(t.Day()) + " " + months[t.Month()-1] + " " + strconv.Itoa(t.Year())
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range []string{time.RFC3339Nano, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatMoney renders an amount in rupiah with dot grouping: "Rp 5.000.000".
func FormatMoney(v int64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	digits := strconv.FormatInt(v, 10)
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-Rp " + b.String()
	}
	return "Rp " + b.String()
}

// SalaryRange renders "Rp 5.000.000 - Rp 8.000.000", collapsing missing bounds.
func SalaryRange(lo, hi int64) string {
	switch {
	case lo <= 0 && hi <= 0:
		return "-"
	case hi <= 0 || hi == lo:
		return FormatMoney(lo)
	case lo <= 0:
		return "≤ " + FormatMoney(hi)
	}
	return FormatMoney(lo) + " - " + FormatMoney(hi)
}

func funcMap(assetBase string, loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"imageURL":   func(p string) string { return upload.BuildImageURL(assetBase, p) },
		"formatDate": func(v any) string { return FormatDate(v, loc) },
		"formatMoney": func(v any) string {
			switch x := v.(type) {
			case int64:
				return FormatMoney(x)
			case int:
				return FormatMoney(int64(x))
			}
			return "-"
		},
		"contains": func(list []string, s string) bool {
			for _, v := range list {
				if v == s {
					return true
				}
			}
			return false
		},
		"listURL": ListURL,
		"add":     func(a, b int) int { return a + b },
		"sub":     func(a, b int) int { return a - b },
	}
}

// ListURL is path with the non-default parts of st as query string. Whole URLs
// are built here because html/template escapes '&' inside a query context.
func ListURL(path string, st listing.State) string {
	if q := st.Encode(); q != "" {
		return path + "?" + q
	}
	return path
}
