package form

import (
	"reflect"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"
)

// Lines is a list entered as one item per line (or comma separated) in a
// textarea. It is sent to the API as a JSON array.
type Lines []string

// ParseLines splits s on newlines and commas, trimming blanks and duplicates.
func ParseLines(s string) Lines {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ','
	})
	seen := make(map[string]bool, len(fields))
	out := make(Lines, 0, len(fields))
	for _, f := range fields {
		f = strings.TrimSpace(f)
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	return out
}

// String renders one item per line.
func (l Lines) String() string { return strings.Join(l, "\n") }

var registerOnce sync.Once

func registerDecoders() {
	registerOnce.Do(func() {
		fiber.SetParserDecoder(fiber.ParserConfig{
			IgnoreUnknownKeys: true,
			SetAliasTag:       "form",
			ZeroEmpty:         true,
			ParserType: []fiber.ParserType{{
				Customtype: Lines{},
				Converter: func(s string) reflect.Value {
					return reflect.ValueOf(ParseLines(s))
				},
			}},
		})
	})
}

// Bind decodes the submitted form (urlencoded or multipart) into out.
// Checkbox fields are cleared first because browsers omit unticked boxes,
// so a prefilled payload would otherwise keep its old value.
func Bind(c *fiber.Ctx, out any) error {
	registerDecoders()
	resetCheckboxes(out)
	return c.BodyParser(out)
}

func resetCheckboxes(out any) {
	v := reflect.ValueOf(out)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Tag.Get("input") == InputCheckbox && sf.Type.Kind() == reflect.Bool && v.Field(i).CanSet() {
			v.Field(i).SetBool(false)
		}
	}
}

// SetValue assigns s to the string field whose form name is name. It reports
// whether such a field exists. Used to splice uploaded file paths back into a
// bound payload.
func SetValue(payload any, name, s string) bool {
	v := reflect.ValueOf(payload)
	if v.Kind() != reflect.Pointer || v.IsNil() {
		return false
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return false
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		if strings.SplitN(t.Field(i).Tag.Get("form"), ",", 2)[0] != name {
			continue
		}
		f := v.Field(i)
		if f.Kind() != reflect.String || !f.CanSet() {
			return false
		}
		f.SetString(s)
		return true
	}
	return false
}
