package form

import (
	"reflect"
	"strconv"
	"strings"

	"karirkit/internal/listing"
)

// Input kinds understood by the form template.
const (
	InputText     = "text"
	InputTextarea = "textarea"
	InputRichText = "richtext"
	InputSelect   = "select"
	InputEmail    = "email"
	InputURL      = "url"
	InputNumber   = "number"
	InputDate     = "date"
	InputPassword = "password"
	InputCheckbox = "checkbox"
	InputImage    = "image"
	InputFile     = "file"
	InputLines    = "lines"
	InputHidden   = "hidden"
)

// Options resolves the `options:"name"` tag of select inputs.
type Options map[string][]listing.Option

// Field is the render descriptor of one form input.
type Field struct {
	Name     string
	Label    string
	Input    string
	Help     string
	Required bool
	Value    string
	Checked  bool
	Options  []listing.Option
	Errors   []string
}

// Fields reflects payload (a struct or pointer to struct) into render
// descriptors, carrying current values and the messages in errs. Fields
// without a `form` tag, or tagged form:"-", are skipped. A password input
// never echoes its value back.
func Fields(payload any, opts Options, errs Errors) []Field {
	v := reflect.ValueOf(payload)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()

	out := make([]Field, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		name := strings.SplitN(sf.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		f := Field{
			Name:     name,
			Label:    sf.Tag.Get("label"),
			Input:    sf.Tag.Get("input"),
			Help:     sf.Tag.Get("help"),
			Required: hasRule(sf.Tag.Get("validate"), "required"),
			Errors:   errs.Get(name),
		}
		if f.Label == "" {
			f.Label = sf.Name
		}
		if f.Input == "" {
			f.Input = InputText
		}
		if key := sf.Tag.Get("options"); key != "" {
			f.Options = opts[key]
		}
		fv := v.Field(i)
		if f.Input == InputCheckbox && fv.Kind() == reflect.Bool {
			f.Checked = fv.Bool()
		} else if f.Input != InputPassword {
			f.Value = stringify(fv)
		}
		out = append(out, f)
	}
	return out
}

func hasRule(tag, rule string) bool {
	for _, r := range strings.Split(tag, ",") {
		if r == rule {
			return true
		}
	}
	return false
}

func stringify(v reflect.Value) string {
	switch x := v.Interface().(type) {
	case Lines:
		return x.String()
	case []string:
		return strings.Join(x, "\n")
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Int, reflect.Int32, reflect.Int64:
		if v.Int() == 0 {
			return ""
		}
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Bool:
		return strconv.FormatBool(v.Bool())
	default:
		return ""
	}
}
