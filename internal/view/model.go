package view

import (
	"karirkit/internal/form"
	"karirkit/internal/listing"
	"karirkit/internal/model"
)

// Flash is a one-shot toast.
type Flash struct {
	Kind    string `json:"kind"` // success | error | info
	Message string `json:"message"`
}

// NavItem is one sidebar link.
type NavItem struct {
	Title  string
	Path   string
	Active bool
}

// NavGroup is a titled block of sidebar links.
type NavGroup struct {
	Title string
	Items []NavItem
}

// Page is what every full-page template receives.
type Page struct {
	Title     string
	User      *model.User
	Nav       []NavGroup
	Flash     *Flash
	RequestID string
	Data      any
}

// Cell kinds understood by the table template.
const (
	CellText   = "text"
	CellBadge  = "badge"
	CellImage  = "image"
	CellLink   = "link"
	CellDate   = "date"
	CellMoney  = "money"
	CellBool   = "bool"
	CellNumber = "number"
)

// Cell is one rendered table cell.
type Cell struct {
	Kind string
	Text string
	Href string
	// Value carries the typed value for date, money, number and bool cells.
	Value any
}

func Text(s string) Cell                    { return Cell{Kind: CellText, Text: s} }
func Badge(s string) Cell                   { return Cell{Kind: CellBadge, Text: s} }
func Image(path string) Cell                { return Cell{Kind: CellImage, Href: path} }
func Link(text, href string) Cell           { return Cell{Kind: CellLink, Text: text, Href: href} }
func Date(v any) Cell                       { return Cell{Kind: CellDate, Value: v} }
func Money(v int64) Cell                    { return Cell{Kind: CellMoney, Value: v} }
func Bool(v bool) Cell                      { return Cell{Kind: CellBool, Value: v} }
func Number(v int) Cell                     { return Cell{Kind: CellNumber, Value: v} }
func Detail(label string, c Cell) DetailRow { return DetailRow{Label: label, Cell: c} }

// DetailRow is one label/value line of a show page.
type DetailRow struct {
	Label string
	Cell  Cell
}

// Row is one table row.
type Row struct {
	ID       string
	Label    string
	Selected bool
	Cells    []Cell
}

// ColumnToggle is one entry of the column visibility menu.
type ColumnToggle struct {
	listing.Column
	Visible bool
}

// FilterView is one rendered filter select.
type FilterView struct {
	listing.Filter
	Value string
}

// Resource is the part of a resource descriptor templates need.
type Resource struct {
	Key         string
	Title       string
	Singular    string
	Path        string
	AllowCreate bool
	AllowEdit   bool
	AllowDelete bool
}

// ListPage is the data of list.html.
type ListPage struct {
	Resource
	State       listing.State
	Columns     []listing.Column
	Toggles     []ColumnToggle
	Filters     []FilterView
	Rows        []Row
	Pager       listing.Pager
	PerPage     []int
	Selected    []string
	AllSelected bool
}

// FormPage is the data of form.html.
type FormPage struct {
	Resource
	Action string
	Cancel string
	ID     string
	Fields []form.Field
	Errors form.Errors
	// Remote is true when the errors came from the API.
	Remote bool
}

// ShowPage is the data of show.html.
type ShowPage struct {
	Resource
	ID    string
	Label string
	Rows  []DetailRow
}

// ConfirmPage is the data of confirm.html, for single and bulk deletes.
type ConfirmPage struct {
	Resource
	Action  string
	Cancel  string
	Message string
	IDs     []string
	Labels  []string
}

// LoginPage is the data of login.html.
type LoginPage struct {
	Identifier string
	Next       string
	Error      string
}

// ErrorPage is the data of error.html.
type ErrorPage struct {
	Status  int
	Message string
}

// DashboardCard is one resource tile on the dashboard.
type DashboardCard struct {
	Title string
	Path  string
	Total int
	Err   bool
}
