// Package resource declares the feature modules of the console: for each
// KarirKit resource, its paths, list columns and filters, cell rendering and
// form payloads.
package resource

import (
	"context"

	"karirkit/internal/listing"
	"karirkit/internal/model"
	"karirkit/internal/view"
)

// Nav groups.
const (
	GroupSeeker = "Pencari kerja"
	GroupAdmin  = "Admin"
)

// Descriptor describes one resource screen set.
type Descriptor[T model.Entity] struct {
	Key      string
	Title    string
	Singular string
	Group    string
	// WebPath is where the console serves the resource; APIPath is the
	// backend collection path.
	WebPath string
	APIPath string

	AdminOnly   bool
	AllowCreate bool
	AllowEdit   bool
	AllowDelete bool

	List listing.Schema
	// DynamicFilters get their options from a lookup at request time.
	DynamicFilters []DynamicFilter
	// Lookups names the dynamic option sets the form needs.
	Lookups []string
	// Invalidates lists other cached resources a write here makes stale.
	Invalidates []string

	Cells  func(T) map[string]view.Cell
	Label  func(T) string
	Detail func(T) []view.DetailRow
	// NewPayload builds the form payload, prefilled from item when editing.
	NewPayload func(item *T) any
}

// DynamicFilter is a list filter whose options are another resource.
type DynamicFilter struct {
	Key    string
	Label  string
	Lookup string
}

// View is the template-facing subset.
func (d Descriptor[T]) View() view.Resource {
	return view.Resource{
		Key:         d.Key,
		Title:       d.Title,
		Singular:    d.Singular,
		Path:        d.WebPath,
		AllowCreate: d.AllowCreate && d.NewPayload != nil,
		AllowEdit:   d.AllowEdit && d.NewPayload != nil,
		AllowDelete: d.AllowDelete,
	}
}

// Row renders item for the given visible columns.
func (d Descriptor[T]) Row(item T, cols []listing.Column, selected bool) view.Row {
	cells := d.Cells(item)
	row := view.Row{ID: item.GetID(), Label: d.Label(item), Selected: selected, Cells: make([]view.Cell, 0, len(cols))}
	for _, c := range cols {
		cell, ok := cells[c.Key]
		if !ok {
			cell = view.Text("")
		}
		row.Cells = append(row.Cells, cell)
	}
	return row
}

// Entry is the type-erased part of a descriptor, used for navigation and the
// dashboard.
type Entry struct {
	Key       string
	Title     string
	Group     string
	WebPath   string
	AdminOnly bool
}

// Entry returns the navigation entry of d.
func (d Descriptor[T]) Entry() Entry {
	return Entry{Key: d.Key, Title: d.Title, Group: d.Group, WebPath: d.WebPath, AdminOnly: d.AdminOnly}
}

// Schema returns the list schema with the dynamic filters resolved through
// lookups. The descriptor's own schema is not modified.
func (d Descriptor[T]) Schema(ctx context.Context, l *Lookups) listing.Schema {
	s := d.List
	if len(d.DynamicFilters) == 0 {
		return s
	}
	s.Filters = append([]listing.Filter(nil), d.List.Filters...)
	for _, f := range d.DynamicFilters {
		if opts := l.Get(ctx, f.Lookup); len(opts) > 0 {
			s.Filters = append(s.Filters, listing.Filter{Key: f.Key, Label: f.Label, Options: opts})
		}
	}
	return s
}
