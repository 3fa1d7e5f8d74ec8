package model

import "time"

// Blog is an article in the public blog.
type Blog struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Slug          string        `json:"slug"`
	Excerpt       string        `json:"excerpt"`
	Content       string        `json:"content"`
	FeaturedImage string        `json:"featured_image"`
	Status        string        `json:"status"`
	ReadTime      int           `json:"read_time"`
	ViewsCount    int           `json:"views_count"`
	CategoryID    string        `json:"category_id"`
	Category      *BlogCategory `json:"category,omitempty"`
	Author        *BlogAuthor   `json:"user,omitempty"`
	Tags          []BlogTag     `json:"tags"`
	PublishedAt   *time.Time    `json:"published_at,omitempty"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (b Blog) GetID() string { return b.ID }

// CategoryName is the embedded category label, if present.
func (b Blog) CategoryName() string {
	if b.Category == nil {
		return ""
	}
	return b.Category.Name
}

// AuthorName is the embedded author label, if present.
func (b Blog) AuthorName() string {
	if b.Author == nil {
		return ""
	}
	return b.Author.Name
}

type BlogCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type BlogAuthor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type BlogTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}
