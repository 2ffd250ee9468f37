package models

import (
	"fmt"
	"time"
)

// ContentType discriminates what kind of children a product owns
type ContentType string

const (
	ContentTypeImages ContentType = "images"
	ContentTypeLinks  ContentType = "links"
)

func (ct ContentType) Valid() bool {
	switch ct {
	case ContentTypeImages, ContentTypeLinks:
		return true
	}
	return false
}

// ParseContentType accepts the canonical values plus the legacy "link" spelling
func ParseContentType(s string) (ContentType, error) {
	switch s {
	case "images":
		return ContentTypeImages, nil
	case "links", "link":
		return ContentTypeLinks, nil
	}
	return "", fmt.Errorf("unknown content type %q", s)
}

type Product struct {
	ID          int64       `json:"id" db:"id"`
	ContentType ContentType `json:"content_type" db:"content_type"`
	Title       *string     `json:"title" db:"title"`
	Description *string     `json:"description" db:"description"`
	CreatedAt   time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at" db:"updated_at"`
}

// ProductUpdate carries a partial update; nil fields are left unchanged
type ProductUpdate struct {
	Title       *string
	Description *string
}

// ImageProduct is an "images" product with its gallery
type ImageProduct struct {
	Product
	Images []ProductImage `json:"images"`
}

// LinkProduct is a "links" product with its link collection
type LinkProduct struct {
	Product
	Links []ProductLink `json:"links"`
}
