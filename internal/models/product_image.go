package models

import "time"

type ProductImage struct {
	ID        int64     `json:"id" db:"id"`
	ProductID int64     `json:"product_id" db:"product_id"`
	Image     string    `json:"image" db:"image"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// UploadedImage describes an object stored through the upload endpoint
type UploadedImage struct {
	Key string `json:"key"`
	URL string `json:"url"`
}
