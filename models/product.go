package models

import "time"

// PlaceholderImage is served whenever a product has no gallery.
const PlaceholderImage = "https://placehold.co/600x400?text=No+Image"

// MaxGalleryImages bounds the product gallery; the first entry doubles as the
// main thumbnail.
const MaxGalleryImages = 5

type Product struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Price       float64   `gorm:"not null" json:"price"`
	Category    string    `json:"category"`
	Image       string    `json:"image"`
	Images      ImageList `gorm:"type:jsonb" json:"images"`
	Description string    `json:"description"`
	Stock       int       `gorm:"default:0" json:"stock"`
	Rating      float64   `gorm:"type:DECIMAL(3,2);default:0" json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Normalize fills the documented defaults for missing fields so clients never
// see empty scalars.
func (p *Product) Normalize() {
	if p.Name == "" {
		p.Name = "Untitled Product"
	}
	if p.Category == "" {
		p.Category = "Uncategorized"
	}
	if p.Image == "" {
		p.Image = PlaceholderImage
	}
	if p.Description == "" {
		p.Description = "No description available"
	}
	if p.Images == nil {
		p.Images = ImageList{}
	}
}
