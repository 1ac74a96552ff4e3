package models

import "time"

// SiteSettings is a single-row table (id = 1) holding storefront branding and
// contact details shown in the footer and help pages.
type SiteSettings struct {
	ID               uint      `gorm:"primaryKey" json:"id"`
	BrandName        string    `json:"brand_name"`
	BrandDescription string    `json:"brand_description"`
	EmailAddress     string    `json:"email_address"`
	HelplineNumber   string    `json:"helpline_number"`
	WhatsappNumber   string    `json:"whatsapp_number"`
	FacebookURL      string    `json:"facebook_url"`
	InstagramURL     string    `json:"instagram_url"`
	TiktokURL        string    `json:"tiktok_url"`
	SnapchatURL      string    `json:"snapchat_url"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func (SiteSettings) TableName() string { return "site_settings" }
