package catalog

// StoreConfig is the tenant-level presentation document, loaded once at boot
// and read-only afterwards.
type StoreConfig struct {
	StoreName       string            `json:"store_name"`
	MetaTitle       string            `json:"meta_title"`
	MetaDescription string            `json:"meta_description"`
	LogoURL         string            `json:"logo_url"`
	FaviconURL      string            `json:"favicon_url"`
	ContactPhone    string            `json:"contact_phone"`
	ContactEmail    string            `json:"contact_email"`
	Address         string            `json:"address,omitempty"`
	MainBanner      Banner            `json:"main_banner"`
	FeaturedHome    []FeaturedSection `json:"featured_home_sections"`
	FooterCopyright string            `json:"footer_copyright"`
	SocialLinks     SocialLinks       `json:"social_links"`
	NavMenu         []MenuItem        `json:"nav_menu"`
	FooterHelpLinks []Link            `json:"footer_help_links"`
	CurrencySymbol  string            `json:"currency_symbol"`
	WhatsAppNumber  string            `json:"whatsapp_number"`
}

// Banner describes the home hero banner.
type Banner struct {
	Active          bool   `json:"active"`
	DesktopImageURL string `json:"desktop_image_url"`
	MobileImageURL  string `json:"mobile_image_url"`
	AltText         string `json:"alt_text"`
	Title           string `json:"title"`
	Subtitle        string `json:"subtitle"`
	ButtonText      string `json:"button_text"`
	ButtonLink      string `json:"button_link"`
}

// FeaturedSection selects products for a curated home block.
type FeaturedSection struct {
	Title     string `json:"title"`
	Criterion string `json:"criterion"`
	Limit     int    `json:"limit"`
}

type SocialLinks struct {
	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
}

type MenuItem struct {
	Text     string `json:"text"`
	URL      string `json:"url"`
	Children []Link `json:"children,omitempty"`
}

type Link struct {
	Text string `json:"text"`
	URL  string `json:"url"`
}
