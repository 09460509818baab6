// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

// Package content defines the typed record shapes served by the CMS and
// the static seed tables used to populate an empty instance.
package content

import "github.com/iro-by/sitekit-go/internal/strapi"

// Locale codes supported by the site. Russian is the canonical locale:
// its records are created first and their documentId anchors the
// translation pair.
const (
	LocaleRU = "ru"
	LocaleEN = "en"
)

// Coordinates is a geographic point on the communities map.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Community is a local Jewish community listed on the site.
type Community struct {
	strapi.Document
	Name          string          `json:"name"`
	Slug          string          `json:"slug"`
	CommunityName string          `json:"community_name"`
	Description   string          `json:"description,omitempty"`
	Leader        string          `json:"leader,omitempty"`
	Phone         string          `json:"phone,omitempty"`
	Email         string          `json:"email,omitempty"`
	Address       string          `json:"address,omitempty"`
	Coordinates   Coordinates     `json:"coordinates"`
	Order         int             `json:"order"`
	BuildingPhoto *strapi.Media   `json:"building_photo,omitempty"`
	EventPhotos   []strapi.Media  `json:"event_photos,omitempty"`
}

// Project is an organization program or initiative.
type Project struct {
	strapi.Document
	Title        string         `json:"title"`
	Slug         string         `json:"slug"`
	Description  string         `json:"description,omitempty"`
	Content      string         `json:"content,omitempty"`
	Icon         string         `json:"icon,omitempty"`
	ExternalLink string         `json:"external_link,omitempty"`
	Order        int            `json:"order"`
	Images       []strapi.Media `json:"images,omitempty"`
}

// Article is a blog/news post.
type Article struct {
	strapi.Document
	Title      string        `json:"title"`
	Slug       string        `json:"slug"`
	Excerpt    string        `json:"excerpt,omitempty"`
	Content    string        `json:"content,omitempty"`
	Author     string        `json:"author,omitempty"`
	CoverImage *strapi.Media `json:"cover_image,omitempty"`
}

// Category groups articles.
type Category struct {
	strapi.Document
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// RabbiQA is a published question-and-answer item.
type RabbiQA struct {
	strapi.Document
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	RabbiName string `json:"rabbi_name,omitempty"`
	Order     int    `json:"order"`
}

// RabbiQuestion is a visitor-submitted question awaiting an answer.
type RabbiQuestion struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Question  string `json:"question"`
	Community string `json:"community,omitempty"`
}

// Tradition is a Judaism tradition entry on the Q&A page.
type Tradition struct {
	strapi.Document
	Title          string `json:"title"`
	Description    string `json:"description"`
	RelatedHoliday string `json:"related_holiday,omitempty"`
	Order          int    `json:"order"`
}

// PosterEvent is an upcoming event on the poster page.
type PosterEvent struct {
	strapi.Document
	Title       string        `json:"title"`
	Date        string        `json:"date"`
	Location    string        `json:"location,omitempty"`
	Description string        `json:"description,omitempty"`
	Image       *strapi.Media `json:"image,omitempty"`
}

// Setting is the localized site settings single type.
type Setting struct {
	strapi.Document
	SiteName               string `json:"site_name,omitempty"`
	SiteDescription        string `json:"site_description,omitempty"`
	HeroTitle              string `json:"hero_title,omitempty"`
	HeroSubtitle           string `json:"hero_subtitle,omitempty"`
	ContactEmail           string `json:"contact_email,omitempty"`
	ContactPhone           string `json:"contact_phone,omitempty"`
	ContactAddress         string `json:"contact_address,omitempty"`
	FooterText             string `json:"footer_text,omitempty"`
	CommunitiesTitle       string `json:"communities_title,omitempty"`
	CommunitiesDescription string `json:"communities_description,omitempty"`
	ProjectsTitle          string `json:"projects_title,omitempty"`
	ProjectsDescription    string `json:"projects_description,omitempty"`
}

// ContactMessage is a contact form submission forwarded to the CMS.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
