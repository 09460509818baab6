// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

// Pagination describes collection response metadata.
type Pagination struct {
	Page      int `json:"page"`
	PageSize  int `json:"pageSize"`
	PageCount int `json:"pageCount"`
	Total     int `json:"total"`
}

// Meta wraps pagination metadata on collection responses.
type Meta struct {
	Pagination Pagination `json:"pagination"`
}

// Response is the envelope returned by collection endpoints.
type Response[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// SingleResponse is the envelope returned by single-type endpoints and
// by create/update calls.
type SingleResponse[T any] struct {
	Data T              `json:"data"`
	Meta map[string]any `json:"meta"`
}

// Document carries the identity fields shared by every CMS record: the
// per-locale storage id and the documentId binding locale variants of
// one logical content item together.
type Document struct {
	ID          int     `json:"id"`
	DocumentID  string  `json:"documentId"`
	Locale      string  `json:"locale,omitempty"`
	PublishedAt *string `json:"publishedAt,omitempty"`
	CreatedAt   string  `json:"createdAt,omitempty"`
	UpdatedAt   string  `json:"updatedAt,omitempty"`
}

// ImageFormat is one resized rendition of an uploaded image.
type ImageFormat struct {
	URL string `json:"url"`
}

// Media is an uploaded file in the CMS media library.
type Media struct {
	ID              int                    `json:"id"`
	Name            string                 `json:"name"`
	URL             string                 `json:"url"`
	AlternativeText string                 `json:"alternativeText,omitempty"`
	Caption         string                 `json:"caption,omitempty"`
	Width           int                    `json:"width,omitempty"`
	Height          int                    `json:"height,omitempty"`
	Mime            string                 `json:"mime,omitempty"`
	Size            float64                `json:"size,omitempty"`
	Formats         map[string]ImageFormat `json:"formats,omitempty"`
}

// Locale is a record of the CMS locale plugin.
type Locale struct {
	ID        int    `json:"id"`
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

// Role is a users-permissions role.
type Role struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Permission is a users-permissions permission row, uniquely identified
// by its (role, action) pair.
type Permission struct {
	ID      int    `json:"id"`
	Action  string `json:"action"`
	Enabled bool   `json:"enabled"`
}
