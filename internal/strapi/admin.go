// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import (
	"context"
	"net/http"
	"strconv"
)

// ListLocales returns the locales configured in the CMS locale plugin.
// The plugin returns a bare array rather than the collection envelope.
func (c *Client) ListLocales(ctx context.Context) ([]Locale, error) {
	var locales []Locale
	if err := c.doJSON(ctx, http.MethodGet, "/api/i18n/locales", "", nil, &locales); err != nil {
		return nil, err
	}
	return locales, nil
}

// createLocalePayload is the locale plugin creation body (no data envelope).
type createLocalePayload struct {
	Code      string `json:"code"`
	Name      string `json:"name"`
	IsDefault bool   `json:"isDefault"`
}

// CreateLocale registers a locale by code and display name.
func (c *Client) CreateLocale(ctx context.Context, code, name string, isDefault bool) (*Locale, error) {
	var created Locale
	payload := createLocalePayload{Code: code, Name: name, IsDefault: isDefault}
	if err := c.doJSON(ctx, http.MethodPost, "/api/i18n/locales", "", payload, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// rolesEnvelope wraps the users-permissions roles listing.
type rolesEnvelope struct {
	Roles []Role `json:"roles"`
}

// PublicRole looks up the anonymous (public) users-permissions role.
// A nil role with nil error means no public role exists.
func (c *Client) PublicRole(ctx context.Context) (*Role, error) {
	var env rolesEnvelope
	if err := c.doJSON(ctx, http.MethodGet, "/api/users-permissions/roles", "", nil, &env); err != nil {
		return nil, err
	}
	for i := range env.Roles {
		if env.Roles[i].Type == "public" {
			return &env.Roles[i], nil
		}
	}
	return nil, nil
}

// FindPermission looks up the permission row for (role, action).
// Returns nil when no such row exists.
func (c *Client) FindPermission(ctx context.Context, roleID int, action string) (*Permission, error) {
	q := NewQuery().
		Filter("role", "$eq", strconv.Itoa(roleID)).
		Filter("action", "$eq", action).
		Limit(1)
	resp, err := Find[Permission](ctx, c, "users-permissions/permissions", q)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nil
	}
	return &resp.Data[0], nil
}

// permissionPayload is the write shape for permission rows.
type permissionPayload struct {
	Role    int    `json:"role,omitempty"`
	Action  string `json:"action,omitempty"`
	Enabled bool   `json:"enabled"`
}

// CreatePermission creates an enabled permission row for (role, action).
func (c *Client) CreatePermission(ctx context.Context, roleID int, action string) (*Permission, error) {
	payload := permissionPayload{Role: roleID, Action: action, Enabled: true}
	resp, err := Create[Permission](ctx, c, "users-permissions/permissions", nil, payload)
	if err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// EnablePermission flips an existing permission row to enabled.
func (c *Client) EnablePermission(ctx context.Context, permissionID int) error {
	payload := permissionPayload{Enabled: true}
	_, err := Update[Permission](ctx, c, "users-permissions/permissions", strconv.Itoa(permissionID), nil, payload)
	return err
}

// registerAdminPayload is the first-admin registration body.
type registerAdminPayload struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
}

// RegisterAdmin provisions the first admin account. The endpoint only
// succeeds while the CMS has no admin user; callers treat a 4xx as
// "already provisioned".
func (c *Client) RegisterAdmin(ctx context.Context, email, password, firstname, lastname string) error {
	payload := registerAdminPayload{
		Email:     email,
		Password:  password,
		Firstname: firstname,
		Lastname:  lastname,
	}
	return c.doJSON(ctx, http.MethodPost, "/admin/register-admin", "", payload, nil)
}
