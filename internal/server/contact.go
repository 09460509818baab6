// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package server

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/iro-by/sitekit-go/internal/content"
	"github.com/iro-by/sitekit-go/internal/strapi"
)

const (
	maxContactBody   = 16 * 1024
	maxMessageLength = 5000
	maxNameLength    = 200
)

// sanitizer strips all markup from contact form fields before they are
// stored and later rendered in the CMS admin.
var sanitizer = bluemonday.StrictPolicy()

// handleContact validates, sanitizes and forwards a contact form
// submission to the CMS.
func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if !s.limiter.Allow(clientIP(r)) {
		writeError(w, http.StatusTooManyRequests, "too many requests")
		return
	}

	var msg content.ContactMessage
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxContactBody)).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	msg.Name = strings.TrimSpace(sanitizer.Sanitize(msg.Name))
	msg.Email = strings.TrimSpace(msg.Email)
	msg.Message = strings.TrimSpace(sanitizer.Sanitize(msg.Message))

	if err := validateContact(msg); err != "" {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if _, err := strapi.Create[strapi.Document](r.Context(), s.client, "contact-messages", nil, msg); err != nil {
		s.logger.Error("forwarding contact message failed", "error", err)
		writeError(w, http.StatusBadGateway, "message could not be delivered")
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]bool{"ok": true})
}

// validateContact returns a user-facing error message, or "" when the
// submission is acceptable.
func validateContact(msg content.ContactMessage) string {
	if msg.Name == "" || len(msg.Name) > maxNameLength {
		return "name is required"
	}
	if _, err := mail.ParseAddress(msg.Email); err != nil {
		return "a valid email address is required"
	}
	if msg.Message == "" || len(msg.Message) > maxMessageLength {
		return "message is required"
	}
	return ""
}
