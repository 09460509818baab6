// Copyright (c) 2026 IRO.BY team
// SPDX-License-Identifier: GPL-3.0-or-later

package strapi

import (
	"fmt"
	"net/url"
	"strconv"
)

// Query builds the CMS REST query string: locale, population of
// relations, sort, pagination and nested bracket-style filters such as
// filters[slug][$eq]=minsk.
type Query struct {
	values url.Values
}

// NewQuery returns an empty query.
func NewQuery() *Query {
	return &Query{values: url.Values{}}
}

// Locale restricts results to a single locale code.
func (q *Query) Locale(code string) *Query {
	q.values.Set("locale", code)
	return q
}

// PopulateAll requests population of all first-level relations.
func (q *Query) PopulateAll() *Query {
	q.values.Set("populate", "*")
	return q
}

// SortAsc sorts by the given field in ascending order.
func (q *Query) SortAsc(field string) *Query {
	q.values.Set("sort", field+":asc")
	return q
}

// SortDesc sorts by the given field in descending order.
func (q *Query) SortDesc(field string) *Query {
	q.values.Set("sort", field+":desc")
	return q
}

// Limit caps the number of returned records via pagination[limit].
func (q *Query) Limit(n int) *Query {
	q.values.Set("pagination[limit]", strconv.Itoa(n))
	return q
}

// Status selects the draft/published variant of records (e.g. "published").
func (q *Query) Status(status string) *Query {
	q.values.Set("status", status)
	return q
}

// Filter adds a simple field filter, e.g. Filter("slug", "$eq", "minsk").
func (q *Query) Filter(field, op, value string) *Query {
	q.values.Set(fmt.Sprintf("filters[%s][%s]", field, op), value)
	return q
}

// FilterOr adds the i-th branch of an $or filter group, e.g.
// FilterOr(0, "title", "$containsi", "shabbat").
func (q *Query) FilterOr(i int, field, op, value string) *Query {
	q.values.Set(fmt.Sprintf("filters[$or][%d][%s][%s]", i, field, op), value)
	return q
}

// Encode returns the encoded query string without a leading "?".
// A nil query encodes to the empty string.
func (q *Query) Encode() string {
	if q == nil {
		return ""
	}
	return q.values.Encode()
}
