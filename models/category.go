// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strconv"

// DefaultCategoryID is written whenever a category cannot be parsed.
const DefaultCategoryID int64 = 1

// UnknownCategoryLabel is rendered for ids outside [Categories].
const UnknownCategoryLabel = "不明"

// Category pairs the canonical numeric id of a category with its label.
// The id is what entries carry; the label is only used for display.
type Category struct {
	ID    string
	Label string
}

// Categories is the fixed set of categories offered by the forms.
var Categories = []Category{
	{ID: "0", Label: "日常"},
	{ID: "1", Label: "学習"},
	{ID: "2", Label: "観光"},
	{ID: "3", Label: "食事"},
	{ID: "4", Label: "友達"},
}

// CategoryLabel returns the label for id, or [UnknownCategoryLabel].
func CategoryLabel(id string) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Label
		}
	}
	return UnknownCategoryLabel
}

// CategoryIndex returns the position of id in [Categories], or -1.
func CategoryIndex(id string) int {
	for i, c := range Categories {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// ParseCategoryID converts a domain category into the backend's numeric id.
// Empty or non-numeric input yields [DefaultCategoryID].
func ParseCategoryID(category string) int64 {
	id, err := strconv.ParseInt(category, 10, 64)
	if err != nil {
		return DefaultCategoryID
	}
	return id
}

// CanonicalCategory returns the string form of the id that
// [ParseCategoryID] sends for category.
func CanonicalCategory(category string) string {
	return strconv.FormatInt(ParseCategoryID(category), 10)
}
