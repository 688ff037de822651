package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/delevski/protfolio/internal/models"
)

var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error formats the validation error the way the API reports it.
func (e ValidationError) Error() string {
	return e.Message
}

// ValidDate reports whether s is a zero-padded YYYY-MM-DD string that parses
// to a real calendar date. "2024-1-1" fails the pattern; "2024-13-40" fails
// the parse.
func ValidDate(s string) bool {
	if !dateRegex.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ParseNewsItem validates one decoded submission and builds the normalized
// record from it. The returned record has no ID or CreatedAt; those are
// assigned at write time. All errors for the item are collected so callers
// can report the first one.
func ParseNewsItem(item map[string]interface{}) (*models.NewsRecord, []ValidationError) {
	var errors []ValidationError

	str := func(field string) string {
		s, _ := item[field].(string)
		return s
	}

	for _, field := range models.RequiredNewsFields {
		v, ok := item[field].(string)
		if !ok || v == "" {
			errors = append(errors, ValidationError{
				Field:   field,
				Message: fmt.Sprintf("Missing or invalid required field: %s", field),
			})
		}
	}

	if date := str("date"); date != "" && !ValidDate(date) {
		errors = append(errors, ValidationError{
			Field:   "date",
			Message: "Invalid date format. Expected YYYY-MM-DD",
			Value:   date,
		})
	}

	tags, tagErrs := parseTags(item)
	errors = append(errors, tagErrs...)

	if raw, present := item["imageUrl"]; present {
		if _, ok := raw.(string); !ok {
			errors = append(errors, ValidationError{
				Field:   "imageUrl",
				Message: "imageUrl must be a string",
				Value:   raw,
			})
		}
	}

	if len(errors) > 0 {
		return nil, errors
	}

	return &models.NewsRecord{
		Title:     str("title"),
		Summary:   str("summary"),
		Content:   str("content"),
		Date:      str("date"),
		SourceURL: str("sourceUrl"),
		ImageURL:  NormalizeImageURL(str("imageUrl")),
		Category:  str("category"),
		Tags:      tags,
	}, nil
}

// NormalizeImageURL keeps only http(s) URLs; anything else is stored empty.
func NormalizeImageURL(url string) string {
	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}
	return ""
}

// parseTags extracts the optional tags array, defaulting to an empty slice.
func parseTags(item map[string]interface{}) ([]string, []ValidationError) {
	raw, present := item["tags"]
	if !present || raw == nil {
		return []string{}, nil
	}

	list, ok := raw.([]interface{})
	if !ok {
		return nil, []ValidationError{{Field: "tags", Message: "Tags must be an array", Value: raw}}
	}

	tags := make([]string, 0, len(list))
	for _, t := range list {
		s, ok := t.(string)
		if !ok {
			return nil, []ValidationError{{Field: "tags", Message: "All tags must be strings", Value: t}}
		}
		tags = append(tags, s)
	}
	return tags, nil
}
