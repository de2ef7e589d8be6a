package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// Fallback texts used when a comic lacks a field
const (
	DefaultTitle       = "No title"
	DefaultDescription = "No description"
)

// ErrNotObject is returned when a comic payload is not a JSON object
var ErrNotObject = errors.New("comic payload is not a JSON object")

// Comic is a single xkcd comic as served by info.0.json. Field names follow
// the xkcd wire format, which is also the canonical form used for persistence.
// Comic is a value type: it is copied, never mutated after decoding.
type Comic struct {
	Number      int    `json:"num,omitempty"`
	Title       string `json:"title,omitempty"`
	SafeTitle   string `json:"safe_title,omitempty"`
	Description string `json:"alt,omitempty"`
	ImageURL    string `json:"img,omitempty"`
	Transcript  string `json:"transcript,omitempty"`
	Link        string `json:"link,omitempty"`
	Year        string `json:"year,omitempty"`
	Month       string `json:"month,omitempty"`
	Day         string `json:"day,omitempty"`
}

// DecodeComic parses a comic from its JSON form. Unknown fields are ignored.
func DecodeComic(data []byte) (Comic, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return Comic{}, ErrNotObject
	}

	var c Comic
	if err := json.Unmarshal(trimmed, &c); err != nil {
		return Comic{}, fmt.Errorf("decode comic: %w", err)
	}
	return c, nil
}

// Encode returns the canonical textual form of the comic
func (c Comic) Encode() ([]byte, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encode comic: %w", err)
	}
	return data, nil
}

// HasNumber reports whether the comic carries a known number
func (c Comic) HasNumber() bool {
	return c.Number > 0
}

// HasImage reports whether the comic references an image
func (c Comic) HasImage() bool {
	return c.ImageURL != ""
}

// DisplayTitle returns the title, or DefaultTitle when absent
func (c Comic) DisplayTitle() string {
	if c.Title == "" {
		return DefaultTitle
	}
	return c.Title
}

// DisplayDescription returns the alt text, or DefaultDescription when absent
func (c Comic) DisplayDescription() string {
	if c.Description == "" {
		return DefaultDescription
	}
	return c.Description
}

// Published returns the publication date when year, month and day are all
// present and numeric.
func (c Comic) Published() (time.Time, bool) {
	year, err := strconv.Atoi(c.Year)
	if err != nil {
		return time.Time{}, false
	}
	month, err := strconv.Atoi(c.Month)
	if err != nil || month < 1 || month > 12 {
		return time.Time{}, false
	}
	day, err := strconv.Atoi(c.Day)
	if err != nil || day < 1 || day > 31 {
		return time.Time{}, false
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC), true
}
