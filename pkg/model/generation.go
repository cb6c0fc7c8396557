package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// GenerationRequest is the flat field map posted to a generation endpoint.
type GenerationRequest map[string]string

// GenerationResponse is the decoded reply of a generation endpoint. The resume
// endpoint fills Template and Pages, the cover letter endpoint leaves them
// empty.
type GenerationResponse struct {
	Success     bool      `json:"success"`
	Content     string    `json:"content,omitempty"`
	Template    string    `json:"template,omitempty"`
	Pages       PageCount `json:"pages,omitempty"`
	DownloadURL string    `json:"download_url,omitempty"`
	Error       string    `json:"error,omitempty"`
}

// PageCount accepts both a JSON number and a numeric string, since the
// backend echoes the submitted page_limit value as-is.
type PageCount int

// UnmarshalJSON implements json.Unmarshaler.
func (p *PageCount) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*p = 0
		return nil
	}
	if trimmed[0] == '"' {
		var raw string
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		raw = strings.TrimSpace(raw)
		if raw == "" {
			*p = 0
			return nil
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("model: pages %q is not a number", raw)
		}
		*p = PageCount(n)
		return nil
	}
	var n float64
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return fmt.Errorf("model: pages: %w", err)
	}
	*p = PageCount(int(n))
	return nil
}

// String renders the page count as shown in the result view.
func (p PageCount) String() string {
	return strconv.Itoa(int(p))
}
