package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var ErrInvalidJSON = errors.New("invalid json")

// JSON decodes a single JSON object request body.
type JSON struct {
	MaxBytes int64
	// Strict rejects fields the destination does not declare.
	Strict bool
}

func NewJSON() *JSON {
	return &JSON{MaxBytes: 1 << 20}
}

func (v *JSON) Decode(w http.ResponseWriter, r *http.Request, dst any) error {
	if ct := r.Header.Get("Content-Type"); ct != "" && !strings.HasPrefix(ct, "application/json") {
		return fmt.Errorf("%w: content type %q", ErrInvalidJSON, ct)
	}

	body := http.MaxBytesReader(w, r.Body, v.MaxBytes)
	defer func() { _ = body.Close() }()

	dec := json.NewDecoder(body)
	if v.Strict {
		dec.DisallowUnknownFields()
	}
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return fmt.Errorf("%w: trailing data", ErrInvalidJSON)
	}
	return nil
}
