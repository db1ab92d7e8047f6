// Package pagination encodes opaque page tokens shared by every list endpoint.
package pagination

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

var ErrInvalidPageToken = errors.New("pagination: invalid page token")

// Cursor is the last key a page ended on. Storage drivers decide what goes in it.
type Cursor map[string]string

// EncodeToken serialises the cursor into a base64 URL-safe token.
func EncodeToken(cursor Cursor) (string, error) {
	if len(cursor) == 0 {
		return "", nil
	}
	data, err := json.Marshal(cursor)
	if err != nil {
		return "", fmt.Errorf("pagination: encode token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}

// DecodeToken parses a token produced by EncodeToken. An empty token yields a nil cursor.
func DecodeToken(token string) (Cursor, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, nil
	}
	decoded, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPageToken, err)
	}
	var cursor Cursor
	if err := json.Unmarshal(decoded, &cursor); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPageToken, err)
	}
	return cursor, nil
}

// NormalizeSize clamps a requested page size into [1, MaxPageSize].
func NormalizeSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}
