// Package export encodes the drawing surface into downloadable files.
package export

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// ErrUnknownFormat is returned for names and extensions no encoder handles.
var ErrUnknownFormat = errors.New("unknown export format")

type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	PDF
)

// DefaultFilename is the name offered in the save dialog.
const DefaultFilename = "painting.png"

var formats = [...]struct {
	name, ext, mime string
	aliases         []string
}{
	PNG:  {"png", ".png", "image/png", nil},
	JPEG: {"jpeg", ".jpg", "image/jpeg", []string{"jpg"}},
	BMP:  {"bmp", ".bmp", "image/bmp", nil},
	TIFF: {"tiff", ".tiff", "image/tiff", []string{"tif"}},
	PDF:  {"pdf", ".pdf", "application/pdf", nil},
}

func (f Format) valid() bool { return f >= PNG && f <= PDF }

func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formats[f].name
}

// Ext is the file extension including the dot.
func (f Format) Ext() string {
	if !f.valid() {
		return ""
	}
	return formats[f].ext
}

func (f Format) MIMEType() string {
	if !f.valid() {
		return "application/octet-stream"
	}
	return formats[f].mime
}

// Formats lists every supported format in menu order.
func Formats() []Format {
	return []Format{PNG, JPEG, BMP, TIFF, PDF}
}

// ParseFormat accepts a format name or extension, with or without the dot.
func ParseFormat(s string) (Format, error) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	for i, f := range formats {
		if f.name == s {
			return Format(i), nil
		}
		for _, a := range f.aliases {
			if a == s {
				return Format(i), nil
			}
		}
	}
	return PNG, fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// FromFilename picks the format from name's extension. Names without a
// known extension fall back to def and report false.
func FromFilename(name string, def Format) (Format, bool) {
	ext := filepath.Ext(name)
	if ext == "" {
		return def, false
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return def, false
	}
	return f, true
}

// Filename joins base with f's extension, replacing any extension base has.
func Filename(base string, f Format) string {
	base = strings.TrimSpace(base)
	if base == "" {
		base = strings.TrimSuffix(DefaultFilename, filepath.Ext(DefaultFilename))
	}
	if ext := filepath.Ext(base); ext != "" {
		if _, err := ParseFormat(ext); err == nil {
			base = strings.TrimSuffix(base, ext)
		}
	}
	return base + f.Ext()
}
