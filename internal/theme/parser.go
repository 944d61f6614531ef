package theme

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/ordered"
	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseFile loads a theme document from disk, validates it, and returns it.
func ParseFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewParseError(path, 0, err)
	}
	return Parse(data, path)
}

// Parse decodes and validates a theme document. source names the document in
// errors.
func Parse(data []byte, source string) (*Theme, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Theme
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, apperrors.NewParseError(source, 0, errors.New("document is empty"))
		}
		return nil, decodeError(source, err)
	}

	if err := Validate(&t); err != nil {
		return nil, err
	}

	return &t, nil
}

// decodeError attributes malformed colours to their entry; anything else is a
// plain parse error.
func decodeError(source string, err error) error {
	var entryErr *ordered.EntryError
	if errors.Is(err, color.ErrMalformed) && errors.As(err, &entryErr) {
		return apperrors.NewParseError(source, entryErr.Line,
			apperrors.NewMalformedValue(string(KindColor), entryErr.Key, entryErr.Err))
	}
	return apperrors.NewParseError(source, extractLine(err), err)
}

// Encode renders t as a YAML document with two space indentation.
func Encode(t *Theme) ([]byte, error) {
	if t == nil {
		return nil, errors.New("encode theme: theme is nil")
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return buf.Bytes(), nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	if _, scanErr := fmt.Sscanf(matches[1], "%d", &line); scanErr != nil {
		return 0
	}

	return line
}
