package loader

import (
	"context"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// TextExtractor returns UTF-8 text files unchanged.
type TextExtractor struct{}

func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

func (e *TextExtractor) Format() Format {
	return FormatTXT
}

func (e *TextExtractor) Extract(_ context.Context, content []byte) (string, error) {
	if !utf8.Valid(content) {
		return "", errors.Wrap(ErrDecode, "txt: content is not valid UTF-8")
	}
	return string(content), nil
}
