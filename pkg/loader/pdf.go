package loader

import (
	"bytes"
	"context"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pkg/errors"
)

// PDFExtractor concatenates the plain text of every page in order.
type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

func (e *PDFExtractor) Format() Format {
	return FormatPDF
}

func (e *PDFExtractor) Extract(ctx context.Context, content []byte) (text string, err error) {
	// The pdf package panics on some malformed object streams.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", errors.Wrapf(ErrDecode, "pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", errors.Wrapf(ErrDecode, "pdf: %v", err)
	}

	var sb strings.Builder
	totalPage := r.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p := r.Page(pageIndex)
		if p.V.IsNull() {
			continue
		}

		pageText, err := p.GetPlainText(nil)
		if err != nil {
			return "", errors.Wrapf(ErrDecode, "pdf page %d: %v", pageIndex, err)
		}
		sb.WriteString(pageText)
	}

	return sb.String(), nil
}
