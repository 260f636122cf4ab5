package services

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFInfo is what the inspector learned about an uploaded resume.
type PDFInfo struct {
	PageCount int
	HasText   bool
}

// PDFInspector verifies that uploaded resume bytes are a real, readable
// PDF before any storage or analysis cost is paid. The MIME type on the
// multipart part is client-controlled, so it is not trusted on its own.
type PDFInspector interface {
	Inspect(data []byte) (*PDFInfo, error)
}

type pdfInspector struct{}

func NewPDFInspector() PDFInspector {
	return &pdfInspector{}
}

func (p *pdfInspector) Inspect(data []byte) (*PDFInfo, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF: %w", err)
	}

	totalPage := reader.NumPage()
	if totalPage == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	hasText := false
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			hasText = true
			break
		}
	}

	return &PDFInfo{
		PageCount: totalPage,
		HasText:   hasText,
	}, nil
}
