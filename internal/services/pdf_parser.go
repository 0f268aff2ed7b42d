package services

import (
	"bytes"
	"fmt"

	"github.com/ledongthuc/pdf"
)

// TextLayerReader extracts the embedded text layer of a document,
// one string per page. A page without extractable text yields "".
type TextLayerReader interface {
	ExtractPages(data []byte) ([]string, error)
}

type pdfTextLayerReader struct{}

func NewPDFTextLayerReader() TextLayerReader {
	return &pdfTextLayerReader{}
}

func (p *pdfTextLayerReader) ExtractPages(data []byte) ([]string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	totalPage := reader.NumPage()
	pages := make([]string, 0, totalPage)

	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page with an unreadable content stream counts as empty.
			pages = append(pages, "")
			continue
		}

		pages = append(pages, text)
	}

	return pages, nil
}
