package services

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// ExtractorService produces a best-effort plain-text rendering of an
// uploaded document. The embedded text layer is preferred; when it is
// blank the pages are rasterized and run through OCR instead.
type ExtractorService interface {
	ExtractText(ctx context.Context, doc io.ReadSeeker) (string, error)
}

type extractorService struct {
	textLayer TextLayerReader
	renderer  PageRenderer
	ocr       OCREngine
}

func NewExtractorService() ExtractorService {
	return &extractorService{
		textLayer: NewPDFTextLayerReader(),
		renderer:  NewFitzPageRenderer(),
		ocr:       NewTesseractEngine("eng"),
	}
}

// NewExtractorServiceWith wires explicit stage implementations.
func NewExtractorServiceWith(textLayer TextLayerReader, renderer PageRenderer, ocr OCREngine) ExtractorService {
	return &extractorService{
		textLayer: textLayer,
		renderer:  renderer,
		ocr:       ocr,
	}
}

func (s *extractorService) ExtractText(ctx context.Context, doc io.ReadSeeker) (string, error) {
	if _, err := doc.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind document: %w", err)
	}

	data, err := io.ReadAll(doc)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}

	pages, err := s.textLayer.ExtractPages(data)
	if err != nil {
		return "", err
	}

	text := strings.Join(pages, "\n")
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	// No text layer. Rasterize every page and recognize each one in order.
	images, err := s.renderer.RenderPages(data)
	if err != nil {
		return "", err
	}

	recognized := make([]string, 0, len(images))
	for pageIndex, image := range images {
		pageText, err := s.ocr.Recognize(ctx, image)
		if err != nil {
			return "", fmt.Errorf("OCR failed on page %d: %w", pageIndex+1, err)
		}
		recognized = append(recognized, pageText)
	}

	ocrText := strings.Join(recognized, "\n")
	if strings.TrimSpace(ocrText) == "" {
		return "", nil
	}

	return ocrText, nil
}
