package services

import (
	"context"
	"fmt"

	fitz "github.com/gen2brain/go-fitz"
	"github.com/otiai10/gosseract/v2"
)

// PageRenderer rasterizes every page of a document into an image,
// in page order.
type PageRenderer interface {
	RenderPages(data []byte) ([][]byte, error)
}

// OCREngine recognizes the text in one rendered page image.
type OCREngine interface {
	Recognize(ctx context.Context, image []byte) (string, error)
}

type fitzPageRenderer struct {
	dpi float64
}

func NewFitzPageRenderer() PageRenderer {
	return &fitzPageRenderer{dpi: 300}
}

func (r *fitzPageRenderer) RenderPages(data []byte) ([][]byte, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open document for rendering: %w", err)
	}
	defer doc.Close()

	pages := make([][]byte, 0, doc.NumPage())
	for pageIndex := 0; pageIndex < doc.NumPage(); pageIndex++ {
		image, err := doc.ImagePNG(pageIndex, r.dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", pageIndex+1, err)
		}
		pages = append(pages, image)
	}

	return pages, nil
}

type tesseractEngine struct {
	language string
}

func NewTesseractEngine(language string) OCREngine {
	return &tesseractEngine{language: language}
}

func (e *tesseractEngine) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// gosseract clients are not safe for reuse across goroutines,
	// so one is created per page.
	client := gosseract.NewClient()
	defer client.Close()

	if e.language != "" {
		if err := client.SetLanguage(e.language); err != nil {
			return "", fmt.Errorf("failed to set OCR language: %w", err)
		}
	}

	if err := client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("failed to load page image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return "", fmt.Errorf("failed to recognize text: %w", err)
	}

	return text, nil
}
