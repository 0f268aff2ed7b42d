package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/chaudhary64/resume-pro-ats-api/internal/models"
)

// AnalyzerService formats extracted resume text and a job description
// into the analysis prompt, submits it to the model, and returns the
// model's JSON output. Only JSON well-formedness is checked; the model
// output shape itself is an untrusted boundary.
type AnalyzerService interface {
	AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (json.RawMessage, error)
}

type analyzerService struct {
	gemini  GeminiService
	prompts *PromptBuilder
}

func NewAnalyzerService(gemini GeminiService) AnalyzerService {
	return &analyzerService{
		gemini:  gemini,
		prompts: NewPromptBuilder(),
	}
}

// AnalyzeResume implements AnalyzerService.
func (s *analyzerService) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (json.RawMessage, error) {
	prompt := s.prompts.BuildResumeAnalysisPrompt(resumeText, jobDescription)

	raw, err := s.gemini.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate analysis: %w", err)
	}

	if !json.Valid([]byte(raw)) {
		return nil, &models.MalformedOutputError{Raw: raw}
	}

	return json.RawMessage(raw), nil
}
