package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chaudhary64/resume-pro-ats-api/internal/handlers"
	"github.com/chaudhary64/resume-pro-ats-api/internal/models"
)

type stubExtractor struct {
	text string
	err  error
}

func (s *stubExtractor) ExtractText(ctx context.Context, doc io.ReadSeeker) (string, error) {
	return s.text, s.err
}

type stubAnalyzer struct {
	raw        json.RawMessage
	err        error
	resumeText string
	jd         string
}

func (s *stubAnalyzer) AnalyzeResume(ctx context.Context, resumeText, jobDescription string) (json.RawMessage, error) {
	s.resumeText = resumeText
	s.jd = jobDescription
	return s.raw, s.err
}

func newTestApp(extractor *stubExtractor, analyzer *stubAnalyzer) *fiber.App {
	app := fiber.New()
	h := handlers.NewAnalyzeHandler(extractor, analyzer)
	app.Post("/analyze_resume", h.HandleAnalyzeResume)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Resume Analyzer API is running!"})
	})
	return app
}

func newAnalyzeRequest(t *testing.T, withFile bool, jobDescription *string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	if withFile {
		part, err := writer.CreateFormFile("file", "resume.pdf")
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4 fake resume bytes"))
		require.NoError(t, err)
	}
	if jobDescription != nil {
		require.NoError(t, writer.WriteField("job_description", *jobDescription))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/analyze_resume", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func strPtr(s string) *string { return &s }

func readBody(t *testing.T, resp *http.Response) []byte {
	t.Helper()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return body
}

func TestHandleAnalyzeResume_Success(t *testing.T) {
	report := `{"ATS_Analysis":{"Total_Score":"82%"},"Optimization_Tips":["add metrics"]}`
	extractor := &stubExtractor{text: "Alice Smith, Go engineer"}
	analyzer := &stubAnalyzer{raw: json.RawMessage(report)}
	app := newTestApp(extractor, analyzer)

	resp, err := app.Test(newAnalyzeRequest(t, true, strPtr("backend role")), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, report, string(readBody(t, resp)))
	assert.Equal(t, "Alice Smith, Go engineer", analyzer.resumeText)
	assert.Equal(t, "backend role", analyzer.jd)
}

func TestHandleAnalyzeResume_Idempotent(t *testing.T) {
	report := `{"ATS_Analysis":{"Total_Score":"82%"}}`
	app := newTestApp(&stubExtractor{text: "resume"}, &stubAnalyzer{raw: json.RawMessage(report)})

	first, err := app.Test(newAnalyzeRequest(t, true, strPtr("jd")), -1)
	require.NoError(t, err)
	second, err := app.Test(newAnalyzeRequest(t, true, strPtr("jd")), -1)
	require.NoError(t, err)

	assert.Equal(t, readBody(t, first), readBody(t, second))
}

func TestHandleAnalyzeResume_UnreadableDocument(t *testing.T) {
	app := newTestApp(&stubExtractor{text: "  \n\t "}, &stubAnalyzer{})

	resp, err := app.Test(newAnalyzeRequest(t, true, strPtr("jd")), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, models.ErrUnreadableDocument.Error(), body.Error)
	assert.Empty(t, body.RawResponse)
}

func TestHandleAnalyzeResume_ExtractionFailure(t *testing.T) {
	app := newTestApp(&stubExtractor{err: errors.New("failed to open PDF: malformed xref")}, &stubAnalyzer{})

	resp, err := app.Test(newAnalyzeRequest(t, true, strPtr("jd")), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Contains(t, body.Error, "malformed xref")
}

func TestHandleAnalyzeResume_MalformedModelOutput(t *testing.T) {
	rawOutput := "Sure! Here is your analysis: ..."
	analyzer := &stubAnalyzer{err: &models.MalformedOutputError{Raw: rawOutput}}
	app := newTestApp(&stubExtractor{text: "resume"}, analyzer)

	resp, err := app.Test(newAnalyzeRequest(t, true, strPtr("jd")), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, "Gemini output is not valid JSON.", body.Error)
	assert.Equal(t, rawOutput, body.RawResponse)
}

func TestHandleAnalyzeResume_AnalyzerFailure(t *testing.T) {
	analyzer := &stubAnalyzer{err: errors.New("failed to generate analysis: deadline exceeded")}
	app := newTestApp(&stubExtractor{text: "resume"}, analyzer)

	resp, err := app.Test(newAnalyzeRequest(t, true, strPtr("jd")), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	body := readBody(t, resp)
	var parsed models.ErrorResponse
	require.NoError(t, json.Unmarshal(body, &parsed))
	assert.Contains(t, parsed.Error, "deadline exceeded")
	assert.NotContains(t, string(body), "raw_response")
}

func TestHandleAnalyzeResume_MissingFile(t *testing.T) {
	app := newTestApp(&stubExtractor{text: "resume"}, &stubAnalyzer{})

	resp, err := app.Test(newAnalyzeRequest(t, false, strPtr("jd")), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeResume_MissingJobDescription(t *testing.T) {
	app := newTestApp(&stubExtractor{text: "resume"}, &stubAnalyzer{})

	resp, err := app.Test(newAnalyzeRequest(t, true, nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleAnalyzeResume_EmptyJobDescriptionAccepted(t *testing.T) {
	analyzer := &stubAnalyzer{raw: json.RawMessage(`{}`)}
	app := newTestApp(&stubExtractor{text: "resume"}, analyzer)

	resp, err := app.Test(newAnalyzeRequest(t, true, strPtr("")), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "", analyzer.jd)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(&stubExtractor{}, &stubAnalyzer{err: errors.New("gemini is down")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil), -1)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.Unmarshal(readBody(t, resp), &body))
	assert.Equal(t, "Resume Analyzer API is running!", body["message"])
}
