package handlers

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hirerank/backend/analyzer"
	"github.com/hirerank/backend/config"
	"github.com/hirerank/backend/models"
	"github.com/hirerank/backend/utils"
)

const testResumeText = `John Smith
john.smith@example.com
555-123-4567

Skills
React, Django, PostgreSQL, Docker

Experience
Software Engineer
Acme Technologies Inc
2019 - 2023
Shipped the customer portal`

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	h := NewAnalyzeHandler(
		analyzer.New(nil, nil, nil),
		utils.NewDocumentExtractor(),
		nil,
		nil,
		&config.Config{MaxBatchSize: 2},
	)

	router := gin.New()
	router.POST("/api/rank_resume", h.RankResume)
	router.POST("/api/analyze_resume", h.AnalyzeResume)
	router.POST("/api/analyze_batch", h.AnalyzeBatch)
	return router
}

type formFile struct {
	field    string
	filename string
	content  []byte
}

func multipartRequest(t *testing.T, url string, fields map[string]string, files ...formFile) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	for _, f := range files {
		part, err := writer.CreateFormFile(f.field, f.filename)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, url, &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestRankResume_Success(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/rank_resume",
		map[string]string{"job_description": "Looking for a React and Django developer with Docker experience"},
		formFile{"resume", "resume.txt", []byte(testResumeText)},
	)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.RankResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.MatchScore, 0.0)
	assert.Contains(t, resp.SkillsExtracted, "React")
	assert.Equal(t, "John Smith", resp.CandidateInfo.Name)
	assert.Equal(t, "resume.txt", resp.ResumeFilename)
	assert.NotEmpty(t, resp.ProcessedAt)
}

func TestRankResume_MissingJobDescription(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/rank_resume", nil,
		formFile{"resume", "resume.txt", []byte(testResumeText)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "job_description is required")
}

func TestRankResume_MissingFile(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/rank_resume",
		map[string]string{"job_description": "any role"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Resume file is required")
}

func TestAnalyzeResume_Success(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_resume",
		map[string]string{"job_title": "Full Stack Developer"},
		formFile{"resume", "resume.txt", []byte(testResumeText)},
	)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.AnalyzeResumeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "John Smith", resp.CandidateName)
	assert.Equal(t, "Full Stack Developer", resp.JobTitle)
	assert.True(t, resp.IsRoleMatch)
	assert.NotEmpty(t, resp.SkillCoverage)
	assert.NotNil(t, resp.Classification)
	// no Firestore configured, so no document ID
	assert.Empty(t, resp.ID)
}

func TestAnalyzeResume_MissingJobTitle(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_resume",
		map[string]string{"job_title": "   "},
		formFile{"resume", "resume.txt", []byte(testResumeText)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Job title is required")
}

func TestAnalyzeResume_UnsupportedExtension(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_resume",
		map[string]string{"job_title": "Backend Developer"},
		formFile{"resume", "resume.xlsx", []byte(testResumeText)})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid file format")
}

func TestAnalyzeResume_ImageWithoutOCR(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_resume",
		map[string]string{"job_title": "Backend Developer"},
		formFile{"resume", "scan.png", []byte{0x89, 0x50, 0x4e, 0x47}})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to extract text")
}

func TestAnalyzeResume_CorruptDocumentIsServerError(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_resume",
		map[string]string{"job_title": "Backend Developer"},
		formFile{"resume", "resume.pdf", []byte("not a real pdf")})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestAnalyzeResume_InsufficientText(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_resume",
		map[string]string{"job_title": "Backend Developer"},
		formFile{"resume", "resume.txt", []byte("too short")})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "sufficient text")
}

func TestAnalyzeBatch_Success(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_batch",
		map[string]string{"job_title": "Full Stack Developer"},
		formFile{"resumes", "a.txt", []byte(testResumeText)},
		formFile{"resumes", "b.txt", []byte(testResumeText)},
	)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BatchAnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Count)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "a.txt", resp.Results[0].ResumeFilename)
	assert.Equal(t, "b.txt", resp.Results[1].ResumeFilename)
	assert.Empty(t, resp.Errors)
}

func TestAnalyzeBatch_CollectsPerFileErrors(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_batch",
		map[string]string{"job_title": "Full Stack Developer"},
		formFile{"resumes", "good.txt", []byte(testResumeText)},
		formFile{"resumes", "bad.xyz", []byte(testResumeText)},
	)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.BatchAnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Errors, 1)
	assert.Contains(t, resp.Errors[0], "bad.xyz")
}

func TestAnalyzeBatch_ExceedsLimit(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_batch",
		map[string]string{"job_title": "Full Stack Developer"},
		formFile{"resumes", "a.txt", []byte(testResumeText)},
		formFile{"resumes", "b.txt", []byte(testResumeText)},
		formFile{"resumes", "c.txt", []byte(testResumeText)},
	)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Batch size exceeds")
}

func TestAnalyzeBatch_NoFiles(t *testing.T) {
	router := newTestRouter(t)

	req := multipartRequest(t, "/api/analyze_batch",
		map[string]string{"job_title": "Full Stack Developer"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "At least one resume file is required")
}

func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/health", HealthCheck)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Timestamp)
}
