package handlers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hirerank/backend/analyzer"
	"github.com/hirerank/backend/config"
	"github.com/hirerank/backend/models"
	"github.com/hirerank/backend/storage"
	"github.com/hirerank/backend/utils"
)

const minResumeTextLen = 50

var allowedExtensions = map[string]bool{
	".pdf": true, ".docx": true, ".doc": true, ".txt": true,
	".jpg": true, ".jpeg": true, ".png": true,
}

// AnalyzeHandler handles resume analysis requests
type AnalyzeHandler struct {
	analyzer        *analyzer.Analyzer
	extractor       *utils.DocumentExtractor
	firestoreClient *storage.FirestoreClient
	storageClient   *storage.CloudStorageClient
	maxBatchSize    int
}

// NewAnalyzeHandler creates a new analyze handler. The Firestore and Cloud
// Storage clients may be nil; analysis then runs without persistence.
func NewAnalyzeHandler(
	a *analyzer.Analyzer,
	extractor *utils.DocumentExtractor,
	firestoreClient *storage.FirestoreClient,
	storageClient *storage.CloudStorageClient,
	cfg *config.Config,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		analyzer:        a,
		extractor:       extractor,
		firestoreClient: firestoreClient,
		storageClient:   storageClient,
		maxBatchSize:    cfg.MaxBatchSize,
	}
}

// RankResume scores one resume against a raw job description
// @Summary Rank a resume
// @Description Score a resume against a job description (legacy flow)
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF, DOCX, DOC, TXT)"
// @Param job_description formData string true "Job description text"
// @Success 200 {object} models.RankResumeResponse "Ranking result"
// @Failure 400 {object} models.ErrorResponse "Invalid file or description"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /rank_resume [post]
func (h *AnalyzeHandler) RankResume(c *gin.Context) {
	jobDescription := c.PostForm("job_description")
	if strings.TrimSpace(jobDescription) == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "job_description is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Resume file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	resumeText, ok := h.decodeResume(c, fileHeader)
	if !ok {
		return
	}

	log.Printf("[AnalyzeHandler] Ranking resume: %s", fileHeader.Filename)
	score, skills, summary, profile := h.analyzer.Rank(c.Request.Context(), resumeText, jobDescription)

	c.JSON(http.StatusOK, models.RankResumeResponse{
		MatchScore:      score,
		SkillsExtracted: skills,
		Summary:         summary,
		CandidateInfo:   profile,
		ResumeFilename:  fileHeader.Filename,
		ProcessedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// AnalyzeResume runs the full analysis pipeline against a job title
// @Summary Analyze a resume
// @Description Analyze a resume against a job title with role-stack matching and AI classification
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "Resume file (PDF, DOCX, DOC, TXT)"
// @Param job_title formData string true "Target job title"
// @Param job_description formData string false "Optional full job description"
// @Success 200 {object} models.AnalyzeResumeResponse "Analysis result"
// @Failure 400 {object} models.ErrorResponse "Invalid file or job title"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /analyze_resume [post]
func (h *AnalyzeHandler) AnalyzeResume(c *gin.Context) {
	jobTitle := strings.TrimSpace(c.PostForm("job_title"))
	if jobTitle == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Job title is required and cannot be empty",
			Code:  http.StatusBadRequest,
		})
		return
	}
	jobDescription := c.PostForm("job_description")

	fileHeader, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Resume file is required",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	resumeText, ok := h.decodeResume(c, fileHeader)
	if !ok {
		return
	}

	log.Printf("[AnalyzeHandler] Analyzing resume: %s for job: %s", fileHeader.Filename, jobTitle)
	result := h.analyzer.Analyze(c.Request.Context(), resumeText, jobTitle, jobDescription)

	record := recordFromResult(result, fileHeader.Filename, jobDescription)
	docID := h.storeRecord(c, record)
	h.uploadOriginal(c, fileHeader, docID)

	c.JSON(http.StatusOK, models.AnalyzeResumeResponse{
		ID:             docID,
		CandidateName:  result.Profile.Name,
		JobTitle:       result.JobTitle,
		MatchScore:     result.MatchScore,
		Skills:         result.Profile.Skills,
		SkillsFound:    result.SkillsFound,
		SkillsMissing:  result.SkillsMissing,
		ExpectedSkills: result.ExpectedSkills,
		Summary:        result.Summary,
		Profile:        result.Profile,
		SkillStack:     result.SkillStack,
		SkillSummary:   result.SkillSummary,
		IsRoleMatch:    result.IsRoleMatch,
		SkillCoverage:  result.SkillCoverage,
		Classification: result.Classification,
		ResumeFilename: fileHeader.Filename,
		UploadedAt:     time.Now().UTC().Format(time.RFC3339),
	})
}

// AnalyzeBatch analyzes multiple resumes against one job title
// @Summary Analyze a batch of resumes
// @Description Analyze multiple resumes concurrently against one job title
// @Tags Analysis
// @Accept multipart/form-data
// @Produce json
// @Param resumes formData file true "Resume files"
// @Param job_title formData string true "Target job title"
// @Param job_description formData string false "Optional full job description"
// @Success 200 {object} models.BatchAnalyzeResponse "Batch results"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /analyze_batch [post]
func (h *AnalyzeHandler) AnalyzeBatch(c *gin.Context) {
	jobTitle := strings.TrimSpace(c.PostForm("job_title"))
	if jobTitle == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Job title is required and cannot be empty",
			Code:  http.StatusBadRequest,
		})
		return
	}
	jobDescription := c.PostForm("job_description")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "Invalid multipart form",
			Code:    http.StatusBadRequest,
			Details: err.Error(),
		})
		return
	}

	files := form.File["resumes"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "At least one resume file is required",
			Code:  http.StatusBadRequest,
		})
		return
	}
	if len(files) > h.maxBatchSize {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("Batch size exceeds the limit of %d files", h.maxBatchSize),
			Code:  http.StatusBadRequest,
		})
		return
	}

	var (
		inputs     []analyzer.Input
		filenames  []string
		decodeErrs []string
	)
	for _, fileHeader := range files {
		text, err := h.readAndDecode(fileHeader)
		if err != nil {
			decodeErrs = append(decodeErrs, fmt.Sprintf("%s: %v", fileHeader.Filename, err))
			continue
		}
		if len(strings.TrimSpace(text)) < minResumeTextLen {
			decodeErrs = append(decodeErrs, fmt.Sprintf("%s: could not extract sufficient text", fileHeader.Filename))
			continue
		}
		inputs = append(inputs, analyzer.Input{
			ResumeText:     text,
			JobTitle:       jobTitle,
			JobDescription: jobDescription,
			Filename:       fileHeader.Filename,
		})
		filenames = append(filenames, fileHeader.Filename)
	}

	log.Printf("[AnalyzeHandler] Batch analyzing %d resumes for job: %s", len(inputs), jobTitle)
	results := h.analyzer.AnalyzeBatch(c.Request.Context(), inputs, h.maxBatchSize)

	records := make([]models.AnalysisRecord, 0, len(results))
	for i, result := range results {
		record := recordFromResult(result, filenames[i], jobDescription)
		record.ID = h.storeRecord(c, record)
		records = append(records, *record)
	}

	c.JSON(http.StatusOK, models.BatchAnalyzeResponse{
		Count:   len(records),
		Results: records,
		Errors:  decodeErrs,
	})
}

// decodeResume reads and decodes an uploaded file, writing the error
// response itself when decoding fails.
func (h *AnalyzeHandler) decodeResume(c *gin.Context, fileHeader *multipart.FileHeader) (string, bool) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid file format. Please upload PDF, DOCX, TXT, or image (JPG, PNG) files only",
			Code:  http.StatusBadRequest,
		})
		return "", false
	}

	text, err := h.readAndDecode(fileHeader)
	if err != nil {
		var decodeErr *utils.DecodeError
		status := http.StatusInternalServerError
		if errors.As(err, &decodeErr) && decodeErr.Kind != utils.ErrCorruptDocument {
			status = http.StatusBadRequest
		}
		c.JSON(status, models.ErrorResponse{
			Error:   "Failed to extract text from resume",
			Code:    status,
			Details: err.Error(),
		})
		return "", false
	}

	if len(strings.TrimSpace(text)) < minResumeTextLen {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Could not extract sufficient text from resume. Please check the file",
			Code:  http.StatusBadRequest,
		})
		return "", false
	}
	return text, true
}

func (h *AnalyzeHandler) readAndDecode(fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	if len(content) == 0 {
		return "", fmt.Errorf("empty file received")
	}

	return h.extractor.ExtractText(content, fileHeader.Filename)
}

// storeRecord persists the record when Firestore is configured. Persistence
// failure never fails the analysis response.
func (h *AnalyzeHandler) storeRecord(c *gin.Context, record *models.AnalysisRecord) string {
	if h.firestoreClient == nil {
		return ""
	}
	docID, err := h.firestoreClient.StoreAnalysis(c.Request.Context(), record)
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to store analysis: %v", err)
		return ""
	}
	return docID
}

// uploadOriginal archives the raw resume file next to its analysis record.
// Upload failure never fails the analysis response.
func (h *AnalyzeHandler) uploadOriginal(c *gin.Context, fileHeader *multipart.FileHeader, docID string) {
	if h.storageClient == nil || docID == "" {
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to reopen resume for archiving: %v", err)
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		log.Printf("[AnalyzeHandler] Failed to read resume for archiving: %v", err)
		return
	}

	if _, err := h.storageClient.UploadResume(c.Request.Context(), docID, content, fileHeader.Filename); err != nil {
		log.Printf("[AnalyzeHandler] Failed to archive resume: %v", err)
	}
}

func recordFromResult(result models.AnalysisResult, filename, jobDescription string) *models.AnalysisRecord {
	return &models.AnalysisRecord{
		CandidateName:  result.Profile.Name,
		JobTitle:       result.JobTitle,
		ResumeFilename: filename,
		Skills:         result.Profile.Skills,
		MatchScore:     result.MatchScore,
		IsRoleMatch:    result.IsRoleMatch,
		Summary:        result.Summary,
		Profile:        result.Profile,
		Classification: result.Classification,
		JobDescription: jobDescription,
	}
}
