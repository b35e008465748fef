package handlers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hirerank/backend/models"
	"github.com/hirerank/backend/storage"
)

// RankingsHandler serves stored analysis records
type RankingsHandler struct {
	firestoreClient *storage.FirestoreClient
}

// NewRankingsHandler creates a new rankings handler
func NewRankingsHandler(firestoreClient *storage.FirestoreClient) *RankingsHandler {
	return &RankingsHandler{firestoreClient: firestoreClient}
}

// GetRankings lists candidates sorted by match score
// @Summary Get candidate rankings
// @Description List analyzed candidates sorted by match score, optionally filtered by job title
// @Tags Rankings
// @Produce json
// @Param job_title query string false "Filter by job title"
// @Param limit query int false "Maximum results" default(100)
// @Success 200 {object} models.RankingsResponse "Ranked candidates"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /rankings [get]
func (h *RankingsHandler) GetRankings(c *gin.Context) {
	jobTitle := c.Query("job_title")
	limit := queryInt(c, "limit", 100)

	rankings, err := h.firestoreClient.GetRankings(c.Request.Context(), jobTitle, limit)
	if err != nil {
		log.Printf("[RankingsHandler] Failed to get rankings: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to retrieve rankings",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.RankingsResponse{
		JobTitle: jobTitle,
		Count:    len(rankings),
		Rankings: rankings,
	})
}

// GetHistory lists analyses chronologically
// @Summary Get analysis history
// @Description List all analyses sorted by upload time, newest first
// @Tags Rankings
// @Produce json
// @Param limit query int false "Maximum results" default(100)
// @Success 200 {object} models.HistoryResponse "Analysis history"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /history [get]
func (h *RankingsHandler) GetHistory(c *gin.Context) {
	limit := queryInt(c, "limit", 100)

	history, err := h.firestoreClient.GetHistory(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[RankingsHandler] Failed to get history: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to retrieve history",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.HistoryResponse{
		Count:   len(history),
		History: history,
	})
}

// GetTopPerformers lists the highest scoring candidates overall
// @Summary Get top performers
// @Description List the highest scoring candidates across all positions
// @Tags Rankings
// @Produce json
// @Param limit query int false "Maximum results" default(3)
// @Success 200 {object} models.TopPerformersResponse "Top performers"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /top_performers [get]
func (h *RankingsHandler) GetTopPerformers(c *gin.Context) {
	limit := queryInt(c, "limit", 3)

	performers, err := h.firestoreClient.GetTopPerformers(c.Request.Context(), limit)
	if err != nil {
		log.Printf("[RankingsHandler] Failed to get top performers: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to retrieve top performers",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.TopPerformersResponse{
		Count:         len(performers),
		TopPerformers: performers,
	})
}

// GetAnalysesByJob lists the analyses stored for one job title
// @Summary Get analyses for a job title
// @Description List analyses stored for one job title, newest first
// @Tags Rankings
// @Produce json
// @Param job_title path string true "Job title"
// @Param limit query int false "Maximum results" default(10)
// @Success 200 {object} models.RankingsResponse "Analyses for the job"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /analyses/{job_title} [get]
func (h *RankingsHandler) GetAnalysesByJob(c *gin.Context) {
	jobTitle := c.Param("job_title")
	limit := queryInt(c, "limit", 10)

	analyses, err := h.firestoreClient.GetAnalysesByJob(c.Request.Context(), jobTitle, limit)
	if err != nil {
		log.Printf("[RankingsHandler] Failed to get analyses: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to retrieve analyses",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.RankingsResponse{
		JobTitle: jobTitle,
		Count:    len(analyses),
		Rankings: analyses,
	})
}

// GetTopCandidates lists the best candidates for one job title
// @Summary Get top candidates for a job title
// @Description List the highest scoring candidates for one job title
// @Tags Rankings
// @Produce json
// @Param job_title path string true "Job title"
// @Param limit query int false "Maximum results" default(5)
// @Success 200 {object} models.RankingsResponse "Top candidates"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /top_candidates/{job_title} [get]
func (h *RankingsHandler) GetTopCandidates(c *gin.Context) {
	jobTitle := c.Param("job_title")
	limit := queryInt(c, "limit", 5)

	candidates, err := h.firestoreClient.GetTopCandidates(c.Request.Context(), jobTitle, limit)
	if err != nil {
		log.Printf("[RankingsHandler] Failed to get top candidates: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to retrieve top candidates",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.RankingsResponse{
		JobTitle: jobTitle,
		Count:    len(candidates),
		Rankings: candidates,
	})
}

// GetCandidate fetches one analysis record
// @Summary Get candidate details
// @Description Fetch one stored analysis record by ID
// @Tags Rankings
// @Produce json
// @Param id path string true "Candidate document ID"
// @Success 200 {object} models.AnalysisRecord "Candidate record"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Router /candidate/{id} [get]
func (h *RankingsHandler) GetCandidate(c *gin.Context) {
	candidateID := c.Param("id")

	record, err := h.firestoreClient.GetCandidateByID(c.Request.Context(), candidateID)
	if err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "Candidate not found",
			Code:    http.StatusNotFound,
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, record)
}

// UpdateRemarks sets recruiter remarks on a record
// @Summary Update candidate remarks
// @Description Set recruiter remarks on a stored analysis record
// @Tags Rankings
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Candidate document ID"
// @Param remarks formData string true "Remarks text"
// @Success 200 {object} models.RemarksResponse "Remarks updated"
// @Failure 400 {object} models.ErrorResponse "Missing remarks"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /remarks/{id} [patch]
func (h *RankingsHandler) UpdateRemarks(c *gin.Context) {
	candidateID := c.Param("id")
	remarks := c.PostForm("remarks")
	if remarks == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "remarks is required",
			Code:  http.StatusBadRequest,
		})
		return
	}

	updated, err := h.firestoreClient.UpdateRemarks(c.Request.Context(), candidateID, remarks)
	if err != nil {
		log.Printf("[RankingsHandler] Failed to update remarks: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to update remarks",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	if !updated {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Candidate not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, models.RemarksResponse{
		Message:     "Remarks updated successfully",
		CandidateID: candidateID,
	})
}

// DeleteCandidate removes a stored analysis record
// @Summary Delete a candidate record
// @Description Remove a stored analysis record by ID
// @Tags Rankings
// @Produce json
// @Param id path string true "Candidate document ID"
// @Success 200 {object} models.DeleteResponse "Candidate deleted"
// @Failure 404 {object} models.ErrorResponse "Candidate not found"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /candidate/{id} [delete]
func (h *RankingsHandler) DeleteCandidate(c *gin.Context) {
	candidateID := c.Param("id")

	deleted, err := h.firestoreClient.DeleteAnalysis(c.Request.Context(), candidateID)
	if err != nil {
		log.Printf("[RankingsHandler] Failed to delete candidate: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to delete candidate",
			Code:  http.StatusInternalServerError,
		})
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "Candidate not found",
			Code:  http.StatusNotFound,
		})
		return
	}

	c.JSON(http.StatusOK, models.DeleteResponse{
		Message:     "Candidate deleted successfully",
		CandidateID: candidateID,
	})
}

// GetStatistics aggregates score statistics
// @Summary Get analysis statistics
// @Description Aggregate count and score statistics, optionally filtered by job title
// @Tags Rankings
// @Produce json
// @Param job_title query string false "Filter by job title"
// @Success 200 {object} models.StatisticsResponse "Statistics"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /statistics [get]
func (h *RankingsHandler) GetStatistics(c *gin.Context) {
	jobTitle := c.Query("job_title")

	stats, err := h.firestoreClient.GetStatistics(c.Request.Context(), jobTitle)
	if err != nil {
		log.Printf("[RankingsHandler] Failed to get statistics: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to retrieve statistics",
			Code:  http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, stats)
}

func queryInt(c *gin.Context, key string, defaultValue int) int {
	if value := c.Query(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}
