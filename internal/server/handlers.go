package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/jonathan/career-advisor/internal/types"
	"go.uber.org/zap"
)

// validatable is implemented by every request DTO.
type validatable interface {
	Validate() error
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, types.HealthResponse{
		Status:   "ok",
		Version:  Version,
		Envelope: s.envelope(r),
	})
}

// handleChat answers one career question
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req types.ChatRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	reply, err := s.advisor.Chat(r.Context(), req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.ChatResponse{
		Response: reply,
		Envelope: s.envelope(r),
	})
}

// handleAnalyzeQuiz turns quiz answers into a profile and structured analysis
func (s *Server) handleAnalyzeQuiz(w http.ResponseWriter, r *http.Request) {
	var req types.QuizRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	result, err := s.advisor.AnalyzeQuiz(r.Context(), req.Answers)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.QuizAnalysisResponse{
		Profile:     result.Profile,
		Analysis:    result.Analysis,
		RawAnalysis: result.RawAnalysis,
		Envelope:    s.envelope(r),
	})
}

// handleCareerAssessment analyzes a free-text self description
func (s *Server) handleCareerAssessment(w http.ResponseWriter, r *http.Request) {
	var req types.AssessmentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	result, err := s.advisor.AssessCareer(r.Context(), req)
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.AssessmentResponse{
		Analysis:    result.Analysis,
		RawAnalysis: result.RawAnalysis,
		Envelope:    s.envelope(r),
	})
}

// handleIndustryInsights returns structured insights for up to five industries
func (s *Server) handleIndustryInsights(w http.ResponseWriter, r *http.Request) {
	var req types.InsightsRequest
	if err := decodeAndValidate(r, &req); err != nil {
		s.handleError(w, r, err)
		return
	}

	insights, err := s.advisor.IndustryInsights(r.Context(), req.Names())
	if err != nil {
		s.handleError(w, r, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, types.InsightsResponse{
		Insights: insights,
		Envelope: s.envelope(r),
	})
}

// decodeAndValidate reads one JSON value into v. Unknown fields are ignored.
func decodeAndValidate(r *http.Request, v validatable) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return &ErrDecode{Err: errors.New("request body is required")}
		}
		return &ErrDecode{Err: err}
	}
	return v.Validate()
}

func (s *Server) envelope(r *http.Request) types.Envelope {
	return types.Envelope{
		Timestamp: s.now().UTC().Format(time.RFC3339),
		RequestID: RequestIDFrom(r.Context()),
	}
}

// handleError logs err and writes the mapped status and public message.
func (s *Server) handleError(w http.ResponseWriter, r *http.Request, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed",
			zap.String("request_id", RequestIDFrom(r.Context())),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err))
	}
	s.errorResponse(w, r, status, PublicMessage(err))
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("failed to encode JSON response", zap.Error(err))
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.jsonResponse(w, status, types.ErrorResponse{
		Error:     message,
		RequestID: RequestIDFrom(r.Context()),
	})
}
