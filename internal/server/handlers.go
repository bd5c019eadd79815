package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/clauselens/clauselens/internal/extract"
	"github.com/clauselens/clauselens/internal/model"
)

const (
	previewLength = 500

	// multipartMemoryLimit is the in-memory threshold for multipart parsing;
	// larger parts spill to disk. The request size cap is enforced
	// separately via http.MaxBytesReader.
	multipartMemoryLimit = 4 << 20
)

type analyzeRequest struct {
	Text string `json:"text"`
}

type compareRequest struct {
	Doc1Text string `json:"doc1_text"`
	Doc2Text string `json:"doc2_text"`
}

type uploadResponse struct {
	Filename    string `json:"filename"`
	TextPreview string `json:"text_preview"`
	FileID      string `json:"file_id"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "clauselens legal document annotation API\n")
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	report, err := s.analyzer.Analyze(r.Context(), req.Text)
	if err != nil {
		if errors.Is(err, model.ErrEmptyInput) {
			s.respondError(w, http.StatusBadRequest, "no text provided")
			return
		}
		s.logger.Error("analysis failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.respondJSON(w, http.StatusOK, report)
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.analyzer.Compare(req.Doc1Text, req.Doc2Text)
	if err != nil {
		if errors.Is(err, model.ErrEmptyInput) {
			s.respondError(w, http.StatusBadRequest, "both documents required for comparison")
			return
		}
		s.logger.Error("comparison failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, "comparison failed")
		return
	}

	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	// Reject oversized bodies outright rather than truncating them.
	r.Body = http.MaxBytesReader(w, r.Body, s.config.HTTP.MaxUploadBytes)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		s.respondError(w, http.StatusBadRequest, "read upload")
		return
	}

	filename := filepath.Base(header.Filename)
	text, err := s.analyzer.ExtractFile(filename, data)
	if err != nil {
		if errors.Is(err, extract.ErrUnsupportedFormat) {
			s.respondError(w, http.StatusUnsupportedMediaType, "unsupported file format")
			return
		}
		s.logger.Error("extraction failed", zap.String("filename", filename), zap.Error(err))
		s.respondError(w, http.StatusUnprocessableEntity, "text extraction failed")
		return
	}

	preview := text
	if len(preview) > previewLength {
		preview = preview[:previewLength] + "..."
	}

	hash := sha256.Sum256([]byte(filename))
	s.respondJSON(w, http.StatusOK, uploadResponse{
		Filename:    filename,
		TextPreview: preview,
		FileID:      hex.EncodeToString(hash[:]),
	})
}

func (s *Server) handleNLU(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Text == "" {
		s.respondError(w, http.StatusBadRequest, "no text provided")
		return
	}

	// Never fails: degrades to the documented mock result.
	result := s.nlu.Analyze(r.Context(), req.Text)
	s.respondJSON(w, http.StatusOK, result)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorResponse{Error: message})
}
