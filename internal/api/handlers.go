package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/isaachorowitz/freedom-tools-manuals/internal/audit"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/classify"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/pipeline"
	"github.com/isaachorowitz/freedom-tools-manuals/internal/source"
)

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	if !source.IsSupportedExtension(filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	title := r.FormValue("title")
	if title == "" {
		title = strings.TrimSuffix(filename, filepath.Ext(filename))
	}
	model := r.FormValue("model")

	job := pipeline.NewJob(filename, title, model, data)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/generate/%s/status", job.ID),
		"pdf_url":  fmt.Sprintf("/api/generate/%s/pdf", job.ID),
	})
}

func (s *Server) handleGenerateStatus(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

func (s *Server) handleGeneratePDF(w http.ResponseWriter, r *http.Request) {
	job := s.orchestrator.GetJob(chi.URLParam(r, "jobID"))
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	snap := job.Snapshot()
	if snap.Status != pipeline.StatusCompleted {
		jsonError(w, fmt.Sprintf("job is %s, not completed", snap.Status), http.StatusConflict)
		return
	}
	pdfName := strings.TrimSuffix(snap.Filename, filepath.Ext(snap.Filename)) + ".pdf"
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", pdfName))
	w.Write(job.PDF())
}

// handleBlocks classifies an uploaded manual synchronously and returns
// the typed block stream.
func (s *Server) handleBlocks(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := sanitizeFilename(header.Filename)
	reader, err := source.ForFile(filename)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}
	lines, err := reader.Lines(io.LimitReader(file, s.cfg.MaxUploadBytes))
	if err != nil {
		jsonError(w, "read file: "+err.Error(), http.StatusBadRequest)
		return
	}

	blocks := classify.Blocks(strings.Join(lines, "\n"))
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename": filename,
		"lines":    len(lines),
		"blocks":   blocks,
	})
}

// handleAudit compares an uploaded original PDF and rewritten text and
// returns the missing-keyword report.
func (s *Server) handleAudit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*2+1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	origText, origName, err := s.formPDFText(r, "original")
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	rewritten, rewName, err := formFileBytes(r, "rewritten", s.cfg.MaxUploadBytes)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := audit.Report{
		Model:     r.FormValue("model"),
		Original:  origName,
		Rewritten: rewName,
		Missing:   audit.MissingKeywords(origText, string(rewritten), audit.DefaultKeywords),
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(report)
}

func (s *Server) handleRenderStats(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(s.orchestrator.Stats().Snapshot())
}

// formPDFText spools an uploaded PDF to disk and extracts its text;
// ledongthuc/pdf needs a seekable file.
func (s *Server) formPDFText(r *http.Request, field string) (string, string, error) {
	data, name, err := formFileBytes(r, field, s.cfg.MaxUploadBytes)
	if err != nil {
		return "", "", err
	}

	tmp, err := os.CreateTemp("", "manuals-audit-*.pdf")
	if err != nil {
		return "", "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return "", "", fmt.Errorf("write temp file: %w", err)
	}
	tmp.Close()

	text, err := audit.ExtractPDFText(tmpPath)
	if err != nil {
		return "", "", fmt.Errorf("extract %s: %w", name, err)
	}
	return text, name, nil
}

func formFileBytes(r *http.Request, field string, limit int64) ([]byte, string, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		return nil, "", fmt.Errorf("%s is required: %w", field, err)
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, limit+1))
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", field, err)
	}
	if int64(len(data)) > limit {
		return nil, "", fmt.Errorf("%s exceeds max size (%d bytes)", field, limit)
	}
	return data, sanitizeFilename(header.Filename), nil
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
