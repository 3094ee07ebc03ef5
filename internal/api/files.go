package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"firststeps/internal/metrics"
	"firststeps/internal/store"
)

// maxUploadBytes caps multipart uploads at 32 MiB.
const maxUploadBytes = 32 << 20

// filesHandler provides REST handlers for GridFS file endpoints.
type filesHandler struct {
	files  store.FileStoreIface
	logger *zap.Logger
}

// registerFileRoutes registers file routes on r.
func registerFileRoutes(r chi.Router, files store.FileStoreIface, logger *zap.Logger) {
	h := &filesHandler{files: files, logger: logger}
	r.Post("/files", h.Upload)
	r.Get("/files", h.List)
	r.Get("/files/{id}", h.Download)
	r.Delete("/files/{id}", h.Delete)
}

// Upload stores a multipart file in the GridFS bucket.
// POST /files
//
// @Summary      Upload a file
// @Description  Stores the uploaded multipart file in the GridFS bucket.
// @Tags         Files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "File to upload"
// @Success      201   {object}  FileResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Router       /files [post]
func (h *filesHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file field is required", "BAD_REQUEST")
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	info, err := h.files.Upload(r.Context(), header.Filename, contentType, file)
	if err != nil {
		h.logger.Error("upload file", zap.String("filename", header.Filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	metrics.FilesUploadedTotal.Inc()
	writeJSON(w, http.StatusCreated, toFileResponse(info))
}

// List returns files in the bucket, newest first.
// GET /files
//
// @Summary      List files
// @Description  Returns files in the GridFS bucket ordered by upload time, newest first.
// @Tags         Files
// @Produce      json
// @Param        limit  query     int  false  "Page size (default 50, max 200)"
// @Success      200    {object}  FileListResponse
// @Failure      500    {object}  ErrorResponse
// @Router       /files [get]
func (h *filesHandler) List(w http.ResponseWriter, r *http.Request) {
	_, limit := parsePagination(r)

	files, err := h.files.List(r.Context(), limit)
	if err != nil {
		h.logger.Error("list files", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	resp := &FileListResponse{Files: make([]FileResponse, 0, len(files))}
	for _, f := range files {
		resp.Files = append(resp.Files, toFileResponse(f))
	}

	writeJSON(w, http.StatusOK, resp)
}

// Download streams a file's contents out of the bucket.
// GET /files/{id}
//
// @Summary      Download a file
// @Description  Streams the file matching the ID, with its stored content type.
// @Tags         Files
// @Produce      application/octet-stream
// @Param        id   path  string  true  "File ID"
// @Success      200  {file}    file
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /files/{id} [get]
func (h *filesHandler) Download(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	info, err := h.files.Stat(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "File not found", "FILE_NOT_FOUND")
			return
		}
		h.logger.Error("stat file", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	contentType := info.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", info.Filename))
	w.Header().Set("Content-Length", strconv.FormatInt(info.Length, 10))

	if _, err := h.files.Download(r.Context(), id, w); err != nil {
		// Headers are already written; all we can do is log.
		h.logger.Error("stream file", zap.String("id", id), zap.Error(err))
		return
	}

	metrics.FilesDownloadedTotal.Inc()
}

// Delete removes a file and its chunks from the bucket.
// DELETE /files/{id}
//
// @Summary      Delete a file
// @Description  Removes the file matching the ID from the GridFS bucket.
// @Tags         Files
// @Param        id  path  string  true  "File ID"
// @Success      204
// @Failure      404  {object}  ErrorResponse
// @Failure      500  {object}  ErrorResponse
// @Router       /files/{id} [delete]
func (h *filesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.files.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "File not found", "FILE_NOT_FOUND")
			return
		}
		h.logger.Error("delete file", zap.String("id", id), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error", "INTERNAL_ERROR")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toFileResponse(f *store.FileInfo) FileResponse {
	return FileResponse{
		ID:          f.ID,
		Filename:    f.Filename,
		Length:      f.Length,
		ContentType: f.ContentType,
		UploadedAt:  f.UploadedAt,
	}
}
