package server

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/YutoSekiguchi/Lyricium/logger"
	"github.com/YutoSekiguchi/Lyricium/storage"

	"github.com/google/uuid"
)

// UploadAudioHandler handles audio file uploads.
// Expected multipart form field:
// - file: the audio file
// The file is stored under the upload directory as <uuid><original ext> and
// the relative path is returned. No type or size validation happens here;
// servable types are enforced at read time by the static filter.
func (h *APIHandler) UploadAudioHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil { // 32MB max memory
		respondError(w, http.StatusBadRequest, fmt.Sprintf("Failed to parse multipart form: %v", err))
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, "Missing 'file' in form")
		return
	}
	defer file.Close()

	if err := os.MkdirAll(h.cfg.UploadDir, 0755); err != nil {
		logger.Error("Failed to create upload directory", logger.String("dir", h.cfg.UploadDir), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	fileName := uuid.New().String() + filepath.Ext(header.Filename)
	filePath := filepath.Join(h.cfg.UploadDir, fileName)

	dst, err := os.Create(filePath)
	if err != nil {
		logger.Error("Failed to create upload file", logger.String("path", filePath), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		logger.Error("Failed to write upload file", logger.String("path", filePath), logger.ErrorField(err))
		respondError(w, http.StatusInternalServerError, "Failed to store file")
		return
	}

	// Best effort: a mirror failure never fails the upload.
	mirrored := false
	if storage.Enabled() {
		contentType := header.Header.Get("Content-Type")
		if err := storage.MirrorFile(r.Context(), fileName, filePath, contentType); err != nil {
			logger.Warn("Failed to mirror upload to object storage",
				logger.String("object", fileName), logger.ErrorField(err))
		} else {
			mirrored = true
			logger.Debug("Mirrored upload to object storage", logger.String("object", fileName))
		}
	}

	logger.Info("Stored uploaded file",
		logger.String("original", header.Filename), logger.String("path", filePath),
		logger.Bool("mirrored", mirrored))
	respondJSON(w, http.StatusOK, map[string]string{"path": filePath})
}
