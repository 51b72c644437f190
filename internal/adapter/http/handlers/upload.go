package handlers

import (
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"hotel_procurement/internal/usecase"
	"hotel_procurement/pkg"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

const maxUploadBytes = 10 << 20

var (
	errMissingFile  = pkg.NewDomainErrorSimple("FILE_REQUIRED", "A file is required in the \"file\" form field", http.StatusBadRequest)
	errFileTooLarge = pkg.NewDomainErrorSimple("FILE_TOO_LARGE", "File exceeds the 10MB limit", http.StatusRequestEntityTooLarge)
)

// readUpload loads the "file" form field. The mime type is sniffed from the
// content rather than trusted from the client.
func readUpload(c *gin.Context) (usecase.FileUpload, *pkg.AppError) {
	fh, err := c.FormFile("file")
	if err != nil {
		return usecase.FileUpload{}, errMissingFile
	}
	if fh.Size > maxUploadBytes {
		return usecase.FileUpload{}, errFileTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return usecase.FileUpload{}, pkg.NewDomainError("INTERNAL_ERROR", "Could not read upload", err, http.StatusInternalServerError)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
	if err != nil {
		return usecase.FileUpload{}, pkg.NewDomainError("INTERNAL_ERROR", "Could not read upload", err, http.StatusInternalServerError)
	}
	if len(data) > maxUploadBytes {
		return usecase.FileUpload{}, errFileTooLarge
	}
	if len(data) == 0 {
		return usecase.FileUpload{}, errMissingFile
	}

	mimeType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return usecase.FileUpload{
		FileName: filepath.Base(fh.Filename),
		MimeType: strings.TrimSpace(mimeType),
		Data:     data,
	}, nil
}
