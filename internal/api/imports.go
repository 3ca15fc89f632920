package api

import (
	"errors"
	"net/http"

	"github.com/orgchart/orgchart-backend/internal/api/apierror"
	"github.com/orgchart/orgchart-backend/internal/importer"
	"github.com/sirupsen/logrus"
)

func (h *Handler) importPeople(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(h.cfg.MaxUploadBytes); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.error(w, r, apierror.New(http.StatusRequestEntityTooLarge, "file_too_large", "Uploaded file is larger than %d bytes.", maxBytesErr.Limit))
			return
		}
		h.error(w, r, apierror.New(http.StatusBadRequest, "invalid_upload", "Request is not a valid multipart upload."))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.log.WithError(err).Warn("removing uploaded files")
		}
	}()

	file, header, err := r.FormFile("file")
	if err != nil {
		h.error(w, r, apierror.New(http.StatusBadRequest, "missing_file", "Upload the people as the multipart field \"file\"."))
		return
	}
	defer file.Close()

	rows, rowErrors, err := importer.Parse(header.Filename, file)
	if err != nil {
		h.error(w, r, apierror.New(http.StatusBadRequest, "invalid_file", "Could not read %s: %v", header.Filename, err))
		return
	}

	source := importer.Source(header.Filename)
	result, err := h.repo.ImportPeople(r.Context(), rows, source)
	if err != nil {
		h.error(w, r, err)
		return
	}
	result.AddErrors(rowErrors...)

	h.actorLog(r).WithFields(logrus.Fields{
		"file":    header.Filename,
		"source":  source,
		"created": len(result.Created),
		"failed":  len(result.Errors),
	}).Info("people imported")
	writeJSON(w, http.StatusOK, result)
}
