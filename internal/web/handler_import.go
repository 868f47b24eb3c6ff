package web

import (
	"bytes"
	"io"
	"net/http"
	"strings"
)

const (
	maxPDFSize   = 100 * 1024 * 1024 // 100 MB
	maxPhotoSize = 50 * 1024 * 1024  // 50 MB
)

var pdfMagic = []byte("%PDF-")

// allowedImageTypes is the set of MIME types accepted for recipe photos.
// net/http.DetectContentType handles JPEG and PNG via magic-byte sniffing.
// WebP is detected separately because the WHATWG sniff spec (and therefore
// the stdlib) does not include a WebP signature.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
}

// isWebP reports whether data is a WebP image (RIFF container with "WEBP" at
// offset 8).
func isWebP(data []byte) bool {
	return len(data) >= 12 &&
		string(data[0:4]) == "RIFF" &&
		string(data[8:12]) == "WEBP"
}

func allowedImageMIME(data []byte) (string, bool) {
	if isWebP(data) {
		return "image/webp", true
	}
	mime := http.DetectContentType(data)
	if allowedImageTypes[mime] {
		return mime, true
	}
	return "", false
}

// handleImportPDF accepts a cookbook upload and starts a background job.
// Anything that is not a PDF is rejected before a job row exists.
func (s *Server) handleImportPDF(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPDFSize); err != nil {
		writeError(w, http.StatusBadRequest, "bad_form", "Ongeldig uploadformulier.")
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "file_required", "Kies een PDF-bestand om te uploaden.")
		return
	}
	defer closeWithLog(file, "pdf upload", s)

	data, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("read pdf upload failed", "error", err)
		writeInternalError(w)
		return
	}
	if !bytes.HasPrefix(data, pdfMagic) {
		writeError(w, http.StatusBadRequest, "not_a_pdf", "Dit bestand is geen PDF.")
		return
	}

	job, err := s.importer.StartPDFImport(r.Context(), header.Filename, data)
	if err != nil {
		s.logger.Error("start pdf import failed", "filename", header.Filename, "error", err)
		writeImportError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, toJobResponse(job))
}

func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.importer.GetJob(r.Context(), r.PathValue("id"))
	if err != nil {
		s.logger.Error("get job failed", "job_id", r.PathValue("id"), "error", err)
		writeInternalError(w)
		return
	}
	if job == nil {
		writeError(w, http.StatusNotFound, "not_found", "Importtaak niet gevonden.")
		return
	}
	writeJSON(w, http.StatusOK, toJobResponse(job))
}

func (s *Server) handleImportURL(w http.ResponseWriter, r *http.Request) {
	var req struct {
		URL string `json:"url"`
	}
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.URL) == "" {
		writeError(w, http.StatusBadRequest, "url_required", "Geef een recept-URL op.")
		return
	}

	recipe, err := s.importer.ImportFromURL(r.Context(), req.URL)
	if err != nil {
		s.logger.Warn("url import failed", "url", req.URL, "error", err)
		writeImportError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecipeResponse(recipe))
}

func (s *Server) handleImportText(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeBody(r, &req); err != nil || strings.TrimSpace(req.Text) == "" {
		writeError(w, http.StatusBadRequest, "text_required", "Plak de tekst van een recept.")
		return
	}

	recipe, err := s.importer.ImportFromText(r.Context(), req.Text)
	if err != nil {
		s.logger.Warn("text import failed", "error", err)
		writeImportError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecipeResponse(recipe))
}

// handleImportPhotos imports one recipe photographed across one or more
// images, uploaded as repeated "photos" form fields.
func (s *Server) handleImportPhotos(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxPhotoSize); err != nil {
		writeError(w, http.StatusBadRequest, "bad_form", "Ongeldig uploadformulier.")
		return
	}
	headers := r.MultipartForm.File["photos"]
	if len(headers) == 0 {
		writeError(w, http.StatusBadRequest, "photos_required", "Voeg minstens één foto toe.")
		return
	}

	images := make([][]byte, 0, len(headers))
	mimeTypes := make([]string, 0, len(headers))
	for _, h := range headers {
		f, err := h.Open()
		if err != nil {
			s.logger.Error("open photo failed", "filename", h.Filename, "error", err)
			writeInternalError(w)
			return
		}
		data, err := io.ReadAll(f)
		closeWithLog(f, "photo upload", s)
		if err != nil {
			s.logger.Error("read photo failed", "filename", h.Filename, "error", err)
			writeInternalError(w)
			return
		}
		mime, ok := allowedImageMIME(data)
		if !ok {
			writeError(w, http.StatusBadRequest, "unsupported_image",
				"Alleen JPEG-, PNG- of WebP-foto's worden ondersteund.")
			return
		}
		images = append(images, data)
		mimeTypes = append(mimeTypes, mime)
	}

	recipe, err := s.importer.ImportFromPhotos(r.Context(), images, mimeTypes)
	if err != nil {
		s.logger.Warn("photo import failed", "photos", len(images), "error", err)
		writeImportError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, toRecipeResponse(recipe))
}

// closeWithLog closes c and logs any error, using label to identify the
// resource.
func closeWithLog(c io.Closer, label string, s *Server) {
	if err := c.Close(); err != nil {
		s.logger.Error("failed to close resource", "label", label, "error", err)
	}
}
