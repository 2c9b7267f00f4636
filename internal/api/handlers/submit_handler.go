package handlers

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rockdove/aviation-backend/internal/services"
	"github.com/rockdove/aviation-backend/internal/utils"
)

type SubmitHandler struct {
	svc            services.IntakeService
	maxUploadBytes int64
}

func NewSubmitHandler(svc services.IntakeService, maxUploadBytes int64) *SubmitHandler {
	return &SubmitHandler{svc: svc, maxUploadBytes: maxUploadBytes}
}

// Submit accepts one contact, RFQ or career submission. The body may be
// multipart (required for career file parts) or plain URL-encoded.
func (h *SubmitHandler) Submit(c *gin.Context) {
	const op = "SubmitHandler.Submit"

	typ := c.PostForm("type")
	if typ == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Missing form type", nil))
		return
	}

	switch typ {
	case "contact":
		err := h.svc.SubmitContact(c.Request.Context(), services.ContactInput{
			Name:    c.PostForm("name"),
			Email:   c.PostForm("email"),
			Phone:   c.PostForm("phone"),
			Message: c.PostForm("message"),
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Contact form submitted"})

	case "rfq":
		// The public site still posts quantity under its legacy field name
		// "quality"; accept both.
		quantity := c.PostForm("quantity")
		if quantity == "" {
			quantity = c.PostForm("quality")
		}
		err := h.svc.SubmitRFQ(c.Request.Context(), services.RFQInput{
			PartNumber:  c.PostForm("partNumber"),
			Condition:   c.PostForm("condition"),
			Description: c.PostForm("description"),
			Certificate: c.PostForm("certificate"),
			Quantity:    quantity,
			Notes:       c.PostForm("notes"),
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "RFQ submitted"})

	case "career":
		resume, err := h.readUpload(c, "resume")
		if err != nil {
			writeError(c, err)
			return
		}
		photo, err := h.readUpload(c, "photo")
		if err != nil {
			writeError(c, err)
			return
		}
		err = h.svc.SubmitCareer(c.Request.Context(), services.CareerInput{
			JobType:   c.PostForm("jobType"),
			JobRole:   c.PostForm("jobRole"),
			Position:  c.PostForm("position"),
			Name:      c.PostForm("name"),
			Email:     c.PostForm("email"),
			Phone:     c.PostForm("phone"),
			Education: c.PostForm("education"),
			Address:   c.PostForm("address"),
			Resume:    resume,
			Photo:     photo,
		})
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Application submitted"})

	default:
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Invalid form type", nil))
	}
}

// readUpload reads an optional multipart file part fully into memory.
// A missing part is not an error; an oversized one is.
func (h *SubmitHandler) readUpload(c *gin.Context, field string) (*services.FileUpload, error) {
	const op = "SubmitHandler.readUpload"

	fh, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, utils.E(utils.CodeInvalidArgument, op, "Malformed upload for field '"+field+"'", err)
	}

	if fh.Size > h.maxUploadBytes {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Uploaded file '"+field+"' is too large", nil)
	}

	file, err := fh.Open()
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to open upload", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to read upload", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	mimeType := fh.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(data)
	}

	return &services.FileUpload{
		Filename: sanitizeFilename(fh.Filename),
		Mimetype: mimeType,
		Data:     data,
	}, nil
}

// sanitizeFilename strips path components plus the characters that would
// corrupt a Content-Disposition header on the way back out.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	if name == "." || name == string(filepath.Separator) {
		return ""
	}
	return strings.NewReplacer(`"`, "", `\`, "", "\r", "", "\n", "").Replace(name)
}
