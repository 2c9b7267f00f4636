package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rockdove/aviation-backend/internal/auth"
	"github.com/rockdove/aviation-backend/internal/services"
	"github.com/rockdove/aviation-backend/internal/utils"
)

// adminAction is the closed set of operations the admin endpoint serves.
// Anything outside it is rejected before dispatch.
type adminAction string

const (
	actionLogin        adminAction = "login"
	actionFetchContact adminAction = "fetch_contact"
	actionFetchRFQ     adminAction = "fetch_rfq"
	actionFetchCareer  adminAction = "fetch_career"
	actionDownloadFile adminAction = "download_file"
	actionExportCSV    adminAction = "export_csv"
)

func parseAction(raw string) (adminAction, bool) {
	switch a := adminAction(raw); a {
	case actionLogin, actionFetchContact, actionFetchRFQ, actionFetchCareer, actionDownloadFile, actionExportCSV:
		return a, true
	default:
		return "", false
	}
}

type AdminHandler struct {
	svc      services.AdminService
	verifier auth.Verifier
}

func NewAdminHandler(svc services.AdminService, verifier auth.Verifier) *AdminHandler {
	return &AdminHandler{svc: svc, verifier: verifier}
}

type LoginRequest struct {
	Secret string `json:"secret"`
}

type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// Handle multiplexes the admin actions. Authentication for everything except
// login has already happened in middleware by the time this runs.
func (h *AdminHandler) Handle(c *gin.Context) {
	const op = "AdminHandler.Handle"

	action, ok := parseAction(c.Query("action"))
	if !ok {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Invalid action", nil))
		return
	}

	switch action {
	case actionLogin:
		h.login(c)
	case actionFetchContact:
		rows, err := h.svc.FetchContact(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, DataResponse{Success: true, Data: rows})
	case actionFetchRFQ:
		rows, err := h.svc.FetchRFQ(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, DataResponse{Success: true, Data: rows})
	case actionFetchCareer:
		rows, err := h.svc.FetchCareer(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, DataResponse{Success: true, Data: rows})
	case actionDownloadFile:
		h.downloadFile(c)
	case actionExportCSV:
		h.exportCSV(c)
	}
}

// login checks the supplied secret and, on match, hands it back as the bearer
// token. No session is minted; the secret itself is the credential.
func (h *AdminHandler) login(c *gin.Context) {
	credential := bearerToken(c)
	if credential == "" {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			credential = req.Secret
		}
	}

	if credential == "" || !h.verifier.Verify(credential) {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid secret"})
		return
	}

	c.JSON(http.StatusOK, LoginResponse{Success: true, Token: credential})
}

func (h *AdminHandler) downloadFile(c *gin.Context) {
	const op = "AdminHandler.downloadFile"

	idStr := c.Query("id")
	slot := c.Query("type")
	if idStr == "" || slot == "" {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Missing ID or type", nil))
		return
	}

	id, err := strconv.ParseUint(idStr, 10, 64)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, op, "Invalid ID", err))
		return
	}

	att, err := h.svc.DownloadFile(c.Request.Context(), uint(id), slot)
	if err != nil {
		writeError(c, err)
		return
	}

	mimeType := att.Mimetype
	if mimeType == "" {
		mimeType = "application/octet-stream"
	}
	fileName := att.Filename
	if fileName == "" {
		fileName = "download"
	}

	c.Header("Content-Disposition", attachmentDisposition(fileName))
	c.Data(http.StatusOK, mimeType, att.Data)
}

// attachmentDisposition quotes a filename for Content-Disposition. Intake
// sanitizes names on the way in, but rows written before that still need
// quotes and CR/LF stripped here.
func attachmentDisposition(name string) string {
	name = strings.NewReplacer(`"`, "", `\`, "", "\r", "", "\n", "").Replace(name)
	return `attachment; filename="` + name + `"`
}

func (h *AdminHandler) exportCSV(c *gin.Context) {
	out, err := h.svc.ExportCSV(c.Request.Context(), c.Query("type"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.Header("Content-Disposition", attachmentDisposition(out.Filename))
	c.Data(http.StatusOK, "text/csv", out.Data)
}
