package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/rockdove/aviation-backend/internal/models"
	pgrepo "github.com/rockdove/aviation-backend/internal/repositories/postgres"
	"github.com/rockdove/aviation-backend/internal/utils"
)

func newAdmin(t *testing.T) (AdminService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewAdminService(pgrepo.NewContactRepo(db), pgrepo.NewRFQRepo(db), pgrepo.NewCareerRepo(db))
	return svc, db
}

func seedCareer(t *testing.T, db *gorm.DB, withResume bool) *models.CareerApplication {
	t.Helper()
	row := &models.CareerApplication{
		JobType: "full-time", JobRole: "technician", Position: "avionics",
		Name: "Jane Doe", Email: "jane@x.com", Phone: "555",
		Education: "BSc", Address: "somewhere",
	}
	if withResume {
		name := "cv.pdf"
		mime := "application/pdf"
		row.ResumeFilename = &name
		row.ResumeMimetype = &mime
		row.ResumeData = []byte("%PDF-1.4 fake resume")
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func TestDownloadFileResume(t *testing.T) {
	svc, db := newAdmin(t)
	row := seedCareer(t, db, true)

	att, err := svc.DownloadFile(context.Background(), row.ID, "resume")
	require.NoError(t, err)
	assert.Equal(t, "cv.pdf", att.Filename)
	assert.Equal(t, "application/pdf", att.Mimetype)
	assert.Equal(t, []byte("%PDF-1.4 fake resume"), att.Data)
}

func TestDownloadFileUnknownID(t *testing.T) {
	svc, _ := newAdmin(t)

	_, err := svc.DownloadFile(context.Background(), 999, "resume")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestDownloadFileEmptySlot(t *testing.T) {
	svc, db := newAdmin(t)
	row := seedCareer(t, db, true)

	_, err := svc.DownloadFile(context.Background(), row.ID, "photo")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeNotFound))
}

func TestDownloadFileBadSlot(t *testing.T) {
	svc, db := newAdmin(t)
	row := seedCareer(t, db, true)

	_, err := svc.DownloadFile(context.Background(), row.ID, "passport")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestExportCSVContact(t *testing.T) {
	svc, db := newAdmin(t)
	require.NoError(t, db.Create(&models.ContactSubmission{
		Name: "Jane \"JD\" Doe", Email: "jane@x.com", Phone: "555", Message: "line one\nline two",
	}).Error)

	out, err := svc.ExportCSV(context.Background(), "contact")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out.Filename, "contact_submissions_"))
	assert.True(t, strings.HasSuffix(out.Filename, ".csv"))

	body := string(out.Data)
	lines := strings.SplitN(body, "\n", 2)
	assert.Equal(t, "id,name,email,phone,message,created_at", strings.TrimRight(lines[0], "\r"))
	// embedded quotes and newlines must survive RFC 4180 quoting
	assert.Contains(t, body, `"Jane ""JD"" Doe"`)
	assert.Contains(t, body, "line one\nline two")
}

func TestExportCSVCareerOmitsBlobColumns(t *testing.T) {
	svc, db := newAdmin(t)
	seedCareer(t, db, true)

	out, err := svc.ExportCSV(context.Background(), "career")
	require.NoError(t, err)

	body := string(out.Data)
	assert.Contains(t, body, "resume_filename")
	assert.Contains(t, body, "cv.pdf")
	assert.NotContains(t, body, "fake resume")
}

func TestExportCSVBadKind(t *testing.T) {
	svc, _ := newAdmin(t)

	_, err := svc.ExportCSV(context.Background(), "everything")
	require.Error(t, err)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}
