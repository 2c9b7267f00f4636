package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/rockdove/aviation-backend/internal/models"
	pgrepo "github.com/rockdove/aviation-backend/internal/repositories/postgres"
	"github.com/rockdove/aviation-backend/internal/utils"
)

// Attachment is a stored file resolved for download.
type Attachment struct {
	Filename string
	Mimetype string
	Data     []byte
}

// CSVExport is a rendered table ready for attachment delivery.
type CSVExport struct {
	Filename string
	Data     []byte
}

type AdminService interface {
	FetchContact(ctx context.Context) ([]models.ContactSubmission, error)
	FetchRFQ(ctx context.Context) ([]models.RFQSubmission, error)
	FetchCareer(ctx context.Context) ([]models.CareerApplicationSummary, error)
	DownloadFile(ctx context.Context, id uint, slot string) (*Attachment, error)
	ExportCSV(ctx context.Context, kind string) (*CSVExport, error)
}

type adminService struct {
	contacts pgrepo.ContactRepository
	rfqs     pgrepo.RFQRepository
	careers  pgrepo.CareerRepository
}

func NewAdminService(contacts pgrepo.ContactRepository, rfqs pgrepo.RFQRepository, careers pgrepo.CareerRepository) AdminService {
	return &adminService{contacts: contacts, rfqs: rfqs, careers: careers}
}

func (s *adminService) FetchContact(ctx context.Context) ([]models.ContactSubmission, error) {
	const op = "AdminService.FetchContact"

	rows, err := s.contacts.ListNewestFirst(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list contact submissions", err)
	}
	return rows, nil
}

func (s *adminService) FetchRFQ(ctx context.Context) ([]models.RFQSubmission, error) {
	const op = "AdminService.FetchRFQ"

	rows, err := s.rfqs.ListNewestFirst(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list rfq submissions", err)
	}
	return rows, nil
}

func (s *adminService) FetchCareer(ctx context.Context) ([]models.CareerApplicationSummary, error) {
	const op = "AdminService.FetchCareer"

	rows, err := s.careers.ListNewestFirst(ctx)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to list career applications", err)
	}
	return rows, nil
}

func (s *adminService) DownloadFile(ctx context.Context, id uint, slot string) (*Attachment, error) {
	const op = "AdminService.DownloadFile"

	if slot != "resume" && slot != "photo" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid type", nil)
	}

	row, err := s.careers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load career application", err)
	}

	var out Attachment
	switch slot {
	case "resume":
		out = Attachment{Data: row.ResumeData, Filename: deref(row.ResumeFilename), Mimetype: deref(row.ResumeMimetype)}
	case "photo":
		out = Attachment{Data: row.PhotoData, Filename: deref(row.PhotoFilename), Mimetype: deref(row.PhotoMimetype)}
	}
	if len(out.Data) == 0 {
		return nil, utils.E(utils.CodeNotFound, op, "File data not found", nil)
	}
	return &out, nil
}

func (s *adminService) ExportCSV(ctx context.Context, kind string) (*CSVExport, error) {
	const op = "AdminService.ExportCSV"

	var header []string
	var records [][]string

	switch kind {
	case "contact":
		rows, err := s.FetchContact(ctx)
		if err != nil {
			return nil, err
		}
		header = []string{"id", "name", "email", "phone", "message", "created_at"}
		for _, r := range rows {
			records = append(records, []string{
				strconv.FormatUint(uint64(r.ID), 10),
				r.Name, r.Email, r.Phone, r.Message,
				r.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
	case "rfq":
		rows, err := s.FetchRFQ(ctx)
		if err != nil {
			return nil, err
		}
		header = []string{"id", "part_number", "condition_code", "description", "certificate", "quantity", "notes", "created_at"}
		for _, r := range rows {
			records = append(records, []string{
				strconv.FormatUint(uint64(r.ID), 10),
				r.PartNumber, deref(r.ConditionCode), r.Description, deref(r.Certificate),
				r.Quantity, r.Notes,
				r.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
	case "career":
		rows, err := s.FetchCareer(ctx)
		if err != nil {
			return nil, err
		}
		header = []string{"id", "job_type", "job_role", "position", "name", "email", "phone", "education", "address",
			"resume_filename", "resume_mimetype", "photo_filename", "photo_mimetype", "created_at"}
		for _, r := range rows {
			records = append(records, []string{
				strconv.FormatUint(uint64(r.ID), 10),
				r.JobType, r.JobRole, r.Position, r.Name, r.Email, r.Phone, r.Education, r.Address,
				deref(r.ResumeFilename), deref(r.ResumeMimetype),
				deref(r.PhotoFilename), deref(r.PhotoMimetype),
				r.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
	default:
		return nil, utils.E(utils.CodeInvalidArgument, op, "Invalid type", nil)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to render csv", err)
	}
	if err := w.WriteAll(records); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to render csv", err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to render csv", err)
	}

	return &CSVExport{
		Filename: fmt.Sprintf("%s_submissions_%s.csv", kind, time.Now().UTC().Format("2006-01-02")),
		Data:     buf.Bytes(),
	}, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
