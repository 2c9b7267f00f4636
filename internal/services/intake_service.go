package services

import (
	"context"

	"github.com/rockdove/aviation-backend/internal/models"
	pgrepo "github.com/rockdove/aviation-backend/internal/repositories/postgres"
	"github.com/rockdove/aviation-backend/internal/utils"
)

// FileUpload is an uploaded attachment already read fully into memory.
type FileUpload struct {
	Filename string
	Mimetype string
	Data     []byte
}

type ContactInput struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type RFQInput struct {
	PartNumber  string
	Condition   string
	Description string
	Certificate string
	Quantity    string
	Notes       string
}

type CareerInput struct {
	JobType   string
	JobRole   string
	Position  string
	Name      string
	Email     string
	Phone     string
	Education string
	Address   string
	Resume    *FileUpload
	Photo     *FileUpload
}

type IntakeService interface {
	SubmitContact(ctx context.Context, in ContactInput) error
	SubmitRFQ(ctx context.Context, in RFQInput) error
	SubmitCareer(ctx context.Context, in CareerInput) error
}

type intakeService struct {
	contacts pgrepo.ContactRepository
	rfqs     pgrepo.RFQRepository
	careers  pgrepo.CareerRepository
}

func NewIntakeService(contacts pgrepo.ContactRepository, rfqs pgrepo.RFQRepository, careers pgrepo.CareerRepository) IntakeService {
	return &intakeService{contacts: contacts, rfqs: rfqs, careers: careers}
}

func (s *intakeService) SubmitContact(ctx context.Context, in ContactInput) error {
	const op = "IntakeService.SubmitContact"

	if in.Name == "" || in.Email == "" || in.Phone == "" || in.Message == "" {
		return utils.E(utils.CodeInvalidArgument, op, "Missing required fields", nil)
	}

	row := &models.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   in.Phone,
		Message: in.Message,
	}
	if err := s.contacts.Insert(ctx, row); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to persist contact submission", err)
	}
	return nil
}

func (s *intakeService) SubmitRFQ(ctx context.Context, in RFQInput) error {
	const op = "IntakeService.SubmitRFQ"

	if in.PartNumber == "" || in.Description == "" || in.Quantity == "" || in.Notes == "" {
		return utils.E(utils.CodeInvalidArgument, op, "Missing required fields", nil)
	}

	row := &models.RFQSubmission{
		PartNumber:    in.PartNumber,
		ConditionCode: optional(in.Condition),
		Description:   in.Description,
		Certificate:   optional(in.Certificate),
		Quantity:      in.Quantity,
		Notes:         in.Notes,
	}
	if err := s.rfqs.Insert(ctx, row); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to persist rfq submission", err)
	}
	return nil
}

func (s *intakeService) SubmitCareer(ctx context.Context, in CareerInput) error {
	const op = "IntakeService.SubmitCareer"

	if in.JobType == "" || in.JobRole == "" || in.Position == "" || in.Name == "" ||
		in.Email == "" || in.Phone == "" || in.Education == "" || in.Address == "" {
		return utils.E(utils.CodeInvalidArgument, op, "Missing required text fields", nil)
	}

	row := &models.CareerApplication{
		JobType:   in.JobType,
		JobRole:   in.JobRole,
		Position:  in.Position,
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Education: in.Education,
		Address:   in.Address,
	}
	// An empty upload leaves the whole slot NULL, never a partial one.
	if f := in.Resume; f != nil && len(f.Data) > 0 {
		row.ResumeData = f.Data
		row.ResumeFilename = optional(f.Filename)
		row.ResumeMimetype = optional(f.Mimetype)
	}
	if f := in.Photo; f != nil && len(f.Data) > 0 {
		row.PhotoData = f.Data
		row.PhotoFilename = optional(f.Filename)
		row.PhotoMimetype = optional(f.Mimetype)
	}

	if err := s.careers.Insert(ctx, row); err != nil {
		return utils.E(utils.CodeInternal, op, "failed to persist career application", err)
	}
	return nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
