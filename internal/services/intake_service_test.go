package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rockdove/aviation-backend/internal/models"
	pgrepo "github.com/rockdove/aviation-backend/internal/repositories/postgres"
	"github.com/rockdove/aviation-backend/internal/utils"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.ContactSubmission{},
		&models.RFQSubmission{},
		&models.CareerApplication{},
	))
	return db
}

func newIntake(t *testing.T) (IntakeService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewIntakeService(pgrepo.NewContactRepo(db), pgrepo.NewRFQRepo(db), pgrepo.NewCareerRepo(db))
	return svc, db
}

func validContact() ContactInput {
	return ContactInput{Name: "Jane Doe", Email: "jane@x.com", Phone: "555", Message: "Hi"}
}

func validRFQ() RFQInput {
	return RFQInput{PartNumber: "PN-100", Description: "pump", Quantity: "2", Notes: "AOG"}
}

func validCareer() CareerInput {
	return CareerInput{
		JobType: "full-time", JobRole: "technician", Position: "avionics",
		Name: "Jane Doe", Email: "jane@x.com", Phone: "555",
		Education: "BSc", Address: "somewhere",
	}
}

func TestSubmitContactPersistsOneRow(t *testing.T) {
	svc, db := newIntake(t)

	require.NoError(t, svc.SubmitContact(context.Background(), validContact()))

	var count int64
	require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSubmitContactMissingFieldRejected(t *testing.T) {
	mutations := map[string]func(*ContactInput){
		"name":    func(in *ContactInput) { in.Name = "" },
		"email":   func(in *ContactInput) { in.Email = "" },
		"phone":   func(in *ContactInput) { in.Phone = "" },
		"message": func(in *ContactInput) { in.Message = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			svc, db := newIntake(t)

			in := validContact()
			mutate(&in)

			err := svc.SubmitContact(context.Background(), in)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

			var count int64
			require.NoError(t, db.Model(&models.ContactSubmission{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestSubmitRFQOptionalFieldsMayBeEmpty(t *testing.T) {
	svc, db := newIntake(t)

	require.NoError(t, svc.SubmitRFQ(context.Background(), validRFQ()))

	var row models.RFQSubmission
	require.NoError(t, db.Take(&row).Error)
	assert.Nil(t, row.ConditionCode)
	assert.Nil(t, row.Certificate)
}

func TestSubmitRFQMissingFieldRejected(t *testing.T) {
	mutations := map[string]func(*RFQInput){
		"partNumber":  func(in *RFQInput) { in.PartNumber = "" },
		"description": func(in *RFQInput) { in.Description = "" },
		"quantity":    func(in *RFQInput) { in.Quantity = "" },
		"notes":       func(in *RFQInput) { in.Notes = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			svc, db := newIntake(t)

			in := validRFQ()
			mutate(&in)

			err := svc.SubmitRFQ(context.Background(), in)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

			var count int64
			require.NoError(t, db.Model(&models.RFQSubmission{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestSubmitCareerMissingFieldRejected(t *testing.T) {
	mutations := map[string]func(*CareerInput){
		"jobType":   func(in *CareerInput) { in.JobType = "" },
		"jobRole":   func(in *CareerInput) { in.JobRole = "" },
		"position":  func(in *CareerInput) { in.Position = "" },
		"name":      func(in *CareerInput) { in.Name = "" },
		"email":     func(in *CareerInput) { in.Email = "" },
		"phone":     func(in *CareerInput) { in.Phone = "" },
		"education": func(in *CareerInput) { in.Education = "" },
		"address":   func(in *CareerInput) { in.Address = "" },
	}

	for field, mutate := range mutations {
		t.Run(field, func(t *testing.T) {
			svc, db := newIntake(t)

			in := validCareer()
			mutate(&in)

			err := svc.SubmitCareer(context.Background(), in)
			require.Error(t, err)
			assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))

			var count int64
			require.NoError(t, db.Model(&models.CareerApplication{}).Count(&count).Error)
			assert.Zero(t, count)
		})
	}
}

func TestSubmitCareerAttachmentsOptional(t *testing.T) {
	svc, db := newIntake(t)

	require.NoError(t, svc.SubmitCareer(context.Background(), validCareer()))

	var row models.CareerApplication
	require.NoError(t, db.Take(&row).Error)
	assert.Nil(t, row.ResumeFilename)
	assert.Nil(t, row.ResumeData)
	assert.Nil(t, row.ResumeMimetype)
	assert.Nil(t, row.PhotoFilename)
}

func TestSubmitCareerAttachmentSlotAllOrNothing(t *testing.T) {
	svc, db := newIntake(t)

	in := validCareer()
	in.Resume = &FileUpload{Filename: "cv.pdf", Mimetype: "application/pdf", Data: []byte("%PDF-1.4")}
	// an upload with no bytes must not leave a dangling filename
	in.Photo = &FileUpload{Filename: "me.png", Mimetype: "image/png", Data: nil}

	require.NoError(t, svc.SubmitCareer(context.Background(), in))

	var row models.CareerApplication
	require.NoError(t, db.Take(&row).Error)

	require.NotNil(t, row.ResumeFilename)
	assert.Equal(t, "cv.pdf", *row.ResumeFilename)
	require.NotNil(t, row.ResumeMimetype)
	assert.Equal(t, []byte("%PDF-1.4"), row.ResumeData)

	assert.Nil(t, row.PhotoFilename)
	assert.Nil(t, row.PhotoData)
	assert.Nil(t, row.PhotoMimetype)
}
