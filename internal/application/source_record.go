package application

import (
	"errors"
	"fmt"

	"github.com/linskybing/formkit/internal/domain/form"
	"github.com/linskybing/formkit/internal/domain/record"
	"github.com/linskybing/formkit/internal/metrics"
	"github.com/linskybing/formkit/internal/repository"
	"github.com/linskybing/formkit/pkg/apperror"
	"github.com/linskybing/formkit/pkg/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type SourceRecordService struct {
	Repos *repository.Repos
	log   *logrus.Entry
}

func NewSourceRecordService(repos *repository.Repos) *SourceRecordService {
	return &SourceRecordService{
		Repos: repos,
		log:   logger.WithComponent("sourceRecordService"),
	}
}

// CreateSourceRecord validates the responses against the form's required
// questions and stores the record with one SourceData row per response.
// Lookup, validation and insert share one transaction.
func (s *SourceRecordService) CreateSourceRecord(formID string, input record.CreateSourceRecordDTO) (*record.SourceRecord, error) {
	id, err := canonicalID(formID)
	if err != nil {
		metrics.RecordSubmission("rejected")
		return nil, formNotFound()
	}

	var created *record.SourceRecord
	err = s.Repos.ExecTx(func(tx *repository.Repos) error {
		f, err := findForm(tx, id)
		if err != nil {
			return err
		}

		if q, missing := form.FirstUnanswered(f.RequiredQuestions(), input.Answers()); missing {
			return apperror.BadRequest(fmt.Sprintf("Missing answer for required question: '%s'", q.Question))
		}

		rec := &record.SourceRecord{
			FormID:     f.ID,
			SourceData: input.ToSourceData(),
		}
		if err := tx.SourceRecord.CreateSourceRecord(rec); err != nil {
			return err
		}
		created = rec
		return nil
	})
	if err != nil {
		if appErr, ok := apperror.As(err); ok && appErr.Status < 500 {
			metrics.RecordSubmission("rejected")
			return nil, appErr
		}
		metrics.RecordSubmission("failed")
		s.log.WithError(err).Error("Unexpected error while saving source record")
		return nil, apperror.Internal("Failed to save record", err)
	}

	metrics.RecordSubmission("accepted")
	return created, nil
}

// ListSourceRecords returns every submission of a form, newest first.
func (s *SourceRecordService) ListSourceRecords(formID string) ([]record.SourceRecord, error) {
	id, err := canonicalID(formID)
	if err != nil {
		return nil, formNotFound()
	}
	if _, err := findForm(s.Repos, id); err != nil {
		if appErr, ok := apperror.As(err); ok {
			return nil, appErr
		}
		s.log.WithError(err).Error("failed to fetch form")
		return nil, apperror.Internal("failed to fetch records", err)
	}

	recs, err := s.Repos.SourceRecord.ListSourceRecordsByFormID(id)
	if err != nil {
		s.log.WithError(err).Error("failed to fetch records")
		return nil, apperror.Internal("failed to fetch records", err)
	}
	if recs == nil {
		recs = []record.SourceRecord{}
	}
	return recs, nil
}

func findForm(repos *repository.Repos, formID string) (*form.Form, error) {
	f, err := repos.Form.GetFormByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, formNotFound()
		}
		return nil, err
	}
	return &f, nil
}

func formNotFound() error {
	return apperror.NotFound("Form not found", ErrFormNotFound)
}
