package application

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/linskybing/formkit/internal/domain/form"
	"github.com/linskybing/formkit/internal/metrics"
	"github.com/linskybing/formkit/internal/repository"
	"github.com/linskybing/formkit/pkg/apperror"
	"github.com/linskybing/formkit/pkg/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrFormNotFound = errors.New("form not found")

type FormService struct {
	Repos *repository.Repos
	log   *logrus.Entry
}

func NewFormService(repos *repository.Repos) *FormService {
	return &FormService{
		Repos: repos,
		log:   logger.WithComponent("formService"),
	}
}

// GetForm loads a form by id. A malformed id is a 400, a missing form a 404
// and any store failure a 500.
func (s *FormService) GetForm(id string) (*form.Form, error) {
	formID, err := canonicalID(id)
	if err != nil {
		return nil, apperror.BadRequest("invalid form id")
	}

	s.log.Debug("get form by id")
	f, err := s.Repos.Form.GetFormByID(formID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound("failed to fetch form", ErrFormNotFound)
		}
		s.log.WithError(err).Error("failed to fetch form")
		return nil, apperror.Internal("failed to fetch form", err)
	}
	return &f, nil
}

func (s *FormService) ListForms() ([]form.FormSummary, error) {
	s.log.Debug("fetching all forms")
	forms, err := s.Repos.Form.ListForms()
	if err != nil {
		s.log.WithError(err).Error("failed to fetch forms")
		return nil, apperror.Internal("failed to fetch forms", err)
	}
	if forms == nil {
		forms = []form.FormSummary{}
	}
	return forms, nil
}

// CreateForm stores a new form after checking that the name is free. The
// unique index on name backs the pre-check when two creations race.
func (s *FormService) CreateForm(input form.CreateFormDTO) (*form.Form, error) {
	s.log.Debug("saving a new form")

	exists, err := s.Repos.Form.ExistsByName(input.Name)
	if err != nil {
		s.log.WithError(err).Error("failed to check form name")
		return nil, apperror.Internal("failed to save form", err)
	}
	if exists {
		s.log.Warnf("Form with name %q already exists", input.Name)
		return nil, duplicateName(input.Name)
	}

	f := &form.Form{
		Name:      input.Name,
		Questions: input.ToQuestions(),
	}
	if err := s.Repos.Form.CreateForm(f); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			s.log.Warnf("Form with name %q created concurrently", input.Name)
			return nil, duplicateName(input.Name)
		}
		s.log.WithError(err).Error("failed to save form")
		return nil, apperror.Internal("failed to save form", err)
	}

	metrics.RecordFormCreated()
	return f, nil
}

// canonicalID parses any accepted UUID spelling (braces, urn:uuid: prefix,
// upper case) and returns the lower-case hyphenated form stored in the
// database.
func canonicalID(raw string) (string, error) {
	u, err := uuid.Parse(raw)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}

func duplicateName(name string) error {
	return apperror.Conflict(fmt.Sprintf("A form with the name %s already exists", name))
}
