package application

import (
	"github.com/linskybing/formkit/internal/domain/form"
	"github.com/linskybing/formkit/internal/domain/record"
	"github.com/linskybing/formkit/internal/repository"
	"github.com/linskybing/formkit/pkg/logger"
	"github.com/sirupsen/logrus"
)

// SeedService resets the store to a single example form with one submission.
type SeedService struct {
	Repos *repository.Repos
	log   *logrus.Entry
}

func NewSeedService(repos *repository.Repos) *SeedService {
	return &SeedService{
		Repos: repos,
		log:   logger.WithComponent("seed"),
	}
}

func ExampleForm() *form.Form {
	return &form.Form{
		Name: "Vial Form Example",
		Questions: []form.Question{
			{Type: form.QuestionTypeText, Question: "First Name?", Required: true},
			{Type: form.QuestionTypeText, Question: "Last Name?", Required: true},
			{Type: form.QuestionTypeText, Question: "Email?", Required: true},
			{Type: form.QuestionTypeDatetime, Question: "Date of Birth?", Required: true},
		},
	}
}

func exampleAnswers() []record.SourceData {
	return []record.SourceData{
		{Question: "First Name?", Answer: "John"},
		{Question: "Last Name?", Answer: "Doe"},
		{Question: "Email?", Answer: "john.doe@test.com"},
		{Question: "Date of Birth?", Answer: "2021-01-01T00:00:00.000Z"},
	}
}

// Reset deletes all records, answers and forms, then creates the example
// data. Deletion runs children first because of the foreign keys.
func (s *SeedService) Reset() (*form.Form, *record.SourceRecord, error) {
	f := ExampleForm()
	rec := &record.SourceRecord{SourceData: exampleAnswers()}

	err := s.Repos.ExecTx(func(tx *repository.Repos) error {
		if err := tx.SourceRecord.DeleteAllSourceRecords(); err != nil {
			return err
		}
		if err := tx.Form.DeleteAllForms(); err != nil {
			return err
		}
		s.log.Info("All records deleted")

		if err := tx.Form.CreateForm(f); err != nil {
			return err
		}
		rec.FormID = f.ID
		if err := tx.SourceRecord.CreateSourceRecord(rec); err != nil {
			return err
		}
		s.log.Info("All records created")
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return f, rec, nil
}
