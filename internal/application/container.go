package application

import (
	"github.com/linskybing/formkit/internal/repository"
)

type Services struct {
	Form         *FormService
	SourceRecord *SourceRecordService
	Seed         *SeedService
}

func New(repos *repository.Repos) *Services {
	return &Services{
		Form:         NewFormService(repos),
		SourceRecord: NewSourceRecordService(repos),
		Seed:         NewSeedService(repos),
	}
}
