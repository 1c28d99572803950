package handlers

import (
	"github.com/linskybing/formkit/internal/application"
)

type Handlers struct {
	Form         *FormHandler
	SourceRecord *SourceRecordHandler
}

func New(svc *application.Services) *Handlers {
	return &Handlers{
		Form:         NewFormHandler(svc.Form),
		SourceRecord: NewSourceRecordHandler(svc.SourceRecord),
	}
}
