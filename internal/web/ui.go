// Package web renders the builder, fill, list and submissions pages. Pages
// call the same services as the JSON API, so validation and error messages
// are shared.
package web

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/linskybing/formkit/internal/application"
	"github.com/linskybing/formkit/internal/domain/form"
	"github.com/linskybing/formkit/internal/domain/record"
	"github.com/linskybing/formkit/pkg/apperror"
	"github.com/linskybing/formkit/pkg/logger"
	"github.com/sirupsen/logrus"
)

const (
	FormCreatedMessage      = "Form created successfully!"
	FormCreateFailedMessage = "Failed to submit the form. Please try again later."
	FormSubmittedMessage    = "Form submitted successfully!"
	SubmitFailedMessage     = "Failed to submit the form. Please try again."
	FieldRequiredMessage    = "This field is required"
	FormNotFoundMessage     = "Form not found"
	ValidationFailedMessage = "Validation failed. Please check your input."
)

//go:embed templates/*.html
var templateFS embed.FS

// Templates parses the embedded page templates for gin's HTML renderer.
func Templates() *template.Template {
	return template.Must(template.New("").Funcs(template.FuncMap{
		"inc":           func(i int) int { return i + 1 },
		"questionTypes": func() []form.QuestionType { return form.QuestionTypes },
	}).ParseFS(templateFS, "templates/*.html"))
}

// Snackbar is the one-line status shown at the top of a page.
type Snackbar struct {
	Kind    string // success or error
	Message string
}

func success(msg string) *Snackbar { return &Snackbar{Kind: "success", Message: msg} }
func failure(msg string) *Snackbar { return &Snackbar{Kind: "error", Message: msg} }

type UI struct {
	forms   *application.FormService
	records *application.SourceRecordService
	log     *logrus.Entry
}

func New(svc *application.Services) *UI {
	return &UI{
		forms:   svc.Form,
		records: svc.SourceRecord,
		log:     logger.WithComponent("web"),
	}
}

// Register mounts the pages under /ui. The engine must use Templates().
func (u *UI) Register(r gin.IRouter) {
	ui := r.Group("/ui")
	{
		ui.GET("/forms", u.ListForms)
		ui.GET("/forms/new", u.NewForm)
		ui.POST("/forms/new", u.EditForm)
		ui.GET("/forms/:id", u.FillForm)
		ui.POST("/forms/:id", u.SubmitForm)
		ui.GET("/forms/:id/records", u.ListRecords)
	}
}

type listPage struct {
	Title    string
	Forms    []form.FormSummary
	Snackbar *Snackbar
}

func (u *UI) ListForms(c *gin.Context) {
	forms, err := u.forms.ListForms()
	page := listPage{Title: "Forms", Forms: forms}
	if err != nil {
		page.Snackbar = failure("Failed to load forms.")
		c.HTML(http.StatusInternalServerError, "list.html", page)
		return
	}
	c.HTML(http.StatusOK, "list.html", page)
}

type builderPage struct {
	Title    string
	Draft    *Draft
	Errors   DraftErrors
	Snackbar *Snackbar
	Created  *form.Form
}

func (u *UI) NewForm(c *gin.Context) {
	c.HTML(http.StatusOK, "builder.html", builderPage{Title: "Create Form", Draft: NewDraft()})
}

// EditForm applies one builder action to the posted draft. Save runs the
// page checks, then the POST /forms binding rules, then the service.
func (u *UI) EditForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.HTML(http.StatusBadRequest, "builder.html", builderPage{Title: "Create Form", Draft: NewDraft(), Snackbar: failure(ValidationFailedMessage)})
		return
	}
	draft, err := DecodeDraft(c.Request.PostForm)
	if err != nil {
		u.log.WithError(err).Debug("undecodable draft")
		c.HTML(http.StatusBadRequest, "builder.html", builderPage{Title: "Create Form", Draft: NewDraft(), Snackbar: failure(ValidationFailedMessage)})
		return
	}
	action, err := ParseDraftAction(c.Request.PostForm.Get("action"))
	if err != nil {
		c.HTML(http.StatusBadRequest, "builder.html", builderPage{Title: "Create Form", Draft: draft, Snackbar: failure(err.Error())})
		return
	}

	page := builderPage{Title: "Create Form", Draft: draft}
	if draft.Apply(action) {
		c.HTML(http.StatusOK, "builder.html", page)
		return
	}

	page.Errors = draft.Validate()
	if !page.Errors.Empty() {
		if page.Errors.Form != "" {
			page.Snackbar = failure(page.Errors.Form)
		}
		c.HTML(http.StatusOK, "builder.html", page)
		return
	}

	dto := draft.ToDTO()
	if err := binding.Validator.ValidateStruct(&dto); err != nil {
		page.Snackbar = failure(ValidationFailedMessage)
		c.HTML(http.StatusOK, "builder.html", page)
		return
	}

	created, err := u.forms.CreateForm(dto)
	if err != nil {
		page.Snackbar = failure(createFailureMessage(err))
		c.HTML(http.StatusOK, "builder.html", page)
		return
	}

	c.HTML(http.StatusOK, "builder.html", builderPage{
		Title:    "Create Form",
		Draft:    NewDraft(),
		Snackbar: success(FormCreatedMessage),
		Created:  created,
	})
}

func createFailureMessage(err error) string {
	if appErr, ok := apperror.As(err); ok {
		switch appErr.Status {
		case http.StatusBadRequest, http.StatusConflict:
			return appErr.Message
		}
	}
	return FormCreateFailedMessage
}

type fillPage struct {
	Title    string
	Form     *form.Form
	Answers  []string
	Errors   map[int]string
	Snackbar *Snackbar
}

// loadForm renders the not-found or error page itself and returns nil when
// the form cannot be shown.
func (u *UI) loadForm(c *gin.Context) *form.Form {
	f, err := u.forms.GetForm(c.Param("id"))
	if err == nil {
		return f
	}
	switch apperror.StatusOf(err) {
	case http.StatusBadRequest, http.StatusNotFound:
		c.HTML(http.StatusNotFound, "notfound.html", gin.H{"Title": FormNotFoundMessage})
	default:
		c.HTML(http.StatusInternalServerError, "notfound.html", gin.H{"Title": "Failed to load form"})
	}
	return nil
}

func (u *UI) FillForm(c *gin.Context) {
	f := u.loadForm(c)
	if f == nil {
		return
	}
	c.HTML(http.StatusOK, "fill.html", fillPage{
		Title:   f.Name,
		Form:    f,
		Answers: make([]string, len(f.Questions)),
	})
}

// SubmitForm checks required answers by position, trimmed, before sending
// every question and its answer to the submission service.
func (u *UI) SubmitForm(c *gin.Context) {
	f := u.loadForm(c)
	if f == nil {
		return
	}
	page := fillPage{Title: f.Name, Form: f}

	if err := c.Request.ParseForm(); err != nil {
		page.Answers = make([]string, len(f.Questions))
		page.Snackbar = failure(SubmitFailedMessage)
		c.HTML(http.StatusBadRequest, "fill.html", page)
		return
	}
	answers, err := DecodeAnswers(c.Request.PostForm, len(f.Questions))
	if err != nil {
		page.Answers = make([]string, len(f.Questions))
		page.Snackbar = failure(SubmitFailedMessage)
		c.HTML(http.StatusBadRequest, "fill.html", page)
		return
	}
	page.Answers = answers

	if missing := form.MissingByPosition(f.Questions, answers); len(missing) > 0 {
		page.Errors = make(map[int]string, len(missing))
		for _, i := range missing {
			page.Errors[i] = FieldRequiredMessage
		}
		c.HTML(http.StatusOK, "fill.html", page)
		return
	}

	input := record.CreateSourceRecordDTO{Responses: make([]record.ResponseDTO, 0, len(f.Questions))}
	for i, q := range f.Questions {
		question, answer := q.Question, answers[i]
		input.Responses = append(input.Responses, record.ResponseDTO{Question: &question, Answer: &answer})
	}

	if _, err := u.records.CreateSourceRecord(f.ID, input); err != nil {
		msg := SubmitFailedMessage
		if appErr, ok := apperror.As(err); ok && appErr.Status == http.StatusBadRequest {
			msg = appErr.Message
		}
		page.Snackbar = failure(msg)
		c.HTML(http.StatusOK, "fill.html", page)
		return
	}

	page.Answers = make([]string, len(f.Questions))
	page.Snackbar = success(FormSubmittedMessage)
	c.HTML(http.StatusOK, "fill.html", page)
}

type recordsPage struct {
	Title   string
	Form    *form.Form
	Columns []string
	Rows    []recordRow
}

type recordRow struct {
	ID        string
	CreatedAt string
	Cells     []string
}

func (u *UI) ListRecords(c *gin.Context) {
	f := u.loadForm(c)
	if f == nil {
		return
	}
	recs, err := u.records.ListSourceRecords(f.ID)
	if err != nil {
		c.HTML(http.StatusInternalServerError, "notfound.html", gin.H{"Title": "Failed to load submissions"})
		return
	}

	page := recordsPage{Title: f.Name + " submissions", Form: f}
	for _, q := range f.Questions {
		page.Columns = append(page.Columns, q.Question)
	}
	for _, rec := range recs {
		page.Rows = append(page.Rows, toRow(rec, page.Columns))
	}
	c.HTML(http.StatusOK, "records.html", page)
}

// toRow lines answers up with the form's current labels. Answers to labels
// that no longer exist are dropped from the table.
func toRow(rec record.SourceRecord, columns []string) recordRow {
	byQuestion := make(map[string]string, len(rec.SourceData))
	for _, d := range rec.SourceData {
		byQuestion[d.Question] = d.Answer
	}
	row := recordRow{
		ID:        rec.ID,
		CreatedAt: rec.CreatedAt.Format("2006-01-02 15:04"),
		Cells:     make([]string, len(columns)),
	}
	for i, col := range columns {
		row.Cells[i] = byQuestion[col]
	}
	return row
}
