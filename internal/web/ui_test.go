package web_test

import (
	"database/sql"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/linskybing/formkit/internal/application"
	"github.com/linskybing/formkit/internal/domain/form"
	"github.com/linskybing/formkit/internal/domain/record"
	"github.com/linskybing/formkit/internal/repository"
	"github.com/linskybing/formkit/internal/repository/mock"
	"github.com/linskybing/formkit/internal/web"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const formID = "0d9c59a4-1c1e-4a53-a2a4-5b9b8d0f6c21"

type passthroughTx struct{}

func (passthroughTx) Transaction(fc func(tx *gorm.DB) error, _ ...*sql.TxOptions) error {
	return fc(nil)
}

type fixture struct {
	router  *gin.Engine
	forms   *mock.MockFormRepo
	records *mock.MockSourceRecordRepo
}

func setup(t *testing.T) *fixture {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	forms := mock.NewMockFormRepo(ctrl)
	records := mock.NewMockSourceRecordRepo(ctrl)
	forms.EXPECT().WithTx(gomock.Any()).Return(forms).AnyTimes()
	records.EXPECT().WithTx(gomock.Any()).Return(records).AnyTimes()

	repos := &repository.Repos{Form: forms, SourceRecord: records, Tx: passthroughTx{}}
	r := gin.New()
	r.SetHTMLTemplate(web.Templates())
	web.New(application.New(repos)).Register(r)

	return &fixture{router: r, forms: forms, records: records}
}

func (f *fixture) do(method, path string, values url.Values) *httptest.ResponseRecorder {
	var req *http.Request
	if values != nil {
		req = httptest.NewRequest(method, path, strings.NewReader(values.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func intake() form.Form {
	return form.Form{
		ID:   formID,
		Name: "Intake",
		Questions: []form.Question{
			{Type: form.QuestionTypeText, Question: "First Name?", Required: true},
			{Type: form.QuestionTypeDropdown, Question: "Color?", AnswerChoices: []form.AnswerChoice{{Option: "Red", Value: "red"}}},
		},
	}
}

func TestBuilderPage(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/ui/forms/new", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `name="questions.0.question"`)
	assert.Contains(t, w.Body.String(), `value="remove-question:0" disabled`)
}

func TestBuilderAddQuestion(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/ui/forms/new", url.Values{
		"name":                 {"Intake"},
		"questions.0.type":     {"text"},
		"questions.0.question": {"First Name?"},
		"action":               {"add-question"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="First Name?"`)
	assert.Contains(t, body, `name="questions.1.question"`)
	assert.NotContains(t, body, `value="remove-question:0" disabled`)
}

func TestBuilderChoicesOnlyForDropdowns(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodGet, "/ui/forms/new", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), `value="add-choice:0"`)

	w = f.do(http.MethodPost, "/ui/forms/new", url.Values{
		"name":                 {"Intake"},
		"questions.0.type":     {"dropdown"},
		"questions.0.question": {"Color?"},
		"action":               {"update"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `value="add-choice:0"`)
	assert.Contains(t, body, `value="Color?"`)
}

func TestBuilderSaveValidation(t *testing.T) {
	f := setup(t)

	w := f.do(http.MethodPost, "/ui/forms/new", url.Values{
		"name":             {""},
		"questions.0.type": {"text"},
		"action":           {"save"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), web.NameRequiredMessage)
	assert.Contains(t, w.Body.String(), web.QuestionRequiredMessage)
}

func TestBuilderSaveBindingRules(t *testing.T) {
	f := setup(t)

	// "Ab" passes the page check but not the min=3 name rule
	w := f.do(http.MethodPost, "/ui/forms/new", url.Values{
		"name":                 {"Ab"},
		"questions.0.type":     {"text"},
		"questions.0.question": {"First Name?"},
		"action":               {"save"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), web.ValidationFailedMessage)
}

func TestBuilderSave(t *testing.T) {
	values := url.Values{
		"name":                 {"Intake"},
		"questions.0.type":     {"text"},
		"questions.0.question": {"First Name?"},
		"questions.0.required": {"true"},
		"action":               {"save"},
	}

	t.Run("created", func(t *testing.T) {
		f := setup(t)
		f.forms.EXPECT().ExistsByName("Intake").Return(false, nil)
		f.forms.EXPECT().CreateForm(gomock.Any()).DoAndReturn(func(created *form.Form) error {
			created.ID = formID
			assert.True(t, created.Questions[0].Required)
			return nil
		})

		w := f.do(http.MethodPost, "/ui/forms/new", values)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), web.FormCreatedMessage)
		assert.Contains(t, w.Body.String(), "/ui/forms/"+formID)
	})

	t.Run("duplicate name shows server message", func(t *testing.T) {
		f := setup(t)
		f.forms.EXPECT().ExistsByName("Intake").Return(true, nil)

		w := f.do(http.MethodPost, "/ui/forms/new", values)
		assert.Contains(t, w.Body.String(), "A form with the name Intake already exists")
	})

	t.Run("store failure shows generic message", func(t *testing.T) {
		f := setup(t)
		f.forms.EXPECT().ExistsByName("Intake").Return(false, errors.New("down"))

		w := f.do(http.MethodPost, "/ui/forms/new", values)
		assert.Contains(t, w.Body.String(), web.FormCreateFailedMessage)
	})
}

func TestFillPage(t *testing.T) {
	t.Run("renders inputs by type", func(t *testing.T) {
		f := setup(t)
		f.forms.EXPECT().GetFormByID(formID).Return(intake(), nil)

		w := f.do(http.MethodGet, "/ui/forms/"+formID, nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := w.Body.String()
		assert.Contains(t, body, `type="text" name="answers.0"`)
		assert.Contains(t, body, `<select id="answer-1" name="answers.1">`)
		assert.Contains(t, body, `<option value="red">Red</option>`)
	})

	t.Run("unknown form", func(t *testing.T) {
		f := setup(t)
		f.forms.EXPECT().GetFormByID(formID).Return(form.Form{}, gorm.ErrRecordNotFound)

		w := f.do(http.MethodGet, "/ui/forms/"+formID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), web.FormNotFoundMessage)
	})

	t.Run("malformed id", func(t *testing.T) {
		f := setup(t)

		w := f.do(http.MethodGet, "/ui/forms/nope", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestFillSubmit(t *testing.T) {
	t.Run("blank required answer is flagged", func(t *testing.T) {
		f := setup(t)
		f.forms.EXPECT().GetFormByID(formID).Return(intake(), nil)

		w := f.do(http.MethodPost, "/ui/forms/"+formID, url.Values{"answers.0": {"   "}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), web.FieldRequiredMessage)
	})

	t.Run("submitted", func(t *testing.T) {
		f := setup(t)
		f.forms.EXPECT().GetFormByID(formID).Return(intake(), nil).Times(2)
		f.records.EXPECT().CreateSourceRecord(gomock.Any()).DoAndReturn(func(rec *record.SourceRecord) error {
			require.Len(t, rec.SourceData, 2)
			assert.Equal(t, "First Name?", rec.SourceData[0].Question)
			assert.Equal(t, "Jane", rec.SourceData[0].Answer)
			assert.Equal(t, "red", rec.SourceData[1].Answer)
			return nil
		})

		w := f.do(http.MethodPost, "/ui/forms/"+formID, url.Values{"answers.0": {"Jane"}, "answers.1": {"red"}})
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), web.FormSubmittedMessage)
	})

	t.Run("server failure shows generic message", func(t *testing.T) {
		f := setup(t)
		f.forms.EXPECT().GetFormByID(formID).Return(intake(), nil).Times(2)
		f.records.EXPECT().CreateSourceRecord(gomock.Any()).Return(errors.New("down"))

		w := f.do(http.MethodPost, "/ui/forms/"+formID, url.Values{"answers.0": {"Jane"}})
		assert.Contains(t, w.Body.String(), web.SubmitFailedMessage)
	})
}

func TestListPages(t *testing.T) {
	f := setup(t)
	f.forms.EXPECT().ListForms().Return([]form.FormSummary{{ID: formID, Name: "Intake"}}, nil)

	w := f.do(http.MethodGet, "/ui/forms", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Intake")
	assert.Contains(t, w.Body.String(), "Use Form")

	f.forms.EXPECT().GetFormByID(formID).Return(intake(), nil).Times(2)
	f.records.EXPECT().ListSourceRecordsByFormID(formID).Return([]record.SourceRecord{{
		ID:     "r1",
		FormID: formID,
		SourceData: []record.SourceData{
			{Question: "First Name?", Answer: "Jane"},
			{Question: "Removed?", Answer: "ignored"},
		},
	}}, nil)

	w = f.do(http.MethodGet, "/ui/forms/"+formID+"/records", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<td>Jane</td>")
	assert.NotContains(t, w.Body.String(), "ignored")
}
