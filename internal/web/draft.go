package web

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/linskybing/formkit/internal/domain/form"
)

const (
	NameRequiredMessage     = "Name is required"
	QuestionRequiredMessage = "Question text is required"
	NoQuestionsMessage      = "At least one question is required"
)

type DraftChoice struct {
	Option string `form:"option"`
	Value  string `form:"value"`
}

type DraftQuestion struct {
	Type          string        `form:"type"`
	Question      string        `form:"question"`
	Required      bool          `form:"required"`
	AnswerChoices []DraftChoice `form:"answerChoices"`
}

func (q DraftQuestion) IsDropdown() bool {
	return q.Type == string(form.QuestionTypeDropdown)
}

// Draft is the builder's editable, unsaved form. It round-trips through the
// page as posted fields.
type Draft struct {
	Name      string          `form:"name"`
	Questions []DraftQuestion `form:"questions"`
}

func NewDraft() *Draft {
	d := &Draft{}
	d.AddQuestion()
	return d
}

func (d *Draft) AddQuestion() {
	d.Questions = append(d.Questions, DraftQuestion{Type: string(form.QuestionTypeText)})
}

// CanRemoveQuestion reports whether removal is allowed; the last question
// stays.
func (d *Draft) CanRemoveQuestion() bool {
	return len(d.Questions) > 1
}

func (d *Draft) RemoveQuestion(i int) {
	if !d.CanRemoveQuestion() || i < 0 || i >= len(d.Questions) {
		return
	}
	d.Questions = append(d.Questions[:i], d.Questions[i+1:]...)
}

func (d *Draft) AddChoice(q int) {
	if q < 0 || q >= len(d.Questions) {
		return
	}
	d.Questions[q].AnswerChoices = append(d.Questions[q].AnswerChoices, DraftChoice{})
}

func (d *Draft) RemoveChoice(q, c int) {
	if q < 0 || q >= len(d.Questions) {
		return
	}
	choices := d.Questions[q].AnswerChoices
	if c < 0 || c >= len(choices) {
		return
	}
	d.Questions[q].AnswerChoices = append(choices[:c], choices[c+1:]...)
}

// DraftErrors holds field messages keyed the way the page renders them.
type DraftErrors struct {
	Name      string
	Questions map[int]string
	Form      string
}

func (e DraftErrors) Empty() bool {
	return e.Name == "" && len(e.Questions) == 0 && e.Form == ""
}

// Validate runs the checks the page applies before the draft is handed to
// the service.
func (d *Draft) Validate() DraftErrors {
	errs := DraftErrors{Questions: map[int]string{}}
	if strings.TrimSpace(d.Name) == "" {
		errs.Name = NameRequiredMessage
	}
	if len(d.Questions) == 0 {
		errs.Form = NoQuestionsMessage
	}
	for i, q := range d.Questions {
		if strings.TrimSpace(q.Question) == "" {
			errs.Questions[i] = QuestionRequiredMessage
		}
	}
	return errs
}

// ToDTO converts the draft into the payload accepted by POST /forms. Choices
// are only sent for dropdown questions.
func (d *Draft) ToDTO() form.CreateFormDTO {
	dto := form.CreateFormDTO{
		Name:      d.Name,
		Questions: make([]form.QuestionDTO, 0, len(d.Questions)),
	}
	for _, q := range d.Questions {
		required := q.Required
		qd := form.QuestionDTO{
			Type:     q.Type,
			Question: q.Question,
			Required: &required,
		}
		if q.IsDropdown() {
			for _, c := range q.AnswerChoices {
				qd.AnswerChoices = append(qd.AnswerChoices, form.AnswerChoiceDTO{Option: c.Option, Value: c.Value})
			}
		}
		dto.Questions = append(dto.Questions, qd)
	}
	return dto
}

// DraftAction is one builder button press, posted as "verb" or "verb:i[:j]".
type DraftAction struct {
	Verb     string
	Question int
	Choice   int
}

const (
	ActionSave           = "save"
	ActionUpdate         = "update"
	ActionAddQuestion    = "add-question"
	ActionRemoveQuestion = "remove-question"
	ActionAddChoice      = "add-choice"
	ActionRemoveChoice   = "remove-choice"
)

func ParseDraftAction(raw string) (DraftAction, error) {
	if raw == "" {
		return DraftAction{Verb: ActionSave}, nil
	}
	parts := strings.Split(raw, ":")
	a := DraftAction{Verb: parts[0]}

	want := 0
	switch a.Verb {
	case ActionSave, ActionUpdate, ActionAddQuestion:
	case ActionRemoveQuestion, ActionAddChoice:
		want = 1
	case ActionRemoveChoice:
		want = 2
	default:
		return a, fmt.Errorf("unknown action %q", raw)
	}
	if len(parts)-1 != want {
		return a, fmt.Errorf("malformed action %q", raw)
	}

	idx := make([]int, want)
	for i := range idx {
		n, err := strconv.Atoi(parts[i+1])
		if err != nil {
			return a, fmt.Errorf("malformed action %q: %w", raw, err)
		}
		idx[i] = n
	}
	if want >= 1 {
		a.Question = idx[0]
	}
	if want == 2 {
		a.Choice = idx[1]
	}
	return a, nil
}

// Apply performs an edit action. It reports false for save, which the caller
// handles. Update changes nothing and re-renders the posted draft.
func (d *Draft) Apply(a DraftAction) bool {
	switch a.Verb {
	case ActionUpdate:
	case ActionAddQuestion:
		d.AddQuestion()
	case ActionRemoveQuestion:
		d.RemoveQuestion(a.Question)
	case ActionAddChoice:
		d.AddChoice(a.Question)
	case ActionRemoveChoice:
		d.RemoveChoice(a.Question, a.Choice)
	default:
		return false
	}
	return true
}
