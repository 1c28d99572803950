package form

type AnswerChoiceDTO struct {
	Option string `json:"option"`
	Value  string `json:"value"`
}

type QuestionDTO struct {
	Type          string            `json:"type" binding:"required,oneof=text textarea datetime dropdown" example:"text"`
	Question      string            `json:"question" binding:"required,min=2" example:"First Name?"`
	Required      *bool             `json:"required"`
	AnswerChoices []AnswerChoiceDTO `json:"answerChoices"`
}

type CreateFormDTO struct {
	Name      string        `json:"name" binding:"required,min=3,max=100" example:"Intake"`
	Questions []QuestionDTO `json:"questions" binding:"required,min=1,dive"`
}

// ToQuestions converts the validated payload into stored questions,
// preserving order.
func (d CreateFormDTO) ToQuestions() []Question {
	out := make([]Question, 0, len(d.Questions))
	for _, q := range d.Questions {
		question := Question{
			Type:     QuestionType(q.Type),
			Question: q.Question,
		}
		if q.Required != nil {
			question.Required = *q.Required
		}
		for _, c := range q.AnswerChoices {
			question.AnswerChoices = append(question.AnswerChoices, AnswerChoice{Option: c.Option, Value: c.Value})
		}
		out = append(out, question)
	}
	return out
}
