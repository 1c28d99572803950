package record

import "github.com/linskybing/formkit/internal/domain/form"

// ResponseDTO uses pointers so that both keys must be present while the
// answer itself may be an empty string.
type ResponseDTO struct {
	Question *string `json:"question" binding:"required" example:"First Name?"`
	Answer   *string `json:"answer" binding:"required" example:"Jane"`
}

type CreateSourceRecordDTO struct {
	Responses []ResponseDTO `json:"responses" binding:"required,dive"`
}

func (d CreateSourceRecordDTO) Answers() []form.Answer {
	out := make([]form.Answer, 0, len(d.Responses))
	for _, r := range d.Responses {
		out = append(out, form.Answer{Question: deref(r.Question), Answer: deref(r.Answer)})
	}
	return out
}

// ToSourceData builds one row per submitted response, in submission order.
func (d CreateSourceRecordDTO) ToSourceData() []SourceData {
	rows := make([]SourceData, 0, len(d.Responses))
	for _, a := range d.Answers() {
		rows = append(rows, SourceData{Question: a.Question, Answer: a.Answer})
	}
	return rows
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
