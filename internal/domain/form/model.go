package form

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type QuestionType string

const (
	QuestionTypeText     QuestionType = "text"
	QuestionTypeTextarea QuestionType = "textarea"
	QuestionTypeDatetime QuestionType = "datetime"
	QuestionTypeDropdown QuestionType = "dropdown"
)

// QuestionTypes lists the accepted types in display order.
var QuestionTypes = []QuestionType{
	QuestionTypeText,
	QuestionTypeTextarea,
	QuestionTypeDatetime,
	QuestionTypeDropdown,
}

type AnswerChoice struct {
	Option string `json:"option"`
	Value  string `json:"value"`
}

type Question struct {
	Type          QuestionType   `json:"type"`
	Question      string         `json:"question"`
	Required      bool           `json:"required"`
	AnswerChoices []AnswerChoice `json:"answerChoices,omitempty"` // dropdown only
}

type Form struct {
	ID        string                        `json:"id" gorm:"type:uuid;primaryKey"`
	Name      string                        `json:"name" gorm:"size:100;not null;uniqueIndex"`
	Questions datatypes.JSONSlice[Question] `json:"questions" gorm:"type:jsonb;not null"`
	CreatedAt time.Time                     `json:"createdAt"`
	UpdatedAt time.Time                     `json:"updatedAt"`
}

func (f *Form) BeforeCreate(tx *gorm.DB) error {
	if f.ID == "" {
		f.ID = uuid.NewString()
	}
	return nil
}

// FormSummary is the list projection of a Form.
type FormSummary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
