package record

import (
	"time"

	"github.com/google/uuid"
	"github.com/linskybing/formkit/internal/domain/form"
	"gorm.io/gorm"
)

// SourceRecord is one completed submission of a form. It is written once,
// together with its SourceData rows, and never updated.
type SourceRecord struct {
	ID         string       `json:"id" gorm:"type:uuid;primaryKey"`
	FormID     string       `json:"formId" gorm:"type:uuid;not null;index"`
	Form       *form.Form   `json:"-" gorm:"foreignKey:FormID;constraint:OnDelete:CASCADE"`
	SourceData []SourceData `json:"sourceData" gorm:"foreignKey:SourceRecordID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time    `json:"createdAt"`
	UpdatedAt  time.Time    `json:"updatedAt"`
}

func (r *SourceRecord) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// SourceData holds one answer. Question is a copy of the label text at
// submission time, not a reference into the form's questions.
type SourceData struct {
	ID             string    `json:"id" gorm:"type:uuid;primaryKey"`
	SourceRecordID string    `json:"sourceRecordId" gorm:"type:uuid;not null;index"`
	Question       string    `json:"question" gorm:"type:text;not null"`
	Answer         string    `json:"answer" gorm:"type:text;not null"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (SourceData) TableName() string {
	return "source_data"
}

func (d *SourceData) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
