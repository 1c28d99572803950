package repository

import (
	"github.com/linskybing/formkit/internal/domain/record"
	"gorm.io/gorm"
)

//go:generate mockgen -source=source_record.go -destination=mock/source_record.go -package=mock

type SourceRecordRepo interface {
	CreateSourceRecord(rec *record.SourceRecord) error
	ListSourceRecordsByFormID(formID string) ([]record.SourceRecord, error)
	DeleteAllSourceRecords() error
	WithTx(tx *gorm.DB) SourceRecordRepo
}

type DBSourceRecordRepo struct {
	db *gorm.DB
}

func NewSourceRecordRepo(db *gorm.DB) *DBSourceRecordRepo {
	return &DBSourceRecordRepo{
		db: db,
	}
}

// CreateSourceRecord inserts the record and its SourceData children.
func (r *DBSourceRecordRepo) CreateSourceRecord(rec *record.SourceRecord) error {
	return r.db.Create(rec).Error
}

func (r *DBSourceRecordRepo) ListSourceRecordsByFormID(formID string) ([]record.SourceRecord, error) {
	var recs []record.SourceRecord
	err := r.db.Preload("SourceData").
		Where("form_id = ?", formID).
		Order("created_at desc").
		Find(&recs).Error
	return recs, err
}

// DeleteAllSourceRecords removes every answer row, then every record.
func (r *DBSourceRecordRepo) DeleteAllSourceRecords() error {
	if err := r.db.Where("1 = 1").Delete(&record.SourceData{}).Error; err != nil {
		return err
	}
	return r.db.Where("1 = 1").Delete(&record.SourceRecord{}).Error
}

func (r *DBSourceRecordRepo) WithTx(tx *gorm.DB) SourceRecordRepo {
	if tx == nil {
		return r
	}
	return &DBSourceRecordRepo{db: tx}
}
