package repository

import (
	"github.com/linskybing/formkit/internal/domain/form"
	"gorm.io/gorm"
)

//go:generate mockgen -source=form.go -destination=mock/form.go -package=mock

type FormRepo interface {
	CreateForm(f *form.Form) error
	GetFormByID(id string) (form.Form, error)
	ExistsByName(name string) (bool, error)
	ListForms() ([]form.FormSummary, error)
	DeleteAllForms() error
	WithTx(tx *gorm.DB) FormRepo
}

type DBFormRepo struct {
	db *gorm.DB
}

func NewFormRepo(db *gorm.DB) *DBFormRepo {
	return &DBFormRepo{
		db: db,
	}
}

func (r *DBFormRepo) CreateForm(f *form.Form) error {
	return r.db.Create(f).Error
}

func (r *DBFormRepo) GetFormByID(id string) (form.Form, error) {
	var f form.Form
	err := r.db.Where("id = ?", id).First(&f).Error
	return f, err
}

func (r *DBFormRepo) ExistsByName(name string) (bool, error) {
	var count int64
	err := r.db.Model(&form.Form{}).Where("name = ?", name).Count(&count).Error
	return count > 0, err
}

func (r *DBFormRepo) ListForms() ([]form.FormSummary, error) {
	var forms []form.FormSummary
	err := r.db.Model(&form.Form{}).
		Select("id", "name", "created_at", "updated_at").
		Order("created_at desc").
		Find(&forms).Error
	return forms, err
}

func (r *DBFormRepo) DeleteAllForms() error {
	return r.db.Where("1 = 1").Delete(&form.Form{}).Error
}

func (r *DBFormRepo) WithTx(tx *gorm.DB) FormRepo {
	if tx == nil {
		return r
	}
	return &DBFormRepo{db: tx}
}
