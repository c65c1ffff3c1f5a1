package repository

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/pkg/pagination"

	"gorm.io/gorm"
)

type PemasokRepository interface {
	Create(pemasok *model.Pemasok) error
	List(p pagination.Params, alamat string) ([]model.Pemasok, int64, error)
	FindByID(id uint) (*model.Pemasok, error)
	Update(pemasok *model.Pemasok) error
	Delete(id uint) error
}

type pemasokRepo struct {
	db *gorm.DB
}

func NewPemasokRepo(db *gorm.DB) PemasokRepository {
	return &pemasokRepo{db}
}

func (r *pemasokRepo) Create(pemasok *model.Pemasok) error {
	return r.db.Create(pemasok).Error
}

func (r *pemasokRepo) List(p pagination.Params, alamat string) ([]model.Pemasok, int64, error) {
	var pemasok []model.Pemasok
	var total int64

	q := r.db.Model(&model.Pemasok{})
	if p.Search != "" {
		q = q.Where("LOWER(nama_pemasok) LIKE LOWER(?)", "%"+p.Search+"%")
	}
	if alamat != "" {
		q = q.Where("LOWER(alamat_pemasok) LIKE LOWER(?)", "%"+alamat+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("nama_pemasok").Offset(p.Offset()).Limit(p.Limit).Find(&pemasok).Error
	return pemasok, total, err
}

func (r *pemasokRepo) FindByID(id uint) (*model.Pemasok, error) {
	var pemasok model.Pemasok
	if err := r.db.First(&pemasok, "pemasok_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pemasok, nil
}

func (r *pemasokRepo) Update(pemasok *model.Pemasok) error {
	return r.db.Save(pemasok).Error
}

func (r *pemasokRepo) Delete(id uint) error {
	return r.db.Delete(&model.Pemasok{}, "pemasok_id = ?", id).Error
}
