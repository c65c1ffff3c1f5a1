package repository

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/pkg/pagination"

	"gorm.io/gorm"
)

type AlurBarangRepository interface {
	List(p pagination.Params) ([]model.AlurBarang, int64, error)
	FindByID(id uint) (*model.AlurBarang, error)
}

type alurBarangRepo struct {
	db *gorm.DB
}

func NewAlurBarangRepo(db *gorm.DB) AlurBarangRepository {
	return &alurBarangRepo{db}
}

func (r *alurBarangRepo) List(p pagination.Params) ([]model.AlurBarang, int64, error) {
	var alur []model.AlurBarang
	var total int64

	q := r.db.Model(&model.AlurBarang{})
	if p.Search != "" {
		q = q.Where("LOWER(lokasi_produk) LIKE LOWER(?)", "%"+p.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Variasi").Preload("Variasi.Produk").Preload("Admin").
		Order("tanggal DESC").Offset(p.Offset()).Limit(p.Limit).Find(&alur).Error
	return alur, total, err
}

func (r *alurBarangRepo) FindByID(id uint) (*model.AlurBarang, error) {
	var alur model.AlurBarang
	err := r.db.Preload("Variasi").Preload("Variasi.Produk").Preload("Admin").
		First(&alur, "alur_barang_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &alur, nil
}
