package repository

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/pkg/pagination"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// VariasiFilter narrows a variant listing to a closed price range.
type VariasiFilter struct {
	MinHarga *decimal.Decimal
	MaxHarga *decimal.Decimal
}

type VariasiRepository interface {
	Create(variasi *model.Variasi) error
	List(p pagination.Params, f VariasiFilter) ([]model.Variasi, int64, error)
	FindByID(id uint) (*model.Variasi, error)
	Update(variasi *model.Variasi) error
	UpdateStok(tx *gorm.DB, id uint, newStok int) error
	Delete(id uint) error
}

type variasiRepo struct {
	db *gorm.DB
}

func NewVariasiRepo(db *gorm.DB) VariasiRepository {
	return &variasiRepo{db}
}

func (r *variasiRepo) Create(variasi *model.Variasi) error {
	return r.db.Create(variasi).Error
}

func (r *variasiRepo) List(p pagination.Params, f VariasiFilter) ([]model.Variasi, int64, error) {
	var variasi []model.Variasi
	var total int64

	q := r.db.Model(&model.Variasi{})
	if p.Search != "" {
		q = q.Where("LOWER(nama_variasi) LIKE LOWER(?)", "%"+p.Search+"%")
	}
	if f.MinHarga != nil {
		q = q.Where("harga >= ?", f.MinHarga)
	}
	if f.MaxHarga != nil {
		q = q.Where("harga <= ?", f.MaxHarga)
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Produk").Order("variasi_id").Offset(p.Offset()).Limit(p.Limit).Find(&variasi).Error
	return variasi, total, err
}

func (r *variasiRepo) FindByID(id uint) (*model.Variasi, error) {
	var variasi model.Variasi
	if err := r.db.Preload("Produk").First(&variasi, "variasi_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &variasi, nil
}

func (r *variasiRepo) Update(variasi *model.Variasi) error {
	return r.db.Save(variasi).Error
}

// UpdateStok menerima *gorm.DB (tx) agar bisa berjalan dalam transaksi
func (r *variasiRepo) UpdateStok(tx *gorm.DB, id uint, newStok int) error {
	return tx.Model(&model.Variasi{}).
		Where("variasi_id = ?", id).
		Update("stok", newStok).Error
}

func (r *variasiRepo) Delete(id uint) error {
	return r.db.Delete(&model.Variasi{}, "variasi_id = ?", id).Error
}
