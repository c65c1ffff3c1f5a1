package repository

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/pkg/pagination"

	"gorm.io/gorm"
)

type ProdukRepository interface {
	Create(produk *model.Produk) error
	List(p pagination.Params) ([]model.Produk, int64, error)
	FindByID(id uint) (*model.Produk, error)
	Update(produk *model.Produk) error
	// Delete removes the product and its variants in one transaction and
	// returns the variants' photo paths for file cleanup.
	Delete(id uint) ([]string, error)
}

type produkRepo struct {
	db *gorm.DB
}

func NewProdukRepo(db *gorm.DB) ProdukRepository {
	return &produkRepo{db}
}

func (r *produkRepo) Create(produk *model.Produk) error {
	return r.db.Create(produk).Error
}

func (r *produkRepo) List(p pagination.Params) ([]model.Produk, int64, error) {
	var produks []model.Produk
	var total int64

	q := r.db.Model(&model.Produk{})
	if p.Search != "" {
		q = q.Where("LOWER(nama_produk) LIKE LOWER(?)", "%"+p.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("Variasi").Order("produk_id").Offset(p.Offset()).Limit(p.Limit).Find(&produks).Error
	return produks, total, err
}

func (r *produkRepo) FindByID(id uint) (*model.Produk, error) {
	var produk model.Produk
	if err := r.db.Preload("Variasi").First(&produk, "produk_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &produk, nil
}

func (r *produkRepo) Update(produk *model.Produk) error {
	return r.db.Save(produk).Error
}

func (r *produkRepo) Delete(id uint) ([]string, error) {
	var fotoPaths []string

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var variasi []model.Variasi
		if err := tx.Where("produk_id = ?", id).Find(&variasi).Error; err != nil {
			return err
		}
		for _, v := range variasi {
			if v.FotoVariasi != "" {
				fotoPaths = append(fotoPaths, v.FotoVariasi)
			}
		}
		if err := tx.Where("produk_id = ?", id).Delete(&model.Variasi{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Produk{}, "produk_id = ?", id).Error
	})

	if err != nil {
		return nil, err
	}
	return fotoPaths, nil
}
