package service

import (
	"errors"
	"fmt"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/internal/upload"
	"go-gudang-api/pkg/pagination"
	"go-gudang-api/pkg/validator"

	"gorm.io/gorm"
)

type ProdukUpdateInput struct {
	NamaProduk *string `json:"namaProduk"`
	Deskripsi  *string `json:"deskripsi"`
	FotoProduk *string `json:"-"`
}

type ProdukService interface {
	Create(produk *model.Produk) error
	List(p pagination.Params) ([]model.Produk, int64, error)
	GetByID(id uint) (*model.Produk, error)
	Update(id uint, input ProdukUpdateInput) (*model.Produk, error)
	Delete(id uint) (*model.Produk, error)
	DeleteFoto(id uint) (*model.Produk, error)
}

type produkService struct {
	produkRepo repository.ProdukRepository
	uploads    *upload.Manager
}

func NewProdukService(produkRepo repository.ProdukRepository, uploads *upload.Manager) ProdukService {
	return &produkService{produkRepo: produkRepo, uploads: uploads}
}

func (s *produkService) Create(produk *model.Produk) error {
	if errs := validator.ValidateStruct(produk); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return s.produkRepo.Create(produk)
}

func (s *produkService) List(p pagination.Params) ([]model.Produk, int64, error) {
	return s.produkRepo.List(p.Normalize())
}

func (s *produkService) GetByID(id uint) (*model.Produk, error) {
	produk, err := s.produkRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return produk, err
}

func (s *produkService) Update(id uint, input ProdukUpdateInput) (*model.Produk, error) {
	produk, err := s.produkRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.NamaProduk != nil {
		produk.NamaProduk = *input.NamaProduk
	}
	if input.Deskripsi != nil {
		produk.Deskripsi = *input.Deskripsi
	}
	if input.FotoProduk != nil {
		// Foto lama diganti: hapus file lama best-effort
		if produk.FotoProduk != "" {
			s.uploads.Remove(produk.FotoProduk)
		}
		produk.FotoProduk = *input.FotoProduk
	}

	if errs := validator.ValidateStruct(produk); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if err := s.produkRepo.Update(produk); err != nil {
		return nil, err
	}
	return produk, nil
}

func (s *produkService) Delete(id uint) (*model.Produk, error) {
	produk, err := s.produkRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	variasiFotos, err := s.produkRepo.Delete(id)
	if err != nil {
		return nil, err
	}

	s.uploads.Remove(produk.FotoProduk)
	for _, foto := range variasiFotos {
		s.uploads.Remove(foto)
	}
	return produk, nil
}

func (s *produkService) DeleteFoto(id uint) (*model.Produk, error) {
	produk, err := s.produkRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if produk.FotoProduk == "" {
		return nil, ErrNoFoto
	}

	s.uploads.Remove(produk.FotoProduk)
	produk.FotoProduk = ""
	if err := s.produkRepo.Update(produk); err != nil {
		return nil, err
	}
	return produk, nil
}
