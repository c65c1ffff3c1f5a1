package service

import (
	"errors"
	"fmt"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/internal/upload"
	"go-gudang-api/pkg/pagination"
	"go-gudang-api/pkg/validator"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type VariasiUpdateInput struct {
	NamaVariasi *string          `json:"namaVariasi"`
	Harga       *decimal.Decimal `json:"harga"`
	Stok        *int             `json:"stok"`
	FotoVariasi *string          `json:"-"`
}

type VariasiService interface {
	Create(variasi *model.Variasi) error
	List(p pagination.Params, f repository.VariasiFilter) ([]model.Variasi, int64, error)
	GetByID(id uint) (*model.Variasi, error)
	Update(id uint, input VariasiUpdateInput) (*model.Variasi, error)
	Delete(id uint) (*model.Variasi, error)
	DeleteFoto(id uint) (*model.Variasi, error)
}

type variasiService struct {
	variasiRepo repository.VariasiRepository
	produkRepo  repository.ProdukRepository
	uploads     *upload.Manager
}

func NewVariasiService(variasiRepo repository.VariasiRepository, produkRepo repository.ProdukRepository, uploads *upload.Manager) VariasiService {
	return &variasiService{variasiRepo: variasiRepo, produkRepo: produkRepo, uploads: uploads}
}

func (s *variasiService) Create(variasi *model.Variasi) error {
	if errs := validator.ValidateStruct(variasi); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	// Pastikan produk induk ada
	if _, err := s.produkRepo.FindByID(variasi.ProdukID); err != nil {
		return ErrNotFound
	}

	return s.variasiRepo.Create(variasi)
}

func (s *variasiService) List(p pagination.Params, f repository.VariasiFilter) ([]model.Variasi, int64, error) {
	return s.variasiRepo.List(p.Normalize(), f)
}

func (s *variasiService) GetByID(id uint) (*model.Variasi, error) {
	variasi, err := s.variasiRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return variasi, err
}

func (s *variasiService) Update(id uint, input VariasiUpdateInput) (*model.Variasi, error) {
	variasi, err := s.variasiRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.NamaVariasi != nil {
		variasi.NamaVariasi = *input.NamaVariasi
	}
	if input.Harga != nil {
		variasi.Harga = *input.Harga
	}
	if input.Stok != nil {
		variasi.Stok = *input.Stok
	}
	if input.FotoVariasi != nil {
		if variasi.FotoVariasi != "" {
			s.uploads.Remove(variasi.FotoVariasi)
		}
		variasi.FotoVariasi = *input.FotoVariasi
	}

	if errs := validator.ValidateStruct(variasi); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if err := s.variasiRepo.Update(variasi); err != nil {
		return nil, err
	}
	return variasi, nil
}

func (s *variasiService) Delete(id uint) (*model.Variasi, error) {
	variasi, err := s.variasiRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.variasiRepo.Delete(id); err != nil {
		return nil, err
	}
	s.uploads.Remove(variasi.FotoVariasi)
	return variasi, nil
}

func (s *variasiService) DeleteFoto(id uint) (*model.Variasi, error) {
	variasi, err := s.variasiRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if variasi.FotoVariasi == "" {
		return nil, ErrNoFoto
	}

	s.uploads.Remove(variasi.FotoVariasi)
	variasi.FotoVariasi = ""
	if err := s.variasiRepo.Update(variasi); err != nil {
		return nil, err
	}
	return variasi, nil
}
