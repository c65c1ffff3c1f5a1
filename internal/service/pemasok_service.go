package service

import (
	"errors"
	"fmt"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/pkg/pagination"
	"go-gudang-api/pkg/validator"

	"gorm.io/gorm"
)

type PemasokUpdateInput struct {
	NamaPemasok   *string `json:"namaPemasok"`
	AlamatPemasok *string `json:"alamatPemasok"`
	NoTelp        *string `json:"noTelp"`
	Keterangan    *string `json:"keterangan"`
	Email         *string `json:"email"`
}

type PemasokService interface {
	Create(pemasok *model.Pemasok) error
	List(p pagination.Params, alamat string) ([]model.Pemasok, int64, error)
	GetByID(id uint) (*model.Pemasok, error)
	Update(id uint, input PemasokUpdateInput) (*model.Pemasok, error)
	Delete(id uint) (*model.Pemasok, error)
}

type pemasokService struct {
	pemasokRepo repository.PemasokRepository
}

func NewPemasokService(pemasokRepo repository.PemasokRepository) PemasokService {
	return &pemasokService{pemasokRepo: pemasokRepo}
}

func (s *pemasokService) Create(pemasok *model.Pemasok) error {
	if errs := validator.ValidateStruct(pemasok); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}
	return s.pemasokRepo.Create(pemasok)
}

func (s *pemasokService) List(p pagination.Params, alamat string) ([]model.Pemasok, int64, error) {
	return s.pemasokRepo.List(p.Normalize(), alamat)
}

func (s *pemasokService) GetByID(id uint) (*model.Pemasok, error) {
	pemasok, err := s.pemasokRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return pemasok, err
}

func (s *pemasokService) Update(id uint, input PemasokUpdateInput) (*model.Pemasok, error) {
	pemasok, err := s.pemasokRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.NamaPemasok != nil {
		pemasok.NamaPemasok = *input.NamaPemasok
	}
	if input.AlamatPemasok != nil {
		pemasok.AlamatPemasok = *input.AlamatPemasok
	}
	if input.NoTelp != nil {
		pemasok.NoTelp = *input.NoTelp
	}
	if input.Keterangan != nil {
		pemasok.Keterangan = *input.Keterangan
	}
	if input.Email != nil {
		pemasok.Email = *input.Email
	}

	if errs := validator.ValidateStruct(pemasok); len(errs) > 0 {
		first := errs[0]
		return nil, fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	if err := s.pemasokRepo.Update(pemasok); err != nil {
		return nil, err
	}
	return pemasok, nil
}

func (s *pemasokService) Delete(id uint) (*model.Pemasok, error) {
	pemasok, err := s.pemasokRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.pemasokRepo.Delete(id); err != nil {
		return nil, err
	}
	return pemasok, nil
}
