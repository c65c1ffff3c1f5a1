package service

import (
	"errors"
	"fmt"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/pkg/jwt"
	"go-gudang-api/pkg/pagination"
	"go-gudang-api/pkg/validator"

	"gorm.io/gorm"
)

type AdminUpdateInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token string      `json:"token"`
	Admin model.Admin `json:"admin"`
}

type AdminService interface {
	Register(admin *model.Admin, plainPassword string) error
	Login(username, password string) (*LoginResult, error)
	List(p pagination.Params) ([]model.Admin, int64, error)
	GetByID(id uint) (*model.Admin, error)
	Update(id uint, input AdminUpdateInput) (*model.Admin, error)
	Delete(id uint) (*model.Admin, error)
}

type adminService struct {
	adminRepo repository.AdminRepository
	tokens    *jwt.Manager
}

func NewAdminService(adminRepo repository.AdminRepository, tokens *jwt.Manager) AdminService {
	return &adminService{adminRepo: adminRepo, tokens: tokens}
}

func (s *adminService) Register(admin *model.Admin, plainPassword string) error {
	if admin.Username == "" || plainPassword == "" {
		return fmt.Errorf("%w: username dan password wajib diisi", ErrValidation)
	}
	if errs := validator.ValidateStruct(admin); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	// Cek duplikasi username
	existing, _ := s.adminRepo.FindByUsername(admin.Username)
	if existing != nil {
		return ErrConflict
	}

	if err := admin.SetPassword(plainPassword); err != nil {
		return err
	}
	return s.adminRepo.Create(admin)
}

func (s *adminService) Login(username, password string) (*LoginResult, error) {
	admin, err := s.adminRepo.FindByUsername(username)
	if err != nil {
		return nil, ErrUnauthorized
	}
	if !admin.CheckPassword(password) {
		return nil, ErrUnauthorized
	}

	token, err := s.tokens.Generate(admin.AdminID, admin.Username)
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Admin: *admin}, nil
}

func (s *adminService) List(p pagination.Params) ([]model.Admin, int64, error) {
	return s.adminRepo.List(p.Normalize())
}

func (s *adminService) GetByID(id uint) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return admin, err
}

// Update applies only the supplied fields. An omitted password leaves the
// stored hash untouched; a supplied one is re-hashed, never stored plain.
func (s *adminService) Update(id uint, input AdminUpdateInput) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}

	if input.Username != "" && input.Username != admin.Username {
		existing, _ := s.adminRepo.FindByUsername(input.Username)
		if existing != nil {
			return nil, ErrConflict
		}
		admin.Username = input.Username
	}
	if input.Password != "" {
		if err := admin.SetPassword(input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.adminRepo.Update(admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *adminService) Delete(id uint) (*model.Admin, error) {
	admin, err := s.adminRepo.FindByID(id)
	if err != nil {
		return nil, ErrNotFound
	}
	if err := s.adminRepo.Delete(id); err != nil {
		return nil, err
	}
	return admin, nil
}
