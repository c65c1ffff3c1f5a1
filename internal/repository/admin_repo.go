package repository

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/pkg/pagination"

	"gorm.io/gorm"
)

type AdminRepository interface {
	Create(admin *model.Admin) error
	List(p pagination.Params) ([]model.Admin, int64, error)
	FindByID(id uint) (*model.Admin, error)
	FindByUsername(username string) (*model.Admin, error)
	Update(admin *model.Admin) error
	UpdatePassword(id uint, hashedPassword string) error
	Delete(id uint) error
}

type adminRepo struct {
	db *gorm.DB
}

func NewAdminRepo(db *gorm.DB) AdminRepository {
	return &adminRepo{db}
}

func (r *adminRepo) Create(admin *model.Admin) error {
	return r.db.Create(admin).Error
}

func (r *adminRepo) List(p pagination.Params) ([]model.Admin, int64, error) {
	var admins []model.Admin
	var total int64

	q := r.db.Model(&model.Admin{})
	if p.Search != "" {
		q = q.Where("LOWER(username) LIKE LOWER(?)", "%"+p.Search+"%")
	}
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Order("admin_id").Offset(p.Offset()).Limit(p.Limit).Find(&admins).Error
	return admins, total, err
}

func (r *adminRepo) FindByID(id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.First(&admin, "admin_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) FindByUsername(username string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.First(&admin, "username = ?", username).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *adminRepo) Update(admin *model.Admin) error {
	return r.db.Save(admin).Error
}

func (r *adminRepo) UpdatePassword(id uint, hashedPassword string) error {
	return r.db.Model(&model.Admin{}).Where("admin_id = ?", id).Update("password", hashedPassword).Error
}

func (r *adminRepo) Delete(id uint) error {
	return r.db.Delete(&model.Admin{}, "admin_id = ?", id).Error
}
