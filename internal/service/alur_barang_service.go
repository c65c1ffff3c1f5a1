package service

import (
	"errors"
	"fmt"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/internal/ws"
	"go-gudang-api/pkg/pagination"
	"go-gudang-api/pkg/validator"

	"gorm.io/gorm"
)

type AlurBarangUpdateInput struct {
	JenisAlur    *model.JenisAlur `json:"jenisAlur"`
	Tanggal      *string          `json:"tanggal"`
	Jumlah       *int             `json:"jumlah"`
	LokasiProduk *string          `json:"lokasiProduk"`
	Keterangan   *string          `json:"keterangan"`
}

type AlurBarangService interface {
	Create(alur *model.AlurBarang) error
	List(p pagination.Params) ([]model.AlurBarang, int64, error)
	GetByID(id uint) (*model.AlurBarang, error)
	Update(id uint, input AlurBarangUpdateInput) (*model.AlurBarang, error)
	Delete(id uint) (*model.AlurBarang, error)
}

type alurBarangService struct {
	alurRepo    repository.AlurBarangRepository
	variasiRepo repository.VariasiRepository
	db          *gorm.DB
	wsHub       *ws.Hub
}

func NewAlurBarangService(alurRepo repository.AlurBarangRepository, variasiRepo repository.VariasiRepository, db *gorm.DB, hub *ws.Hub) AlurBarangService {
	return &alurBarangService{
		alurRepo:    alurRepo,
		variasiRepo: variasiRepo,
		db:          db,
		wsHub:       hub,
	}
}

// stokSetelah menghitung stok baru setelah sebuah alur diterapkan.
// Alur "Keluar" yang membuat stok negatif ditolak.
func stokSetelah(stok int, jenis model.JenisAlur, jumlah int) (int, error) {
	switch jenis {
	case model.AlurMasuk:
		return stok + jumlah, nil
	case model.AlurKeluar:
		if stok < jumlah {
			return 0, ErrStokKurang
		}
		return stok - jumlah, nil
	}
	return 0, fmt.Errorf("jenis alur tidak dikenal: %s", jenis)
}

func (s *alurBarangService) Create(alur *model.AlurBarang) error {
	if errs := validator.ValidateStruct(alur); len(errs) > 0 {
		first := errs[0]
		return fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
	}

	var variasi model.Variasi

	// Insert alur dan penyesuaian stok berjalan dalam satu transaksi
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&variasi, "variasi_id = ?", alur.VariasiID).Error; err != nil {
			return ErrNotFound
		}

		var admin model.Admin
		if err := tx.First(&admin, "admin_id = ?", alur.AdminID).Error; err != nil {
			return ErrNotFound
		}

		newStok, err := stokSetelah(variasi.Stok, alur.JenisAlur, alur.Jumlah)
		if err != nil {
			return err
		}

		if err := s.variasiRepo.UpdateStok(tx, variasi.VariasiID, newStok); err != nil {
			return err
		}
		variasi.Stok = newStok

		return tx.Create(alur).Error
	})
	if err != nil {
		return err
	}

	s.broadcast("alur_created", alur, &variasi)
	return nil
}

func (s *alurBarangService) List(p pagination.Params) ([]model.AlurBarang, int64, error) {
	return s.alurRepo.List(p.Normalize())
}

func (s *alurBarangService) GetByID(id uint) (*model.AlurBarang, error) {
	alur, err := s.alurRepo.FindByID(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return alur, err
}

// Update membalik efek alur lama lalu menerapkan alur baru pada stok,
// semuanya dalam satu transaksi.
func (s *alurBarangService) Update(id uint, input AlurBarangUpdateInput) (*model.AlurBarang, error) {
	var updated *model.AlurBarang
	var variasi model.Variasi

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var alur model.AlurBarang
		if err := tx.First(&alur, "alur_barang_id = ?", id).Error; err != nil {
			return ErrNotFound
		}

		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&variasi, "variasi_id = ?", alur.VariasiID).Error; err != nil {
			return ErrNotFound
		}

		// Balik efek lama. Membalik "Keluar" menambah stok kembali, jadi
		// arah jenisnya ditukar.
		reversed := model.AlurMasuk
		if alur.JenisAlur == model.AlurMasuk {
			reversed = model.AlurKeluar
		}
		stok, err := stokSetelah(variasi.Stok, reversed, alur.Jumlah)
		if err != nil {
			return err
		}

		if input.JenisAlur != nil {
			alur.JenisAlur = *input.JenisAlur
		}
		if input.Jumlah != nil {
			alur.Jumlah = *input.Jumlah
		}
		if input.Tanggal != nil {
			t, err := ParseTanggal(*input.Tanggal)
			if err != nil {
				return err
			}
			alur.Tanggal = t
		}
		if input.LokasiProduk != nil {
			alur.LokasiProduk = *input.LokasiProduk
		}
		if input.Keterangan != nil {
			alur.Keterangan = *input.Keterangan
		}

		if errs := validator.ValidateStruct(&alur); len(errs) > 0 {
			first := errs[0]
			return fmt.Errorf("%w: field '%s' pada tag '%s'", ErrValidation, first.FailedField, first.Tag)
		}

		stok, err = stokSetelah(stok, alur.JenisAlur, alur.Jumlah)
		if err != nil {
			return err
		}

		if err := s.variasiRepo.UpdateStok(tx, variasi.VariasiID, stok); err != nil {
			return err
		}
		variasi.Stok = stok

		if err := tx.Save(&alur).Error; err != nil {
			return err
		}
		updated = &alur
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("alur_updated", updated, &variasi)
	return updated, nil
}

// Delete membalik efek alur pada stok sebelum menghapus entri.
func (s *alurBarangService) Delete(id uint) (*model.AlurBarang, error) {
	var deleted *model.AlurBarang
	var variasi model.Variasi

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var alur model.AlurBarang
		if err := tx.First(&alur, "alur_barang_id = ?", id).Error; err != nil {
			return ErrNotFound
		}

		if err := tx.Set("gorm:query_option", "FOR UPDATE").First(&variasi, "variasi_id = ?", alur.VariasiID).Error; err != nil {
			return ErrNotFound
		}

		reversed := model.AlurMasuk
		if alur.JenisAlur == model.AlurMasuk {
			reversed = model.AlurKeluar
		}
		stok, err := stokSetelah(variasi.Stok, reversed, alur.Jumlah)
		if err != nil {
			return err
		}

		if err := s.variasiRepo.UpdateStok(tx, variasi.VariasiID, stok); err != nil {
			return err
		}
		variasi.Stok = stok

		if err := tx.Delete(&model.AlurBarang{}, "alur_barang_id = ?", id).Error; err != nil {
			return err
		}
		deleted = &alur
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.broadcast("alur_deleted", deleted, &variasi)
	return deleted, nil
}

func (s *alurBarangService) broadcast(action string, alur *model.AlurBarang, variasi *model.Variasi) {
	if s.wsHub == nil {
		return
	}
	s.wsHub.BroadcastEvent(ws.Event{
		Type:   "stock_update",
		Action: action,
		Data: map[string]interface{}{
			"alurBarangID": alur.AlurBarangID,
			"jenisAlur":    alur.JenisAlur,
			"jumlah":       alur.Jumlah,
			"variasiID":    variasi.VariasiID,
			"namaVariasi":  variasi.NamaVariasi,
			"stok":         variasi.Stok,
		},
	})
}
