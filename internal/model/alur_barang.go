package model

import "time"

type JenisAlur string

const (
	AlurMasuk  JenisAlur = "Masuk"
	AlurKeluar JenisAlur = "Keluar"
)

// AlurBarang is a ledger entry recording an inbound or outbound quantity
// change for a Variasi, attributed to an Admin. Inserting, updating, or
// deleting an entry adjusts the variant's stock in the same transaction.
type AlurBarang struct {
	AlurBarangID uint      `gorm:"primaryKey" json:"alurBarangID"`
	JenisAlur    JenisAlur `gorm:"type:varchar(10);not null" json:"jenisAlur" validate:"required,oneof=Masuk Keluar"`
	Tanggal      time.Time `gorm:"not null" json:"tanggal" validate:"required"`
	Jumlah       int       `gorm:"not null" json:"jumlah" validate:"required,gt=0"`
	LokasiProduk string    `gorm:"type:varchar(255)" json:"lokasiProduk"`
	Keterangan   string    `gorm:"type:text" json:"keterangan"`
	VariasiID    uint      `gorm:"not null;index" json:"variasiID" validate:"required"`
	AdminID      uint      `gorm:"not null;index" json:"adminID" validate:"required"`

	// Relasi
	Variasi *Variasi `gorm:"foreignKey:VariasiID;constraint:OnDelete:CASCADE" json:"variasi,omitempty" validate:"-"`
	Admin   *Admin   `gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE" json:"admin,omitempty" validate:"-"`
}

func (AlurBarang) TableName() string {
	return "alurbarang"
}
