package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Variasi struct {
	VariasiID   uint            `gorm:"primaryKey" json:"variasiID"`
	ProdukID    uint            `gorm:"not null;index" json:"produkID" validate:"required"`
	NamaVariasi string          `gorm:"type:varchar(255);not null" json:"namaVariasi" validate:"required"`
	Harga       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"harga" validate:"required"`
	Stok        int             `gorm:"not null;default:0" json:"stok" validate:"gte=0"`
	FotoVariasi string          `gorm:"type:varchar(255)" json:"fotoVariasi"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`

	// Relasi
	Produk *Produk `gorm:"foreignKey:ProdukID" json:"produk,omitempty" validate:"-"`
}

func (Variasi) TableName() string {
	return "variasi"
}

// VariasiResponse reshapes a Variasi with a resolvable photo URL.
type VariasiResponse struct {
	VariasiID   uint            `json:"variasiID"`
	ProdukID    uint            `json:"produkID"`
	NamaVariasi string          `json:"namaVariasi"`
	Harga       decimal.Decimal `json:"harga"`
	Stok        int             `json:"stok"`
	FotoVariasi string          `json:"fotoVariasi"`
	FotoURL     string          `json:"fotoURL,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Produk      *ProdukResponse `json:"produk,omitempty"`
}

func (v *Variasi) ToResponse() VariasiResponse {
	resp := VariasiResponse{
		VariasiID:   v.VariasiID,
		ProdukID:    v.ProdukID,
		NamaVariasi: v.NamaVariasi,
		Harga:       v.Harga,
		Stok:        v.Stok,
		FotoVariasi: v.FotoVariasi,
		FotoURL:     PhotoURL(v.FotoVariasi),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
	if v.Produk != nil {
		produk := v.Produk.ToResponse()
		produk.Variasi = nil // avoid recursive payloads
		resp.Produk = &produk
	}
	return resp
}
