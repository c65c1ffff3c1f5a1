package model

import "time"

type Produk struct {
	ProdukID   uint      `gorm:"primaryKey" json:"produkID"`
	NamaProduk string    `gorm:"type:varchar(255);not null" json:"namaProduk" validate:"required"`
	Deskripsi  string    `gorm:"type:text" json:"deskripsi"`
	FotoProduk string    `gorm:"type:varchar(255)" json:"fotoProduk"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	// Relasi
	Variasi []Variasi `gorm:"foreignKey:ProdukID;constraint:OnDelete:CASCADE" json:"variasi,omitempty"`
}

func (Produk) TableName() string {
	return "produk"
}

// ProdukResponse reshapes a Produk with a resolvable photo URL.
type ProdukResponse struct {
	ProdukID   uint              `json:"produkID"`
	NamaProduk string            `json:"namaProduk"`
	Deskripsi  string            `json:"deskripsi"`
	FotoProduk string            `json:"fotoProduk"`
	FotoURL    string            `json:"fotoURL,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
	UpdatedAt  time.Time         `json:"updatedAt"`
	Variasi    []VariasiResponse `json:"variasi,omitempty"`
}

func (p *Produk) ToResponse() ProdukResponse {
	resp := ProdukResponse{
		ProdukID:   p.ProdukID,
		NamaProduk: p.NamaProduk,
		Deskripsi:  p.Deskripsi,
		FotoProduk: p.FotoProduk,
		FotoURL:    PhotoURL(p.FotoProduk),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
	for i := range p.Variasi {
		resp.Variasi = append(resp.Variasi, p.Variasi[i].ToResponse())
	}
	return resp
}

// PhotoURL maps a stored relative photo path to its public URL. Uploaded
// files are always served under the fixed /uploads prefix.
func PhotoURL(path string) string {
	if path == "" {
		return ""
	}
	return "/uploads/" + path
}
