package model

// Pemasok is a vendor contact record. It is not linked to variants or
// movements in this schema.
type Pemasok struct {
	PemasokID     uint   `gorm:"primaryKey" json:"pemasokID"`
	NamaPemasok   string `gorm:"type:varchar(255);not null" json:"namaPemasok" validate:"required"`
	AlamatPemasok string `gorm:"type:varchar(255)" json:"alamatPemasok"`
	NoTelp        string `gorm:"type:varchar(30)" json:"noTelp"`
	Keterangan    string `gorm:"type:text" json:"keterangan"`
	Email         string `gorm:"type:varchar(255)" json:"email" validate:"omitempty,email"`
}

func (Pemasok) TableName() string {
	return "pemasok"
}
