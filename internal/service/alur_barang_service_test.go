package service

import (
	"testing"
	"time"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/pkg/pagination"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type alurFixture struct {
	svc     AlurBarangService
	db      *gorm.DB
	admin   *model.Admin
	variasi *model.Variasi
}

func newAlurFixture(t *testing.T) *alurFixture {
	t.Helper()
	db := newTestDB(t)

	admin := &model.Admin{Username: "budi"}
	require.NoError(t, admin.SetPassword("rahasia123"))
	require.NoError(t, db.Create(admin).Error)

	produk := &model.Produk{NamaProduk: "Kaos Polos"}
	require.NoError(t, db.Create(produk).Error)

	variasi := &model.Variasi{
		ProdukID:    produk.ProdukID,
		NamaVariasi: "XL",
		Harga:       decimal.NewFromInt(150000),
		Stok:        10,
	}
	require.NoError(t, db.Create(variasi).Error)

	svc := NewAlurBarangService(
		repository.NewAlurBarangRepo(db),
		repository.NewVariasiRepo(db),
		db,
		nil,
	)
	return &alurFixture{svc: svc, db: db, admin: admin, variasi: variasi}
}

func (f *alurFixture) stok(t *testing.T) int {
	t.Helper()
	var variasi model.Variasi
	require.NoError(t, f.db.First(&variasi, "variasi_id = ?", f.variasi.VariasiID).Error)
	return variasi.Stok
}

func (f *alurFixture) newAlur(jenis model.JenisAlur, jumlah int) *model.AlurBarang {
	return &model.AlurBarang{
		JenisAlur: jenis,
		Tanggal:   time.Now(),
		Jumlah:    jumlah,
		VariasiID: f.variasi.VariasiID,
		AdminID:   f.admin.AdminID,
	}
}

func TestAlurMasukIncreasesStok(t *testing.T) {
	f := newAlurFixture(t)

	require.NoError(t, f.svc.Create(f.newAlur(model.AlurMasuk, 5)))
	assert.Equal(t, 15, f.stok(t))
}

func TestAlurKeluarDecreasesStok(t *testing.T) {
	f := newAlurFixture(t)

	require.NoError(t, f.svc.Create(f.newAlur(model.AlurKeluar, 4)))
	assert.Equal(t, 6, f.stok(t))
}

func TestAlurKeluarInsufficientStokRejected(t *testing.T) {
	f := newAlurFixture(t)

	err := f.svc.Create(f.newAlur(model.AlurKeluar, 11))
	assert.ErrorIs(t, err, ErrStokKurang)

	// stok tidak berubah dan tidak ada entri ledger
	assert.Equal(t, 10, f.stok(t))
	var count int64
	f.db.Model(&model.AlurBarang{}).Count(&count)
	assert.Zero(t, count)
}

func TestAlurCreateRejectsMissingVariasi(t *testing.T) {
	f := newAlurFixture(t)

	alur := f.newAlur(model.AlurMasuk, 5)
	alur.VariasiID = 999
	err := f.svc.Create(alur)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAlurCreateRejectsInvalidJenis(t *testing.T) {
	f := newAlurFixture(t)

	alur := f.newAlur("Pindah", 5)
	assert.Error(t, f.svc.Create(alur))
	assert.Equal(t, 10, f.stok(t))
}

func TestAlurDeleteReversesStok(t *testing.T) {
	f := newAlurFixture(t)

	alur := f.newAlur(model.AlurMasuk, 5)
	require.NoError(t, f.svc.Create(alur))
	require.Equal(t, 15, f.stok(t))

	_, err := f.svc.Delete(alur.AlurBarangID)
	require.NoError(t, err)
	assert.Equal(t, 10, f.stok(t))
}

func TestAlurUpdateReappliesStok(t *testing.T) {
	f := newAlurFixture(t)

	alur := f.newAlur(model.AlurMasuk, 5)
	require.NoError(t, f.svc.Create(alur))
	require.Equal(t, 15, f.stok(t))

	// Masuk 5 menjadi Keluar 3: 10 - 3 = 7
	keluar := model.AlurKeluar
	jumlah := 3
	updated, err := f.svc.Update(alur.AlurBarangID, AlurBarangUpdateInput{
		JenisAlur: &keluar,
		Jumlah:    &jumlah,
	})
	require.NoError(t, err)
	assert.Equal(t, model.AlurKeluar, updated.JenisAlur)
	assert.Equal(t, 7, f.stok(t))
}

func TestAlurUpdateRejectsOverdraw(t *testing.T) {
	f := newAlurFixture(t)

	alur := f.newAlur(model.AlurMasuk, 5)
	require.NoError(t, f.svc.Create(alur))

	keluar := model.AlurKeluar
	jumlah := 11 // setelah pembalikan stok kembali 10, keluar 11 ditolak
	_, err := f.svc.Update(alur.AlurBarangID, AlurBarangUpdateInput{
		JenisAlur: &keluar,
		Jumlah:    &jumlah,
	})
	assert.ErrorIs(t, err, ErrStokKurang)
	assert.Equal(t, 15, f.stok(t), "failed update leaves stock untouched")
}

func TestAlurListIncludesRelations(t *testing.T) {
	f := newAlurFixture(t)
	require.NoError(t, f.svc.Create(f.newAlur(model.AlurMasuk, 5)))

	rows, total, err := f.svc.List(pagination.Params{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Variasi)
	assert.Equal(t, "XL", rows[0].Variasi.NamaVariasi)
	require.NotNil(t, rows[0].Admin)
	assert.Equal(t, "budi", rows[0].Admin.Username)
}
