package service

import (
	"testing"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/pkg/pagination"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newVariasiService(t *testing.T) (VariasiService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	variasiRepo := repository.NewVariasiRepo(db)
	produkRepo := repository.NewProdukRepo(db)
	return NewVariasiService(variasiRepo, produkRepo, newTestUploads(t)), db
}

func seedProduk(t *testing.T, db *gorm.DB, nama string) *model.Produk {
	t.Helper()
	produk := &model.Produk{NamaProduk: nama}
	require.NoError(t, db.Create(produk).Error)
	return produk
}

func TestVariasiCreateRejectsMissingProduk(t *testing.T) {
	svc, _ := newVariasiService(t)

	variasi := &model.Variasi{
		ProdukID:    999,
		NamaVariasi: "XL",
		Harga:       decimal.NewFromInt(150000),
		Stok:        30,
	}
	err := svc.Create(variasi)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestVariasiCreateRejectsMissingFields(t *testing.T) {
	svc, db := newVariasiService(t)
	produk := seedProduk(t, db, "Kaos Polos")

	err := svc.Create(&model.Variasi{ProdukID: produk.ProdukID})
	assert.Error(t, err)

	var count int64
	db.Model(&model.Variasi{}).Count(&count)
	assert.Zero(t, count, "no partial write on validation failure")
}

func TestVariasiCreateAndGet(t *testing.T) {
	svc, db := newVariasiService(t)
	produk := seedProduk(t, db, "Kaos Polos")

	variasi := &model.Variasi{
		ProdukID:    produk.ProdukID,
		NamaVariasi: "XL",
		Harga:       decimal.NewFromInt(150000),
		Stok:        30,
	}
	require.NoError(t, svc.Create(variasi))
	require.NotZero(t, variasi.VariasiID)

	got, err := svc.GetByID(variasi.VariasiID)
	require.NoError(t, err)
	assert.Equal(t, "XL", got.NamaVariasi)
	assert.True(t, got.Harga.Equal(decimal.NewFromInt(150000)))
	assert.Equal(t, 30, got.Stok)
	require.NotNil(t, got.Produk)
	assert.Equal(t, "Kaos Polos", got.Produk.NamaProduk)
}

func TestVariasiPartialUpdate(t *testing.T) {
	svc, db := newVariasiService(t)
	produk := seedProduk(t, db, "Kaos Polos")

	variasi := &model.Variasi{
		ProdukID:    produk.ProdukID,
		NamaVariasi: "XL",
		Harga:       decimal.NewFromInt(150000),
		Stok:        30,
	}
	require.NoError(t, svc.Create(variasi))

	newHarga := decimal.NewFromInt(175000)
	updated, err := svc.Update(variasi.VariasiID, VariasiUpdateInput{Harga: &newHarga})
	require.NoError(t, err)

	assert.True(t, updated.Harga.Equal(newHarga))
	assert.Equal(t, "XL", updated.NamaVariasi, "unspecified fields left unchanged")
	assert.Equal(t, 30, updated.Stok)
}

func TestVariasiListPriceRange(t *testing.T) {
	svc, db := newVariasiService(t)
	produk := seedProduk(t, db, "Kaos Polos")

	for _, harga := range []int64{50000, 100000, 200000} {
		require.NoError(t, svc.Create(&model.Variasi{
			ProdukID:    produk.ProdukID,
			NamaVariasi: "V" + decimal.NewFromInt(harga).String(),
			Harga:       decimal.NewFromInt(harga),
			Stok:        1,
		}))
	}

	min := decimal.NewFromInt(60000)
	max := decimal.NewFromInt(150000)
	rows, total, err := svc.List(pagination.Params{Page: 1, Limit: 10}, repository.VariasiFilter{MinHarga: &min, MaxHarga: &max})
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.True(t, rows[0].Harga.Equal(decimal.NewFromInt(100000)))
}

func TestVariasiDeleteFotoWithoutFoto(t *testing.T) {
	svc, db := newVariasiService(t)
	produk := seedProduk(t, db, "Kaos Polos")

	variasi := &model.Variasi{
		ProdukID:    produk.ProdukID,
		NamaVariasi: "XL",
		Harga:       decimal.NewFromInt(150000),
	}
	require.NoError(t, svc.Create(variasi))

	_, err := svc.DeleteFoto(variasi.VariasiID)
	assert.ErrorIs(t, err, ErrNoFoto)
}
