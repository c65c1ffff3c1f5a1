package service

import (
	"testing"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/pkg/pagination"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPemasokService(t *testing.T) PemasokService {
	t.Helper()
	return NewPemasokService(repository.NewPemasokRepo(newTestDB(t)))
}

func TestPemasokRoundTrip(t *testing.T) {
	svc := newPemasokService(t)

	pemasok := &model.Pemasok{
		NamaPemasok:   "CV Sumber Makmur",
		AlamatPemasok: "Jl. Melati No. 5, Bandung",
		NoTelp:        "081234567890",
		Keterangan:    "pemasok kain",
		Email:         "sumber@makmur.co.id",
	}
	require.NoError(t, svc.Create(pemasok))
	require.NotZero(t, pemasok.PemasokID)

	got, err := svc.GetByID(pemasok.PemasokID)
	require.NoError(t, err)
	assert.Equal(t, pemasok.NamaPemasok, got.NamaPemasok)
	assert.Equal(t, pemasok.AlamatPemasok, got.AlamatPemasok)
	assert.Equal(t, pemasok.NoTelp, got.NoTelp)
	assert.Equal(t, pemasok.Keterangan, got.Keterangan)
	assert.Equal(t, pemasok.Email, got.Email)
}

func TestPemasokCreateRejectsBadEmail(t *testing.T) {
	svc := newPemasokService(t)

	err := svc.Create(&model.Pemasok{NamaPemasok: "CV Salah", Email: "bukan-email"})
	assert.Error(t, err)
}

func TestPemasokPartialUpdate(t *testing.T) {
	svc := newPemasokService(t)

	pemasok := &model.Pemasok{NamaPemasok: "CV Sumber Makmur", NoTelp: "0812"}
	require.NoError(t, svc.Create(pemasok))

	alamat := "Jl. Baru No. 1"
	updated, err := svc.Update(pemasok.PemasokID, PemasokUpdateInput{AlamatPemasok: &alamat})
	require.NoError(t, err)
	assert.Equal(t, alamat, updated.AlamatPemasok)
	assert.Equal(t, "CV Sumber Makmur", updated.NamaPemasok)
	assert.Equal(t, "0812", updated.NoTelp)
}

func TestPemasokListFilters(t *testing.T) {
	svc := newPemasokService(t)

	require.NoError(t, svc.Create(&model.Pemasok{NamaPemasok: "CV Bandung Jaya", AlamatPemasok: "Bandung"}))
	require.NoError(t, svc.Create(&model.Pemasok{NamaPemasok: "CV Jakarta Jaya", AlamatPemasok: "Jakarta"}))

	rows, total, err := svc.List(pagination.Params{Page: 1, Limit: 10}, "bandung")
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, rows, 1)
	assert.Equal(t, "CV Bandung Jaya", rows[0].NamaPemasok)

	rows, total, err = svc.List(pagination.Params{Page: 1, Limit: 10, Search: "tidak-cocok"}, "")
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, rows)
}

func TestPemasokDeleteEchoesFields(t *testing.T) {
	svc := newPemasokService(t)

	pemasok := &model.Pemasok{NamaPemasok: "CV Akan Dihapus"}
	require.NoError(t, svc.Create(pemasok))

	deleted, err := svc.Delete(pemasok.PemasokID)
	require.NoError(t, err)
	assert.Equal(t, "CV Akan Dihapus", deleted.NamaPemasok)

	_, err = svc.GetByID(pemasok.PemasokID)
	assert.ErrorIs(t, err, ErrNotFound)
}
