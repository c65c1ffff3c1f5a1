package handler

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newPemasokApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Pemasok{}))

	h := NewPemasokHandler(service.NewPemasokService(repository.NewPemasokRepo(db)))

	app := fiber.New()
	app.Get("/pemasok", h.List)
	app.Get("/pemasok/:id", h.Get)
	app.Post("/pemasok", h.Create)
	app.Put("/pemasok/:id", h.Update)
	app.Delete("/pemasok/:id", h.Delete)
	return app, db
}

func seedPemasok(t *testing.T, db *gorm.DB, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		require.NoError(t, db.Create(&model.Pemasok{
			NamaPemasok:   fmt.Sprintf("Pemasok %02d", i),
			AlamatPemasok: "Jl. Melati No. " + fmt.Sprint(i),
		}).Error)
	}
}

func TestPemasokListEnvelope(t *testing.T) {
	app, db := newPemasokApp(t)
	seedPemasok(t, db, 12)

	resp, err := app.Test(httptest.NewRequest("GET", "/pemasok?page=2&limit=5", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Message     string          `json:"message"`
		CurrentPage int             `json:"currentPage"`
		TotalPages  int             `json:"totalPages"`
		TotalItems  int64           `json:"totalItems"`
		PerPage     int             `json:"perPage"`
		Data        []model.Pemasok `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))

	assert.Equal(t, "Berhasil mengambil data pemasok", body.Message)
	assert.Equal(t, 2, body.CurrentPage)
	assert.Equal(t, 3, body.TotalPages)
	assert.Equal(t, int64(12), body.TotalItems)
	assert.Equal(t, 5, body.PerPage)
	assert.Len(t, body.Data, 5)
}

func TestPemasokListNormalizesBadParams(t *testing.T) {
	app, db := newPemasokApp(t)
	seedPemasok(t, db, 3)

	resp, err := app.Test(httptest.NewRequest("GET", "/pemasok?page=-1&limit=0", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.EqualValues(t, 1, body["currentPage"])
	assert.EqualValues(t, 10, body["perPage"])
}

func TestPemasokCreateAndGet(t *testing.T) {
	app, _ := newPemasokApp(t)

	payload := strings.NewReader(`{"namaPemasok":"CV Sumber Rejeki","alamatPemasok":"Bandung","noTelp":"0811223344"}`)
	req := httptest.NewRequest("POST", "/pemasok", payload)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, 201, resp.StatusCode)

	var created struct {
		Data model.Pemasok `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	require.NotZero(t, created.Data.PemasokID)

	resp, err = app.Test(httptest.NewRequest("GET", fmt.Sprintf("/pemasok/%d", created.Data.PemasokID), nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}

func TestPemasokCreateValidationFails(t *testing.T) {
	app, _ := newPemasokApp(t)

	req := httptest.NewRequest("POST", "/pemasok", strings.NewReader(`{"email":"bukan-email"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPemasokGetUnknownReturns404(t *testing.T) {
	app, _ := newPemasokApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/pemasok/999", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestPemasokGetBadIDReturns400(t *testing.T) {
	app, _ := newPemasokApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/pemasok/abc", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestPemasokDeleteEchoesRecord(t *testing.T) {
	app, db := newPemasokApp(t)
	seedPemasok(t, db, 1)

	resp, err := app.Test(httptest.NewRequest("DELETE", "/pemasok/1", nil))
	require.NoError(t, err)
	require.Equal(t, 200, resp.StatusCode)

	var body struct {
		Data model.Pemasok `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Pemasok 01", body.Data.NamaPemasok)

	var count int64
	db.Model(&model.Pemasok{}).Count(&count)
	assert.Zero(t, count)
}
