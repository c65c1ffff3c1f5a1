package handler

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/internal/repository"
	"go-gudang-api/internal/service"
	"go-gudang-api/internal/upload"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type VariasiHandler struct {
	service service.VariasiService
	uploads *upload.Manager
}

func NewVariasiHandler(s service.VariasiService, uploads *upload.Manager) *VariasiHandler {
	return &VariasiHandler{service: s, uploads: uploads}
}

func (h *VariasiHandler) saveFoto(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile(upload.FieldName)
	if err != nil {
		return nil, nil
	}
	path, err := h.uploads.Save(fh, "variasi")
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// hargaFilter reads the optional minHarga/maxHarga query parameters.
func hargaFilter(c *fiber.Ctx) repository.VariasiFilter {
	var f repository.VariasiFilter
	if raw := c.Query("minHarga"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			f.MinHarga = &v
		}
	}
	if raw := c.Query("maxHarga"); raw != "" {
		if v, err := decimal.NewFromString(raw); err == nil {
			f.MaxHarga = &v
		}
	}
	return f
}

// List godoc
//
//	@Summary		List variants
//	@Description	Mengambil daftar variasi beserta produknya, dengan filter rentang harga
//	@Tags			Variasi
//	@Produce		json
//	@Param			page		query		int		false	"Page number"
//	@Param			limit		query		int		false	"Page size"
//	@Param			search		query		string	false	"Nama variasi substring"
//	@Param			minHarga	query		number	false	"Harga minimum"
//	@Param			maxHarga	query		number	false	"Harga maksimum"
//	@Success		200			{object}	map[string]interface{}
//	@Router			/variasi [get]
func (h *VariasiHandler) List(c *fiber.Ctx) error {
	p := listParams(c)
	variasi, total, err := h.service.List(p, hargaFilter(c))
	if err != nil {
		return fail(c, 500, "Gagal mengambil data variasi", err)
	}

	data := make([]model.VariasiResponse, 0, len(variasi))
	for i := range variasi {
		data = append(data, variasi[i].ToResponse())
	}
	return c.JSON(listEnvelope("Berhasil mengambil data variasi", p, total, data))
}

// Get godoc
//
//	@Summary		Get variant by ID
//	@Tags			Variasi
//	@Produce		json
//	@Param			id	path		int	true	"Variant ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Variasi tidak ditemukan"
//	@Router			/variasi/{id} [get]
func (h *VariasiHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	variasi, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, statusFor(err), "Variasi tidak ditemukan", err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data variasi", "data": variasi.ToResponse()})
}

// Create godoc
//
//	@Summary		Create variant
//	@Description	Membuat variasi baru untuk sebuah produk, foto opsional (multipart field "foto")
//	@Tags			Variasi
//	@Security		BearerAuth
//	@Accept			mpfd
//	@Produce		json
//	@Param			produkID	formData	int		true	"Produk induk"
//	@Param			namaVariasi	formData	string	true	"Nama variasi"
//	@Param			harga		formData	number	true	"Harga"
//	@Param			stok		formData	int		false	"Stok awal"
//	@Param			foto		formData	file	false	"Foto variasi"
//	@Success		201			{object}	map[string]interface{}	"Variasi berhasil ditambahkan"
//	@Failure		404			{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router			/variasi [post]
func (h *VariasiHandler) Create(c *fiber.Ctx) error {
	var variasi model.Variasi
	if err := c.BodyParser(&variasi); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	fotoPath, err := h.saveFoto(c)
	if err != nil {
		return fail(c, 400, "Gagal memproses foto", err)
	}
	if fotoPath != nil {
		variasi.FotoVariasi = *fotoPath
	}

	if err := h.service.Create(&variasi); err != nil {
		if fotoPath != nil {
			h.uploads.Remove(*fotoPath)
		}
		return fail(c, statusFor(err), "Gagal menambahkan variasi", err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Variasi berhasil ditambahkan", "data": variasi.ToResponse()})
}

// Update godoc
//
//	@Summary		Update variant
//	@Description	Memperbarui hanya field yang dikirim; foto baru menggantikan foto lama
//	@Tags			Variasi
//	@Security		BearerAuth
//	@Accept			mpfd
//	@Produce		json
//	@Param			id	path		int	true	"Variant ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Variasi tidak ditemukan"
//	@Router			/variasi/{id} [put]
func (h *VariasiHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	var input service.VariasiUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	fotoPath, err := h.saveFoto(c)
	if err != nil {
		return fail(c, 400, "Gagal memproses foto", err)
	}
	input.FotoVariasi = fotoPath

	variasi, err := h.service.Update(id, input)
	if err != nil {
		if fotoPath != nil {
			h.uploads.Remove(*fotoPath)
		}
		return fail(c, statusFor(err), "Gagal memperbarui variasi", err)
	}
	return c.JSON(fiber.Map{"message": "Variasi berhasil diperbarui", "data": variasi.ToResponse()})
}

// Delete godoc
//
//	@Summary		Delete variant
//	@Tags			Variasi
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Variant ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Variasi tidak ditemukan"
//	@Router			/variasi/{id} [delete]
func (h *VariasiHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	variasi, err := h.service.Delete(id)
	if err != nil {
		return fail(c, statusFor(err), "Gagal menghapus variasi", err)
	}
	return c.JSON(fiber.Map{"message": "Variasi berhasil dihapus", "data": variasi.ToResponse()})
}

// DeleteFoto godoc
//
//	@Summary		Delete variant photo
//	@Description	Menghapus file foto dan mengosongkan atribut foto, record tetap ada
//	@Tags			Variasi
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Variant ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]interface{}	"Variasi tidak memiliki foto"
//	@Router			/variasi/{id}/foto [delete]
func (h *VariasiHandler) DeleteFoto(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	variasi, err := h.service.DeleteFoto(id)
	if err != nil {
		return fail(c, statusFor(err), "Gagal menghapus foto variasi", err)
	}
	return c.JSON(fiber.Map{"message": "Foto variasi berhasil dihapus", "data": variasi.ToResponse()})
}
