package handler

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/internal/service"
	"go-gudang-api/internal/upload"

	"github.com/gofiber/fiber/v2"
)

type ProdukHandler struct {
	service service.ProdukService
	uploads *upload.Manager
}

func NewProdukHandler(s service.ProdukService, uploads *upload.Manager) *ProdukHandler {
	return &ProdukHandler{service: s, uploads: uploads}
}

// saveFoto stores an attached image when present. A missing file is not an
// error; any processing failure aborts the request before the mutation.
func (h *ProdukHandler) saveFoto(c *fiber.Ctx) (*string, error) {
	fh, err := c.FormFile(upload.FieldName)
	if err != nil {
		return nil, nil
	}
	path, err := h.uploads.Save(fh, "produk")
	if err != nil {
		return nil, err
	}
	return &path, nil
}

// List godoc
//
//	@Summary		List products
//	@Description	Mengambil daftar produk beserta variasinya
//	@Tags			Produk
//	@Produce		json
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Param			search	query		string	false	"Nama produk substring"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/produk [get]
func (h *ProdukHandler) List(c *fiber.Ctx) error {
	p := listParams(c)
	produks, total, err := h.service.List(p)
	if err != nil {
		return fail(c, 500, "Gagal mengambil data produk", err)
	}

	data := make([]model.ProdukResponse, 0, len(produks))
	for i := range produks {
		data = append(data, produks[i].ToResponse())
	}
	return c.JSON(listEnvelope("Berhasil mengambil data produk", p, total, data))
}

// Get godoc
//
//	@Summary		Get product by ID
//	@Tags			Produk
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router			/produk/{id} [get]
func (h *ProdukHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	produk, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, statusFor(err), "Produk tidak ditemukan", err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data produk", "data": produk.ToResponse()})
}

// Create godoc
//
//	@Summary		Create product
//	@Description	Membuat produk baru, foto opsional (multipart field "foto")
//	@Tags			Produk
//	@Security		BearerAuth
//	@Accept			mpfd
//	@Produce		json
//	@Param			namaProduk	formData	string	true	"Nama produk"
//	@Param			deskripsi	formData	string	false	"Deskripsi"
//	@Param			foto		formData	file	false	"Foto produk"
//	@Success		201			{object}	map[string]interface{}	"Produk berhasil ditambahkan"
//	@Failure		400			{object}	map[string]interface{}	"Validasi gagal"
//	@Router			/produk [post]
func (h *ProdukHandler) Create(c *fiber.Ctx) error {
	var produk model.Produk
	if err := c.BodyParser(&produk); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	fotoPath, err := h.saveFoto(c)
	if err != nil {
		return fail(c, 400, "Gagal memproses foto", err)
	}
	if fotoPath != nil {
		produk.FotoProduk = *fotoPath
	}

	if err := h.service.Create(&produk); err != nil {
		if fotoPath != nil {
			h.uploads.Remove(*fotoPath)
		}
		return fail(c, statusFor(err), "Gagal menambahkan produk", err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Produk berhasil ditambahkan", "data": produk.ToResponse()})
}

// Update godoc
//
//	@Summary		Update product
//	@Description	Memperbarui hanya field yang dikirim; foto baru menggantikan foto lama
//	@Tags			Produk
//	@Security		BearerAuth
//	@Accept			mpfd
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router			/produk/{id} [put]
func (h *ProdukHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	var input service.ProdukUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	fotoPath, err := h.saveFoto(c)
	if err != nil {
		return fail(c, 400, "Gagal memproses foto", err)
	}
	input.FotoProduk = fotoPath

	produk, err := h.service.Update(id, input)
	if err != nil {
		if fotoPath != nil {
			h.uploads.Remove(*fotoPath)
		}
		return fail(c, statusFor(err), "Gagal memperbarui produk", err)
	}
	return c.JSON(fiber.Map{"message": "Produk berhasil diperbarui", "data": produk.ToResponse()})
}

// Delete godoc
//
//	@Summary		Delete product
//	@Description	Menghapus produk, variasinya, dan file foto terkait
//	@Tags			Produk
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Produk tidak ditemukan"
//	@Router			/produk/{id} [delete]
func (h *ProdukHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	produk, err := h.service.Delete(id)
	if err != nil {
		return fail(c, statusFor(err), "Gagal menghapus produk", err)
	}
	return c.JSON(fiber.Map{"message": "Produk berhasil dihapus", "data": produk.ToResponse()})
}

// DeleteFoto godoc
//
//	@Summary		Delete product photo
//	@Description	Menghapus file foto dan mengosongkan atribut foto, record tetap ada
//	@Tags			Produk
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Product ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		400	{object}	map[string]interface{}	"Produk tidak memiliki foto"
//	@Router			/produk/{id}/foto [delete]
func (h *ProdukHandler) DeleteFoto(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	produk, err := h.service.DeleteFoto(id)
	if err != nil {
		return fail(c, statusFor(err), "Gagal menghapus foto produk", err)
	}
	return c.JSON(fiber.Map{"message": "Foto produk berhasil dihapus", "data": produk.ToResponse()})
}
