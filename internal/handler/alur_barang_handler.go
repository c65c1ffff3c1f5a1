package handler

import (
	"go-gudang-api/internal/middleware"
	"go-gudang-api/internal/model"
	"go-gudang-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AlurBarangHandler struct {
	service service.AlurBarangService
}

func NewAlurBarangHandler(s service.AlurBarangService) *AlurBarangHandler {
	return &AlurBarangHandler{service: s}
}

type AlurBarangCreateRequest struct {
	JenisAlur    model.JenisAlur `json:"jenisAlur"`
	Tanggal      string          `json:"tanggal"`
	Jumlah       int             `json:"jumlah"`
	LokasiProduk string          `json:"lokasiProduk"`
	Keterangan   string          `json:"keterangan"`
	VariasiID    uint            `json:"variasiID"`
}

// List godoc
//
//	@Summary		List stock movements
//	@Description	Mengambil daftar alur barang beserta admin dan variasinya
//	@Tags			AlurBarang
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Param			search	query		string	false	"Lokasi produk substring"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/alur-barang [get]
func (h *AlurBarangHandler) List(c *fiber.Ctx) error {
	p := listParams(c)
	alur, total, err := h.service.List(p)
	if err != nil {
		return fail(c, 500, "Gagal mengambil data alur barang", err)
	}
	return c.JSON(listEnvelope("Berhasil mengambil data alur barang", p, total, alur))
}

// Get godoc
//
//	@Summary		Get stock movement by ID
//	@Tags			AlurBarang
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Movement ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Alur barang tidak ditemukan"
//	@Router			/alur-barang/{id} [get]
func (h *AlurBarangHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	alur, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, statusFor(err), "Alur barang tidak ditemukan", err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data alur barang", "data": alur})
}

// Create godoc
//
//	@Summary		Create stock movement
//	@Description	Mencatat alur Masuk/Keluar dan menyesuaikan stok variasi secara atomik; alur Keluar melebihi stok ditolak
//	@Tags			AlurBarang
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			alur	body		AlurBarangCreateRequest	true	"Movement data"
//	@Success		201		{object}	map[string]interface{}	"Alur barang berhasil dicatat"
//	@Failure		400		{object}	map[string]interface{}	"Stok tidak mencukupi"
//	@Router			/alur-barang [post]
func (h *AlurBarangHandler) Create(c *fiber.Ctx) error {
	var req AlurBarangCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	tanggal, err := service.ParseTanggal(req.Tanggal)
	if err != nil {
		return fail(c, 400, "Tanggal tidak valid", err)
	}

	alur := model.AlurBarang{
		JenisAlur:    req.JenisAlur,
		Tanggal:      tanggal,
		Jumlah:       req.Jumlah,
		LokasiProduk: req.LokasiProduk,
		Keterangan:   req.Keterangan,
		VariasiID:    req.VariasiID,
		AdminID:      middleware.AdminID(c), // dicatat atas nama admin yang login
	}

	if err := h.service.Create(&alur); err != nil {
		return fail(c, statusFor(err), "Gagal mencatat alur barang", err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Alur barang berhasil dicatat", "data": alur})
}

// Update godoc
//
//	@Summary		Update stock movement
//	@Description	Memperbarui alur dan menyesuaikan ulang stok variasi secara atomik
//	@Tags			AlurBarang
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int								true	"Movement ID"
//	@Param			alur	body		service.AlurBarangUpdateInput	true	"Fields to update"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/alur-barang/{id} [put]
func (h *AlurBarangHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	var input service.AlurBarangUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	alur, err := h.service.Update(id, input)
	if err != nil {
		return fail(c, statusFor(err), "Gagal memperbarui alur barang", err)
	}
	return c.JSON(fiber.Map{"message": "Alur barang berhasil diperbarui", "data": alur})
}

// Delete godoc
//
//	@Summary		Delete stock movement
//	@Description	Menghapus alur dan membalik efeknya pada stok variasi
//	@Tags			AlurBarang
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Movement ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Alur barang tidak ditemukan"
//	@Router			/alur-barang/{id} [delete]
func (h *AlurBarangHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	alur, err := h.service.Delete(id)
	if err != nil {
		return fail(c, statusFor(err), "Gagal menghapus alur barang", err)
	}
	return c.JSON(fiber.Map{"message": "Alur barang berhasil dihapus", "data": alur})
}
