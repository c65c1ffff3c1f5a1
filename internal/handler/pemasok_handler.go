package handler

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type PemasokHandler struct {
	service service.PemasokService
}

func NewPemasokHandler(s service.PemasokService) *PemasokHandler {
	return &PemasokHandler{service: s}
}

// List godoc
//
//	@Summary		List suppliers
//	@Description	Mengambil daftar pemasok dengan paginasi, pencarian nama, dan filter alamat
//	@Tags			Pemasok
//	@Produce		json
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Param			search	query		string	false	"Nama pemasok substring"
//	@Param			alamat	query		string	false	"Alamat substring"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/pemasok [get]
func (h *PemasokHandler) List(c *fiber.Ctx) error {
	p := listParams(c)
	pemasok, total, err := h.service.List(p, c.Query("alamat"))
	if err != nil {
		return fail(c, 500, "Gagal mengambil data pemasok", err)
	}
	return c.JSON(listEnvelope("Berhasil mengambil data pemasok", p, total, pemasok))
}

// Get godoc
//
//	@Summary		Get supplier by ID
//	@Tags			Pemasok
//	@Produce		json
//	@Param			id	path		int	true	"Supplier ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Pemasok tidak ditemukan"
//	@Router			/pemasok/{id} [get]
func (h *PemasokHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	pemasok, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, statusFor(err), "Pemasok tidak ditemukan", err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data pemasok", "data": pemasok})
}

// Create godoc
//
//	@Summary		Create supplier
//	@Tags			Pemasok
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			pemasok	body		model.Pemasok			true	"Supplier data"
//	@Success		201		{object}	map[string]interface{}	"Pemasok berhasil ditambahkan"
//	@Failure		400		{object}	map[string]interface{}	"Validasi gagal"
//	@Router			/pemasok [post]
func (h *PemasokHandler) Create(c *fiber.Ctx) error {
	var pemasok model.Pemasok
	if err := c.BodyParser(&pemasok); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	if err := h.service.Create(&pemasok); err != nil {
		return fail(c, statusFor(err), "Gagal menambahkan pemasok", err)
	}
	return c.Status(201).JSON(fiber.Map{"message": "Pemasok berhasil ditambahkan", "data": pemasok})
}

// Update godoc
//
//	@Summary		Update supplier
//	@Description	Memperbarui hanya field yang dikirim
//	@Tags			Pemasok
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int							true	"Supplier ID"
//	@Param			pemasok	body		service.PemasokUpdateInput	true	"Fields to update"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/pemasok/{id} [put]
func (h *PemasokHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	var input service.PemasokUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	pemasok, err := h.service.Update(id, input)
	if err != nil {
		return fail(c, statusFor(err), "Gagal memperbarui pemasok", err)
	}
	return c.JSON(fiber.Map{"message": "Pemasok berhasil diperbarui", "data": pemasok})
}

// Delete godoc
//
//	@Summary		Delete supplier
//	@Tags			Pemasok
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Supplier ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Pemasok tidak ditemukan"
//	@Router			/pemasok/{id} [delete]
func (h *PemasokHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	pemasok, err := h.service.Delete(id)
	if err != nil {
		return fail(c, statusFor(err), "Gagal menghapus pemasok", err)
	}
	return c.JSON(fiber.Map{"message": "Pemasok berhasil dihapus", "data": pemasok})
}
