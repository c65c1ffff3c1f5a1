package handler

import (
	"go-gudang-api/internal/model"
	"go-gudang-api/internal/service"

	"github.com/gofiber/fiber/v2"
)

type AdminHandler struct {
	service service.AdminService
}

func NewAdminHandler(s service.AdminService) *AdminHandler {
	return &AdminHandler{service: s}
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register godoc
//
//	@Summary		Register admin
//	@Description	Membuat akun admin baru
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			admin	body		RegisterRequest			true	"Admin credentials"
//	@Success		201		{object}	map[string]interface{}	"Admin berhasil dibuat"
//	@Failure		409		{object}	map[string]interface{}	"Username sudah dipakai"
//	@Router			/admin [post]
func (h *AdminHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	admin := model.Admin{Username: req.Username}
	if err := h.service.Register(&admin, req.Password); err != nil {
		return fail(c, statusFor(err), "Gagal membuat admin", err)
	}

	return c.Status(201).JSON(fiber.Map{"message": "Admin berhasil dibuat", "data": admin})
}

// Login godoc
//
//	@Summary		Login
//	@Description	Menukar username/password dengan bearer token
//	@Tags			Admin
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		LoginRequest			true	"Login credentials"
//	@Success		200			{object}	map[string]interface{}	"Login berhasil"
//	@Failure		401			{object}	map[string]interface{}	"Username atau password salah"
//	@Router			/admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}
	if req.Username == "" || req.Password == "" {
		return fail(c, 400, "Username dan password wajib diisi", nil)
	}

	result, err := h.service.Login(req.Username, req.Password)
	if err != nil {
		return fail(c, statusFor(err), "Login gagal", err)
	}

	return c.JSON(fiber.Map{"message": "Login berhasil", "data": result})
}

// List godoc
//
//	@Summary		List admins
//	@Description	Mengambil daftar admin dengan paginasi dan pencarian username
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			page	query		int		false	"Page number"
//	@Param			limit	query		int		false	"Page size"
//	@Param			search	query		string	false	"Username substring"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/admin [get]
func (h *AdminHandler) List(c *fiber.Ctx) error {
	p := listParams(c)
	admins, total, err := h.service.List(p)
	if err != nil {
		return fail(c, 500, "Gagal mengambil data admin", err)
	}
	return c.JSON(listEnvelope("Berhasil mengambil data admin", p, total, admins))
}

// Get godoc
//
//	@Summary		Get admin by ID
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Admin ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Admin tidak ditemukan"
//	@Router			/admin/{id} [get]
func (h *AdminHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	admin, err := h.service.GetByID(id)
	if err != nil {
		return fail(c, statusFor(err), "Admin tidak ditemukan", err)
	}
	return c.JSON(fiber.Map{"message": "Berhasil mengambil data admin", "data": admin})
}

// Update godoc
//
//	@Summary		Update admin
//	@Description	Memperbarui username dan/atau password; password yang tidak dikirim tidak berubah
//	@Tags			Admin
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int						true	"Admin ID"
//	@Param			admin	body		service.AdminUpdateInput	true	"Fields to update"
//	@Success		200		{object}	map[string]interface{}
//	@Router			/admin/{id} [put]
func (h *AdminHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	var input service.AdminUpdateInput
	if err := c.BodyParser(&input); err != nil {
		return fail(c, 400, "Request tidak valid", err)
	}

	admin, err := h.service.Update(id, input)
	if err != nil {
		return fail(c, statusFor(err), "Gagal memperbarui admin", err)
	}
	return c.JSON(fiber.Map{"message": "Admin berhasil diperbarui", "data": admin})
}

// Delete godoc
//
//	@Summary		Delete admin
//	@Tags			Admin
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Admin ID"
//	@Success		200	{object}	map[string]interface{}
//	@Failure		404	{object}	map[string]interface{}	"Admin tidak ditemukan"
//	@Router			/admin/{id} [delete]
func (h *AdminHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return fail(c, 400, "ID tidak valid", err)
	}

	admin, err := h.service.Delete(id)
	if err != nil {
		return fail(c, statusFor(err), "Gagal menghapus admin", err)
	}
	return c.JSON(fiber.Map{"message": "Admin berhasil dihapus", "data": admin})
}
