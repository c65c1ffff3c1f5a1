package service

import "errors"

// Sentinel errors services return so handlers can map them to HTTP statuses.
var (
	ErrValidation   = errors.New("validasi gagal")
	ErrNotFound     = errors.New("data tidak ditemukan")
	ErrConflict     = errors.New("data sudah ada")
	ErrUnauthorized = errors.New("username atau password salah")
	ErrStokKurang   = errors.New("stok tidak mencukupi")
	ErrNoFoto       = errors.New("data tidak memiliki foto")
)
