package upload

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"go-gudang-api/pkg/config"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FieldName is the single multipart field every image endpoint accepts.
const FieldName = "foto"

var (
	ErrNotImage = errors.New("hanya file gambar yang diperbolehkan")
	ErrTooLarge = errors.New("ukuran file melebihi batas maksimum")
)

// allowedMimeTypes lists the image types the re-encode pipeline can decode.
var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
}

// Manager stores uploaded images under a directory keyed by the owning
// entity kind and re-encodes them to a bounded width and fixed JPEG quality.
type Manager struct {
	dir      string
	maxBytes int64
	maxWidth int
	quality  int
	log      zerolog.Logger
}

func NewManager(cfg config.UploadConfig, log zerolog.Logger) *Manager {
	return &Manager{
		dir:      cfg.Dir,
		maxBytes: cfg.MaxBytes,
		maxWidth: cfg.MaxWidth,
		quality:  cfg.Quality,
		log:      log,
	}
}

// Validate checks MIME type and size before anything touches the disk.
func (m *Manager) Validate(fh *multipart.FileHeader) error {
	if fh.Size > m.maxBytes {
		return ErrTooLarge
	}
	contentType := strings.ToLower(fh.Header.Get("Content-Type"))
	if !allowedMimeTypes[contentType] {
		return ErrNotImage
	}
	return nil
}

// Save validates, stores, and compresses one uploaded image under
// <dir>/<kind>/. It returns the path relative to the upload root, which is
// what gets persisted on the owning entity.
func (m *Manager) Save(fh *multipart.FileHeader, kind string) (string, error) {
	if err := m.Validate(fh); err != nil {
		return "", err
	}

	folder := filepath.Join(m.dir, kind)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return "", fmt.Errorf("membuat folder upload: %w", err)
	}

	// Stored name is always .jpg: the compression step re-encodes to JPEG.
	name := uuid.New().String() + ".jpg"
	dst := filepath.Join(folder, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotImage
	}

	if img.Bounds().Dx() > m.maxWidth {
		img = imaging.Resize(img, m.maxWidth, 0, imaging.Lanczos)
	}

	if err := imaging.Save(img, dst, imaging.JPEGQuality(m.quality)); err != nil {
		return "", fmt.Errorf("menyimpan gambar: %w", err)
	}

	return filepath.ToSlash(filepath.Join(kind, name)), nil
}

// Remove deletes a stored file. Best-effort: a missing physical file never
// blocks a data delete, so failures are logged and swallowed.
func (m *Manager) Remove(relPath string) {
	if relPath == "" {
		return
	}
	full := filepath.Join(m.dir, filepath.FromSlash(relPath))
	if err := os.Remove(full); err != nil && !os.IsNotExist(err) {
		m.log.Warn().Err(err).Str("path", full).Msg("gagal menghapus file upload")
	}
}

// Path resolves a stored relative path to its on-disk location.
func (m *Manager) Path(relPath string) string {
	return filepath.Join(m.dir, filepath.FromSlash(relPath))
}
