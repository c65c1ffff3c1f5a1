package service

import (
	"fmt"
	"strings"
	"testing"

	"go-gudang-api/internal/model"
	"go-gudang-api/internal/upload"
	"go-gudang-api/pkg/config"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	// Unique shared-cache name per test so pooled connections see one DB.
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}

	if err := conn.AutoMigrate(
		&model.Admin{}, &model.Produk{}, &model.Variasi{}, &model.Pemasok{}, &model.AlurBarang{},
	); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return conn
}

func newTestUploads(t *testing.T) *upload.Manager {
	t.Helper()
	return upload.NewManager(config.UploadConfig{
		Dir:      t.TempDir(),
		MaxBytes: 5 * 1024 * 1024,
		MaxWidth: 800,
		Quality:  70,
	}, zerolog.Nop())
}
