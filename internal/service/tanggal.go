package service

import (
	"fmt"
	"time"
)

var tanggalLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseTanggal accepts the date formats clients send for movement dates.
func ParseTanggal(value string) (time.Time, error) {
	for _, layout := range tanggalLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: format tanggal tidak valid, gunakan YYYY-MM-DD", ErrValidation)
}
