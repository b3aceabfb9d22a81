package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePlate_ColapsaVariantes(t *testing.T) {
	for _, raw := range []string{"ab-123", "AB 123", "ab123", " aB-1 2\t3 ", "AB123"} {
		assert.Equal(t, "AB123", NormalizePlate(raw), "raw=%q", raw)
	}
}

func TestNormalizePlate_Idempotente(t *testing.T) {
	for _, raw := range []string{"ABC-123", "xyz 9-8-7", "ñandú 1", ""} {
		once := NormalizePlate(raw)
		assert.Equal(t, once, NormalizePlate(once), "raw=%q", raw)
	}
}

func TestNormalizePlate_Unicode(t *testing.T) {
	assert.Equal(t, "ÑAB12", NormalizePlate("ñab-12"))
}
