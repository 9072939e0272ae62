package infra

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateLabel(t *testing.T) {
	assert.Equal(t, "short", truncateLabel("short", 22))
	assert.Equal(t, "exactly-22-characters!", truncateLabel("exactly-22-characters!", 22))
	assert.Equal(t, "a-very-long-product...", truncateLabel("a-very-long-product-name-indeed", 22))

	// Multi-byte runes are never split mid-sequence.
	got := truncateLabel("café con leche y azúcar extra", 22)
	assert.Equal(t, "café con leche y az...", got)
	for _, r := range got {
		assert.NotEqual(t, '�', r)
	}
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$0.00", formatCents(0))
	assert.Equal(t, "$0.05", formatCents(5))
	assert.Equal(t, "$12.30", formatCents(1230))
	assert.Equal(t, "-$7.01", formatCents(-701))
}
