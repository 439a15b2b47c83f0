package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDateTime(t *testing.T) {
	at := time.Date(2026, time.September, 14, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "Sep 14, 2026, 2:30 PM", FormatDateTime(at))
}

func TestFormatDate(t *testing.T) {
	at := time.Date(1990, time.May, 4, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "May 4, 1990", FormatDate(at))
}
