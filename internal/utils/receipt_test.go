package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/schoolsuite/fee_ledger_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReceiptNumber_Format(t *testing.T) {
	now := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)

	receipt, err := utils.GenerateReceiptNumber(now)

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(receipt, "RCT-20240115-"))

	parts := strings.Split(receipt, "-")
	require.Len(t, parts, 3)
	assert.Len(t, parts[2], 8)
	assert.Equal(t, strings.ToUpper(parts[2]), parts[2])
}

func TestGenerateReceiptNumber_DistinctSuffixes(t *testing.T) {
	now := time.Now().UTC()

	first, err := utils.GenerateReceiptNumber(now)
	require.NoError(t, err)
	second, err := utils.GenerateReceiptNumber(now)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
