package utils

import (
	"fmt"
	"strings"
	"time"
)

// GenerateReceiptNumber produces a receipt number of the form RCT-20240115-3F9A2C01.
// Uniqueness is ultimately enforced by the database; the random suffix keeps
// collisions out of the normal path.
func GenerateReceiptNumber(now time.Time) (string, error) {
	suffix, err := GenerateSecureRandomString(4)
	if err != nil {
		return "", fmt.Errorf("failed to generate receipt suffix: %w", err)
	}
	return fmt.Sprintf("RCT-%s-%s", now.Format("20060102"), strings.ToUpper(suffix)), nil
}
