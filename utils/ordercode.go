package utils

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"time"
)

// Order codes are short enough for a customer to type at the pickup
// counter: "CN" + zero-padded day-of-year + zero-padded random suffix,
// always 8 characters. Uniqueness is not guaranteed here; the order table's
// unique index catches collisions and the service retries with fresh
// randomness.
const orderCodePrefix = "CN"

var orderCodePattern = regexp.MustCompile(`^CN\d{6}$`)

func NewOrderCode(now time.Time) string {
	return fmt.Sprintf("%s%03d%03d", orderCodePrefix, now.YearDay(), rand.Intn(1000))
}

// NormalizeOrderCode makes lookups case-insensitive.
func NormalizeOrderCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func ValidOrderCode(code string) bool {
	return orderCodePattern.MatchString(code)
}
