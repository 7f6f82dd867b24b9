package services

import (
	"fmt"
	"os"
	"strconv"
)

const (
	PaymentModeSandbox    = "sandbox"
	PaymentModeProduction = "production"
)

// PaymentConfig drives pricing and the sandbox/production switch.
type PaymentConfig struct {
	Mode       string
	AppBaseURL string

	// Per-test prices in minor currency units.
	Prices map[string]int64
}

const defaultPrice int64 = 999

var testNames = map[string]string{
	"mbti":   "MBTI人格测试",
	"iq":     "IQ智力测试",
	"career": "职业性格测试",
}

func LoadPaymentConfig() PaymentConfig {
	mode := os.Getenv("PAYMENT_MODE")
	if mode == "" {
		mode = PaymentModeSandbox
	}

	return PaymentConfig{
		Mode:       mode,
		AppBaseURL: os.Getenv("APP_BASE_URL"),
		Prices: map[string]int64{
			"mbti":   priceFromEnv("PRICE_MBTI", 999),
			"iq":     priceFromEnv("PRICE_IQ", 1999),
			"career": priceFromEnv("PRICE_CAREER", 999),
		},
	}
}

func priceFromEnv(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func (c PaymentConfig) IsSandbox() bool {
	return c.Mode == PaymentModeSandbox
}

func (c PaymentConfig) TestPrice(testType string) int64 {
	if p, ok := c.Prices[testType]; ok {
		return p
	}
	return defaultPrice
}

// FormatPrice renders minor units as a yuan display string, e.g.
// 999 -> "¥9.99".
func FormatPrice(cents int64) string {
	return fmt.Sprintf("¥%.2f", float64(cents)/100)
}

// TestName returns the display name for a test type, falling back to
// the raw type string.
func TestName(testType string) string {
	if name, ok := testNames[testType]; ok {
		return name
	}
	return testType
}
