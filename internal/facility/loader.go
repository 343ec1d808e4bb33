package facility

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Load reads and validates the facility document. Malformed configuration
// fails fast here rather than at query time.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read facility config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse facility config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid facility config: %w", err)
	}

	if cfg.Timezone == "" {
		cfg.Timezone = "Asia/Kolkata"
	}
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid facility timezone %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	return &cfg, nil
}

// Validate enforces the structural invariants of the facility document
func (c *Config) Validate() error {
	if c.Hours.Open < 0 || c.Hours.Open > 23 {
		return fmt.Errorf("open hour %d out of range [0,23]", c.Hours.Open)
	}
	if c.Hours.Close < 0 || c.Hours.Close > 23 {
		return fmt.Errorf("close hour %d out of range [0,23]", c.Hours.Close)
	}
	if c.Hours.Open >= c.Hours.Close {
		return fmt.Errorf("open hour %d must be before close hour %d", c.Hours.Open, c.Hours.Close)
	}
	if c.BufferMins < 0 {
		return fmt.Errorf("buffer minutes must not be negative, got %d", c.BufferMins)
	}

	if len(c.Courts) == 0 {
		return fmt.Errorf("at least one court is required")
	}
	seen := make(map[string]bool, len(c.Courts))
	for _, court := range c.Courts {
		if court.ID == "" {
			return fmt.Errorf("court with empty id")
		}
		if seen[court.ID] {
			return fmt.Errorf("duplicate court id %q", court.ID)
		}
		seen[court.ID] = true
		if court.DurationMins <= 0 {
			return fmt.Errorf("court %s: duration must be positive, got %d", court.ID, court.DurationMins)
		}
		if court.BasePrice < 0 {
			return fmt.Errorf("court %s: base price must not be negative, got %d", court.ID, court.BasePrice)
		}
	}

	if c.PeakHours.Multiplier < 0 {
		return fmt.Errorf("peak multiplier must not be negative, got %v", c.PeakHours.Multiplier)
	}

	for _, coupon := range c.Coupons {
		if coupon.Code == "" {
			return fmt.Errorf("coupon with empty code")
		}
		if coupon.Type != CouponTypeFlat && coupon.Type != CouponTypePercent {
			return fmt.Errorf("coupon %s: unknown type %q", coupon.Code, coupon.Type)
		}
		if coupon.Value < 0 {
			return fmt.Errorf("coupon %s: value must not be negative, got %d", coupon.Code, coupon.Value)
		}
		if coupon.Expires != "" {
			if _, err := time.Parse("2006-01-02", coupon.Expires); err != nil {
				return fmt.Errorf("coupon %s: invalid expiry date %q", coupon.Code, coupon.Expires)
			}
		}
	}

	return nil
}
