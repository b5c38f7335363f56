package config

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// Validate checks struct-level constraints (validate tags) and then the
// business rules that span several fields. Load calls it automatically.
func (c *Config) Validate() error {
	validate, trans, err := newValidator()
	if err != nil {
		return err
	}

	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return err
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fe.Translate(trans))
		}
		return fmt.Errorf("invalid configuration: %s", strings.Join(msgs, ", "))
	}

	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	if c.Storage.Driver == DriverPostgres && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for the %s driver", DriverPostgres)
	}
	if c.Storage.Driver == DriverSQLite && c.SQLite.Path == "" {
		return fmt.Errorf("sqlite.path is required for the %s driver", DriverSQLite)
	}

	if err := c.SRS.validate(); err != nil {
		return fmt.Errorf("srs: %w", err)
	}

	return nil
}

func newValidator() (*validator.Validate, ut.Translator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, nil, fmt.Errorf("register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate, trans, nil
}

func (s *SRSConfig) validate() error {
	intervals, err := ParseIntervals(s.IntervalsRaw)
	if err != nil {
		return fmt.Errorf("intervals: %w", err)
	}
	for level, days := range intervals {
		if days > s.MaxIntervalDays {
			return fmt.Errorf("intervals: level %d exceeds max_interval_days (%d > %d)", level, days, s.MaxIntervalDays)
		}
	}
	s.Intervals = intervals

	return nil
}

// ParseIntervals parses a comma-separated list of five non-negative day
// counts (e.g. "0,1,3,7,30"), one per mastery level.
func ParseIntervals(raw string) ([5]int, error) {
	var out [5]int

	parts := strings.Split(strings.TrimSpace(raw), ",")
	if len(parts) != len(out) {
		return out, fmt.Errorf("expected %d values, got %d", len(out), len(parts))
	}

	for i, p := range parts {
		p = strings.TrimSpace(p)
		days, err := strconv.Atoi(p)
		if err != nil {
			return out, fmt.Errorf("invalid day count %q: %w", p, err)
		}
		if days < 0 {
			return out, fmt.Errorf("level %d: day count must be >= 0 (got %d)", i, days)
		}
		out[i] = days
	}

	return out, nil
}
