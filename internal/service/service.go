package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"gorm.io/gorm"
)

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

// Clock returns the current instant. Services take one so tests can pin "today".
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}

var (
	whitespace = regexp.MustCompile(`\s+`)
	hyphenRuns = regexp.MustCompile(`-{2,}`)
)

// NormalizeVehicle canonicalizes a plate typed by an operator:
// upper case, no whitespace, hyphen runs collapsed to one.
func NormalizeVehicle(raw string) string {
	v := strings.ToUpper(raw)
	v = whitespace.ReplaceAllString(v, "")
	return hyphenRuns.ReplaceAllString(v, "-")
}
