// Package template expands date-field tokens embedded in path and URL
// patterns. A pattern like
//
//	https://archive.example.com/%Y/%j/prod_%Y%m%d.nc
//
// is turned into a concrete URL for a given instant. Exactly seven tokens
// are recognized; anything else passes through unchanged.
package template

import (
	"fmt"
	"strings"
	"time"
)

// Tokens recognized by Expand. Replacement values are fixed-width and never
// contain token syntax themselves, so a single pass is safe.
//
//	%Y  four-digit year
//	%m  two-digit month
//	%d  two-digit day of month
//	%H  two-digit hour
//	%M  two-digit minute
//	%S  two-digit second
//	%j  three-digit day of year
//
// There is no escaping mechanism: a literal token-like substring in the
// pattern is always substituted.
func Expand(pattern string, at time.Time) string {
	replacer := strings.NewReplacer(
		"%Y", fmt.Sprintf("%04d", at.Year()),
		"%m", fmt.Sprintf("%02d", int(at.Month())),
		"%d", fmt.Sprintf("%02d", at.Day()),
		"%H", fmt.Sprintf("%02d", at.Hour()),
		"%M", fmt.Sprintf("%02d", at.Minute()),
		"%S", fmt.Sprintf("%02d", at.Second()),
		"%j", fmt.Sprintf("%03d", at.YearDay()),
	)
	return replacer.Replace(pattern)
}
