// Package timedelta parses the "HH:MM:SS" offsets stored in the settings
// table (booking window, maximum slot duration). Hours may exceed 24,
// e.g. "72:00:00" for a three-day booking window.
package timedelta

import (
	"strconv"
	"strings"
	"time"

	"roombook/internal/pkg/errs"
)

func Parse(value string) (time.Duration, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return 0, errs.Newf("time delta %q: want HH:MM:SS", value)
	}

	var total time.Duration
	units := []time.Duration{time.Hour, time.Minute, time.Second}
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return 0, errs.Wrapf(err, "time delta %q", value)
		}
		if n < 0 || (i > 0 && n > 59) {
			return 0, errs.Newf("time delta %q: component out of range", value)
		}
		total += time.Duration(n) * units[i]
	}
	return total, nil
}
