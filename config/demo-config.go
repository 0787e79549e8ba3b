package config

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

type DemoConfig struct {
	Keys    []int64
	Seed    int64
	Random  int
	Color   bool
	Verbose bool
}

func NewDemoConfig() *DemoConfig {
	return &DemoConfig{
		Keys:  []int64{5, 21, 16, 1, 6, 2, 7, 9, 12, 18, 0},
		Seed:  1,
		Color: true,
	}
}

// ParseKeys parses a comma separated list of integers, e.g. "5,21,16".
func ParseKeys(s string) ([]int64, error) {
	keys := []int64{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		k, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid key %q", field)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// FormatKeys is the inverse of ParseKeys.
func FormatKeys(keys []int64) string {
	fields := make([]string, len(keys))
	for i, k := range keys {
		fields[i] = strconv.FormatInt(k, 10)
	}
	return strings.Join(fields, ",")
}
