package bptree

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Occupancy selects how the minimum number of keys of a non-root leaf is
// derived from the maximum.
type Occupancy int

const (
	// OccupancyFloor sets minLeafKeys to floor(maxLeafKeys/2).
	OccupancyFloor Occupancy = iota
	// OccupancyCeil sets minLeafKeys to ceil(maxLeafKeys/2).
	OccupancyCeil
)

func (o Occupancy) String() string {
	switch o {
	case OccupancyFloor:
		return "floor"
	case OccupancyCeil:
		return "ceil"
	default:
		return "unknown"
	}
}

// ParseOccupancy maps "floor" and "ceil" (case insensitive) to a policy.
func ParseOccupancy(s string) (Occupancy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "floor":
		return OccupancyFloor, nil
	case "ceil":
		return OccupancyCeil, nil
	}
	return 0, errors.Wrapf(ErrInvalidConfiguration, "unknown occupancy policy %q", s)
}

// Options represents the configuration options for the B+ tree.
type Options struct {
	// Order bounds the fanout: leaves hold at most Order-1 keys and
	// internal nodes at most 2*Order-1 children. Must be at least 2.
	Order int `json:"order"`

	// MinOccupancy is the underflow policy for leaves.
	MinOccupancy Occupancy `json:"min_occupancy"`

	// Logger receives structural events (splits, merges, borrows) at
	// debug level. Defaults to the shared package logger.
	Logger logrus.FieldLogger `json:"-"`
}

var defaultOptions = Options{
	Order:        7,
	MinOccupancy: OccupancyFloor,
}

func (opts *Options) validate() error {
	if opts.Order < 2 {
		return errors.Wrapf(ErrInvalidConfiguration, "order must be >= 2, got %d", opts.Order)
	}
	if opts.MinOccupancy != OccupancyFloor && opts.MinOccupancy != OccupancyCeil {
		return errors.Wrapf(ErrInvalidConfiguration, "unknown occupancy policy %d", opts.MinOccupancy)
	}
	return nil
}
