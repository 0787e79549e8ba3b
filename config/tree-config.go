package config

import (
	"go-bptree/pkg/bptree"
	"go-bptree/util/logger"

	"github.com/pkg/errors"
)

type TreeConfig struct {
	Order        int
	MinOccupancy string
	LogLevel     string
}

func NewTreeConfig() *TreeConfig {
	return &TreeConfig{
		Order:        3,
		MinOccupancy: "floor",
		LogLevel:     "info",
	}
}

// Options converts the textual settings into tree options. Order itself
// is checked by bptree.New.
func (c *TreeConfig) Options() (*bptree.Options, error) {
	occupancy, err := bptree.ParseOccupancy(c.MinOccupancy)
	if err != nil {
		return nil, err
	}

	log, err := logger.Parse(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(bptree.ErrInvalidConfiguration, "log level %q: %v", c.LogLevel, err)
	}

	return &bptree.Options{
		Order:        c.Order,
		MinOccupancy: occupancy,
		Logger:       log,
	}, nil
}
