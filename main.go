package main

import (
	"flag"
	"fmt"
	"io"
	r "math/rand"
	"os"

	"go-bptree/config"
	"go-bptree/pkg/bptree"
	"go-bptree/pkg/printer"

	"github.com/go-faker/faker/v4"
	"github.com/pkg/errors"
)

func main() {
	cfg := config.New()

	keys := flag.String("keys", config.FormatKeys(cfg.Demo.Keys), "comma separated keys to insert")
	flag.IntVar(&cfg.Tree.Order, "order", cfg.Tree.Order, "tree order, at least 2")
	flag.StringVar(&cfg.Tree.MinOccupancy, "occupancy", cfg.Tree.MinOccupancy, "leaf underflow policy: floor or ceil")
	flag.StringVar(&cfg.Tree.LogLevel, "log-level", cfg.Tree.LogLevel, "log level for tree events")
	flag.Int64Var(&cfg.Demo.Seed, "seed", cfg.Demo.Seed, "seed of the deletion order")
	flag.IntVar(&cfg.Demo.Random, "random", cfg.Demo.Random, "insert N generated keys instead of -keys")
	flag.BoolVar(&cfg.Demo.Color, "color", cfg.Demo.Color, "colored output")
	flag.BoolVar(&cfg.Demo.Verbose, "steps", cfg.Demo.Verbose, "print the tree after every operation")
	flag.Parse()

	var err error
	if cfg.Demo.Keys, err = config.ParseKeys(*keys); err != nil {
		fatal(err)
	}

	if err := run(cfg, os.Stdout); err != nil {
		fatal(err)
	}
}

// run inserts the configured keys, then deletes them again in a seeded
// random order, validating the tree after every operation.
func run(cfg *config.AppConfig, w io.Writer) error {
	opts, err := cfg.Tree.Options()
	if err != nil {
		return err
	}

	tree, err := bptree.New[int64](opts)
	if err != nil {
		return err
	}

	keys := cfg.Demo.Keys
	if cfg.Demo.Random > 0 {
		if keys, err = randomKeys(cfg.Demo.Random); err != nil {
			return err
		}
	}

	p := printer.New[int64](w, printer.Options{Color: cfg.Demo.Color})
	step := func(format string, args ...interface{}) error {
		if err := tree.Validate(); err != nil {
			return errors.Wrapf(err, format, args...)
		}
		if !cfg.Demo.Verbose {
			return nil
		}
		fmt.Fprintf(w, format+"\n", args...)
		return p.Print(tree.Traverse())
	}

	for _, k := range keys {
		tree.Insert(k)
		if err := step("insert %d", k); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, tree)
	if err := p.Print(tree.Traverse()); err != nil {
		return err
	}

	rand := r.New(r.NewSource(cfg.Demo.Seed))
	for _, i := range rand.Perm(len(keys)) {
		if err := tree.Delete(keys[i]); err != nil {
			return err
		}
		if err := step("delete %d", keys[i]); err != nil {
			return err
		}
	}

	fmt.Fprintln(w, tree)
	return nil
}

func randomKeys(n int) ([]int64, error) {
	ints, err := faker.RandomInt(0, 10*n, n)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate keys")
	}

	keys := make([]int64, len(ints))
	for i, v := range ints {
		keys[i] = int64(v)
	}
	return keys, nil
}

func fatal(val interface{}) {
	fmt.Println(val)
	os.Exit(1)
}
