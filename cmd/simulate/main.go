package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/osse101/GildedRose_Go/internal/domain"
	"github.com/osse101/GildedRose_Go/internal/inventory"
	"github.com/osse101/GildedRose_Go/internal/item"
)

type options struct {
	days         int
	itemsPath    string
	conjuredRate int
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Print the Gilded Rose inventory day by day",
		Long: `Simulate runs the day update over a starting stock and prints every
item after each day. Without --items the classic nine-item stock is used.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVarP(&opts.days, "days", "d", 2, "number of days to simulate")
	cmd.Flags().StringVarP(&opts.itemsPath, "items", "i", "", "items JSON file (default is the built-in stock)")
	cmd.Flags().IntVar(&opts.conjuredRate, "conjured-rate", inventory.DefaultConjuredDegradeRate, "quality lost per step by conjured items")

	return cmd
}

func runSimulate(out io.Writer, opts *options) error {
	if opts.days < 0 {
		return fmt.Errorf("%w: days must not be negative", domain.ErrInvalidDays)
	}

	cfg := item.DefaultConfig()
	if opts.itemsPath != "" {
		loader := item.NewLoader()
		loaded, err := loader.Load(opts.itemsPath)
		if err != nil {
			return err
		}
		if err := loader.Validate(loaded); err != nil {
			return err
		}
		cfg = loaded
	}

	rules := inventory.DefaultRules().WithConjuredDegradeRate(opts.conjuredRate)
	if err := rules.Validate(); err != nil {
		return err
	}
	engine := inventory.NewEngine(rules)

	items := cfg.ToItems()
	fmt.Fprintln(out, "OMGHAI!")
	for day := 0; day <= opts.days; day++ {
		printDay(out, day, items)
		engine.AdvanceOneDay(items)
	}
	return nil
}

func printDay(out io.Writer, day int, items []domain.Item) {
	fmt.Fprintf(out, "-------- day %d --------\n", day)
	fmt.Fprintln(out, "name, sellIn, quality")
	for _, it := range items {
		fmt.Fprintln(out, it.String())
	}
	fmt.Fprintln(out)
}
