// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Command propcheck samples generators from the command line, for
// eyeballing a generator's shape and shrink targets before wiring it
// into a property.
package main

import (
	"context"
	"fmt"
	"os"

	"code.hybscloud.com/proper"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var seed uint64
	var size int

	root := &cobra.Command{
		Use:   "propcheck",
		Short: "Sample values and shrink trees from built-in generators",
	}
	root.PersistentFlags().Uint64Var(&seed, "seed", 0, "PRNG seed")
	root.PersistentFlags().IntVar(&size, "size", 30, "generation size hint")

	root.AddCommand(newSampleCmd(&seed, &size))
	root.AddCommand(newShrinksCmd(&seed, &size))
	return root
}

func newSampleCmd(seed *uint64, size *int) *cobra.Command {
	var kind string
	var count int
	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print n sample values drawn from a named generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := lookupIntGenerator(kind)
			if err != nil {
				return err
			}
			values := proper.Take(gen, proper.NewSeed(*seed), *size, count)
			for _, v := range values {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "gen", "integer", "generator name: integer, positive, byte")
	cmd.Flags().IntVar(&count, "n", 10, "number of samples")
	return cmd
}

func newShrinksCmd(seed *uint64, size *int) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "shrinks",
		Short: "Print a value and its full shrink tree for a named generator",
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := lookupIntGenerator(kind)
			if err != nil {
				return err
			}
			tree, genErr := gen(proper.NewSeed(*seed), *size)
			if genErr != nil {
				return genErr
			}
			for v := range proper.Shrinks(tree) {
				fmt.Fprintln(cmd.OutOrStdout(), v)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&kind, "gen", "integer", "generator name: integer, positive, byte")
	return cmd
}

func lookupIntGenerator(name string) (proper.Generator[int], error) {
	switch name {
	case "integer":
		return proper.Integer(0), nil
	case "positive":
		return proper.PositiveInteger(), nil
	case "byte":
		return proper.Map(proper.Byte(), func(b byte) int { return int(b) }), nil
	default:
		return nil, fmt.Errorf("unknown generator %q", name)
	}
}
