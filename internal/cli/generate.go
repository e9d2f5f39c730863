package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wandering/emailpassword-go/internal/crypto"
)

var errBadCount = errors.New("count must be at least 1")

func newGenerateCmd() *cobra.Command {
	var (
		length      int
		count       int
		noNumbers   bool
		noSpecial   bool
		noAlphabets bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print random passwords",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count < 1 {
				return errBadCount
			}

			opts := crypto.GeneratorOptions{
				Length:    length,
				Alphabets: !noAlphabets,
				Numbers:   !noNumbers,
				Special:   !noSpecial,
			}
			gen := crypto.NewGenerator(nil)

			out := cmd.OutOrStdout()
			for i := 0; i < count; i++ {
				fmt.Fprintln(out, gen.Generate(opts))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", crypto.DefaultLength, "password length")
	cmd.Flags().IntVarP(&count, "count", "c", 1, "number of passwords")
	cmd.Flags().BoolVar(&noNumbers, "no-numbers", false, "leave out digits")
	cmd.Flags().BoolVar(&noSpecial, "no-special", false, "leave out punctuation")
	cmd.Flags().BoolVar(&noAlphabets, "no-alphabets", false, "leave out letters")
	return cmd
}
