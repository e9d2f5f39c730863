package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wandering/emailpassword-go/internal/email"
)

// ErrInvalidAddresses makes the process exit non-zero when any address fails.
var ErrInvalidAddresses = errors.New("one or more addresses are invalid")

func newValidateCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "validate [email...]",
		Short: "Check addresses against the email grammar (reads stdin when no argument is given)",
		RunE: func(cmd *cobra.Command, args []string) error {
			candidates := args
			if len(candidates) == 0 {
				var err error
				candidates, err = readLines(cmd)
				if err != nil {
					return err
				}
			}

			green := color.New(color.FgGreen)
			red := color.New(color.FgRed)
			out := cmd.OutOrStdout()

			failed := 0
			for _, c := range candidates {
				ok := email.Valid(c)
				if !ok {
					failed++
				}
				if quiet {
					continue
				}
				if ok {
					green.Fprint(out, "valid")
				} else {
					red.Fprint(out, "invalid")
				}
				fmt.Fprintf(out, "\t%s\n", c)
			}

			if failed > 0 {
				return fmt.Errorf("%w (%d of %d)", ErrInvalidAddresses, failed, len(candidates))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print no verdicts, report through the exit status only")
	return cmd
}

func readLines(cmd *cobra.Command) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		if line := strings.TrimRight(scanner.Text(), "\r"); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}
	return lines, nil
}
