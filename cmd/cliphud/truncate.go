package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newTruncateCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "truncate [text...]",
		Short: "Print text as the overlay would display it",
		Long: `Applies the overlay's truncation policy to the arguments (joined by spaces)
or, with no arguments, to standard input, and prints the result.`,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTruncate(v, cmd.InOrStdin(), cmd.OutOrStdout(), args)
		},
	}

	addTruncateFlags(cmd)
	addConfigFlags(cmd)

	return cmd
}

func runTruncate(v *viper.Viper, in io.Reader, out io.Writer, args []string) error {
	policy, err := loadPolicy(v)
	if err != nil {
		return err
	}

	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		b, err := io.ReadAll(in)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		text = strings.TrimSuffix(string(b), "\n")
	}

	_, err = fmt.Fprintln(out, policy.Apply(text))
	return err
}
