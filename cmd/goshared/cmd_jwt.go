package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/goshared/pkg/goshared/jwt"
	"github.com/randalmurphal/goshared/pkg/goshared/strutil"
)

var errNotJWT = errors.New("not a JWT")

func newJWTCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "jwt TOKEN",
		Short: "Check whether TOKEN is shaped like a signed JWT",
		Long: `Check whether TOKEN is shaped like a signed JWT. The signature is not
verified. Exits non-zero when TOKEN is not a JWT.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			short := strutil.TruncStr(args[0], strutil.WithStart(10), strutil.WithEnd(6))
			if !jwt.IsJWT(args[0]) {
				return fmt.Errorf("%s: %w", short, errNotJWT)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: JWT\n", short)
			return nil
		},
	}
}
