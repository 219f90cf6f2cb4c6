package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/randalmurphal/goshared/pkg/goshared/env"
	"github.com/randalmurphal/goshared/pkg/goshared/repr"
)

var coercers = map[string]env.Coercer{
	"bool":     env.Bool,
	"int":      env.Int,
	"float":    env.Float,
	"string":   env.String,
	"duration": env.Duration,
}

func newEnvCommand() *cobra.Command {
	var (
		def      string
		typeName string
	)

	cmd := &cobra.Command{
		Use:   "env NAME",
		Short: "Print an environment variable as a typed value",
		Long: `Print an environment variable as a typed value.

Without --type the value takes the type of --default, or is inferred
(bool, int, float, string) when there is no default. Strings are printed
quoted so the chosen type is visible.`,
		Example: `  goshared env PORT --default 8080
  goshared env DEBUG --type bool`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []env.Option
			if cmd.Flags().Changed("default") {
				opts = append(opts, env.WithDefault(env.Infer(def)))
			}
			if typeName != "" {
				c, ok := coercers[strings.ToLower(typeName)]
				if !ok {
					return fmt.Errorf("unknown type %q (want one of %s)", typeName, strings.Join(typeNames(), ", "))
				}
				opts = append(opts, env.WithType(c))
			}

			v, err := env.Resolve(args[0], opts...)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), repr.SafeText(v))
			return nil
		},
	}

	cmd.Flags().StringVar(&def, "default", "", "value used when NAME is unset; also fixes the type")
	cmd.Flags().StringVar(&typeName, "type", "", "force the type: "+strings.Join(typeNames(), "|"))
	return cmd
}

func typeNames() []string {
	names := make([]string, 0, len(coercers))
	for name := range coercers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
