package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/pytypes/builtins"
)

func newBuiltinsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "builtins",
		Short: "List the built-in functions and types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := getOutputFormat()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			docs := builtins.Docs()
			if format == "json" {
				data, err := getOutputJSON(docs)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, string(data))
				return nil
			}
			for _, spec := range docs {
				fmt.Fprintf(out, "%s(%s) -> %s\n    %s\n",
					cyan(spec.Name), strings.Join(spec.Args, ", "), spec.Returns, spec.Doc)
			}
			return nil
		},
	}
}
