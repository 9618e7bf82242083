package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/pytypes/object"
)

func newMroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mro FILE [CLASS...]",
		Short: "Print the method resolution order of classes",
		Long: `Print the method resolution order of the classes defined in FILE.

All classes are printed in definition order unless specific classes are named.
With --output json each class is described together with its attributes.
With --attrs the text output also lists the attributes each class defines.`,
		Args: cobra.MinimumNArgs(1),
		RunE: mroHandler,
	}
	cmd.Flags().Bool("attrs", false, "List the attributes defined by each class")
	return cmd
}

func mroHandler(cmd *cobra.Command, args []string) error {
	format, err := getOutputFormat()
	if err != nil {
		return err
	}
	_, set, err := loadHierarchy(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	classes, err := selectClasses(set, args[1:])
	if err != nil {
		return err
	}

	showAttrs, _ := cmd.Flags().GetBool("attrs")

	out := cmd.OutOrStdout()
	if format == "json" {
		specs := make([]object.TypeSpec, len(classes))
		for i, cls := range classes {
			specs[i] = object.DescribeType(cls)
		}
		data, err := getOutputJSON(specs)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	for _, cls := range classes {
		names := make([]string, 0, len(cls.Mro()))
		for _, c := range cls.Mro() {
			names = append(names, c.Name())
		}
		fmt.Fprintf(out, "%s: %s\n", cyan(cls.Inspect()), strings.Join(names, ", "))
		if showAttrs {
			fmt.Fprintf(out, "  attrs: %s\n", strings.Join(ownAttrNames(cls), ", "))
		}
	}
	return nil
}

// ownAttrNames returns the names defined directly in cls's dict, in
// definition order.
func ownAttrNames(cls *object.Type) []string {
	var own []object.AttrSpec
	for _, attr := range object.DescribeType(cls).Attrs {
		if attr.Owner == cls.Name() {
			own = append(own, attr)
		}
	}
	return object.AttrNames(own)
}
