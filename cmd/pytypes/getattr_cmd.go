package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/pytypes/object"
)

type attrResult struct {
	Class string      `json:"class"`
	Name  string      `json:"name"`
	Kind  object.Kind `json:"kind"`
	Repr  string      `json:"repr"`
}

func newGetattrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "getattr FILE CLASS NAME",
		Short: "Resolve an attribute on a class",
		Long: `Resolve NAME on CLASS through type.__getattribute__ and print the
representation of the result.`,
		Args: cobra.ExactArgs(3),
		RunE: getattrHandler,
	}
}

func getattrHandler(cmd *cobra.Command, args []string) error {
	format, err := getOutputFormat()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	rt, set, err := loadHierarchy(ctx, args[0])
	if err != nil {
		return err
	}
	classes, err := selectClasses(set, args[1:2])
	if err != nil {
		return err
	}
	cls, name := classes[0], args[2]

	value, err := rt.GetAttribute(ctx, cls, name)
	if err != nil {
		return err
	}
	repr, err := rt.Repr(ctx, value)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if format == "json" {
		data, err := getOutputJSON(attrResult{
			Class: cls.Name(),
			Name:  name,
			Kind:  value.Kind(),
			Repr:  repr,
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(data))
		return nil
	}
	fmt.Fprintln(out, repr)
	return nil
}
