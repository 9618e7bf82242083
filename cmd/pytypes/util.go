package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/hashicorp/go-multierror"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"
	"github.com/spf13/viper"

	"github.com/deepnoodle-ai/pytypes"
	"github.com/deepnoodle-ai/pytypes/errors"
	"github.com/deepnoodle-ai/pytypes/hierarchy"
	"github.com/deepnoodle-ai/pytypes/object"
)

var (
	red   = color.New(color.FgRed).SprintFunc()
	green = color.New(color.FgGreen).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

func fatal(msg interface{}) {
	var s string
	switch msg := msg.(type) {
	case string:
		s = red(msg) + "\n"
	case error:
		s = formatError(msg)
	default:
		s = red(fmt.Sprintf("%v", msg)) + "\n"
	}
	fmt.Fprint(os.Stderr, s)
	os.Exit(1)
}

// formatError renders err with the error formatter. Aggregated definition
// errors are listed one by one.
func formatError(err error) string {
	f := errors.NewFormatter(!color.NoColor)
	var merr *multierror.Error
	if errors.As(err, &merr) {
		return f.FormatMultiple(merr.Errors)
	}
	return f.FormatError(err)
}

func isTerminalOutput() bool {
	stdout := os.Stdout.Fd()
	return isatty.IsTerminal(stdout) || isatty.IsCygwinTerminal(stdout)
}

var outputFormatsCompletion = []string{"json", "text"}

func getOutputFormat() (string, error) {
	format := strings.ToLower(viper.GetString("output"))
	switch format {
	case "", "text":
		return "text", nil
	case "json":
		return "json", nil
	default:
		return "", fmt.Errorf("unknown output format: %s", format)
	}
}

func getOutputJSON(result any) ([]byte, error) {
	if color.NoColor {
		return json.MarshalIndent(result, "", "  ")
	}
	return prettyjson.Marshal(result)
}

// loadHierarchy builds the classes described by the file at path in a fresh
// runtime.
func loadHierarchy(ctx context.Context, path string) (*object.Runtime, *hierarchy.Set, error) {
	return pytypes.LoadFile(ctx, path, getOptions()...)
}

// selectClasses returns the named classes, or every class when no names are
// given. Builtin types may be named too.
func selectClasses(set *hierarchy.Set, names []string) ([]*object.Type, error) {
	if len(names) == 0 {
		return set.Classes(), nil
	}
	classes := make([]*object.Type, 0, len(names))
	for _, name := range names {
		cls, ok := set.Resolve(name)
		if !ok {
			return nil, errors.ValueErrorf("unknown class %s", name).WithCode(errors.E9001)
		}
		classes = append(classes, cls)
	}
	return classes, nil
}
