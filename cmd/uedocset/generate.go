package main

import (
	"fmt"

	"github.com/uedocset/uedocset"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	err := deps.Generator.Generate(deps.Ctx, c.Input, c.Output)
	if err == nil {
		fmt.Fprintf(deps.Stdout, "Generated docset in %s\n", c.Output)
		return nil
	}

	// An archive whose name matches no known flavor is skipped, not failed:
	// the command is pointed at mixed download directories.
	if uedocset.ErrorCode(err) == uedocset.EUNSUPPORTED {
		fmt.Fprintf(deps.Stderr, "skipping %s: %s\n", c.Input, uedocset.ErrorMessage(err))
		return nil
	}

	fmt.Fprintf(deps.Stderr, "error: %s\n", uedocset.ErrorMessage(err))
	return err
}
