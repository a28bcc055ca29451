// choreoctl — blueprint tooling for the choreography engine.
//
//   - generate: reads a YAML show config and emits a blueprint JSON
//     document synthesized by the timeline generator.
//   - preview: loads a blueprint JSON document and prints resolved frames
//     sampled along a synthetic audio sweep.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "choreoctl",
		Short:         "Generate and preview choreography blueprints",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(), newPreviewCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "choreoctl:", err)
		os.Exit(1)
	}
}
