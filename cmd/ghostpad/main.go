// cmd/ghostpad/main.go
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "ghostpad",
		Short:         "Replay recorded controller input on a console controller port",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newRunCmd(),
		newSimulateCmd(),
		newEncodeCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "ghostpad:", err)
		os.Exit(1)
	}
}
