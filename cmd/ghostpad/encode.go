// cmd/ghostpad/encode.go
package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tamzrod/ghostpad/internal/joybus"
)

func newEncodeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encode <hex bytes>...",
		Short: "Print the symbol words for a response payload",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload, err := parseHex(strings.Join(args, ""))
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), payload)
		},
	}
}

func encode(out io.Writer, payload []byte) error {
	words := make([]uint32, joybus.WordCount(len(payload)))
	n := joybus.Encode(words, payload)
	_, err := fmt.Fprintln(out, formatWords(words[:n]))
	return err
}
