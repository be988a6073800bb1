package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/neex/h2fields"
)

func main() {
	var (
		// root options
		useQpack bool
		// encode subcommand options
		outFile string
		// decode subcommand options
		debugPrint bool
		csvOut     string
	)

	encodeCmd := &cobra.Command{
		Use:     "encode \"header: value\" [header [header...]]",
		Short:   "encode headers into a compressed header block",
		Example: "encode \":method: GET\" \"x-binary: \\x00\\x01\"",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			headers, err := parseHeaderArgs(args)
			if err != nil {
				return err
			}
			var block []byte
			if useQpack {
				block = headers.EncodeQpack()
			} else {
				block = headers.EncodeHpack()
			}
			if outFile != "" {
				return os.WriteFile(outFile, block, 0644)
			}
			fmt.Println(hex.EncodeToString(block))
			return nil
		},
	}

	decodeCmd := &cobra.Command{
		Use:   "decode [file|hexstring]",
		Short: "decode a compressed header block and print the headers",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			block, err := readBlock(args)
			if err != nil {
				return err
			}

			var headers h2fields.Headers
			if useQpack {
				headers, err = h2fields.DecodeQpack(block)
			} else {
				headers, err = h2fields.DecodeHpack(block)
			}
			if err != nil {
				return err
			}

			if csvOut != "" {
				w, err := NewCSVHeaderWriter(csvOut)
				if err != nil {
					return err
				}
				defer func() { _ = w.Close() }()
				if err := w.Log(headers); err != nil {
					return err
				}
			}

			nameColor := color.New(color.FgCyan)
			for _, h := range headers {
				if debugPrint {
					fmt.Printf("%#v\n", h)
					continue
				}
				fmt.Printf("%s: %s\n", nameColor.Sprint(string(h.Name())), string(h.Value()))
			}
			return nil
		},
	}

	var rootCmd = &cobra.Command{
		Use: "h2fields",
	}

	rootCmd.PersistentFlags().BoolVar(&useQpack, "qpack", false, "use QPACK instead of HPACK")
	encodeCmd.Flags().StringVarP(&outFile, "out", "o", "", "write the raw block to this file instead of hex to stdout")
	decodeCmd.Flags().BoolVar(&debugPrint, "debug", false, "print headers in byte-escaped debug form")
	decodeCmd.Flags().StringVar(&csvOut, "csv", "", "also log decoded headers into this csv file")

	rootCmd.AddCommand(encodeCmd, decodeCmd)

	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// parseHeaderArgs turns "name: value" arguments into a header list. A name
// starting with a colon (a pseudo-header) keeps its leading colon; escape
// sequences like \r \n \x00 are supported in both parts.
func parseHeaderArgs(args []string) (h2fields.Headers, error) {
	var headers h2fields.Headers
	for _, a := range args {
		parts := strings.SplitN(a, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid header: %#v", a)
		}
		if parts[0] == "" && strings.ContainsRune(parts[1], ':') {
			parts = strings.SplitN(parts[1], ":", 2)
			parts[0] = ":" + parts[0]
		}
		name := unquoteArg(parts[0])
		value := unquoteArg(strings.TrimPrefix(parts[1], " "))
		headers.Add(name, value)
	}
	return headers, nil
}

// readBlock resolves the decode argument: an existing file is read raw, any
// other argument is taken as hex, and no argument means hex on stdin.
func readBlock(args []string) ([]byte, error) {
	if len(args) == 0 {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, err
		}
		return hex.DecodeString(strings.TrimSpace(string(data)))
	}
	if data, err := os.ReadFile(args[0]); err == nil {
		return data, nil
	}
	block, err := hex.DecodeString(strings.TrimSpace(args[0]))
	if err != nil {
		return nil, fmt.Errorf("argument %#v is neither a readable file nor hex: %w", args[0], err)
	}
	return block, nil
}

func unquoteArg(s string) string {
	if decoded, err := strconv.Unquote(`"` + s + `"`); err == nil {
		return decoded
	}
	return s
}
