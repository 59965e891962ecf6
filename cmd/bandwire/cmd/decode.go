/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var decodeHex bool

// decodeCmd represents the decode command
var decodeCmd = &cobra.Command{
	Use:   "decode <record> <file>",
	Short: "Decode a captured record payload",
	Long: `Decode a binary record payload and print its fields.

The payload must be exactly the record's declared wire size. Pass "-"
to read from stdin.

Example:
  bandwire decode tile capture.bin
  bandwire decode systemtime --hex clock.hex`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		registry, _, err := loadRegistry()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		data, err := readPayload(args[1], decodeHex)
		if err != nil {
			fmt.Printf("Error reading payload: %v\n", err)
			return
		}

		v, err := registry.Decode(args[0], data)
		if err != nil {
			fmt.Printf("Error decoding record: %v\n", err)
			return
		}

		fmt.Printf("%+v\n", v)
	},
}

// sizesCmd represents the sizes command
var sizesCmd = &cobra.Command{
	Use:   "sizes",
	Short: "Print the declared wire size of every record kind",
	Run: func(cmd *cobra.Command, args []string) {
		registry, _, err := loadRegistry()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}
		for _, name := range registry.Names() {
			info, err := registry.Lookup(name)
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			fmt.Printf("%-16s %d bytes\n", info.Name, info.Size)
		}
	},
}

func readPayload(path string, hexEncoded bool) ([]byte, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if hexEncoded {
		cleaned := strings.Map(func(r rune) rune {
			if r == ' ' || r == '\n' || r == '\t' || r == '\r' {
				return -1
			}
			return r
		}, string(data))
		return hex.DecodeString(cleaned)
	}
	return data, nil
}

func init() {
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(sizesCmd)
	decodeCmd.Flags().BoolVar(&decodeHex, "hex", false, "Treat the input as hex text instead of raw bytes")
}
