/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/openband/bandwire/pkg/captures"
)

var capturesHex bool

// capturesCmd represents the captures command
var capturesCmd = &cobra.Command{
	Use:   "captures",
	Short: "Manage and verify stored device captures",
	Long: `Store raw payloads captured from a real device and replay them
through the record codecs. Verification failures point at layout totals
that need revisiting.`,
}

// capturesAddCmd represents the captures add command
var capturesAddCmd = &cobra.Command{
	Use:   "add <record> <file>",
	Short: "Store a captured payload",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openCaptures()
		if err != nil {
			fmt.Printf("Error opening captures: %v\n", err)
			return
		}
		defer store.Close()

		payload, err := readPayload(args[1], capturesHex)
		if err != nil {
			fmt.Printf("Error reading payload: %v\n", err)
			return
		}

		id, err := store.Add(args[0], payload)
		if err != nil {
			fmt.Printf("Error storing capture: %v\n", err)
			return
		}
		fmt.Printf("Stored capture %s (%d bytes)\n", id, len(payload))
	},
}

// capturesListCmd represents the captures list command
var capturesListCmd = &cobra.Command{
	Use:   "list <record>",
	Short: "List stored captures of a record kind",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openCaptures()
		if err != nil {
			fmt.Printf("Error opening captures: %v\n", err)
			return
		}
		defer store.Close()

		caps, err := store.List(args[0])
		if err != nil {
			fmt.Printf("Error listing captures: %v\n", err)
			return
		}
		for _, c := range caps {
			preview := c.Payload
			if len(preview) > 16 {
				preview = preview[:16]
			}
			fmt.Printf("%s  %4d bytes  %s...\n", c.ID, len(c.Payload), hex.EncodeToString(preview))
		}
		fmt.Printf("%d capture(s)\n", len(caps))
	},
}

// capturesVerifyCmd represents the captures verify command
var capturesVerifyCmd = &cobra.Command{
	Use:   "verify <record>",
	Short: "Replay stored captures through the record codec",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openCaptures()
		if err != nil {
			fmt.Printf("Error opening captures: %v\n", err)
			return
		}
		defer store.Close()

		rep, err := store.Verify(args[0])
		if err != nil {
			fmt.Printf("Error verifying captures: %v\n", err)
			return
		}
		fmt.Printf("%s: %d/%d captures decoded\n", rep.Kind, rep.Decoded, rep.Total)
		for _, f := range rep.Failures {
			fmt.Printf("  %s: %v\n", f.ID, f.Err)
		}
	},
}

func openCaptures() (*captures.Store, error) {
	registry, cfg, err := loadRegistry()
	if err != nil {
		return nil, err
	}
	return captures.Open(cfg.CapturesDir, registry)
}

func init() {
	rootCmd.AddCommand(capturesCmd)
	capturesCmd.AddCommand(capturesAddCmd)
	capturesCmd.AddCommand(capturesListCmd)
	capturesCmd.AddCommand(capturesVerifyCmd)
	capturesAddCmd.Flags().BoolVar(&capturesHex, "hex", false, "Treat the input as hex text instead of raw bytes")
}
