/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/openband/bandwire/pkg/band"
	"github.com/openband/bandwire/pkg/codec"
)

// timeCmd represents the time command
var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Convert between tick timestamps and calendar time",
}

// ticksCmd represents the time ticks command
var ticksCmd = &cobra.Command{
	Use:   "ticks <value>",
	Short: "Convert a tick count to calendar time",
	Long: `Convert a 64-bit tick count (100ns units since 1601-01-01 UTC)
to calendar time.

Example:
  bandwire time ticks 131000000000000000`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ticks, err := strconv.ParseUint(args[0], 10, 64)
		if err != nil {
			fmt.Printf("Error parsing tick count: %v\n", err)
			return
		}
		fmt.Println(codec.TimeFromTicks(ticks).Format(time.RFC3339Nano))
	},
}

// ofCmd represents the time of command
var ofCmd = &cobra.Command{
	Use:   "of <rfc3339>",
	Short: "Convert calendar time to a tick count and a clock record",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		_, cfg, err := loadRegistry()
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			return
		}

		at, err := time.Parse(time.RFC3339Nano, args[0])
		if err != nil {
			fmt.Printf("Error parsing time: %v\n", err)
			return
		}

		ticks, err := codec.TicksFromTime(at)
		if err != nil {
			fmt.Printf("Error converting time: %v\n", err)
			return
		}

		st := band.SystemTimeOf(at.UTC(), cfg.WeekdayConvention())
		fmt.Printf("ticks: %d\n", ticks)
		fmt.Printf("clock: %+v\n", st)
	},
}

func init() {
	rootCmd.AddCommand(timeCmd)
	timeCmd.AddCommand(ticksCmd)
	timeCmd.AddCommand(ofCmd)
}
