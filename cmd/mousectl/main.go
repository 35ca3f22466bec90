// Package main implements the mousectl command line client.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dzmitry-savitski/arduino-mouse-proxy/host/mouse"
)

var (
	portFlag    string
	baudFlag    int
	verboseFlag bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "mousectl",
		Short: "Drive an Arduino mouse-proxy actuator over serial",
		Long: `mousectl sends relative mouse movements to an Arduino Leonardo
flashed with the mouse-proxy firmware. The board acts as a USB HID mouse;
each command blocks until the board confirms the movement finished.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: time.Kitchen,
			})
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
			if verboseFlag {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&portFlag, "port", "p", "/dev/ttyACM0", "serial device path")
	rootCmd.PersistentFlags().IntVarP(&baudFlag, "baud", "b", 115200, "serial baud rate")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug output")

	rootCmd.AddCommand(
		moveCmd(),
		demoCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func openMouse() (*mouse.Mouse, error) {
	return mouse.Open(mouse.Config{
		Port:   portFlag,
		Baud:   baudFlag,
		Logger: log.Logger,
	})
}
