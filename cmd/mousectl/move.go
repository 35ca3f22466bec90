package main

import (
	"github.com/spf13/cobra"

	"github.com/dzmitry-savitski/arduino-mouse-proxy/protocol"
)

func moveCmd() *cobra.Command {
	var (
		dx       int
		dy       int
		duration int
		curve    string
	)

	cmd := &cobra.Command{
		Use:   "move",
		Short: "Perform a single relative movement",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := protocol.ParseCurve(curve)
			if err != nil {
				return err
			}

			m, err := openMouse()
			if err != nil {
				return err
			}
			defer m.Close()

			return m.Move(cmd.Context(), dx, dy, duration, c)
		},
	}

	cmd.Flags().IntVar(&dx, "dx", 0, "horizontal movement in pixels (positive = right)")
	cmd.Flags().IntVar(&dy, "dy", 0, "vertical movement in pixels (positive = down)")
	cmd.Flags().IntVar(&duration, "duration", 500, "movement duration in milliseconds")
	cmd.Flags().StringVar(&curve, "curve", "linear", "easing curve: linear, ease-in, ease-out, ease-in-out")

	return cmd
}
