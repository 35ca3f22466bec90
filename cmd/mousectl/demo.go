package main

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/dzmitry-savitski/arduino-mouse-proxy/protocol"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a short movement showcase",
		Long: `Draws a square with linear movements, then shows off the easing
curves with a smooth diagonal, a quick snap back and a slow-start move.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := openMouse()
			if err != nil {
				return err
			}
			defer m.Close()

			ctx := cmd.Context()

			steps := []struct {
				name     string
				dx, dy   int
				duration int
				curve    protocol.Curve
				pause    time.Duration
			}{
				{"square: right", 200, 0, 500, protocol.Linear, 0},
				{"square: down", 0, 200, 500, protocol.Linear, 0},
				{"square: left", -200, 0, 500, protocol.Linear, 0},
				{"square: up", 0, -200, 500, protocol.Linear, time.Second},
				{"smooth diagonal", 300, 150, 1000, protocol.EaseInOut, 500 * time.Millisecond},
				{"quick return", -300, -150, 400, protocol.EaseOut, time.Second},
				{"slow start", 100, -100, 800, protocol.EaseIn, 0},
			}

			for _, step := range steps {
				log.Info().
					Str("step", step.name).
					Int("dx", step.dx).
					Int("dy", step.dy).
					Stringer("curve", step.curve).
					Msg("moving")

				if err := m.Move(ctx, step.dx, step.dy, step.duration, step.curve); err != nil {
					return err
				}

				if step.pause > 0 {
					time.Sleep(step.pause)
				}
			}

			log.Info().Msg("demo complete")
			return nil
		},
	}
}
