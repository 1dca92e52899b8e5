// Command probe opens the first matching eye tracker, prints what it is and
// what it supports, then polls it for a while and prints every new sample.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/dfgHiatus/LinuxProEye/internal/adapters/mock"
	"github.com/dfgHiatus/LinuxProEye/internal/adapters/replay"
	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/ports"
	"github.com/dfgHiatus/LinuxProEye/internal/session"
)

func main() {
	var (
		driverType  = flag.String("driver", "mock", "driver to probe: mock or replay")
		replayPath  = flag.String("replay", "", "capture file for the replay driver")
		integration = flag.String("integration", domain.IntegrationHMD, "integration type to select")
		iterations  = flag.Int("n", 1000, "number of poll iterations")
		delay       = flag.Duration("delay", 10*time.Millisecond, "pause between polls")
		timeout     = flag.Duration("timeout", 100*time.Millisecond, "wait-for-data timeout per poll")
		verbose     = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	var driver ports.Driver
	switch *driverType {
	case "mock":
		driver = mock.NewFakeDriver(mock.DefaultDevices(), 8*time.Millisecond, 0.01)
	case "replay":
		d, err := replay.Load(*replayPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *replayPath).Msg("could not load capture")
		}
		driver = d
	default:
		log.Fatal().Str("driver", *driverType).Msg("unknown driver")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := probe(ctx, driver, *integration, *iterations, *delay, *timeout); err != nil {
		log.Error().Err(err).Msg("probe failed")
		stop()
		os.Exit(1)
	}
}

func probe(ctx context.Context, driver ports.Driver, integration string, iterations int, delay, timeout time.Duration) error {
	sess := session.New(driver, session.WithIntegrationType(integration))
	if err := sess.Open(ctx); err != nil {
		return fmt.Errorf("could not init: %w", err)
	}
	defer sess.Close()

	device, err := sess.Device()
	if err != nil {
		return err
	}
	out, err := yaml.Marshal(device)
	if err != nil {
		return err
	}
	fmt.Printf("device:\n%s", indent(out))

	streams, err := sess.ListSupportedStreams()
	if err != nil {
		return err
	}
	fmt.Println("supported streams:")
	for _, kind := range streams {
		fmt.Printf("  - %s\n", kind)
	}

	if err := sess.Subscribe(); err != nil {
		return err
	}

	var last uint64
	for i := 0; i < iterations; i++ {
		if err := sess.Poll(ctx, timeout); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn().Err(err).Int("iteration", i).Msg("poll failed")
		}

		if s := sess.LatestSample(); s.Sequence != last {
			last = s.Sequence
			printSample(s)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(delay):
		}
	}
	return nil
}

func indent(b []byte) string {
	var out []byte
	out = append(out, "  "...)
	for i, c := range b {
		out = append(out, c)
		if c == '\n' && i < len(b)-1 {
			out = append(out, "  "...)
		}
	}
	return string(out)
}

func printSample(s domain.GazeSample) {
	fmt.Printf("#%d %-14s L %-7s (%.3f, %.3f, %.3f) R %-7s (%.3f, %.3f, %.3f)",
		s.Sequence, s.TrackingState(),
		s.Left.Validity, s.Left.Origin.X, s.Left.Origin.Y, s.Left.Origin.Z,
		s.Right.Validity, s.Right.Origin.X, s.Right.Origin.Y, s.Right.Origin.Z)
	if s.Left.HasDirection {
		d := s.Left.Direction
		fmt.Printf(" gaze (%.3f, %.3f, %.3f)", d.X, d.Y, d.Z)
	}
	fmt.Println()
}
