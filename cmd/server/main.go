package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/reflection"

	grpcAdapter "github.com/dfgHiatus/LinuxProEye/internal/adapters/grpc"
	"github.com/dfgHiatus/LinuxProEye/internal/adapters/memory"
	"github.com/dfgHiatus/LinuxProEye/internal/adapters/mock"
	"github.com/dfgHiatus/LinuxProEye/internal/adapters/replay"
	"github.com/dfgHiatus/LinuxProEye/internal/adapters/sqlite"
	"github.com/dfgHiatus/LinuxProEye/internal/adapters/ws"
	"github.com/dfgHiatus/LinuxProEye/internal/capture"
	"github.com/dfgHiatus/LinuxProEye/internal/config"
	"github.com/dfgHiatus/LinuxProEye/internal/domain"
	"github.com/dfgHiatus/LinuxProEye/internal/ports"
	"github.com/dfgHiatus/LinuxProEye/internal/session"
	"github.com/dfgHiatus/LinuxProEye/pkg/gazerpc"
	"github.com/dfgHiatus/LinuxProEye/pkg/tlsconfig"
)

func main() {
	// Initialize logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	zerolog.SetGlobalLevel(cfg.Level())

	log.Info().Msg("starting gaze service")

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("gaze service failed")
	}

	log.Info().Msg("server stopped")
}

// run owns every resource so deferred cleanup happens before exit
func run(cfg config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize repository
	var repo domain.SampleRepository
	switch cfg.RepoType {
	case "sqlite":
		r, err := sqlite.NewSampleRepository(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open SQLite database %s: %w", cfg.DBPath, err)
		}
		defer r.Close()
		repo = r
		log.Info().Str("db_path", cfg.DBPath).Msg("initialized SQLite repository")
	default:
		repo = memory.NewSampleRepository(cfg.MemoryMaxSamples)
		log.Info().Int("max_samples", cfg.MemoryMaxSamples).Msg("initialized in-memory repository")
	}

	// Initialize driver
	var driver ports.Driver
	switch cfg.DriverType {
	case "replay":
		d, err := replay.Load(cfg.ReplayPath, replay.WithLoop(cfg.ReplayLoop))
		if err != nil {
			return fmt.Errorf("load capture %s: %w", cfg.ReplayPath, err)
		}
		driver = d
		log.Info().Str("path", cfg.ReplayPath).Int("samples", d.Len()).Msg("initialized replay driver")
	default:
		driver = mock.NewFakeDriver(mock.DefaultDevices(), 8*time.Millisecond, 0.01)
		log.Info().Msg("initialized simulated driver")
	}

	// Open the session
	sess := session.New(driver, session.WithIntegrationType(cfg.IntegrationType))
	if err := sess.Open(ctx); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer sess.Close()

	device, err := sess.Device()
	if err != nil {
		return fmt.Errorf("read device: %w", err)
	}
	streams, err := sess.ListSupportedStreams()
	if err != nil {
		return fmt.Errorf("list streams: %w", err)
	}
	for _, kind := range streams {
		log.Info().Stringer("stream", kind).Msg("supported stream")
	}

	if err := sess.Subscribe(); err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	recCfg := ports.RecorderConfig{
		PollTimeout:     cfg.PollTimeout,
		PollInterval:    cfg.PollInterval,
		Retention:       cfg.Retention,
		MaxPollFailures: cfg.MaxPollFailures,
	}

	// Record to a capture file if requested
	if cfg.CapturePath != "" {
		names := make([]string, 0, len(sess.Subscriptions()))
		for _, s := range sess.Subscriptions() {
			names = append(names, s.Kind.String())
		}
		w, err := capture.Create(cfg.CapturePath, capture.Header{
			SessionID: sess.SessionID(),
			Device:    device,
			Streams:   names,
		})
		if err != nil {
			return err
		}
		defer w.Close()
		recCfg.Sink = w
		log.Info().Str("path", cfg.CapturePath).Msg("capturing samples")
	}

	// Start websocket stream
	if cfg.WebsocketEnabled() {
		broadcaster := ws.NewBroadcaster(sess, 32)
		recCfg.Publisher = broadcaster
		wsServer := ws.NewServer(broadcaster)
		go func() {
			if err := wsServer.ListenAndServe(ctx, cfg.WSAddr); err != nil {
				log.Error().Err(err).Msg("websocket server failed")
			}
		}()
	}

	// Configure TLS if certificates are provided
	var serverOpts []grpc.ServerOption
	if cfg.TLSEnabled() {
		tlsCfg, err := tlsconfig.LoadServerTLS(cfg.TLSCert, cfg.TLSKey, cfg.TLSCA)
		if err != nil {
			return fmt.Errorf("load TLS config: %w", err)
		}
		serverOpts = append(serverOpts, grpc.Creds(credentials.NewTLS(tlsCfg)))
		log.Info().Msg("mTLS enabled")
	} else {
		log.Warn().Msg("TLS_CERT not set, starting without TLS (dev mode only)")
	}

	// Create gRPC server
	grpcServer := grpc.NewServer(serverOpts...)
	gazerpc.RegisterGazeServiceServer(grpcServer, grpcAdapter.NewGazeServiceHandler(repo, sess))

	// Enable gRPC reflection for grpcurl testing
	reflection.Register(grpcServer)

	listener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Port))
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	log.Info().Str("port", cfg.Port).Msg("gRPC server listening")

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- grpcServer.Serve(listener)
	}()

	// Start background recorder
	recErr := make(chan error, 1)
	recorder := ports.NewRecorder(sess, repo, recCfg)
	go func() {
		recErr <- recorder.Start(ctx)
	}()

	return awaitShutdown(ctx, recErr, serveErr, func() {
		stop()
		grpcServer.GracefulStop()
	})
}

// awaitShutdown blocks until ctx is done or the recorder or server fails,
// runs shutdown, then waits for the recorder to return so nothing is still
// writing when the caller's deferred closes run
func awaitShutdown(ctx context.Context, recErr, serveErr <-chan error, shutdown func()) error {
	var runErr error
	recDone := false
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server...")
	case runErr = <-recErr:
		recDone = true
	case err := <-serveErr:
		runErr = fmt.Errorf("serve: %w", err)
	}

	shutdown()
	if !recDone {
		if err := <-recErr; err != nil && runErr == nil {
			runErr = err
		}
	}
	return runErr
}
