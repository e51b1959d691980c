package main

import (
	"context"
	"fmt"
	"github.com/QuangTung97/booth-ads/config"
	"github.com/QuangTung97/booth-ads/pkg/adcache"
	"github.com/QuangTung97/booth-ads/pkg/cacheclient"
	"github.com/QuangTung97/booth-ads/pkg/grpclib"
	"github.com/QuangTung97/booth-ads/pkg/memtable"
	"github.com/QuangTung97/booth-ads/pkg/otellib"
	"github.com/QuangTung97/booth-ads/repository"
	"github.com/QuangTung97/booth-ads/service/gallery"
	"github.com/QuangTung97/booth-ads/service/httpapi"
	"github.com/QuangTung97/booth-ads/service/management"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpc_prometheus "github.com/grpc-ecosystem/go-grpc-prometheus"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	_ "github.com/go-sql-driver/mysql"
	grpc_zap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	grpc_ctxtags "github.com/grpc-ecosystem/go-grpc-middleware/tags"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

const serviceName = "booth-ads"

var cacheResults = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "booth_ads",
	Subsystem: "cache",
	Name:      "results_total",
	Help:      "Number of venue ad cache accesses by result",
}, []string{"result"})

func newStore(conf config.Config, logger *zap.Logger) (adcache.Store, func()) {
	client, err := cacheclient.New(conf.Memcache.Addr(), conf.Memcache.Conns())
	if err != nil {
		panic(err)
	}

	options := []adcache.Option{
		adcache.WithTTL(conf.Cache.TTLSeconds),
		adcache.WithLocalTTL(conf.Cache.LocalTTLSeconds),
		adcache.WithLogger(logger),
		adcache.WithObserver(func(r adcache.Result) {
			cacheResults.WithLabelValues(string(r)).Inc()
		}),
	}
	if conf.Cache.LeaseWaits != nil {
		options = append(options, adcache.WithWaitLeaseDurations(conf.Cache.LeaseWaits))
	}

	store := adcache.NewStore(memtable.New(conf.Cache.LocalSize), client, options...)
	return store, func() {
		_ = client.Close()
	}
}

func startServer() {
	conf := config.Load()
	logger := config.NewLogger(conf.Log)
	defer func() { _ = logger.Sync() }()

	logger.Info("Config loaded", zap.Any("config", conf.Redacted()))

	loc, err := conf.Location()
	if err != nil {
		panic(err)
	}

	tracerProvider, shutdown := otellib.InitOtel(serviceName, conf.Jaeger)
	defer shutdown()

	otel.SetTracerProvider(tracerProvider)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(grpc_recovery.WithRecoveryHandler(grpclib.RecoveryHandlerFunc)),
			grpc_ctxtags.UnaryServerInterceptor(),
			grpc_prometheus.UnaryServerInterceptor,

			otellib.UnaryServerInterceptor(tracerProvider),
			otellib.SetTraceInfoInterceptor(logger),

			grpc_zap.UnaryServerInterceptor(logger),
		),
		grpc.ChainStreamInterceptor(
			grpc_recovery.StreamServerInterceptor(),
			grpc_ctxtags.StreamServerInterceptor(),
			grpc_prometheus.StreamServerInterceptor,
			grpc_zap.StreamServerInterceptor(logger),
		),
	)

	healthServer := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	db := conf.MySQL.MustConnect(logger)
	defer func() { _ = db.Close() }()

	store, closeStore := newStore(conf, logger)
	defer closeStore()

	provider := repository.NewProvider(db)
	adRepo := repository.NewAdvertisement()

	tracer := tracerProvider.Tracer(serviceName)

	galleryService := gallery.NewIServiceWrapper(
		gallery.NewService(provider, adRepo, store, gallery.NewMetrics(prometheus.DefaultRegisterer), loc),
		tracer, "gallery::",
	)
	managementService := management.NewIServiceWrapper(
		management.NewService(provider, adRepo, store, management.NewMetrics(prometheus.DefaultRegisterer), loc),
		tracer, "management::",
	)

	mux := runtime.NewServeMux()
	err = httpapi.NewHandler(galleryService, managementService).Register(mux)
	if err != nil {
		panic(err)
	}

	prometheus.MustRegister(cacheResults)
	grpc_prometheus.EnableHandlingTimeHistogram()
	grpc_prometheus.Register(grpcServer)

	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)

	startHTTPAndGRPCServers(conf, logger, tracerProvider, grpcServer, mux)
}

func main() {
	rootCmd := cobra.Command{
		Use: "server",
	}
	rootCmd.AddCommand(
		startServerCommand(),
		takeoverCommand(),
	)

	err := rootCmd.Execute()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func startServerCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "start the server",
		Run: func(cmd *cobra.Command, args []string) {
			startServer()
		},
	}
}

func startHTTPAndGRPCServers(
	conf config.Config, logger *zap.Logger, tracerProvider trace.TracerProvider,
	grpcServer *grpc.Server, mux *runtime.ServeMux,
) {
	logger.Info("Listening",
		zap.String("grpc", conf.Server.GRPC.ListenString()),
		zap.String("http", conf.Server.HTTP.ListenString()),
	)

	httpMux := http.NewServeMux()
	httpMux.Handle("/metrics", promhttp.Handler())
	httpMux.Handle("/", otellib.HTTPMiddleware(logger, tracerProvider, propagation.TraceContext{}, mux))

	httpServer := &http.Server{
		Addr:              conf.Server.HTTP.ListenString(),
		Handler:           httpMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()

		err := httpServer.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			panic(err)
		}
		logger.Info("Shutdown HTTP server successfully")
	}()

	go func() {
		defer wg.Done()

		listener, err := net.Listen("tcp", conf.Server.GRPC.ListenString())
		if err != nil {
			panic(err)
		}

		err = grpcServer.Serve(listener)
		if err != nil {
			panic(err)
		}
		logger.Info("Shutdown gRPC server successfully")
	}()

	//--------------------------------
	// Graceful Shutdown
	//--------------------------------
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	grpcServer.GracefulStop()
	err := httpServer.Shutdown(ctx)
	if err != nil {
		panic(err)
	}

	wg.Wait()
}
