package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/repository"
	"github.com/vfg2006/fiscal-metrics-api/internal/api"
	"github.com/vfg2006/fiscal-metrics-api/internal/cache"
	"github.com/vfg2006/fiscal-metrics-api/internal/config"
	"github.com/vfg2006/fiscal-metrics-api/internal/scheduler"
	"github.com/vfg2006/fiscal-metrics-api/internal/usecases/authenticating"
	"github.com/vfg2006/fiscal-metrics-api/internal/usecases/notifying"
	"github.com/vfg2006/fiscal-metrics-api/internal/usecases/reporting"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	taxEventRepo := repository.NewTaxEventRepository(pgConn)
	pendingsRepo := repository.NewPendingsRepository(pgConn)

	responses := cache.NewTTLCache[string, any](cfg.Cache.TTL)
	logrus.WithField("ttl", cfg.Cache.TTL.String()).Info("Cache de respostas configurado")

	authenticator := authenticating.NewService(cfg)
	if !authenticator.Enabled() {
		logrus.Warn("Autenticação desabilitada: todas as requisições entram como viewer")
	}

	reportingService := reporting.NewService(taxEventRepo, responses)

	notifyingService, err := notifying.NewService(cfg, pendingsRepo, responses)
	if err != nil {
		logrus.Fatal(err)
	}

	metricsWarmupService := scheduler.NewMetricsWarmupService(cfg, map[string]scheduler.Warmer{
		"metrics":  reportingService,
		"pendings": notifyingService,
	})

	if err := metricsWarmupService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de aquecimento de métricas")
	} else {
		logrus.Info("Agendador de aquecimento de métricas iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		reportingService,
		notifyingService,
		authenticator,
		metricsWarmupService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
