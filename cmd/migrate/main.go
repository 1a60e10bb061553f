package main

import (
	"context"
	"flag"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/database/postgres"
	"github.com/vfg2006/fiscal-metrics-api/infrastructure/migration"
	"github.com/vfg2006/fiscal-metrics-api/internal/config"
)

func main() {
	var (
		seed    = flag.Bool("seed", false, "insere dados sintéticos após criar o schema")
		sellers = flag.Int("sellers", 500, "quantidade de sellers sintéticos")
		months  = flag.Int("months", 12, "quantidade de meses sintéticos")
	)
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	if err := migration.Apply(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema")
	}

	if !*seed {
		logrus.Infof("Migração concluída em %v", time.Since(startTime))
		return
	}

	events, pendings, err := migration.GenerateSeed(rand.New(rand.NewSource(time.Now().UnixNano())), migration.SeedOptions{
		Sellers:   *sellers,
		Months:    *months,
		ContentID: cfg.Pendings.ContentID,
		Now:       time.Now(),
	})
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gerar dados sintéticos")
	}

	if err := migration.Seed(ctx, conn, events, pendings); err != nil {
		logrus.WithError(err).Fatal("Erro ao inserir dados sintéticos")
	}

	logrus.Infof("Migração concluída em %v", time.Since(startTime))
}
