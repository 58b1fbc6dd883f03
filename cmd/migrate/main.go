package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"stayhub/internal/handler/middleware"
	"stayhub/internal/pkg/config"
	"stayhub/internal/pkg/errs"

	"ariga.io/atlas-go-sdk/atlasexec"
)

const migrateTimeout = 2 * time.Minute

func main() {
	dir := flag.String("dir", "file://migrations", "atlas migration directory URL")
	bin := flag.String("atlas", "atlas", "path to the atlas binary")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("設定の読み込みに失敗しました", "error", err)
		os.Exit(1)
	}
	logger := middleware.NewLogger(cfg.Log).GetSlogLogger()

	ctx, cancel := context.WithTimeout(context.Background(), migrateTimeout)
	defer cancel()

	if err := run(ctx, logger, cfg.DB, *dir, *bin); err != nil {
		logger.Error("マイグレーションに失敗しました", "error", err, "stack", errs.ExtractStackLines(err, 5))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, dbCfg config.DBConfig, dirURL, bin string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return errs.Wrap(err, "failed to resolve working directory")
	}

	client, err := atlasexec.NewClient(workDir, bin)
	if err != nil {
		return errs.Wrap(err, "failed to create atlas client")
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    dbCfg.BuildDSN(),
		DirURL: dirURL,
	})
	if err != nil {
		return errs.Wrap(err, "atlas migrate apply failed")
	}

	logger.Info("マイグレーションが完了しました",
		"applied", len(res.Applied),
		"current", res.Current,
		"target", res.Target)
	return nil
}
