package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/artie-labs/tablemeta/lib/config"
	"github.com/artie-labs/tablemeta/lib/hive/serde"
	"github.com/artie-labs/tablemeta/lib/logger"
	"github.com/artie-labs/tablemeta/lib/maputil"
	"github.com/artie-labs/tablemeta/lib/requestcontext"
	"github.com/artie-labs/tablemeta/lib/telemetry/metrics"
	"github.com/artie-labs/tablemeta/processes/describe"
)

func main() {
	settings, err := config.LoadSettings(os.Args, true)
	if err != nil {
		logger.Fatal("Failed to initialize config", slog.Any("err", err))
	}

	_logger, usingSentry := logger.NewLogger(settings)
	slog.SetDefault(_logger)
	if usingSentry {
		slog.Info("Sentry logger enabled")
	}

	ctx := metrics.InjectMetricsClientIntoCtx(context.Background(), metrics.LoadExporter(settings.Config))
	ctx = requestcontext.InjectIntoContext(ctx, requestcontext.New())

	registry := serde.Default()
	for _, alias := range maputil.SortedKeys(settings.Config.SerDe.Aliases) {
		registry.RegisterAlias(alias, settings.Config.SerDe.Aliases[alias])
	}

	if settings.TablesFilePath == "" {
		logger.Fatal("No tables file passed in, use -t to point to one")
	}

	tables, err := config.ReadTablesFile(settings.TablesFilePath)
	if err != nil {
		logger.Fatal("Failed to read tables", slog.Any("err", err))
	}

	slog.Info("Describing tables", slog.Int("count", len(tables)), slog.Any("deserializers", registry.Names()))
	results, rc := describe.Tables(ctx, registry, tables)
	if settings.JSONOutput {
		bytes, err := describe.NewReport(rc, results).JSON()
		if err != nil {
			logger.Fatal("Failed to encode report", slog.Any("err", err))
		}

		if _, err = os.Stdout.Write(append(bytes, '\n')); err != nil {
			logger.Fatal("Failed to write report", slog.Any("err", err))
		}
	}

	var failed int
	for _, result := range results {
		if result.Err != nil {
			failed++
			continue
		}

		attrs := []any{
			slog.String("table", result.Name.String()),
			slog.String("kind", string(result.Kind)),
			slog.String("tableType", result.TableType),
		}

		switch result.Kind {
		case describe.KindIceberg, describe.KindCommonView:
			attrs = append(attrs, slog.String("metadataLocation", result.MetadataLocation))
		default:
			attrs = append(attrs, slog.Int("fields", len(result.Fields)), slog.String("schema", result.Schema.String()))
		}

		slog.Info("Described table", attrs...)
	}

	slog.Info("Done", slog.Int("described", len(results)-failed), slog.Int("failed", failed), slog.String("requestID", rc.RequestID().String()))
	if failed > 0 {
		os.Exit(1)
	}
}
