package describe

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/iceberg-go/table"

	"github.com/artie-labs/tablemeta/lib/hive/serde"
	"github.com/artie-labs/tablemeta/lib/hive/tableutil"
	"github.com/artie-labs/tablemeta/lib/hive/typeinfo"
	"github.com/artie-labs/tablemeta/lib/qualifiedname"
	"github.com/artie-labs/tablemeta/lib/requestcontext"
	"github.com/artie-labs/tablemeta/lib/telemetry/metrics"
	"github.com/artie-labs/tablemeta/models"
)

type Kind string

const (
	KindTable      Kind = "table"
	KindIceberg    Kind = "iceberg"
	KindCommonView Kind = "common_view"
)

type Result struct {
	Name      qualifiedname.QualifiedName
	Kind      Kind
	TableType string

	// Set for Iceberg tables and common views.
	MetadataLocation string
	Identifier       table.Identifier

	// Set for every other table.
	Fields []typeinfo.StructField
	Schema *arrow.Schema

	Err error
}

// Tables describes every table of a single request. Failures are kept on the table's [Result] and never stop the batch.
// The returned request context holds the table type recorded for each table, it is the one carried by [ctx] if any.
func Tables(ctx context.Context, registry *serde.Registry, tables []models.Table) ([]Result, *requestcontext.RequestContext) {
	rc := requestcontext.FromContext(ctx)
	slog.Debug("Describing tables", slog.String("requestID", rc.RequestID().String()), slog.Int("count", len(tables)))
	results := make([]Result, len(tables))
	for i, tbl := range tables {
		results[i] = describeTable(ctx, rc, registry, tbl)
		if results[i].Err != nil {
			slog.Warn("Failed to describe table",
				slog.String("requestID", rc.RequestID().String()),
				slog.String("table", tbl.Name.String()),
				slog.Any("err", results[i].Err),
			)
		}
	}

	return results, rc
}

func describeTable(ctx context.Context, rc *requestcontext.RequestContext, registry *serde.Registry, tbl models.Table) Result {
	info := tbl.TableInfo()
	result := Result{Name: info.Name, Kind: KindTable}

	isIceberg := tableutil.IsIcebergTable(rc, info)
	tableType, _ := rc.TableType(info.Name)
	result.TableType = tableType
	metrics.FromContext(ctx).Incr("tables.classified", map[string]string{"table_type": tableType})

	switch {
	case isIceberg:
		result.Kind = KindIceberg
		result.MetadataLocation, result.Identifier, result.Err = icebergTable(info)
	case tableutil.IsCommonView(info):
		result.Kind = KindCommonView
		result.MetadataLocation, result.Err = tableutil.GetCommonViewMetadataLocation(info)
	default:
		result.Fields, result.Schema, result.Err = resolveSchema(ctx, registry, tbl)
	}

	return result
}

func icebergTable(info models.TableInfo) (string, table.Identifier, error) {
	if err := tableutil.RequireNonEmptyMetadata(info.Name, info.Metadata); err != nil {
		return "", nil, err
	}

	location, err := tableutil.GetIcebergTableMetadataLocation(info)
	if err != nil {
		return "", nil, err
	}

	identifier, err := tableutil.QualifiedNameToTableIdentifier(info.Name)
	if err != nil {
		return "", nil, err
	}

	return location, identifier, nil
}

func resolveSchema(ctx context.Context, registry *serde.Registry, tbl models.Table) ([]typeinfo.StructField, *arrow.Schema, error) {
	tags := map[string]string{
		"result": "success",
	}
	st := time.Now()
	defer func() {
		metrics.FromContext(ctx).Timing("schema.resolve", time.Since(st), tags)
	}()

	fields, err := registry.GetTableStructFields(tbl)
	if err != nil {
		tags["result"] = "definition_error"
		return nil, nil, err
	}

	schema, err := typeinfo.ArrowSchema(fields)
	if err != nil {
		tags["result"] = "arrow_error"
		return fields, nil, fmt.Errorf("failed to build arrow schema: %w", err)
	}

	return fields, schema, nil
}
