package tableutil

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/apache/iceberg-go/table"

	"github.com/artie-labs/tablemeta/lib/qualifiedname"
	"github.com/artie-labs/tablemeta/lib/stringutil"
	"github.com/artie-labs/tablemeta/models"
)

const (
	TableTypeKey        = "table_type"
	MetadataLocationKey = "metadata_location"
	CommonViewKey       = "common_view"

	IcebergTableType = "ICEBERG"
	// UnknownTableType is recorded for tables without metadata or without a declared type.
	UnknownTableType = "unknown"
)

// TableTypeRecorder is the part of the request context the classifier writes to.
type TableTypeRecorder interface {
	UpdateTableTypeMap(name qualifiedname.QualifiedName, tableType string)
}

// GetTableType resolves and records the table type of [info].
// The second return value is false when the table has no metadata at all, [UnknownTableType] is still recorded for it.
func GetTableType(recorder TableTypeRecorder, info models.TableInfo) (string, bool) {
	if info.Metadata == nil {
		recorder.UpdateTableTypeMap(info.Name, UnknownTableType)
		return "", false
	}

	tableType := info.Metadata[TableTypeKey]
	if stringutil.IsBlank(tableType) {
		tableType = UnknownTableType
	}

	recorder.UpdateTableTypeMap(info.Name, tableType)
	return tableType, true
}

func IsIcebergTable(recorder TableTypeRecorder, info models.TableInfo) bool {
	tableType, isOk := GetTableType(recorder, info)
	return isOk && strings.EqualFold(tableType, IcebergTableType)
}

func IsCommonView(info models.TableInfo) bool {
	return IsCommonViewMetadata(info.Metadata)
}

// IsCommonViewMetadata returns true if [CommonViewKey] is set to true, anything other than "true" (any case) is false.
func IsCommonViewMetadata(metadata map[string]string) bool {
	if metadata == nil {
		return false
	}

	return strings.EqualFold(metadata[CommonViewKey], "true")
}

func metadataLocation(info models.TableInfo) (string, error) {
	if info.Metadata == nil {
		return "", &MissingMetadataError{TableName: info.Name}
	}

	return info.Metadata[MetadataLocationKey], nil
}

// GetIcebergTableMetadataLocation is only meant to be called once [IsIcebergTable] returned true.
func GetIcebergTableMetadataLocation(info models.TableInfo) (string, error) {
	return metadataLocation(info)
}

// GetCommonViewMetadataLocation is only meant to be called once [IsCommonView] returned true.
func GetCommonViewMetadataLocation(info models.TableInfo) (string, error) {
	return metadataLocation(info)
}

func QualifiedNameToTableIdentifier(name qualifiedname.QualifiedName) (table.Identifier, error) {
	identifier, err := name.ToTableIdentifier()
	if err != nil {
		return nil, fmt.Errorf("failed to convert %q to a table identifier: %w", name.String(), err)
	}

	return identifier, nil
}

func RequireNonEmptyMetadata(name qualifiedname.QualifiedName, metadata map[string]string) error {
	if len(metadata) == 0 {
		slog.Warn("No parameters defined for iceberg table", slog.String("table", name.String()))
		return &InvalidMetadataError{TableName: name}
	}

	return nil
}
