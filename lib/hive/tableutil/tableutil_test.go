package tableutil_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/apache/iceberg-go/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artie-labs/tablemeta/lib/hive/tableutil"
	"github.com/artie-labs/tablemeta/lib/mocks"
	"github.com/artie-labs/tablemeta/lib/qualifiedname"
	"github.com/artie-labs/tablemeta/lib/requestcontext"
	"github.com/artie-labs/tablemeta/models"
)

var ordersTable = qualifiedname.OfTable("prodhive", "dse", "orders")

func TestGetTableType(t *testing.T) {
	{
		// No metadata
		recorder := &mocks.FakeTableTypeRecorder{}
		tableType, isOk := tableutil.GetTableType(recorder, models.TableInfo{Name: ordersTable})
		assert.False(t, isOk)
		assert.Empty(t, tableType)

		require.Equal(t, 1, recorder.UpdateTableTypeMapCallCount())
		name, recorded := recorder.UpdateTableTypeMapArgsForCall(0)
		assert.Equal(t, ordersTable, name)
		assert.Equal(t, tableutil.UnknownTableType, recorded)
	}
	{
		// Iceberg
		recorder := &mocks.FakeTableTypeRecorder{}
		tableType, isOk := tableutil.GetTableType(recorder, models.TableInfo{Name: ordersTable, Metadata: map[string]string{"table_type": "ICEBERG"}})
		assert.True(t, isOk)
		assert.Equal(t, "ICEBERG", tableType)

		require.Equal(t, 1, recorder.UpdateTableTypeMapCallCount())
		_, recorded := recorder.UpdateTableTypeMapArgsForCall(0)
		assert.Equal(t, "ICEBERG", recorded)
	}
	{
		// Blank or missing table type
		for _, metadata := range []map[string]string{{"table_type": ""}, {"table_type": "   "}, {"owner": "dse"}, {}} {
			recorder := &mocks.FakeTableTypeRecorder{}
			tableType, isOk := tableutil.GetTableType(recorder, models.TableInfo{Name: ordersTable, Metadata: metadata})
			assert.True(t, isOk, metadata)
			assert.Equal(t, tableutil.UnknownTableType, tableType, metadata)

			_, recorded := recorder.UpdateTableTypeMapArgsForCall(0)
			assert.Equal(t, tableutil.UnknownTableType, recorded, metadata)
		}
	}
	{
		// Raw values are kept as is
		recorder := &mocks.FakeTableTypeRecorder{}
		tableType, isOk := tableutil.GetTableType(recorder, models.TableInfo{Name: ordersTable, Metadata: map[string]string{"table_type": "EXTERNAL_TABLE"}})
		assert.True(t, isOk)
		assert.Equal(t, "EXTERNAL_TABLE", tableType)
	}
	{
		// Later calls overwrite earlier ones
		rc := requestcontext.New()
		tableutil.GetTableType(rc, models.TableInfo{Name: ordersTable, Metadata: map[string]string{"table_type": "ICEBERG"}})
		tableutil.GetTableType(rc, models.TableInfo{Name: ordersTable})

		tableType, isOk := rc.TableType(ordersTable)
		assert.True(t, isOk)
		assert.Equal(t, tableutil.UnknownTableType, tableType)
		assert.Len(t, rc.TableTypeMap(), 1)
	}
}

func TestIsIcebergTable(t *testing.T) {
	rc := requestcontext.New()
	assert.True(t, tableutil.IsIcebergTable(rc, models.TableInfo{Name: ordersTable, Metadata: map[string]string{"table_type": "iceberg"}}))
	assert.True(t, tableutil.IsIcebergTable(rc, models.TableInfo{Name: ordersTable, Metadata: map[string]string{"table_type": "ICEBERG"}}))
	assert.False(t, tableutil.IsIcebergTable(rc, models.TableInfo{Name: ordersTable, Metadata: map[string]string{"table_type": "hive"}}))
	assert.False(t, tableutil.IsIcebergTable(rc, models.TableInfo{Name: ordersTable, Metadata: map[string]string{}}))
	assert.False(t, tableutil.IsIcebergTable(rc, models.TableInfo{Name: ordersTable}))

	// Classifying also records the type
	tableType, isOk := rc.TableType(ordersTable)
	assert.True(t, isOk)
	assert.Equal(t, tableutil.UnknownTableType, tableType)
}

func TestIsCommonView(t *testing.T) {
	assert.False(t, tableutil.IsCommonView(models.TableInfo{Name: ordersTable}))
	assert.False(t, tableutil.IsCommonView(models.TableInfo{Name: ordersTable, Metadata: map[string]string{}}))
	assert.False(t, tableutil.IsCommonView(models.TableInfo{Name: ordersTable, Metadata: map[string]string{"common_view": "nope"}}))
	assert.False(t, tableutil.IsCommonView(models.TableInfo{Name: ordersTable, Metadata: map[string]string{"common_view": "1"}}))
	assert.True(t, tableutil.IsCommonView(models.TableInfo{Name: ordersTable, Metadata: map[string]string{"common_view": "true"}}))
	assert.True(t, tableutil.IsCommonView(models.TableInfo{Name: ordersTable, Metadata: map[string]string{"common_view": "TRUE"}}))

	assert.False(t, tableutil.IsCommonViewMetadata(nil))
	assert.True(t, tableutil.IsCommonViewMetadata(map[string]string{"common_view": "True"}))
}

func TestMetadataLocation(t *testing.T) {
	{
		// No metadata
		_, err := tableutil.GetIcebergTableMetadataLocation(models.TableInfo{Name: ordersTable})
		assert.True(t, tableutil.IsMissingMetadataError(err))
		assert.EqualError(t, err, "table prodhive/dse/orders does not have any metadata")

		_, err = tableutil.GetCommonViewMetadataLocation(models.TableInfo{Name: ordersTable})
		assert.True(t, tableutil.IsMissingMetadataError(err))
	}
	{
		// No location
		location, err := tableutil.GetIcebergTableMetadataLocation(models.TableInfo{Name: ordersTable, Metadata: map[string]string{"table_type": "ICEBERG"}})
		assert.NoError(t, err)
		assert.Empty(t, location)
	}
	{
		info := models.TableInfo{
			Name: ordersTable,
			Metadata: map[string]string{
				"table_type":        "ICEBERG",
				"metadata_location": "s3://bucket/orders/metadata/00001.metadata.json",
			},
		}

		location, err := tableutil.GetIcebergTableMetadataLocation(info)
		assert.NoError(t, err)
		assert.Equal(t, "s3://bucket/orders/metadata/00001.metadata.json", location)

		location, err = tableutil.GetCommonViewMetadataLocation(info)
		assert.NoError(t, err)
		assert.Equal(t, "s3://bucket/orders/metadata/00001.metadata.json", location)
	}
}

func TestQualifiedNameToTableIdentifier(t *testing.T) {
	{
		identifier, err := tableutil.QualifiedNameToTableIdentifier(ordersTable)
		assert.NoError(t, err)
		assert.Equal(t, table.Identifier{"prodhive", "dse", "orders"}, identifier)

		expected, err := qualifiedname.ParseTableIdentifier("prodhive.dse.orders")
		assert.NoError(t, err)
		assert.Equal(t, expected, identifier)
	}
	{
		// Empty
		_, err := tableutil.QualifiedNameToTableIdentifier(qualifiedname.QualifiedName{})
		assert.ErrorContains(t, err, "invalid table identifier: empty")
	}
	{
		// NUL in the namespace
		_, err := tableutil.QualifiedNameToTableIdentifier(qualifiedname.OfTable("prod\x00hive", "dse", "orders"))
		assert.ErrorContains(t, err, "cannot contain NUL")
	}
}

func TestRequireNonEmptyMetadata(t *testing.T) {
	{
		var buf bytes.Buffer
		previous := slog.Default()
		slog.SetDefault(slog.New(slog.NewTextHandler(&buf, nil)))
		defer slog.SetDefault(previous)

		err := tableutil.RequireNonEmptyMetadata(ordersTable, nil)
		assert.True(t, tableutil.IsInvalidMetadataError(err))
		assert.EqualError(t, err, "invalid metadata for table: prodhive/dse/orders")
		assert.Contains(t, buf.String(), `msg="No parameters defined for iceberg table" table=prodhive/dse/orders`)
	}
	{
		err := tableutil.RequireNonEmptyMetadata(ordersTable, map[string]string{})
		assert.True(t, tableutil.IsInvalidMetadataError(err))
	}
	{
		assert.NoError(t, tableutil.RequireNonEmptyMetadata(ordersTable, map[string]string{"table_type": "ICEBERG"}))
	}
}
