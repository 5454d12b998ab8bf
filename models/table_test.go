package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/artie-labs/tablemeta/lib/hive/serde"
	"github.com/artie-labs/tablemeta/lib/qualifiedname"
)

func TestTable_SchemaProperties(t *testing.T) {
	{
		// Full table
		tbl := Table{
			Name:       qualifiedname.OfTable("prodhive", "dse", "orders"),
			Parameters: map[string]string{"owner": "dse", "shared": "table"},
			StorageDescriptor: StorageDescriptor{
				Location:     "s3://bucket/orders",
				InputFormat:  "org.apache.hadoop.mapred.TextInputFormat",
				OutputFormat: "org.apache.hadoop.hive.ql.io.HiveIgnoreKeyTextOutputFormat",
				BucketCount:  -1,
				SerDe: SerDeInfo{
					SerializationLib: serde.LazySimpleSerDe,
					Parameters:       map[string]string{"field.delim": ",", "shared": "serde"},
				},
				Columns: []Column{
					{Name: "id", Type: "int", Comment: "primary key"},
					{Name: "name", Type: "string"},
					{Name: "amount", Type: "decimal(10,2)"},
				},
			},
			PartitionKeys: []Column{{Name: "ds", Type: "string"}, {Name: "hr", Type: "int"}},
		}

		assert.Equal(t, serde.Properties{
			"field.delim":                  ",",
			"owner":                        "dse",
			"shared":                       "table",
			serde.FileInputFormat:          "org.apache.hadoop.mapred.TextInputFormat",
			serde.FileOutputFormat:         "org.apache.hadoop.hive.ql.io.HiveIgnoreKeyTextOutputFormat",
			serde.MetaTableLocation:        "s3://bucket/orders",
			serde.BucketCount:              "-1",
			serde.MetaTableName:            "dse.orders",
			serde.ListColumns:              "id,name,amount",
			serde.ListColumnTypes:          "int:string:decimal(10,2)",
			serde.ListColumnComments:       "primary key\x00\x00",
			serde.ListPartitionColumns:     "ds/hr",
			serde.ListPartitionColumnTypes: "string:int",
			serde.SerializationLib:         serde.LazySimpleSerDe,
		}, tbl.SchemaProperties())

		fields, err := serde.GetTableStructFields(tbl)
		assert.NoError(t, err)
		require.Len(t, fields, 3)
		assert.Equal(t, "id", fields[0].Name)
		assert.Equal(t, "amount", fields[2].Name)
		assert.Equal(t, "decimal(10,2)", fields[2].Type.String())
	}
	{
		// No serialization lib, no partitions
		tbl := Table{Name: qualifiedname.OfTable("prodhive", "dse", "views")}
		props := tbl.SchemaProperties()
		assert.NotContains(t, props, serde.SerializationLib)
		assert.NotContains(t, props, serde.ListPartitionColumns)
		assert.Equal(t, "", props[serde.ListColumns])

		fields, err := serde.GetTableStructFields(tbl)
		assert.NoError(t, err)
		assert.Empty(t, fields)
	}
	{
		// Custom column name delimiter
		tbl := Table{
			Name: qualifiedname.OfTable("prodhive", "dse", "events"),
			StorageDescriptor: StorageDescriptor{
				SerDe: SerDeInfo{
					SerializationLib: serde.ParquetHiveSerDe,
					Parameters:       map[string]string{serde.ColumnNameDelimiter: ";"},
				},
				Columns: []Column{{Name: "a,b", Type: "int"}, {Name: "c", Type: "bigint"}},
			},
		}

		assert.Equal(t, "a,b;c", tbl.SchemaProperties()[serde.ListColumns])
		fields, err := serde.GetTableStructFields(tbl)
		assert.NoError(t, err)
		require.Len(t, fields, 2)
		assert.Equal(t, "a,b", fields[0].Name)
	}
	{
		// Table parameters are applied last and override everything else
		tbl := Table{
			Name: qualifiedname.OfTable("prodhive", "dse", "overrides"),
			Parameters: map[string]string{
				serde.MetaTableLocation: "s3://bucket/override",
				serde.ListColumnTypes:   "bigint",
				serde.SerializationLib:  serde.OrcSerDe,
			},
			StorageDescriptor: StorageDescriptor{
				Location: "s3://bucket/orders",
				SerDe:    SerDeInfo{SerializationLib: serde.LazySimpleSerDe},
				Columns:  []Column{{Name: "id", Type: "int"}},
			},
		}

		props := tbl.SchemaProperties()
		assert.Equal(t, "s3://bucket/override", props[serde.MetaTableLocation])
		assert.Equal(t, "bigint", props[serde.ListColumnTypes])
		assert.Equal(t, serde.OrcSerDe, props[serde.SerializationLib])

		fields, err := serde.GetTableStructFields(tbl)
		assert.NoError(t, err)
		require.Len(t, fields, 1)
		assert.Equal(t, "bigint", fields[0].Type.String())
	}
	{
		// The column name delimiter only comes from the serde parameters
		tbl := Table{
			Name:       qualifiedname.OfTable("prodhive", "dse", "events"),
			Parameters: map[string]string{serde.ColumnNameDelimiter: ";"},
			StorageDescriptor: StorageDescriptor{
				Columns: []Column{{Name: "a", Type: "int"}, {Name: "b", Type: "int"}},
			},
		}

		assert.Equal(t, "a,b", tbl.SchemaProperties()[serde.ListColumns])
	}
}

func TestTable_TableInfo(t *testing.T) {
	name := qualifiedname.OfTable("prodhive", "dse", "orders")
	{
		info := Table{Name: name}.TableInfo()
		assert.Equal(t, name, info.Name)
		assert.Nil(t, info.Metadata)
	}
	{
		info := Table{Name: name, Parameters: map[string]string{"table_type": "ICEBERG"}}.TableInfo()
		assert.Equal(t, map[string]string{"table_type": "ICEBERG"}, info.Metadata)
	}
}

func TestTable_YAML(t *testing.T) {
	var tables []Table
	err := yaml.Unmarshal([]byte(`
- name: prodhive/dse/orders
  parameters:
    table_type: hive
  storageDescriptor:
    location: s3://bucket/orders
    bucketCount: 4
    serde:
      serializationLib: org.apache.hadoop.hive.ql.io.orc.OrcSerde
    columns:
      - name: id
        type: bigint
  partitionKeys:
    - name: ds
      type: string
- name: prodhive/dse/snapshots
`), &tables)
	assert.NoError(t, err)
	require.Len(t, tables, 2)

	assert.Equal(t, qualifiedname.OfTable("prodhive", "dse", "orders"), tables[0].Name)
	assert.Equal(t, "hive", tables[0].Parameters["table_type"])
	assert.Equal(t, 4, tables[0].StorageDescriptor.BucketCount)
	assert.Equal(t, serde.OrcSerDe, tables[0].StorageDescriptor.SerDe.SerializationLib)
	assert.Equal(t, []Column{{Name: "id", Type: "bigint"}}, tables[0].StorageDescriptor.Columns)
	assert.Equal(t, []Column{{Name: "ds", Type: "string"}}, tables[0].PartitionKeys)
	assert.Nil(t, tables[1].Parameters)
}
