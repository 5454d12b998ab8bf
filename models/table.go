package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/artie-labs/tablemeta/lib/hive/serde"
	"github.com/artie-labs/tablemeta/lib/qualifiedname"
)

// TableInfo is what the classifier needs to know about a table. A nil [Metadata] means the table has no metadata.
type TableInfo struct {
	Name     qualifiedname.QualifiedName
	Metadata map[string]string
}

type Column struct {
	Name    string `yaml:"name"`
	Type    string `yaml:"type"`
	Comment string `yaml:"comment"`
}

type SerDeInfo struct {
	// SerializationLib is optional, tables without one have no derivable schema.
	SerializationLib string            `yaml:"serializationLib"`
	Parameters       map[string]string `yaml:"parameters"`
}

type StorageDescriptor struct {
	Location     string    `yaml:"location"`
	InputFormat  string    `yaml:"inputFormat"`
	OutputFormat string    `yaml:"outputFormat"`
	BucketCount  int       `yaml:"bucketCount"`
	SerDe        SerDeInfo `yaml:"serde"`
	Columns      []Column  `yaml:"columns"`
}

// Table is a Hive metastore table record.
type Table struct {
	Name              qualifiedname.QualifiedName `yaml:"name"`
	Parameters        map[string]string           `yaml:"parameters"`
	StorageDescriptor StorageDescriptor           `yaml:"storageDescriptor"`
	PartitionKeys     []Column                    `yaml:"partitionKeys"`
}

func (t Table) TableInfo() TableInfo {
	return TableInfo{Name: t.Name, Metadata: t.Parameters}
}

// SchemaProperties builds the property bag a deserializer is initialized with, the same way the metastore derives it
// from a table: serde parameters, then the storage descriptor and columns, then table parameters which override both.
func (t Table) SchemaProperties() serde.Properties {
	props := make(serde.Properties)
	for key, value := range t.StorageDescriptor.SerDe.Parameters {
		props[key] = value
	}

	sd := t.StorageDescriptor
	props[serde.FileInputFormat] = sd.InputFormat
	props[serde.FileOutputFormat] = sd.OutputFormat
	props[serde.MetaTableLocation] = sd.Location
	props[serde.BucketCount] = strconv.Itoa(sd.BucketCount)
	props[serde.MetaTableName] = fmt.Sprintf("%s.%s", t.Name.DatabaseName(), t.Name.TableName())

	names, types, comments := splitColumns(sd.Columns)
	props[serde.ListColumns] = strings.Join(names, props.GetOrDefault(serde.ColumnNameDelimiter, ","))
	props[serde.ListColumnTypes] = strings.Join(types, serde.ColumnTypesDelimiter)
	props[serde.ListColumnComments] = strings.Join(comments, serde.ColumnCommentsDelimiter)

	if len(t.PartitionKeys) > 0 {
		partitionNames, partitionTypes, _ := splitColumns(t.PartitionKeys)
		props[serde.ListPartitionColumns] = strings.Join(partitionNames, serde.PartitionColumnsDelimiter)
		props[serde.ListPartitionColumnTypes] = strings.Join(partitionTypes, serde.ColumnTypesDelimiter)
	}

	if sd.SerDe.SerializationLib != "" {
		props[serde.SerializationLib] = sd.SerDe.SerializationLib
	}

	for key, value := range t.Parameters {
		props[key] = value
	}

	return props
}

func splitColumns(columns []Column) ([]string, []string, []string) {
	names := make([]string, len(columns))
	types := make([]string, len(columns))
	comments := make([]string, len(columns))
	for i, column := range columns {
		names[i] = column.Name
		types[i] = column.Type
		comments[i] = column.Comment
	}

	return names, types, comments
}
