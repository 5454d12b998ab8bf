package serde

import (
	"fmt"
	"strings"

	"github.com/artie-labs/tablemeta/lib/hive/typeinfo"
	"github.com/artie-labs/tablemeta/lib/stringutil"
)

// Deserializers that take their shape from `columns` and `columns.types`.
var columnSerDes = []string{
	LazySimpleSerDe,
	ColumnarSerDe,
	LazyBinaryColumnarSerDe,
	LazyBinarySerDe,
	OrcSerDe,
	ParquetHiveSerDe,
	HCatalogJSONSerDe,
	JSONSerDe,
}

// Deserializers that expose every column as a string.
var stringColumnSerDes = []string{
	OpenCSVSerDe,
	MetadataTypedColumnsetSerDe,
}

// columnNames - Hive lower cases column names.
func columnNames(props Properties) []string {
	names := stringutil.SplitKeepEmpty(props[ListColumns], props.GetOrDefault(ColumnNameDelimiter, defaultColumnNameDelimiter))
	for i, name := range names {
		names[i] = strings.ToLower(name)
	}

	return names
}

// columnTypes parses `columns.types`, every column is a string if it isn't set.
func columnTypes(props Properties, count int) ([]typeinfo.TypeInfo, error) {
	types, isOk := props[ListColumnTypes]
	if !isOk {
		typeInfos := make([]typeinfo.TypeInfo, count)
		for i := range typeInfos {
			typeInfos[i] = typeinfo.String
		}
		return typeInfos, nil
	}

	typeInfos, err := typeinfo.ParseList(types)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", ListColumnTypes, err)
	}

	return typeInfos, nil
}

func structFromColumns(names []string, types []typeinfo.TypeInfo) (typeinfo.TypeInfo, error) {
	if len(names) != len(types) {
		return typeinfo.TypeInfo{}, fmt.Errorf("number of column names and column types differs, columnNames: %v, columnTypes: %v",
			names, types)
	}

	seen := make(map[string]bool, len(names))
	fields := make([]typeinfo.StructField, len(names))
	for i, name := range names {
		if name == "" {
			return typeinfo.TypeInfo{}, fmt.Errorf("column %d has an empty name", i)
		}

		if seen[name] {
			return typeinfo.TypeInfo{}, fmt.Errorf("duplicate column name %q", name)
		}
		seen[name] = true
		fields[i] = typeinfo.NewStructField(name, types[i])
	}

	return typeinfo.StructOf(fields...), nil
}

// columnDeserializer covers the row formats whose shape is exactly what the metastore declares.
type columnDeserializer struct {
	name      string
	inspector *typeinfo.TypeInfo
}

func newColumnDeserializer(name string) Factory {
	return func() (Deserializer, error) {
		return &columnDeserializer{name: name}, nil
	}
}

func (c *columnDeserializer) Initialize(props Properties) error {
	names := columnNames(props)
	types, err := columnTypes(props, len(names))
	if err != nil {
		return err
	}

	inspector, err := structFromColumns(names, types)
	if err != nil {
		return err
	}

	c.inspector = &inspector
	return nil
}

func (c *columnDeserializer) ObjectInspector() (typeinfo.TypeInfo, error) {
	if c.inspector == nil {
		return typeinfo.TypeInfo{}, fmt.Errorf("%s has not been initialized", c.name)
	}

	return *c.inspector, nil
}

// stringColumnDeserializer keeps the declared column names but reads every value as text, like OpenCSVSerde.
type stringColumnDeserializer struct {
	name      string
	inspector *typeinfo.TypeInfo
}

func newStringColumnDeserializer(name string) Factory {
	return func() (Deserializer, error) {
		return &stringColumnDeserializer{name: name}, nil
	}
}

func (s *stringColumnDeserializer) Initialize(props Properties) error {
	names := columnNames(props)
	types := make([]typeinfo.TypeInfo, len(names))
	for i := range types {
		types[i] = typeinfo.String
	}

	inspector, err := structFromColumns(names, types)
	if err != nil {
		return err
	}

	s.inspector = &inspector
	return nil
}

func (s *stringColumnDeserializer) ObjectInspector() (typeinfo.TypeInfo, error) {
	if s.inspector == nil {
		return typeinfo.TypeInfo{}, fmt.Errorf("%s has not been initialized", s.name)
	}

	return *s.inspector, nil
}
