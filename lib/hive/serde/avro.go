package serde

import (
	"fmt"
	"strings"

	"github.com/hamba/avro/v2"

	"github.com/artie-labs/tablemeta/lib/hive/typeinfo"
	"github.com/artie-labs/tablemeta/lib/typing/decimal"
)

type avroDeserializer struct {
	inspector *typeinfo.TypeInfo
}

func newAvroDeserializer() (Deserializer, error) {
	return &avroDeserializer{}, nil
}

func isAvroSchemaSet(val string) bool {
	return val != "" && !strings.EqualFold(val, avroSchemaNone)
}

func (a *avroDeserializer) Initialize(props Properties) error {
	var inspector typeinfo.TypeInfo
	switch {
	case isAvroSchemaSet(props[AvroSchemaLiteral]):
		// A cache per table, so that named types from one table's schema cannot leak into another's.
		schema, err := avro.ParseWithCache(props[AvroSchemaLiteral], "", &avro.SchemaCache{})
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", AvroSchemaLiteral, err)
		}

		if inspector, err = avroToTypeInfo(schema, make(map[string]bool)); err != nil {
			return err
		}

		if inspector.IsStruct() {
			names := make([]string, len(inspector.Fields))
			types := make([]typeinfo.TypeInfo, len(inspector.Fields))
			for i, field := range inspector.Fields {
				names[i] = strings.ToLower(field.Name)
				types[i] = field.Type
			}

			if inspector, err = structFromColumns(names, types); err != nil {
				return fmt.Errorf("invalid %s: %w", AvroSchemaLiteral, err)
			}
		}
	case isAvroSchemaSet(props[AvroSchemaURL]):
		return fmt.Errorf("%s is not supported, the schema has to be provided through %s", AvroSchemaURL, AvroSchemaLiteral)
	case props[ListColumns] != "":
		names := columnNames(props)
		types, err := columnTypes(props, len(names))
		if err != nil {
			return err
		}

		if inspector, err = structFromColumns(names, types); err != nil {
			return err
		}
	default:
		return fmt.Errorf("neither %s nor %s specified, can't determine table schema", AvroSchemaLiteral, AvroSchemaURL)
	}

	a.inspector = &inspector
	return nil
}

func (a *avroDeserializer) ObjectInspector() (typeinfo.TypeInfo, error) {
	if a.inspector == nil {
		return typeinfo.TypeInfo{}, fmt.Errorf("%s has not been initialized", AvroSerDe)
	}

	return *a.inspector, nil
}

func avroLogicalToTypeInfo(logical avro.LogicalSchema) (typeinfo.TypeInfo, bool, error) {
	if logical == nil {
		return typeinfo.TypeInfo{}, false, nil
	}

	switch logical.Type() {
	case avro.Decimal:
		decimalSchema, isOk := logical.(*avro.DecimalLogicalSchema)
		if !isOk {
			return typeinfo.TypeInfo{}, false, nil
		}

		details := decimal.NewDetails(int32(decimalSchema.Precision()), int32(decimalSchema.Scale()))
		if err := details.Validate(); err != nil {
			return typeinfo.TypeInfo{}, false, err
		}
		return typeinfo.DecimalOf(details), true, nil
	case avro.Date:
		return typeinfo.Date, true, nil
	case avro.TimestampMillis, avro.TimestampMicros:
		return typeinfo.Timestamp, true, nil
	}

	return typeinfo.TypeInfo{}, false, nil
}

// avroToTypeInfo follows the mapping Hive's AvroSerDe uses, nullable unions collapse into their non-null member.
// [visiting] holds the records currently being converted, recursive records cannot be expressed as a Hive type.
func avroToTypeInfo(schema avro.Schema, visiting map[string]bool) (typeinfo.TypeInfo, error) {
	switch s := schema.(type) {
	case *avro.RecordSchema:
		if visiting[s.FullName()] {
			return typeinfo.TypeInfo{}, fmt.Errorf("recursive avro schemas are not supported: %s", s.FullName())
		}
		visiting[s.FullName()] = true
		defer delete(visiting, s.FullName())

		fields := make([]typeinfo.StructField, len(s.Fields()))
		for i, field := range s.Fields() {
			fieldType, err := avroToTypeInfo(field.Type(), visiting)
			if err != nil {
				return typeinfo.TypeInfo{}, fmt.Errorf("failed to convert avro field %q: %w", field.Name(), err)
			}
			fields[i] = typeinfo.NewStructField(field.Name(), fieldType)
		}
		return typeinfo.StructOf(fields...), nil
	case *avro.ArraySchema:
		elem, err := avroToTypeInfo(s.Items(), visiting)
		if err != nil {
			return typeinfo.TypeInfo{}, err
		}
		return typeinfo.ListOf(elem), nil
	case *avro.MapSchema:
		value, err := avroToTypeInfo(s.Values(), visiting)
		if err != nil {
			return typeinfo.TypeInfo{}, err
		}
		return typeinfo.MapOf(typeinfo.String, value), nil
	case *avro.UnionSchema:
		var members []typeinfo.TypeInfo
		for _, member := range s.Types() {
			if member.Type() == avro.Null {
				continue
			}

			memberType, err := avroToTypeInfo(member, visiting)
			if err != nil {
				return typeinfo.TypeInfo{}, err
			}
			members = append(members, memberType)
		}

		switch len(members) {
		case 0:
			return typeinfo.Void, nil
		case 1:
			return members[0], nil
		}
		return typeinfo.UnionOf(members...), nil
	case *avro.EnumSchema:
		return typeinfo.String, nil
	case *avro.FixedSchema:
		typeInfo, isOk, err := avroLogicalToTypeInfo(s.Logical())
		if err != nil {
			return typeinfo.TypeInfo{}, err
		} else if isOk {
			return typeInfo, nil
		}
		return typeinfo.Binary, nil
	case *avro.RefSchema:
		return avroToTypeInfo(s.Schema(), visiting)
	case *avro.PrimitiveSchema:
		typeInfo, isOk, err := avroLogicalToTypeInfo(s.Logical())
		if err != nil {
			return typeinfo.TypeInfo{}, err
		} else if isOk {
			return typeInfo, nil
		}

		switch s.Type() {
		case avro.Null:
			return typeinfo.Void, nil
		case avro.Boolean:
			return typeinfo.Boolean, nil
		case avro.Int:
			return typeinfo.Int, nil
		case avro.Long:
			return typeinfo.BigInt, nil
		case avro.Float:
			return typeinfo.Float, nil
		case avro.Double:
			return typeinfo.Double, nil
		case avro.String:
			return typeinfo.String, nil
		case avro.Bytes:
			return typeinfo.Binary, nil
		}
	}

	return typeinfo.TypeInfo{}, fmt.Errorf("unsupported avro type: %s", schema.Type())
}
