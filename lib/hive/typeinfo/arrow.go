package typeinfo

import (
	"fmt"
	"strconv"

	"github.com/apache/arrow-go/v18/arrow"
)

// maxUnionMembers is bounded by [arrow.UnionTypeCode] being an int8.
const maxUnionMembers = 127

func primitiveToArrow(t TypeInfo) (arrow.DataType, error) {
	switch t.TypeName {
	case VoidTypeName:
		return arrow.Null, nil
	case BooleanTypeName:
		return arrow.FixedWidthTypes.Boolean, nil
	case TinyIntTypeName:
		return arrow.PrimitiveTypes.Int8, nil
	case SmallIntTypeName:
		return arrow.PrimitiveTypes.Int16, nil
	case IntTypeName:
		return arrow.PrimitiveTypes.Int32, nil
	case BigIntTypeName:
		return arrow.PrimitiveTypes.Int64, nil
	case FloatTypeName:
		return arrow.PrimitiveTypes.Float32, nil
	case DoubleTypeName:
		return arrow.PrimitiveTypes.Float64, nil
	case StringTypeName, CharTypeName, VarcharTypeName:
		return arrow.BinaryTypes.String, nil
	case BinaryTypeName:
		return arrow.BinaryTypes.Binary, nil
	case DateTypeName:
		return arrow.FixedWidthTypes.Date32, nil
	case TimestampTypeName:
		// Hive timestamps carry nanosecond precision and no time zone.
		return &arrow.TimestampType{Unit: arrow.Nanosecond}, nil
	case IntervalYearMonthTypeName:
		return arrow.FixedWidthTypes.MonthInterval, nil
	case IntervalDayTimeTypeName:
		return arrow.FixedWidthTypes.MonthDayNanoInterval, nil
	case DecimalTypeName:
		if t.Decimal == nil {
			return nil, fmt.Errorf("decimal type is missing its precision and scale")
		}
		return &arrow.Decimal128Type{Precision: t.Decimal.Precision(), Scale: t.Decimal.Scale()}, nil
	}

	return nil, fmt.Errorf("unsupported primitive type: %q", t.TypeName)
}

// ArrowType converts the Hive type into its Arrow equivalent.
func (t TypeInfo) ArrowType() (arrow.DataType, error) {
	switch t.Category {
	case Primitive:
		return primitiveToArrow(t)
	case List:
		elem, err := t.Elem.ArrowType()
		if err != nil {
			return nil, err
		}
		return arrow.ListOf(elem), nil
	case Map:
		key, err := t.Key.ArrowType()
		if err != nil {
			return nil, err
		}

		value, err := t.Value.ArrowType()
		if err != nil {
			return nil, err
		}
		return arrow.MapOf(key, value), nil
	case Struct:
		fields, err := arrowFields(t.Fields)
		if err != nil {
			return nil, err
		}
		return arrow.StructOf(fields...), nil
	case Union:
		if len(t.Members) > maxUnionMembers {
			return nil, fmt.Errorf("uniontype has %d members, at most %d are supported", len(t.Members), maxUnionMembers)
		}

		fields := make([]arrow.Field, len(t.Members))
		codes := make([]arrow.UnionTypeCode, len(t.Members))
		for i, member := range t.Members {
			memberType, err := member.ArrowType()
			if err != nil {
				return nil, err
			}

			fields[i] = arrow.Field{Name: strconv.Itoa(i), Type: memberType, Nullable: true}
			codes[i] = arrow.UnionTypeCode(i)
		}
		return arrow.SparseUnionOf(fields, codes), nil
	}

	return nil, fmt.Errorf("unsupported category: %q", t.Category)
}

func arrowFields(fields []StructField) ([]arrow.Field, error) {
	out := make([]arrow.Field, len(fields))
	for i, field := range fields {
		fieldType, err := field.Type.ArrowType()
		if err != nil {
			return nil, fmt.Errorf("failed to convert field %q: %w", field.Name, err)
		}

		// Hive columns are always nullable.
		out[i] = arrow.Field{Name: field.Name, Type: fieldType, Nullable: true}
	}

	return out, nil
}

// ArrowSchema builds an Arrow schema out of table fields, the field order is preserved.
func ArrowSchema(fields []StructField) (*arrow.Schema, error) {
	converted, err := arrowFields(fields)
	if err != nil {
		return nil, err
	}

	return arrow.NewSchema(converted, nil), nil
}
