package typeinfo

import (
	"fmt"
	"strings"

	"github.com/artie-labs/tablemeta/lib/typing/decimal"
)

type Category string

const (
	Primitive Category = "PRIMITIVE"
	List      Category = "LIST"
	Map       Category = "MAP"
	Struct    Category = "STRUCT"
	Union     Category = "UNION"
)

// Primitive type names, as they appear in a Hive type string.
const (
	VoidTypeName              = "void"
	BooleanTypeName           = "boolean"
	TinyIntTypeName           = "tinyint"
	SmallIntTypeName          = "smallint"
	IntTypeName               = "int"
	BigIntTypeName            = "bigint"
	FloatTypeName             = "float"
	DoubleTypeName            = "double"
	StringTypeName            = "string"
	CharTypeName              = "char"
	VarcharTypeName           = "varchar"
	BinaryTypeName            = "binary"
	DateTypeName              = "date"
	TimestampTypeName         = "timestamp"
	DecimalTypeName           = "decimal"
	IntervalYearMonthTypeName = "interval_year_month"
	IntervalDayTimeTypeName   = "interval_day_time"

	ListTypeName   = "array"
	MapTypeName    = "map"
	StructTypeName = "struct"
	UnionTypeName  = "uniontype"
)

const (
	MaxCharLength    = 255
	MaxVarcharLength = 65535
)

// TypeInfo describes a Hive type. Which of the fields are set depends on [Category].
type TypeInfo struct {
	Category Category
	// TypeName is only set for primitives.
	TypeName string
	// Decimal is only set for decimals.
	Decimal *decimal.Details
	// Length is only set for char and varchar.
	Length int

	Elem    *TypeInfo
	Key     *TypeInfo
	Value   *TypeInfo
	Fields  []StructField
	Members []TypeInfo
}

type StructField struct {
	Name    string
	Type    TypeInfo
	Ordinal int
}

func (s StructField) String() string {
	return fmt.Sprintf("%s:%s", s.Name, s.Type.String())
}

var (
	Void              = PrimitiveOf(VoidTypeName)
	Boolean           = PrimitiveOf(BooleanTypeName)
	TinyInt           = PrimitiveOf(TinyIntTypeName)
	SmallInt          = PrimitiveOf(SmallIntTypeName)
	Int               = PrimitiveOf(IntTypeName)
	BigInt            = PrimitiveOf(BigIntTypeName)
	Float             = PrimitiveOf(FloatTypeName)
	Double            = PrimitiveOf(DoubleTypeName)
	String            = PrimitiveOf(StringTypeName)
	Binary            = PrimitiveOf(BinaryTypeName)
	Date              = PrimitiveOf(DateTypeName)
	Timestamp         = PrimitiveOf(TimestampTypeName)
	IntervalYearMonth = PrimitiveOf(IntervalYearMonthTypeName)
	IntervalDayTime   = PrimitiveOf(IntervalDayTimeTypeName)
)

func PrimitiveOf(typeName string) TypeInfo {
	return TypeInfo{Category: Primitive, TypeName: typeName}
}

func DecimalOf(details decimal.Details) TypeInfo {
	return TypeInfo{Category: Primitive, TypeName: DecimalTypeName, Decimal: &details}
}

func CharOf(length int) TypeInfo {
	return TypeInfo{Category: Primitive, TypeName: CharTypeName, Length: length}
}

func VarcharOf(length int) TypeInfo {
	return TypeInfo{Category: Primitive, TypeName: VarcharTypeName, Length: length}
}

func ListOf(elem TypeInfo) TypeInfo {
	return TypeInfo{Category: List, Elem: &elem}
}

func MapOf(key, value TypeInfo) TypeInfo {
	return TypeInfo{Category: Map, Key: &key, Value: &value}
}

// StructOf builds a struct out of [fields], ordinals are reassigned to match the order they were passed in.
func StructOf(fields ...StructField) TypeInfo {
	out := make([]StructField, len(fields))
	for i, field := range fields {
		field.Ordinal = i
		out[i] = field
	}

	return TypeInfo{Category: Struct, Fields: out}
}

func UnionOf(members ...TypeInfo) TypeInfo {
	return TypeInfo{Category: Union, Members: members}
}

func NewStructField(name string, typeInfo TypeInfo) StructField {
	return StructField{Name: name, Type: typeInfo}
}

func (t TypeInfo) IsStruct() bool {
	return t.Category == Struct
}

// String returns the Hive type string, e.g. `map<string,array<int>>`.
func (t TypeInfo) String() string {
	switch t.Category {
	case Primitive:
		switch t.TypeName {
		case DecimalTypeName:
			if t.Decimal == nil {
				return decimal.DefaultDetails().HiveKind()
			}
			return t.Decimal.HiveKind()
		case CharTypeName, VarcharTypeName:
			return fmt.Sprintf("%s(%d)", t.TypeName, t.Length)
		}
		return t.TypeName
	case List:
		return fmt.Sprintf("%s<%s>", ListTypeName, t.Elem.String())
	case Map:
		return fmt.Sprintf("%s<%s,%s>", MapTypeName, t.Key.String(), t.Value.String())
	case Struct:
		parts := make([]string, len(t.Fields))
		for i, field := range t.Fields {
			parts[i] = field.String()
		}
		return fmt.Sprintf("%s<%s>", StructTypeName, strings.Join(parts, ","))
	case Union:
		parts := make([]string, len(t.Members))
		for i, member := range t.Members {
			parts[i] = member.String()
		}
		return fmt.Sprintf("%s<%s>", UnionTypeName, strings.Join(parts, ","))
	}

	return "unknown"
}
