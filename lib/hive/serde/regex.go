package serde

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/artie-labs/tablemeta/lib/hive/typeinfo"
)

type regexDeserializer struct {
	inspector *typeinfo.TypeInfo
}

func newRegexDeserializer() (Deserializer, error) {
	return &regexDeserializer{}, nil
}

func (r *regexDeserializer) Initialize(props Properties) error {
	input := props[RegexInput]
	if input == "" {
		return fmt.Errorf("table does not have serde property %q", RegexInput)
	}

	if strings.EqualFold(props[RegexCaseInsensitive], "true") {
		input = "(?i)" + input
	}

	pattern, err := regexp.Compile(input)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", RegexInput, err)
	}

	names := columnNames(props)
	types, err := columnTypes(props, len(names))
	if err != nil {
		return err
	}

	inspector, err := structFromColumns(names, types)
	if err != nil {
		return err
	}

	for _, field := range inspector.Fields {
		if field.Type.Category != typeinfo.Primitive || field.Type.TypeName != typeinfo.StringTypeName {
			return fmt.Errorf("%s only allows string columns, column %q is %s", RegexSerDe, field.Name, field.Type.String())
		}
	}

	if pattern.NumSubexp() != len(inspector.Fields) {
		return fmt.Errorf("%s has %d capturing groups but the table has %d columns", RegexInput, pattern.NumSubexp(), len(inspector.Fields))
	}

	r.inspector = &inspector
	return nil
}

func (r *regexDeserializer) ObjectInspector() (typeinfo.TypeInfo, error) {
	if r.inspector == nil {
		return typeinfo.TypeInfo{}, fmt.Errorf("%s has not been initialized", RegexSerDe)
	}

	return *r.inspector, nil
}
