package serde

// Properties is the flattened schema of a table that a deserializer is initialized with.
type Properties map[string]string

// TableDescriptor is anything that can produce the schema properties of a table.
type TableDescriptor interface {
	SchemaProperties() Properties
}

func (p Properties) SchemaProperties() Properties {
	return p
}

// GetOrDefault returns [defaultValue] when [key] is missing or empty.
func (p Properties) GetOrDefault(key, defaultValue string) string {
	if val := p[key]; val != "" {
		return val
	}

	return defaultValue
}
