package qualifiedname

import (
	"fmt"
	"strings"

	"github.com/apache/iceberg-go/catalog"
	"github.com/apache/iceberg-go/table"
	"gopkg.in/yaml.v3"
)

const separator = "/"

// QualifiedName identifies a catalog, a database or a table, e.g. `prodhive/dse/orders`.
type QualifiedName struct {
	catalogName  string
	databaseName string
	tableName    string
}

func OfCatalog(catalogName string) QualifiedName {
	return QualifiedName{catalogName: strings.TrimSpace(catalogName)}
}

func OfDatabase(catalogName, databaseName string) QualifiedName {
	return QualifiedName{
		catalogName:  strings.TrimSpace(catalogName),
		databaseName: strings.TrimSpace(databaseName),
	}
}

func OfTable(catalogName, databaseName, tableName string) QualifiedName {
	return QualifiedName{
		catalogName:  strings.TrimSpace(catalogName),
		databaseName: strings.TrimSpace(databaseName),
		tableName:    strings.TrimSpace(tableName),
	}
}

// FromString parses the `/` separated form produced by [QualifiedName.String].
func FromString(value string) (QualifiedName, error) {
	value = strings.Trim(strings.TrimSpace(value), separator)
	if value == "" {
		return QualifiedName{}, fmt.Errorf("qualified name cannot be empty")
	}

	parts := strings.Split(value, separator)
	for _, part := range parts {
		if strings.TrimSpace(part) == "" {
			return QualifiedName{}, fmt.Errorf("qualified name %q has an empty part", value)
		}
	}

	switch len(parts) {
	case 1:
		return OfCatalog(parts[0]), nil
	case 2:
		return OfDatabase(parts[0], parts[1]), nil
	case 3:
		return OfTable(parts[0], parts[1], parts[2]), nil
	}

	return QualifiedName{}, fmt.Errorf("qualified name %q has too many parts, expected at most 3", value)
}

func (q QualifiedName) CatalogName() string {
	return q.catalogName
}

func (q QualifiedName) DatabaseName() string {
	return q.databaseName
}

func (q QualifiedName) TableName() string {
	return q.tableName
}

func (q QualifiedName) IsTableDefinition() bool {
	return q.tableName != ""
}

func (q QualifiedName) String() string {
	parts := []string{q.catalogName}
	if q.databaseName != "" {
		parts = append(parts, q.databaseName)
	}

	if q.tableName != "" {
		parts = append(parts, q.tableName)
	}

	return strings.Join(parts, separator)
}

func (q QualifiedName) MarshalYAML() (any, error) {
	return q.String(), nil
}

func (q *QualifiedName) UnmarshalYAML(node *yaml.Node) error {
	var value string
	if err := node.Decode(&value); err != nil {
		return err
	}

	parsed, err := FromString(value)
	if err != nil {
		return err
	}

	*q = parsed
	return nil
}

// ToTableIdentifier converts the name into an Iceberg identifier, `catalog/db/table` becomes `[catalog, db, table]`.
func (q QualifiedName) ToTableIdentifier() (table.Identifier, error) {
	return ParseTableIdentifier(strings.ReplaceAll(q.String(), separator, "."))
}

// ParseTableIdentifier parses a dotted Iceberg table identifier, the last part is the table name and everything before it
// is the namespace.
func ParseTableIdentifier(value string) (table.Identifier, error) {
	if value == "" {
		return nil, fmt.Errorf("invalid table identifier: empty")
	}

	ident := catalog.ToIdentifier(value)
	if catalog.TableNameFromIdent(ident) == "" {
		return nil, fmt.Errorf("invalid table name: null or empty in %q", value)
	}

	for _, level := range catalog.NamespaceFromIdent(ident) {
		if strings.Contains(level, "\x00") {
			return nil, fmt.Errorf("invalid namespace level %q: cannot contain NUL", level)
		}
	}

	return ident, nil
}
