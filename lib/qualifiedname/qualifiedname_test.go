package qualifiedname

import (
	"testing"

	"github.com/apache/iceberg-go/table"
	"github.com/stretchr/testify/assert"
	"gopkg.in/yaml.v3"
)

func TestFromString(t *testing.T) {
	{
		// Table
		name, err := FromString("prodhive/dse/orders")
		assert.NoError(t, err)
		assert.Equal(t, OfTable("prodhive", "dse", "orders"), name)
		assert.Equal(t, "prodhive", name.CatalogName())
		assert.Equal(t, "dse", name.DatabaseName())
		assert.Equal(t, "orders", name.TableName())
		assert.True(t, name.IsTableDefinition())
		assert.Equal(t, "prodhive/dse/orders", name.String())
	}
	{
		// Database
		name, err := FromString(" prodhive/dse/ ")
		assert.NoError(t, err)
		assert.Equal(t, OfDatabase("prodhive", "dse"), name)
		assert.False(t, name.IsTableDefinition())
		assert.Equal(t, "prodhive/dse", name.String())
	}
	{
		// Catalog
		name, err := FromString("prodhive")
		assert.NoError(t, err)
		assert.Equal(t, OfCatalog("prodhive"), name)
		assert.Equal(t, "prodhive", name.String())
	}
	{
		// Errors
		_, err := FromString(" ")
		assert.ErrorContains(t, err, "qualified name cannot be empty")

		_, err = FromString("a//c")
		assert.ErrorContains(t, err, `qualified name "a//c" has an empty part`)

		_, err = FromString("a/b/c/d")
		assert.ErrorContains(t, err, `qualified name "a/b/c/d" has too many parts, expected at most 3`)
	}
}

func TestParseTableIdentifier(t *testing.T) {
	{
		ident, err := ParseTableIdentifier("catalog.schema.table")
		assert.NoError(t, err)
		assert.Equal(t, table.Identifier{"catalog", "schema", "table"}, ident)
	}
	{
		// Single level
		ident, err := ParseTableIdentifier("orders")
		assert.NoError(t, err)
		assert.Equal(t, table.Identifier{"orders"}, ident)
	}
	{
		_, err := ParseTableIdentifier("")
		assert.ErrorContains(t, err, "invalid table identifier: empty")
	}
	{
		_, err := ParseTableIdentifier("catalog.schema.")
		assert.ErrorContains(t, err, `invalid table name: null or empty in "catalog.schema."`)
	}
	{
		_, err := ParseTableIdentifier("cat\x00alog.schema.table")
		assert.ErrorContains(t, err, "cannot contain NUL")
	}
}

func TestQualifiedName_ToTableIdentifier(t *testing.T) {
	{
		ident, err := OfTable("catalog", "schema", "table").ToTableIdentifier()
		assert.NoError(t, err)

		expected, err := ParseTableIdentifier("catalog.schema.table")
		assert.NoError(t, err)
		assert.Equal(t, expected, ident)
	}
	{
		ident, err := OfDatabase("catalog", "schema").ToTableIdentifier()
		assert.NoError(t, err)
		assert.Equal(t, table.Identifier{"catalog", "schema"}, ident)
	}
	{
		_, err := QualifiedName{}.ToTableIdentifier()
		assert.ErrorContains(t, err, "invalid table identifier: empty")
	}
}

func TestQualifiedName_YAML(t *testing.T) {
	{
		var out struct {
			Name QualifiedName `yaml:"name"`
		}
		assert.NoError(t, yaml.Unmarshal([]byte("name: prodhive/dse/orders"), &out))
		assert.Equal(t, OfTable("prodhive", "dse", "orders"), out.Name)

		bytes, err := yaml.Marshal(out)
		assert.NoError(t, err)
		assert.Equal(t, "name: prodhive/dse/orders\n", string(bytes))
	}
	{
		var out struct {
			Name QualifiedName `yaml:"name"`
		}
		assert.ErrorContains(t, yaml.Unmarshal([]byte("name: a/b/c/d"), &out), "has too many parts")
	}
}
