package describe

import (
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artie-labs/tablemeta/lib/requestcontext"
	"github.com/artie-labs/tablemeta/models"
)

func (d *DescribeTestSuite) TestNewReport() {
	rc := requestcontext.New()
	ctx := requestcontext.InjectIntoContext(d.ctx, rc)

	missing := models.Table{
		Name:              d.viewTable.Name,
		StorageDescriptor: models.StorageDescriptor{SerDe: models.SerDeInfo{SerializationLib: "com.example.Missing"}},
	}

	results, _ := Tables(ctx, d.registry, []models.Table{d.ordersTable, d.snapshotTable, missing})
	report := NewReport(rc, results)

	assert.Equal(d.T(), rc.RequestID().String(), report.RequestID)
	require.Len(d.T(), report.Tables, 3)
	assert.Equal(d.T(), TableReport{
		Name:      "prodhive/dse/orders",
		Kind:      KindTable,
		TableType: "unknown",
		Fields: []FieldReport{
			{Name: "id", Type: "int"},
			{Name: "name", Type: "string"},
			{Name: "amount", Type: "decimal(10,0)"},
		},
	}, report.Tables[0])
	assert.Equal(d.T(), TableReport{
		Name:             "prodhive/dse/snapshots",
		Kind:             KindIceberg,
		TableType:        "iceberg",
		MetadataLocation: "s3://bucket/snapshots/metadata/00001.metadata.json",
		Identifier:       []string{"prodhive", "dse", "snapshots"},
	}, report.Tables[1])
	assert.Equal(d.T(), "deserializer does not exist: com.example.Missing", report.Tables[2].Error)
	assert.Equal(d.T(), map[string]string{
		"prodhive/dse/orders":       "unknown",
		"prodhive/dse/snapshots":    "iceberg",
		"prodhive/dse/daily_orders": "unknown",
	}, report.TableTypes)

	bytes, err := report.JSON()
	assert.NoError(d.T(), err)
	assert.Contains(d.T(), string(bytes), fmt.Sprintf(`"requestID": "%s"`, rc.RequestID().String()))
	assert.Contains(d.T(), string(bytes), `"metadataLocation": "s3://bucket/snapshots/metadata/00001.metadata.json"`)
	assert.NotContains(d.T(), string(bytes), `"error": ""`)
}
