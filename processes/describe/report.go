package describe

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/artie-labs/tablemeta/lib/requestcontext"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type FieldReport struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

type TableReport struct {
	Name             string        `json:"name"`
	Kind             Kind          `json:"kind"`
	TableType        string        `json:"tableType,omitempty"`
	MetadataLocation string        `json:"metadataLocation,omitempty"`
	Identifier       []string      `json:"identifier,omitempty"`
	Fields           []FieldReport `json:"fields,omitempty"`
	Error            string        `json:"error,omitempty"`
}

// Report is the printable outcome of a single [Tables] call.
type Report struct {
	RequestID  string            `json:"requestID"`
	Tables     []TableReport     `json:"tables"`
	TableTypes map[string]string `json:"tableTypes"`
}

func NewReport(rc *requestcontext.RequestContext, results []Result) Report {
	report := Report{
		RequestID:  rc.RequestID().String(),
		Tables:     make([]TableReport, len(results)),
		TableTypes: rc.TableTypeMap(),
	}

	for i, result := range results {
		tableReport := TableReport{
			Name:             result.Name.String(),
			Kind:             result.Kind,
			TableType:        result.TableType,
			MetadataLocation: result.MetadataLocation,
			Identifier:       result.Identifier,
		}

		for _, field := range result.Fields {
			tableReport.Fields = append(tableReport.Fields, FieldReport{Name: field.Name, Type: field.Type.String()})
		}

		if result.Err != nil {
			tableReport.Error = result.Err.Error()
		}

		report.Tables[i] = tableReport
	}

	return report
}

func (r Report) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
