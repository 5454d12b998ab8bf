package tableutil

import (
	"errors"
	"fmt"

	"github.com/artie-labs/tablemeta/lib/qualifiedname"
)

// InvalidMetadataError is returned when a table that has to be fully described carries no metadata.
type InvalidMetadataError struct {
	TableName qualifiedname.QualifiedName
}

func (i *InvalidMetadataError) Error() string {
	return fmt.Sprintf("invalid metadata for table: %s", i.TableName.String())
}

func IsInvalidMetadataError(err error) bool {
	var invalidMetadataErr *InvalidMetadataError
	return errors.As(err, &invalidMetadataErr)
}

// MissingMetadataError is returned by accessors that read metadata which was never attached to the table.
type MissingMetadataError struct {
	TableName qualifiedname.QualifiedName
}

func (m *MissingMetadataError) Error() string {
	return fmt.Sprintf("table %s does not have any metadata", m.TableName.String())
}

func IsMissingMetadataError(err error) bool {
	var missingMetadataErr *MissingMetadataError
	return errors.As(err, &missingMetadataErr)
}
