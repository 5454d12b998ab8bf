package serde

import (
	"errors"
	"fmt"

	"github.com/artie-labs/tablemeta/lib/hive/typeinfo"
)

// DeserializerNotFoundError is returned when nothing is registered under the (resolved) identifier.
type DeserializerNotFoundError struct {
	Name string
	// Canonical is set when [Name] was aliased.
	Canonical string
}

func (e *DeserializerNotFoundError) Error() string {
	if e.Canonical != "" {
		return fmt.Sprintf("deserializer does not exist: %s (aliased to %s)", e.Name, e.Canonical)
	}
	return fmt.Sprintf("deserializer does not exist: %s", e.Name)
}

// DeserializerConstructionError is returned when a registered factory fails to build a deserializer.
type DeserializerConstructionError struct {
	Name string
	Err  error
}

func (e *DeserializerConstructionError) Error() string {
	return fmt.Sprintf("error creating deserializer: %s: %v", e.Name, e.Err)
}

func (e *DeserializerConstructionError) Unwrap() error {
	return e.Err
}

// DeserializerInitializationError is returned when a deserializer rejects the table's schema properties.
type DeserializerInitializationError struct {
	Name string
	Err  error
}

func (e *DeserializerInitializationError) Error() string {
	return fmt.Sprintf("error initializing deserializer: %s: %v", e.Name, e.Err)
}

func (e *DeserializerInitializationError) Unwrap() error {
	return e.Err
}

// UnexpectedCategoryError is returned when a deserializer does not describe a struct.
type UnexpectedCategoryError struct {
	Name     string
	Category typeinfo.Category
}

func (e *UnexpectedCategoryError) Error() string {
	return fmt.Sprintf("expected %s from deserializer %s, got: %s", typeinfo.Struct, e.Name, e.Category)
}

// IsDefinitionError returns true if [err] was caused by how the table is defined, these will not go away without
// changing the table.
func IsDefinitionError(err error) bool {
	var notFoundErr *DeserializerNotFoundError
	var constructionErr *DeserializerConstructionError
	var initializationErr *DeserializerInitializationError
	var categoryErr *UnexpectedCategoryError
	return errors.As(err, &notFoundErr) ||
		errors.As(err, &constructionErr) ||
		errors.As(err, &initializationErr) ||
		errors.As(err, &categoryErr)
}
