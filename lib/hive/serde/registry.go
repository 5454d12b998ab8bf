package serde

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/artie-labs/tablemeta/lib/hive/typeinfo"
)

// Deserializer reads the shape of a table's records out of its schema properties.
type Deserializer interface {
	Initialize(props Properties) error
	// ObjectInspector returns the top-level type of a record, it is only valid after [Initialize] succeeded.
	ObjectInspector() (typeinfo.TypeInfo, error)
}

// Factory builds a fresh, uninitialized deserializer.
type Factory func() (Deserializer, error)

type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	aliases   map[string]string
}

func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[string]Factory),
		aliases:   make(map[string]string),
	}
}

// NewDefaultRegistry returns a registry with every built-in deserializer and the CDH parquet alias.
func NewDefaultRegistry() *Registry {
	registry := NewRegistry()
	for _, name := range columnSerDes {
		registry.Register(name, newColumnDeserializer(name))
	}

	for _, name := range stringColumnSerDes {
		registry.Register(name, newStringColumnDeserializer(name))
	}

	registry.Register(RegexSerDe, newRegexDeserializer)
	registry.Register(AvroSerDe, newAvroDeserializer)
	registry.RegisterAlias(CDHParquetHiveSerDe, ParquetHiveSerDe)
	return registry
}

// Register adds [factory] under [name], replacing whatever was registered before.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
}

// RegisterAlias makes [alias] resolve to the factory registered under [canonical].
func (r *Registry) RegisterAlias(alias, canonical string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = canonical
}

// Names returns every registered identifier, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.factories))
}

func (r *Registry) Aliases() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return maps.Clone(r.aliases)
}

// lookup checks the alias table first, aliased identifiers never fall back to a factory registered under the alias itself.
func (r *Registry) lookup(name string) (Factory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if canonical, isOk := r.aliases[name]; isOk {
		factory, isOk := r.factories[canonical]
		if !isOk {
			return nil, &DeserializerNotFoundError{Name: name, Canonical: canonical}
		}

		slog.Debug("Resolved deserializer through alias", slog.String("alias", name), slog.String("canonical", canonical))
		return factory, nil
	}

	factory, isOk := r.factories[name]
	if !isOk {
		return nil, &DeserializerNotFoundError{Name: name}
	}

	return factory, nil
}

// CreateDeserializer returns a new deserializer for [name].
func (r *Registry) CreateDeserializer(name string) (Deserializer, error) {
	factory, err := r.lookup(name)
	if err != nil {
		return nil, err
	}

	deserializer, err := factory()
	if err != nil {
		return nil, &DeserializerConstructionError{Name: name, Err: err}
	}

	if deserializer == nil {
		return nil, &DeserializerConstructionError{Name: name, Err: fmt.Errorf("factory returned a nil deserializer")}
	}

	return deserializer, nil
}

// GetTableStructFields returns the fields of the table's records in the order they were declared.
// Tables that do not declare [SerializationLib] have no fields.
func (r *Registry) GetTableStructFields(descriptor TableDescriptor) ([]typeinfo.StructField, error) {
	props := descriptor.SchemaProperties()
	name, isOk := props[SerializationLib]
	if !isOk {
		return []typeinfo.StructField{}, nil
	}

	deserializer, err := r.CreateDeserializer(name)
	if err != nil {
		return nil, err
	}

	if err = deserializer.Initialize(props); err != nil {
		return nil, &DeserializerInitializationError{Name: name, Err: err}
	}

	inspector, err := deserializer.ObjectInspector()
	if err != nil {
		return nil, &DeserializerInitializationError{Name: name, Err: err}
	}

	if !inspector.IsStruct() {
		return nil, &UnexpectedCategoryError{Name: name, Category: inspector.Category}
	}

	return inspector.Fields, nil
}

var defaultRegistry = NewDefaultRegistry()

// Default returns the process wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds [factory] to the process wide registry, this is meant to be called from init().
func Register(name string, factory Factory) {
	defaultRegistry.Register(name, factory)
}

func RegisterAlias(alias, canonical string) {
	defaultRegistry.RegisterAlias(alias, canonical)
}

func GetTableStructFields(descriptor TableDescriptor) ([]typeinfo.StructField, error) {
	return defaultRegistry.GetTableStructFields(descriptor)
}
