package state

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaResource = "schema/state-v2.schema.json"

//go:embed schema/state-v2.schema.json
var schemaFS embed.FS

// ErrInvalidDocument возвращается, когда сохранённый документ не проходит
// разбор или проверку схемы.
var ErrInvalidDocument = errors.New("invalid state document")

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func documentSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		data, err := schemaFS.ReadFile(schemaResource)
		if err != nil {
			schemaErr = fmt.Errorf("read embedded schema: %w", err)
			return
		}
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaResource, bytes.NewReader(data)); err != nil {
			schemaErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaResource)
	})
	return compiledSchema, schemaErr
}

// Validate checks raw JSON against the v2 document schema.
func Validate(data []byte) error {
	schema, err := documentSchema()
	if err != nil {
		return err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var instance any
	if err := dec.Decode(&instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if err := schema.Validate(instance); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return nil
}

// Decode разбирает документ текущей версии: проверка схемы, затем
// декодирование и нормализация пустых коллекций. Итог воды дня
// пересчитывается по журналу порций.
func Decode(data []byte) (*Root, error) {
	if err := Validate(data); err != nil {
		return nil, err
	}
	var root Root
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	root.Normalize()
	if d := root.Day; d != nil {
		d.WaterEvents, d.HydrationMl = waterLog(d.WaterEvents, d.HydrationMl)
	}
	return &root, nil
}

// Encode serializes the document with the current schema version.
func Encode(root *Root) ([]byte, error) {
	if root == nil {
		return nil, fmt.Errorf("%w: nil document", ErrInvalidDocument)
	}
	root.SchemaVersion = SchemaVersion
	root.Normalize()
	data, err := json.Marshal(root)
	if err != nil {
		return nil, fmt.Errorf("encode state: %w", err)
	}
	return data, nil
}
