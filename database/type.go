package database

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/expki/go-constructsim/compute"
	_ "github.com/expki/go-constructsim/env"
)

// StringSlice is stored as zstd-compressed JSON.
type StringSlice []string

// Scan scan value into StringSlice, implements sql.Scanner interface
func (s *StringSlice) Scan(value any) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal StringSlice value: %+v", value)
	}
	original, err := decompress(bytes)
	if err != nil {
		return fmt.Errorf("failed to decompress StringSlice value: %+v", subSlice(bytes, 10))
	}
	result := []string{}
	err = json.Unmarshal(original, &result)
	*s = StringSlice(result)
	return err
}

// Value return json value, implement driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	raw, err := json.Marshal([]string(s))
	if err != nil {
		return nil, err
	}
	return compress(raw), nil
}

func subSlice[T any](list []T, max int) []T {
	if len(list) > max {
		return list[:max]
	}
	return list
}

// VectorField is stored quantized to one byte per dimension and zstd
// compressed. Quantization is lossy, the archive records what a run produced
// rather than bit-exact inputs for recomputation.
type VectorField []float64

// Scan scan value into VectorField, implements sql.Scanner interface
func (v *VectorField) Scan(value any) error {
	bytes, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("failed to unmarshal VectorField value: %+v", value)
	}
	original, err := decompress(bytes)
	if err != nil {
		return fmt.Errorf("failed to decompress VectorField value: %+v", subSlice(bytes, 10))
	}
	if len(original) < 8 {
		return fmt.Errorf("VectorField value is missing its range header: %d bytes", len(original))
	}
	*v = VectorField(compute.DequantizeVector[float64](original))
	return nil
}

// Value return VectorField value, implement driver.Valuer interface
func (v VectorField) Value() (driver.Value, error) {
	return compress(compute.QuantizeVector([]float64(v))), nil
}
