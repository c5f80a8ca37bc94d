package config

import (
	"encoding/json"

	_ "github.com/expki/go-constructsim/env"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Database configures the optional run archive. Sqlite wins when both
// backends are set; read-only DSNs apply to postgres only.
type Database struct {
	Sqlite           string                `json:"sqlite"`
	Postgres         SingleOrSlice[string] `json:"postgres"`
	PostgresReadOnly SingleOrSlice[string] `json:"postgres_readonly"`
}

// Enabled reports whether any archive backend is configured.
func (c Database) Enabled() bool {
	return c.Sqlite != "" || len(c.Postgres) > 0
}

func (c Database) GetDialectors() (readwrite, readonly []gorm.Dialector) {
	if c.Sqlite != "" {
		return []gorm.Dialector{sqlite.Open(c.Sqlite)}, nil
	}
	readwrite = make([]gorm.Dialector, 0, len(c.Postgres))
	for _, dsn := range c.Postgres {
		readwrite = append(readwrite, postgres.Open(dsn))
	}
	readonly = make([]gorm.Dialector, 0, len(c.PostgresReadOnly))
	for _, dsn := range c.PostgresReadOnly {
		readonly = append(readonly, postgres.Open(dsn))
	}
	return readwrite, readonly
}

// SingleOrSlice is a configuration field that accepts either a bare value
// or a list of values.
type SingleOrSlice[T any] []T

func (s *SingleOrSlice[T]) UnmarshalJSON(data []byte) error {
	var slice []T
	if err := json.Unmarshal(data, &slice); err == nil {
		*s = slice
		return nil
	}
	var single T
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	*s = SingleOrSlice[T]{single}
	return nil
}

// MarshalJSON collapses a one-element slice back to its bare form.
func (s SingleOrSlice[T]) MarshalJSON() ([]byte, error) {
	if len(s) == 1 {
		return json.Marshal(s[0])
	}
	return json.Marshal([]T(s))
}
