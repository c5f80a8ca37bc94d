// Package database is the optional run archive. Completed runs and their
// construct vectors are written after the fact and never read back into a
// computation.
package database

import (
	"errors"

	"github.com/expki/go-constructsim/config"
	_ "github.com/expki/go-constructsim/env"
	"github.com/expki/go-constructsim/logger"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// New opens the archive and migrates its schema. Callers should check
// cfg.Enabled() first, an empty database config means no archiving.
func New(cfg config.Database) (db *gorm.DB, err error) {
	// get dialectors from config
	readwrite, readonly := cfg.GetDialectors()
	if len(readwrite) == 0 {
		return nil, errors.New("no writable database configured")
	}

	// open primary database connection
	db, err = gorm.Open(readwrite[0], &gorm.Config{
		SkipDefaultTransaction: true,
		PrepareStmt:            true,
	})
	if err != nil {
		return nil, errors.Join(errors.New("unable to open database"), err)
	}
	err = db.Clauses(dbresolver.Write).AutoMigrate(
		&Run{},
		&ConstructVector{},
	)
	if err != nil {
		return nil, errors.Join(errors.New("unable to migrate database schema"), err)
	}

	// add resolver connections
	if len(readonly)+len(readwrite) > 1 {
		err = db.Use(dbresolver.Register(dbresolver.Config{
			Sources:           readwrite,
			Replicas:          readonly,
			Policy:            dbresolver.StrictRoundRobinPolicy(),
			TraceResolverMode: true,
		}))
		if err != nil {
			logger.Sugar().Errorf("failed to register database resolver: %v", err)
			return nil, err
		}
	}
	return db, nil
}
