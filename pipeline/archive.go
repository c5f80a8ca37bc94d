package pipeline

import (
	"context"
	"errors"
	"os"
	"sort"

	"github.com/expki/go-constructsim/database"
	_ "github.com/expki/go-constructsim/env"
	"gorm.io/plugin/dbresolver"
)

// archive records the finished run and its construct vectors.
func (p *Pipeline) archive(ctx context.Context, result Result, vectors map[string][]float64) error {
	labels := make([]string, 0, len(vectors))
	for label := range vectors {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	run := database.Run{
		EmbedModel:     result.EmbedModel,
		ItemCount:      result.ItemCount,
		ConstructCount: result.ConstructCount,
		AlignedCount:   result.AlignedCount,
		DroppedLabels:  database.StringSlice(result.DroppedLabels),
		RawScore:       result.Raw,
		AbsoluteScore:  result.Absolute,
		Vectors:        make([]database.ConstructVector, 0, len(vectors)),
	}
	for _, label := range labels {
		run.Vectors = append(run.Vectors, database.ConstructVector{
			Label:  label,
			Vector: database.VectorField(vectors[label]),
		})
	}

	tx := p.db.Clauses(dbresolver.Write).WithContext(ctx).Create(&run)
	if tx.Error == nil {
	} else if errors.Is(tx.Error, context.Canceled) || errors.Is(tx.Error, context.DeadlineExceeded) || errors.Is(tx.Error, os.ErrDeadlineExceeded) {
		return tx.Error
	} else {
		return errors.Join(errors.New("failed to archive run"), tx.Error)
	}
	return nil
}
