// Package pipeline runs the full comparison: embed survey items, average
// them into construct vectors, build the cosine similarity matrix, align it
// with the empirical reference matrix, and correlate the two off-diagonals.
package pipeline

import (
	"context"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/expki/go-constructsim/ai"
	"github.com/expki/go-constructsim/cache"
	"github.com/expki/go-constructsim/compute"
	"github.com/expki/go-constructsim/config"
	"github.com/expki/go-constructsim/dataset"
	_ "github.com/expki/go-constructsim/env"
	"github.com/expki/go-constructsim/logger"
	"gorm.io/gorm"
)

// New assembles a pipeline. store may be nil to skip archiving and memo may
// be nil to embed without memoization.
func New(cfg config.Config, client ai.AI, store *gorm.DB, memo *cache.Cache) *Pipeline {
	return &Pipeline{
		cfg:   cfg,
		ai:    client,
		db:    store,
		cache: memo,
	}
}

type Pipeline struct {
	cfg   config.Config
	ai    ai.AI
	db    *gorm.DB
	cache *cache.Cache
}

// Input names the two input files plus optional header overrides.
type Input struct {
	ItemsPath        string
	ReferencePath    string
	ItemColumns      dataset.ItemColumns
	ReferenceColumns dataset.ReferenceColumns
}

// Result is one completed comparison.
type Result struct {
	Raw            float64
	Absolute       float64
	EmbedModel     string
	ItemCount      int
	ConstructCount int
	AlignedCount   int
	PairCount      int
	DroppedLabels  []string
}

// Run executes one comparison from files to scores. Every stage consumes its
// predecessor's complete output; any violated precondition aborts the run
// with an error naming the offending entity.
func (p *Pipeline) Run(ctx context.Context, input Input) (result Result, err error) {
	start := time.Now()

	// Load items
	logger.Sugar().Debugf("loading items from %s", input.ItemsPath)
	items, err := dataset.LoadItems(input.ItemsPath, input.ItemColumns)
	if err != nil {
		return result, errors.Join(errors.New("failed to load items"), err)
	}
	result.ItemCount = len(items)

	// Load reference triples before embedding so a malformed reference file
	// fails the run without spending provider time.
	logger.Sugar().Debugf("loading reference correlations from %s", input.ReferencePath)
	triples, err := dataset.LoadReference(input.ReferencePath, input.ReferenceColumns)
	if err != nil {
		return result, errors.Join(errors.New("failed to load reference correlations"), err)
	}

	// Embed item texts
	result.EmbedModel = p.ai.EmbedModel()
	logger.Sugar().Debugf("embedding %d items with model %s", len(items), result.EmbedModel)
	vectors, err := p.embedTexts(ctx, dataset.Texts(items))
	if err == nil {
	} else if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) || errors.Is(err, os.ErrDeadlineExceeded) {
		logger.Sugar().Debugf("run canceled after %dms while embedding", time.Since(start).Milliseconds())
		return result, err
	} else {
		return result, errors.Join(errors.New("failed to embed items"), err)
	}

	// Average item embeddings per construct
	logger.Sugar().Debugf("averaging %d embeddings into construct vectors", len(vectors))
	labeled := make([]compute.LabeledVector, len(items))
	for idx, item := range items {
		labeled[idx] = compute.LabeledVector{Label: item.Construct, Vector: vectors[idx]}
	}
	constructVectors, err := compute.Aggregate(labeled)
	if err != nil {
		return result, err
	}
	result.ConstructCount = len(constructVectors)

	// Build similarity matrix
	logger.Sugar().Debugf("building similarity matrix over %d constructs", len(constructVectors))
	sim, err := compute.BuildSimilarityMatrix(constructVectors)
	if err != nil {
		return result, err
	}

	// Align reference matrix
	logger.Sugar().Debugf("aligning %d reference triples against %d similarity labels", len(triples), sim.Dim())
	simAligned, refAligned, dropped, err := compute.AlignReference(sim, triples)
	if err != nil {
		return result, err
	}
	result.AlignedCount = simAligned.Dim()
	result.DroppedLabels = dropped
	if len(dropped) > 0 {
		logger.Sugar().Warnf("dropped %d constructs present on only one side: %s", len(dropped), strings.Join(dropped, ", "))
	}

	// Extract strict upper triangles
	av, bv, err := compute.UpperTriangles(simAligned, refAligned)
	if err != nil {
		return result, err
	}
	result.PairCount = len(av)

	// Correlate
	logger.Sugar().Debugf("correlating %d aligned construct pairs", len(av))
	score, err := compute.Correlate(av, bv)
	if err != nil {
		return result, err
	}
	result.Raw = score.Raw
	result.Absolute = score.Absolute

	// Archive run
	if p.db != nil {
		logger.Sugar().Debugf("archiving run to database")
		err = p.archive(ctx, result, constructVectors)
		if err != nil {
			return result, err
		}
	}

	logger.Sugar().Infof("run succeeded (%dms): raw=%.4f absolute=%.4f over %d construct pairs", time.Since(start).Milliseconds(), result.Raw, result.Absolute, result.PairCount)
	return result, nil
}
