// Package mockdata produces the fixed record set shown by the table.
package mockdata

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/gophdash/internal/models"
)

// DefaultCount is the number of records generated at startup.
const DefaultCount = 100

const maxAgeDays = 365

type options struct {
	rnd *rand.Rand
	now func() time.Time
}

type Option func(*options)

// WithRand makes generation reproducible.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rnd = r }
}

// WithSeed is WithRand over a PCG source seeded with seed.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithNow fixes the clock createdAt dates are counted back from.
func WithNow(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// Generate returns count records with ids ITEM-0001..ITEM-<count>.
// Category, status, value and the createdAt offset are random; ids and
// names never depend on the random source. count <= 0 yields an empty slice.
func Generate(count int, opts ...Option) []models.Record {
	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rnd == nil {
		o.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	if count <= 0 {
		return []models.Record{}
	}

	now := o.now().UTC()
	records := make([]models.Record, count)
	for i := range records {
		seq := fmt.Sprintf("%04d", i+1)
		offset := o.rnd.IntN(maxAgeDays)

		records[i] = models.Record{
			ID:        "ITEM-" + seq,
			Name:      "Item " + seq,
			Category:  models.Categories[o.rnd.IntN(len(models.Categories))],
			Value:     float64(o.rnd.IntN(10000)) / 100,
			Status:    models.Statuses[o.rnd.IntN(len(models.Statuses))],
			CreatedAt: now.AddDate(0, 0, -offset).Format(models.DateLayout),
		}
	}
	return records
}
