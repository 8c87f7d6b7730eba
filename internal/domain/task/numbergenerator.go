package task

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// SequentialNumberGenerator produces TSK_<yyyymmdd>_<6-digit-random> (or
// TST_ for test tasks). The unique index on the number column catches the
// rare same-day collision.
type SequentialNumberGenerator struct {
	prefix string
}

func NewTaskNumberGenerator() *SequentialNumberGenerator {
	return &SequentialNumberGenerator{prefix: "TSK"}
}

func NewTestTaskNumberGenerator() *SequentialNumberGenerator {
	return &SequentialNumberGenerator{prefix: "TST"}
}

func (g *SequentialNumberGenerator) Generate(ctx context.Context) (string, error) {
	now := time.Now()
	return fmt.Sprintf("%s_%s_%06d", g.prefix, now.Format("20060102"), rand.IntN(1000000)), nil
}
