package ticket

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"
)

type NumberGenerator interface {
	Generate(ctx context.Context) (string, error)
}

// DefaultNumberGenerator produces numbers in the form
// TCK_INC_<d>/<m>/<y>_URG_<6-digit-random>. The random suffix keeps
// collisions within a day around 1e-6, which is acceptable; the unique
// index on the number column catches the rest.
type DefaultNumberGenerator struct{}

func NewDefaultNumberGenerator() *DefaultNumberGenerator {
	return &DefaultNumberGenerator{}
}

func (g *DefaultNumberGenerator) Generate(ctx context.Context) (string, error) {
	now := time.Now()
	suffix := rand.IntN(1000000)
	number := fmt.Sprintf("TCK_INC_%s_URG_%06d", now.Format("02/01/2006"), suffix)
	return number, nil
}
