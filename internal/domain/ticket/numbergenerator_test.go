package ticket

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultNumberGenerator_Format(t *testing.T) {
	gen := NewDefaultNumberGenerator()
	pattern := regexp.MustCompile(`^TCK_INC_\d{2}/\d{2}/\d{4}_URG_\d{6}$`)

	for i := 0; i < 10; i++ {
		number, err := gen.Generate(context.Background())
		assert.NoError(t, err)
		assert.Regexp(t, pattern, number)
	}
}
