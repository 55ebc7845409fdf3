package fold

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cote d'ivoire", Name("Côte d'Ivoire"))
	assert.Equal(t, "aland islands", Name("  Åland\tIslands "))
	assert.Equal(t, "reunion", Name("RÉUNION"))
	assert.Equal(t, "turkiye", Name("Türkiye"))
	assert.Empty(t, Name(" \t"))
	assert.Empty(t, Name(""))
}
