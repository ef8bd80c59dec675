package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MissingAPIKey(t *testing.T) {
	t.Parallel()

	g := gemini.NewGenerator("", "")

	_, err := g.Generate(context.Background(), "instruction", "payload")
	require.Error(t, err)
	assert.Equal(t, uninews.EUNAUTHORIZED, uninews.ErrorCode(err))
	assert.Contains(t, uninews.ErrorMessage(err), "GEMINI_API_KEY")
}
