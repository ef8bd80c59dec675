package openai_test

import (
	"context"
	"testing"

	"github.com/fwojciec/uninews"
	"github.com/fwojciec/uninews/openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate_MissingAPIKey(t *testing.T) {
	t.Parallel()

	g := openai.NewGenerator("", "")

	_, err := g.Generate(context.Background(), "instruction", "payload")
	require.Error(t, err)
	assert.Equal(t, uninews.EUNAUTHORIZED, uninews.ErrorCode(err))
	assert.Contains(t, uninews.ErrorMessage(err), "OPENAI_API_KEY")
}
