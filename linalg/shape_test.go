package linalg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShape(t *testing.T) {
	s := Shape{Rows: 2, Cols: 3}
	assert.Equal(t, 6, s.Size())
	assert.Equal(t, Shape{Rows: 3, Cols: 2}, s.T())
	assert.Equal(t, s, s.T().T())
	assert.Equal(t, "2×3", s.String())
	assert.False(t, s.IsVector())
	assert.True(t, Shape{Rows: 1, Cols: 4}.IsVector())
	assert.True(t, Shape{Rows: 4, Cols: 1}.IsVector())
}

func TestCategoryNames(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range Categories() {
		name := c.String()
		assert.NotEqual(t, "unknown", name)
		assert.False(t, seen[name], "duplicate name %q", name)
		seen[name] = true
		assert.Equal(t, c != CategoryNormal, c.Specialized())
	}
	assert.Len(t, Categories(), 16)
	assert.Equal(t, "unknown", Category(99).String())
}

func TestOpAndKindNames(t *testing.T) {
	assert.Equal(t, "=", OpAssign.String())
	assert.Equal(t, "+=", OpAdd.String())
	assert.Equal(t, "-=", OpSub.String())
	assert.Equal(t, "*=", OpMul.String())
	assert.Equal(t, "/=", OpDiv.String())
	assert.Equal(t, "Op(9)", Op(9).String())
	assert.Equal(t, "vector", VectorKind.String())
	assert.Equal(t, "matrix", MatrixKind.String())
}

func TestEvalOptions(t *testing.T) {
	cfg := ApplyEvalOptions()
	assert.Equal(t, DefaultEvalConfig(), cfg)

	cfg = ApplyEvalOptions(nil, WithGenericPath(), WithNoAlias())
	assert.True(t, cfg.GenericPath)
	assert.True(t, cfg.NoAlias)
}
