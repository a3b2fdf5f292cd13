package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_SquareHasFourVertices(t *testing.T) {
	mp, err := loadFile("testdata/square.yaml")
	require.NoError(t, err)
	require.Len(t, mp.Polygons, 1)
	assert.Len(t, mp.Polygons[0].Exterior, 4)
	assert.Empty(t, mp.Polygons[0].Holes)
}

func TestLoadFile_SquareWithHoleParsesBothRings(t *testing.T) {
	mp, err := loadFile("testdata/square_with_hole.yaml")
	require.NoError(t, err)
	require.Len(t, mp.Polygons, 1)
	assert.Len(t, mp.Polygons[0].Exterior, 4)
	require.Len(t, mp.Polygons[0].Holes, 1)
	assert.Len(t, mp.Polygons[0].Holes[0], 4)
}

func TestLoadFile_MissingFile_ReturnsError(t *testing.T) {
	_, err := loadFile("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}
