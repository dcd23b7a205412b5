package features

import (
	"testing"

	"github.com/ChizhovVadim/GoChunks/pkg/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plane(output []float32, planes int, c common.Coord, p int) float32 {
	return output[common.FlattenCoords(c)*planes+p]
}

func TestDefaultFeaturesPlanes(t *testing.T) {
	assert.Equal(t, 13, DefaultFeatures.Planes())
}

func TestEmptyBoard(t *testing.T) {
	var pos = common.NewPosition()
	var planes = DefaultFeatures.Planes()
	var output = make([]float32, common.NumPoints*planes)
	DefaultFeatures.ComputeFeatures(&pos, output)
	for sq := 0; sq < common.NumPoints; sq++ {
		var cell = output[sq*planes : (sq+1)*planes]
		assert.Equal(t, []float32{0, 0, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0}, cell)
	}
}

func TestStonesAndLiberties(t *testing.T) {
	var pos = common.NewPosition()
	var child common.Position
	require.True(t, pos.MakeMove(common.Coord{Row: 0, Col: 0}, &child))
	pos = child
	// White to move: the black corner stone is an opponent stone with 2 liberties.
	var planes = DefaultFeatures.Planes()
	var output = make([]float32, common.NumPoints*planes)
	for i := range output {
		output[i] = 7
	}
	DefaultFeatures.ComputeFeatures(&pos, output)

	var corner = common.Coord{Row: 0, Col: 0}
	assert.Equal(t, float32(0), plane(output, planes, corner, 0))
	assert.Equal(t, float32(1), plane(output, planes, corner, 1))
	assert.Equal(t, float32(0), plane(output, planes, corner, 2))
	assert.Equal(t, float32(1), plane(output, planes, corner, 3))
	assert.Equal(t, float32(1), plane(output, planes, corner, 4+1))
	assert.Equal(t, float32(0), plane(output, planes, corner, 4))
	assert.Equal(t, float32(0), plane(output, planes, corner, 12))
}

func TestLibertyFeatureCapsAtMax(t *testing.T) {
	var pos = common.NewPosition()
	pos.PlaceStone(common.FlattenCoords(common.Coord{Row: 5, Col: 5}), common.Black)
	pos.PlaceStone(common.FlattenCoords(common.Coord{Row: 5, Col: 6}), common.Black)
	pos.PlaceStone(common.FlattenCoords(common.Coord{Row: 5, Col: 7}), common.Black)

	var fs = NewFeatureSet(LibertyFeature{MaxLiberties: 4})
	var output = make([]float32, common.NumPoints*fs.Planes())
	fs.ComputeFeatures(&pos, output)
	var cell = output[common.FlattenCoords(common.Coord{Row: 5, Col: 6})*4:][:4]
	assert.Equal(t, []float32{0, 0, 0, 1}, cell)
}

func TestKoFeature(t *testing.T) {
	var pos = common.NewPosition()
	pos.Ko = common.FlattenCoords(common.Coord{Row: 1, Col: 1})
	var fs = NewFeatureSet(KoFeature{})
	var output = make([]float32, common.NumPoints)
	fs.ComputeFeatures(&pos, output)
	assert.Equal(t, float32(1), output[pos.Ko])
	var sum float32
	for _, v := range output {
		sum += v
	}
	assert.Equal(t, float32(1), sum)
}
