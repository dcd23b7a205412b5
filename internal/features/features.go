package features

import "github.com/ChizhovVadim/GoChunks/pkg/common"

type IFeatureProvider interface {
	// ComputeFeatures fills output laid out as [BoardSize, BoardSize, Planes] row-major.
	ComputeFeatures(pos *common.Position, output []float32)
	Planes() int
}

type Feature interface {
	Planes() int
	// Extract writes this feature's planes of point sq starting at out[0].
	Extract(ctx *extractContext, sq int, out []float32)
}

type extractContext struct {
	pos  *common.Position
	libs [common.NumPoints]int
}

// FeatureSet concatenates features along the plane axis.
type FeatureSet struct {
	features []Feature
	planes   int
}

func NewFeatureSet(features ...Feature) *FeatureSet {
	var planes int
	for _, f := range features {
		planes += f.Planes()
	}
	return &FeatureSet{
		features: features,
		planes:   planes,
	}
}

func (fs *FeatureSet) Planes() int { return fs.planes }

func (fs *FeatureSet) ComputeFeatures(pos *common.Position, output []float32) {
	var size = common.NumPoints * fs.planes
	if len(output) < size {
		panic("features: output too small")
	}
	output = output[:size]
	for i := range output {
		output[i] = 0
	}

	var ctx = &extractContext{pos: pos}
	pos.LibertyMap(&ctx.libs)

	for sq := 0; sq < common.NumPoints; sq++ {
		var cell = output[sq*fs.planes : (sq+1)*fs.planes]
		var offset int
		for _, f := range fs.features {
			f.Extract(ctx, sq, cell[offset:])
			offset += f.Planes()
		}
	}
}

// DefaultFeatures has 13 planes.
var DefaultFeatures = NewFeatureSet(
	StoneColourFeature{},
	OnesFeature{},
	LibertyFeature{MaxLiberties: 8},
	KoFeature{},
)

// StoneColourFeature: stone of side to move, opponent stone, empty.
type StoneColourFeature struct{}

func (StoneColourFeature) Planes() int { return 3 }

func (StoneColourFeature) Extract(ctx *extractContext, sq int, out []float32) {
	switch ctx.pos.Board[sq] {
	case common.Empty:
		out[2] = 1
	case ctx.pos.SideToMove:
		out[0] = 1
	default:
		out[1] = 1
	}
}

type OnesFeature struct{}

func (OnesFeature) Planes() int { return 1 }

func (OnesFeature) Extract(ctx *extractContext, sq int, out []float32) {
	out[0] = 1
}

// LibertyFeature one-hot encodes chain liberties; the last plane means MaxLiberties or more.
type LibertyFeature struct {
	MaxLiberties int
}

func (f LibertyFeature) Planes() int { return f.MaxLiberties }

func (f LibertyFeature) Extract(ctx *extractContext, sq int, out []float32) {
	var libs = ctx.libs[sq]
	if libs == 0 {
		return
	}
	out[min(libs, f.MaxLiberties)-1] = 1
}

type KoFeature struct{}

func (KoFeature) Planes() int { return 1 }

func (KoFeature) Extract(ctx *extractContext, sq int, out []float32) {
	if sq == ctx.pos.Ko {
		out[0] = 1
	}
}
