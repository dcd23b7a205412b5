package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlattenCoords(t *testing.T) {
	tests := []struct {
		name  string
		coord Coord
		want  int
	}{
		{"origin", Coord{0, 0}, 0},
		{"first row end", Coord{0, 18}, 18},
		{"second row", Coord{1, 0}, 19},
		{"last", Coord{18, 18}, NumPoints - 1},
		{"pass", CoordPass, NumPoints},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FlattenCoords(tt.coord))
		})
	}
}

func TestParseSgfCoord(t *testing.T) {
	tests := []struct {
		in      string
		want    Coord
		wantErr bool
	}{
		{"pd", Coord{Row: 3, Col: 15}, false},
		{"aa", Coord{Row: 0, Col: 0}, false},
		{"ss", Coord{Row: 18, Col: 18}, false},
		{"", CoordPass, false},
		{"tt", CoordPass, false},
		{"zz", Coord{}, true},
		{"abc", Coord{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got, err = ParseSgfCoord(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCoordString(t *testing.T) {
	assert.Equal(t, "A19", Coord{0, 0}.String())
	assert.Equal(t, "J1", Coord{18, 8}.String())
	assert.Equal(t, "Q16", Coord{3, 15}.String())
	assert.Equal(t, "pass", CoordPass.String())
}
