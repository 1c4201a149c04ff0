package room

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertPath(t *testing.T, want, got RayPath) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		assert.InDelta(t, want[i].X, got[i].X, 1e-6, "point %d", i)
		assert.InDelta(t, want[i].Y, got[i].Y, 1e-6, "point %d", i)
	}
}

func TestReconstructDirect(t *testing.T) {
	g := DefaultGeometry()
	src := DefaultSources()
	path, err := ReconstructRayPath(g, realImage(Triangle, src.Triangle), src.Triangle, src.Viewer, MirrorConfig{true, true, true, true})
	require.NoError(t, err)
	assert.Equal(t, RayPath{src.Triangle, src.Viewer}, path)
}

func TestReconstructKnownPaths(t *testing.T) {
	g := DefaultGeometry()
	src := DefaultSources()
	tests := []struct {
		mirrors MirrorConfig
		depth   int
		id      string
		want    RayPath
	}{
		{
			MirrorConfig{true, false, false, false}, 1, "triangle-d1-top",
			RayPath{P(100, 75), P(100, 0), P(100, 175)},
		},
		{
			MirrorConfig{true, true, false, false}, 2, "triangle-d2-top-right",
			RayPath{P(100, 75), P(160, 0), P(200, 50), P(100, 175)},
		},
		{
			MirrorConfig{true, false, false, true}, 2, "triangle-d2-top-left",
			RayPath{P(100, 75), P(40, 0), P(0, 50), P(100, 175)},
		},
		{
			MirrorConfig{false, false, true, false}, 1, "triangle-d1-bottom",
			RayPath{P(100, 75), P(100, 200), P(100, 175)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			catalog, err := GenerateVirtualImages(g, src, tt.mirrors, tt.depth)
			require.NoError(t, err)
			image, ok := catalog.Find(tt.id)
			require.True(t, ok)

			path, err := ReconstructRayPath(g, image, src.Triangle, src.Viewer, tt.mirrors)
			require.NoError(t, err)
			assertPath(t, tt.want, path)
			assert.InDelta(t, image.Position.DistanceTo(src.Viewer), path.Length(), PathLengthTolerance)
		})
	}
}

func TestPathLengthHoldsEverywhere(t *testing.T) {
	g := DefaultGeometry()
	placements := map[string]Sources{
		"default": DefaultSources(),
		"offset":  offsetSources(),
	}
	for name, src := range placements {
		for _, m := range allConfigs() {
			t.Run(fmt.Sprintf("%s/%s", name, m), func(t *testing.T) {
				catalog, err := GenerateVirtualImages(g, src, m, 3)
				require.NoError(t, err)
				r := Room{Geometry: g, Mirrors: m}
				for _, image := range catalog.Images {
					path, err := r.TraceImage(image, src)
					if !assert.NoError(t, err, image.ID) {
						continue
					}
					assert.InDelta(t, image.Position.DistanceTo(src.Viewer), path.Length(), PathLengthTolerance, image.ID)
					assert.Equal(t, src.Position(image.Source), path[0])
					assert.Equal(t, src.Viewer, path[len(path)-1])
					for _, p := range path[1 : len(path)-1] {
						assert.True(t, g.Contains(p), "%s bounces off the room at %v", image.ID, p)
					}
				}
			})
		}
	}
}

func TestReconstructCorner(t *testing.T) {
	assert := assert.New(t)
	g := DefaultGeometry()
	// the sighting from this image passes exactly through the top-left corner
	src := Sources{Triangle: P(50, 50), Viewer: P(100, 100)}
	m := MirrorConfig{true, false, false, true}

	catalog, err := GenerateVirtualImages(g, src, m, 2)
	require.NoError(t, err)
	image, ok := catalog.Find("triangle-d2-top-left")
	require.True(t, ok)
	assert.Equal(P(-50, -50), image.Position)

	path, err := ReconstructRayPath(g, image, src.Triangle, src.Viewer, m)
	require.NoError(t, err)
	assertPath(t, RayPath{P(50, 50), P(0, 0), P(100, 100)}, path)
}

func TestReconstructGrazingCorner(t *testing.T) {
	g := DefaultGeometry()
	// the sighting misses the top-left corner by a few thousandths of a unit
	src := Sources{Triangle: P(87.94199953140252, 129.8916916587375), Viewer: P(30.501923074796196, 45.0430807572466)}
	m := MirrorConfig{true, false, false, true}

	catalog, err := GenerateVirtualImages(g, src, m, 2)
	require.NoError(t, err)
	image, ok := catalog.Find("triangle-d2-top-left")
	require.True(t, ok)

	path, err := ReconstructRayPath(g, image, src.Triangle, src.Viewer, m)
	require.NoError(t, err)
	assertPath(t, RayPath{
		src.Triangle,
		P(0, 0.006482394084514453),
		P(0.004389065550810756, 0),
		src.Viewer,
	}, path)
}

func TestReconstructRandomPlacements(t *testing.T) {
	g := DefaultGeometry()
	rnd := rand.New(rand.NewSource(42))
	place := func() Point2D {
		span := g.Width - 2*ObjectPadding
		return P(ObjectPadding+rnd.Float64()*span, ObjectPadding+rnd.Float64()*span)
	}
	for i := 0; i < 40; i++ {
		src := Sources{Triangle: place(), Viewer: place()}
		t.Run(fmt.Sprintf("%.3f,%.3f/%.3f,%.3f", src.Triangle.X, src.Triangle.Y, src.Viewer.X, src.Viewer.Y), func(t *testing.T) {
			for _, m := range allConfigs() {
				r := Room{Geometry: g, Mirrors: m}
				catalog, err := r.VirtualImages(src, 4)
				require.NoError(t, err)
				for _, image := range catalog.Images {
					origin := src.Position(image.Source)
					assert.Greater(t, image.Position.DistanceTo(origin), 1e-6, "%s %s sits on the real %s", m, image.ID, image.Source)
					path, err := r.TraceImage(image, src)
					if assert.NoError(t, err, "%s %s", m, image.ID) {
						assert.InDelta(t, image.Position.DistanceTo(src.Viewer), path.Length(), PathLengthTolerance)
					}
				}
			}
		})
	}
}

func TestReconstructNoCrossings(t *testing.T) {
	g := DefaultGeometry()
	src := DefaultSources()
	bogus := VirtualImage{ID: "bogus", Source: Triangle, Position: P(50, 50), Depth: 1}

	_, err := ReconstructRayPath(g, bogus, src.Triangle, src.Viewer, MirrorConfig{true, true, true, true})
	assert.ErrorIs(t, err, ErrNoCrossings)
	assert.Contains(t, err.Error(), "bogus")
}

func TestReconstructPathLengthError(t *testing.T) {
	g := DefaultGeometry()
	src := DefaultSources()
	m := MirrorConfig{true, false, false, false}
	catalog, err := GenerateVirtualImages(g, src, m, 1)
	require.NoError(t, err)

	// a real source that does not belong to the image
	_, err = ReconstructRayPath(g, catalog.Images[0], P(20, 20), src.Viewer, m)
	require.Error(t, err)

	var lengthErr *PathLengthError
	require.True(t, errors.As(err, &lengthErr))
	assert.Equal(t, "triangle-d1-top", lengthErr.ImageID)
	assert.InDelta(t, 250, lengthErr.Virtual, 1e-9)
	assert.Greater(t, lengthErr.Folded, lengthErr.Virtual)
}

func TestReconstructInvalidGeometry(t *testing.T) {
	_, err := ReconstructRayPath(RoomGeometry{Width: -1, Height: 10}, VirtualImage{}, P(0, 0), P(1, 1), MirrorConfig{})
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}

func TestVerifyReflectionLaw(t *testing.T) {
	image := VirtualImage{ID: "crooked"}
	good := RayPath{P(100, 75), P(100, 0), P(100, 175)}
	bounces := []bounce{{point: P(100, 0), sides: []MirrorSide{Top}}}
	assert.NoError(t, verifyReflectionLaw(image, good, bounces))

	bad := RayPath{P(100, 75), P(100, 0), P(150, 175)}
	err := verifyReflectionLaw(image, bad, bounces)
	var lawErr *ReflectionLawError
	require.True(t, errors.As(err, &lawErr))
	assert.Equal(t, P(100, 0), lawErr.Bounce)
}
