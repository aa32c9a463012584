// Command meshdemo assembles a Volume, a texture table, and a Mesher end to
// end and reports mesh generation cost — the way a downstream renderer
// would drive this library, without any GPU calls of its own.
package main

import (
	"flag"
	"fmt"

	"github.com/dantero-ps/voxmesh/internal/config"
	"github.com/dantero-ps/voxmesh/internal/meshing"
	"github.com/dantero-ps/voxmesh/internal/profiling"
	"github.com/dantero-ps/voxmesh/internal/textures"
	"github.com/dantero-ps/voxmesh/internal/voxel"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file (defaults to a built-in 32x32x32 scene)")
	texturesPath := flag.String("textures", "", "path to a YAML texture manifest (defaults to the config's textures_path, else a trivial table covering voxel id 1)")
	runs := flag.Int("runs", 64, "number of Generate calls on the small scene")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	tablePath := *texturesPath
	if tablePath == "" {
		tablePath = cfg.TexturesPath
	}
	table, err := loadOrDefaultTable(tablePath)
	if err != nil {
		panic(err)
	}

	runScene("small", buildFloorWithRaisedBlock(cfg), table, cfg.CubeSize, *runs)
	runScene("big", buildBigFloorWithRaisedBlock(), table, cfg.CubeSize, 8)
}

func loadOrDefaultTable(path string) (textures.Table, error) {
	if path == "" {
		return textures.Table{0, 0}, nil
	}
	return textures.LoadTable(path)
}

// buildFloorWithRaisedBlock reproduces the original benchmark's small
// scene: a full-width single-layer floor with an 8x1x8 raised block whose
// corner sits at (4, 1, 4).
func buildFloorWithRaisedBlock(cfg config.Config) *voxel.Volume[uint16] {
	vol := voxel.New[uint16](0, 0, 0, cfg.Width, cfg.Height, cfg.Depth, true)
	vol.FillRegion(voxel.NewRegion(0, 0, 0, cfg.Width, 1, cfg.Depth), 1)
	vol.FillRegion(voxel.NewRegion(4, 1, 4, 8, 1, 8), 1)
	return vol
}

// buildBigFloorWithRaisedBlock is the original benchmark's larger scene: a
// 64x64x64 volume with a centered 32x1x32 raised block.
func buildBigFloorWithRaisedBlock() *voxel.Volume[uint16] {
	vol := voxel.New[uint16](0, 0, 0, 64, 64, 64, true)
	vol.FillRegion(voxel.NewRegion(0, 0, 0, 64, 1, 64), 1)
	vol.FillRegion(voxel.NewRegion(16, 1, 16, 32, 1, 32), 1)
	return vol
}

func runScene(label string, vol *voxel.Volume[uint16], table textures.Table, cubeSize float32, runs int) {
	if cubeSize == 0 {
		cubeSize = 1
	}

	mesher := meshing.New[uint16]()
	profiling.ResetRun()

	sectionName := label + ".Generate"
	for i := 0; i < runs; i++ {
		stop := profiling.Track(sectionName)
		mesher.Generate(vol, table, cubeSize)
		stop()

		if i == 0 || i == runs-1 {
			fmt.Printf("%s: run %d (expected=%d, vertices=%d)\n", label, i, mesher.Expected(), len(mesher.Vertices()))
		}
	}

	fmt.Printf("%s: %d runs, %s\n", label, runs, profiling.TopN(1))
}
