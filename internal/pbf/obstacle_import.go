package pbf

import (
	"errors"
	"io"
	"os"
	"runtime"
	"sync"

	"github.com/paulmach/orb"
	"github.com/qedus/osmpbf"
)

// Obstacle is an OpenStreetMap way which blocks every cell it touches.
type Obstacle struct {
	ID   int64
	Kind string // tag which classified the way, e.g. "building" or "natural=water"
	Line orb.LineString
}

// ObstacleImporter reads all obstacle ways of a PBF extract.
type ObstacleImporter struct {
	filename  string
	obstacles []Obstacle
	nodes     map[int64]orb.Point
}

func NewObstacleImporter(filename string) *ObstacleImporter {
	return &ObstacleImporter{
		filename:  filename,
		obstacles: make([]Obstacle, 0),
		nodes:     make(map[int64]orb.Point),
	}
}

// Import decodes the file twice: the first pass collects node coordinates, the second
// pass resolves the nodes of every obstacle way.
func (oi *ObstacleImporter) Import() error {
	if err := oi.collectNodes(); err != nil {
		return err
	}

	decoder, closer, err := oi.newDecoder()
	if err != nil {
		return err
	}
	defer closer.Close()

	var wg sync.WaitGroup
	obstacleChan := make(chan Obstacle, 1000)

	wg.Add(1)
	go func() {
		defer wg.Done()
		for obstacle := range obstacleChan {
			oi.obstacles = append(oi.obstacles, obstacle)
		}
	}()

	var decodeErr error
	for {
		v, err := decoder.Decode()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				decodeErr = err
			}
			break
		}
		way, ok := v.(*osmpbf.Way)
		if !ok {
			continue
		}
		if obstacle, ok := oi.obstacleFromWay(way); ok {
			obstacleChan <- obstacle
		}
	}
	close(obstacleChan)

	wg.Wait()
	return decodeErr
}

// obstacleFromWay resolves the nodes of an obstacle way. Nodes missing from the extract are
// skipped; a way without any known node is no obstacle.
func (oi *ObstacleImporter) obstacleFromWay(way *osmpbf.Way) (Obstacle, bool) {
	kind, ok := ObstacleKind(way.Tags)
	if !ok {
		return Obstacle{}, false
	}
	obstacle := Obstacle{ID: way.ID, Kind: kind, Line: make(orb.LineString, 0, len(way.NodeIDs))}
	for _, nodeID := range way.NodeIDs {
		if point, ok := oi.nodes[nodeID]; ok {
			obstacle.Line = append(obstacle.Line, point)
		}
	}
	return obstacle, len(obstacle.Line) > 0
}

// ObstacleKind classifies the tags of a way. Buildings, water areas, waterways and
// barriers are obstacles.
func ObstacleKind(tags map[string]string) (string, bool) {
	if _, ok := tags["building"]; ok {
		return "building", true
	}
	if tags["natural"] == "water" {
		return "natural=water", true
	}
	if _, ok := tags["waterway"]; ok {
		return "waterway", true
	}
	if _, ok := tags["barrier"]; ok {
		return "barrier", true
	}
	return "", false
}

func (oi *ObstacleImporter) Obstacles() []Obstacle {
	return oi.obstacles
}

func (oi *ObstacleImporter) collectNodes() error {
	decoder, closer, err := oi.newDecoder()
	if err != nil {
		return err
	}
	defer closer.Close()

	for {
		v, err := decoder.Decode()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if node, ok := v.(*osmpbf.Node); ok {
			oi.nodes[node.ID] = orb.Point{node.Lon, node.Lat}
		}
	}
}

func (oi *ObstacleImporter) newDecoder() (*osmpbf.Decoder, io.Closer, error) {
	file, err := os.Open(oi.filename)
	if err != nil {
		return nil, nil, err
	}

	decoder := osmpbf.NewDecoder(file)
	decoder.SetBufferSize(osmpbf.MaxBlobSize)
	if err := decoder.Start(runtime.GOMAXPROCS(-1)); err != nil {
		file.Close()
		return nil, nil, err
	}
	return decoder, file, nil
}
