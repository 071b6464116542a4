package inkball

import "github.com/plus3/inkball/geom"

// Spawner is a cell where queued balls enter the level.
type Spawner struct {
	Position geom.Vec2
}

// SpawnPoint is the center of the spawner cell.
func (s *Spawner) SpawnPoint() geom.Vec2 {
	return s.Position.Add(geom.V(CellSize/2, CellSize/2))
}
