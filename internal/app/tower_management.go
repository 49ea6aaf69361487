// internal/app/tower_management.go
package app

import (
	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/internal/defs"
	"go-path-defense/internal/event"
	"go-path-defense/internal/system"
	"go-path-defense/internal/types"
)

// PlaceTower builds a tower of typeID on the tile under (x, y). The cost
// is paid up front; on rejection nothing changes.
func (g *Game) PlaceTower(typeID string, x, y float64) (types.EntityID, Rejection) {
	if g.isOver {
		return 0, g.reject("place tower", RejectGameOver)
	}
	def, err := g.Library.Tower(typeID)
	if err != nil {
		return 0, g.reject("place tower", RejectUnknownTower, "type", typeID)
	}
	tile, ok := g.Map.TileAt(x, y)
	if !ok {
		return 0, g.reject("place tower", RejectOutOfBounds, "x", x, "y", y)
	}
	if r := g.canPlaceTower(tile); !r.OK() {
		return 0, g.reject("place tower", r, "tile", tile)
	}
	if !g.Ledger.BuyTower(def.Cost) {
		return 0, g.reject("place tower", RejectInsufficientFunds, "cost", def.Cost, "money", g.Ledger.Money())
	}

	id := g.createTowerEntity(def, tile)
	g.Grid.Occupy(tile, id)

	g.log.Debug("tower placed", "tower", def.ID, "id", id, "tile", tile)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: id, DefID: def.ID, Level: 1, Amount: def.Cost},
	})
	return id, Accepted
}

// SellTower removes a tower and refunds part of what was invested in it.
func (g *Game) SellTower(id types.EntityID) (int, bool) {
	if g.isOver {
		return 0, false
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return 0, false
	}
	refund := tower.Def.SellRefund(tower.Level)

	g.deleteTowerEntity(id, tower)
	g.Ledger.AddMoney(refund)

	g.log.Debug("tower sold", "tower", tower.DefID, "id", id, "refund", refund)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerSold,
		Data: event.TowerData{ID: id, DefID: tower.DefID, Level: tower.Level, Amount: refund},
	})
	return refund, true
}

// UpgradeTower raises a tower one level if it is below its cap and the
// upgrade is affordable.
func (g *Game) UpgradeTower(id types.EntityID) Rejection {
	if g.isOver {
		return g.reject("upgrade tower", RejectGameOver)
	}
	tower, ok := g.ECS.Towers[id]
	if !ok {
		return g.reject("upgrade tower", RejectUnknownTower, "id", id)
	}
	if !tower.CanUpgrade() {
		return g.reject("upgrade tower", RejectMaxLevel, "id", id)
	}
	cost, _ := g.UpgradeCost(id)
	if !g.Ledger.SpendMoney(cost) {
		return g.reject("upgrade tower", RejectInsufficientFunds, "cost", cost, "money", g.Ledger.Money())
	}
	system.UpgradeTower(g.ECS, id)

	g.log.Debug("tower upgraded", "tower", tower.DefID, "id", id, "level", tower.Level)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{ID: id, DefID: tower.DefID, Level: tower.Level, Amount: cost},
	})
	return Accepted
}

// UpgradeCost returns the price of the next level, or false for an
// unknown tower or one at its cap.
func (g *Game) UpgradeCost(id types.EntityID) (int, bool) {
	tower, ok := g.ECS.Towers[id]
	if !ok || !tower.CanUpgrade() {
		return 0, false
	}
	return tower.Def.UpgradeCost(tower.Level), true
}

// TowerAt returns the tower on the tile under (x, y).
func (g *Game) TowerAt(x, y float64) (types.EntityID, bool) {
	tile, ok := g.Map.TileAt(x, y)
	if !ok {
		return 0, false
	}
	return g.Grid.TowerAt(tile)
}

// CanPlaceAt reports whether a tower could stand on the tile under (x, y),
// ignoring money.
func (g *Game) CanPlaceAt(x, y float64) bool {
	tile, ok := g.Map.TileAt(x, y)
	return ok && g.canPlaceTower(tile).OK()
}

func (g *Game) canPlaceTower(tile defs.Tile) Rejection {
	if g.Grid.Restricted(tile) {
		return RejectTileRestricted
	}
	if _, taken := g.Grid.TowerAt(tile); taken {
		return RejectTileOccupied
	}
	return Accepted
}

func (g *Game) createTowerEntity(def defs.TowerDefinition, tile defs.Tile) types.EntityID {
	center := g.Map.TileCenter(tile)
	id := system.BuildTower(g.ECS, def, tile, center.X, center.Y)

	c, ok := config.TowerColors[string(def.Kind)]
	if !ok {
		c = config.TowerColors[string(defs.TowerBasic)]
	}
	g.ECS.Renderables[id] = &component.Renderable{
		Color:  c,
		Radius: float32(config.TowerRadius),
	}
	return id
}

func (g *Game) deleteTowerEntity(id types.EntityID, tower *component.Tower) {
	// Снимаем баффы до удаления, чтобы соседние башни вернулись к базовой скорострельности.
	if _, isSupport := g.ECS.Auras[id]; isSupport {
		g.AuraSystem.ReleaseAll(id)
	}
	g.AuraSystem.Forget(id)
	g.Grid.Free(tower.Tile)
	g.ECS.RemoveEntity(id)
}
