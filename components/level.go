package components

import (
	"github.com/automoto/amoebash/shared/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Grid *leveldata.Grid
}

var Level = donburi.NewComponentType[LevelData]()
