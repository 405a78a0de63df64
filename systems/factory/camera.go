package factory

import (
	"github.com/automoto/amoebash/archetypes"
	"github.com/automoto/amoebash/components"
	cfg "github.com/automoto/amoebash/config"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Width:  float64(cfg.C.Width),
		Height: float64(cfg.C.Height),
	})
}
