package factory

import (
	"github.com/automoto/doomerang-boss/archetypes"
	"github.com/automoto/doomerang-boss/components"
	cfg "github.com/automoto/doomerang-boss/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCamera(ecs *ecs.ECS, mode cfg.CameraModeID) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Mode: mode})
	components.ScreenShake.Set(camera, &components.ScreenShakeData{NextID: 1})
	return camera
}
