package config

// DefaultSceneConfig 返回内置的默认场景
//
// 与 data/scene.yaml 内容一致，用于嵌入配置缺失时的降级
// （移动端构建不携带嵌入数据时也走这条路径）
func DefaultSceneConfig() *SceneConfig {
	cfg := &SceneConfig{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultWindowTitle,
		},
		RenderScale: 4,
		PlayerSpeed: 300,
		Entities: []EntityConfig{
			{
				Name: "player", Type: "player", X: 400, Y: 536, Width: 16, Height: 16,
				Hitboxes: []HitboxConfig{
					{HalfWidth: 8, HalfHeight: 8, Kind: "collider", Policy: "player"},
				},
			},
			{
				Name: "Ravenfin", Type: "npc", X: 650, Y: 536, Width: 16, Height: 16,
				Hitboxes: []HitboxConfig{
					// 实心身体 + 更大的对话触发范围，同一所有者携带两个碰撞体
					{HalfWidth: 8, HalfHeight: 8, Kind: "collider", Policy: "static"},
					{HalfWidth: 24, HalfHeight: 16, Kind: "sensor", Policy: "none"},
				},
			},
			{
				Name: "floor", Type: "wall", X: 400, Y: 584, Width: 800, Height: 32,
				Hitboxes: []HitboxConfig{
					{HalfWidth: 400, HalfHeight: 16, Kind: "collider", Policy: "static"},
				},
			},
			{
				Name: "wall_left", Type: "wall", X: 16, Y: 300, Width: 32, Height: 600,
				Hitboxes: []HitboxConfig{
					{HalfWidth: 16, HalfHeight: 300, Kind: "collider", Policy: "static"},
				},
			},
			{
				Name: "wall_right", Type: "wall", X: 784, Y: 300, Width: 32, Height: 600,
				Hitboxes: []HitboxConfig{
					{HalfWidth: 16, HalfHeight: 300, Kind: "collider", Policy: "static"},
				},
			},
			{
				Name: "crate", Type: "wall", X: 200, Y: 520, Width: 96, Height: 96,
				Hitboxes: []HitboxConfig{
					{HalfWidth: 48, HalfHeight: 48, Kind: "collider", Policy: "static"},
				},
			},
			{
				Name: "east_zone", Type: "zone", X: 760, Y: 500,
				Hitboxes: []HitboxConfig{
					{HalfWidth: 24, HalfHeight: 64, Kind: "sensor", Policy: "none"},
				},
			},
		},
	}
	return cfg
}
