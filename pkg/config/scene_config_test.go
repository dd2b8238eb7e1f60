package config

import (
	"strings"
	"testing"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
)

// TestParseSceneConfig 测试 YAML 场景配置解析
func TestParseSceneConfig(t *testing.T) {
	data := []byte(`
window:
  width: 640
  height: 480
  title: "测试场景"
renderScale: 2
playerSpeed: 150
entities:
  - name: "player"
    type: "player"
    x: 100
    y: 200
    width: 16
    height: 16
    hitboxes:
      - halfWidth: 8
        halfHeight: 8
        kind: "collider"
        policy: "player"
  - name: "east_zone"
    type: "zone"
    x: 760
    y: 500
    hitboxes:
      - halfWidth: 24
        halfHeight: 64
        kind: "sensor"
        policy: "none"
`)

	cfg, err := ParseSceneConfig(data)
	if err != nil {
		t.Fatalf("ParseSceneConfig() err = %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 || cfg.Window.Title != "测试场景" {
		t.Errorf("Window = %+v", cfg.Window)
	}
	if cfg.RenderScale != 2 || cfg.PlayerSpeed != 150 {
		t.Errorf("RenderScale = %v, PlayerSpeed = %v", cfg.RenderScale, cfg.PlayerSpeed)
	}
	if len(cfg.Entities) != 2 {
		t.Fatalf("Entities 数量 = %d, want 2", len(cfg.Entities))
	}
	p := cfg.Entities[0]
	if p.Type != "player" || p.X != 100 || p.Y != 200 || len(p.Hitboxes) != 1 {
		t.Errorf("玩家实体 = %+v", p)
	}
	if p.Hitboxes[0].Kind != "collider" || p.Hitboxes[0].Policy != "player" {
		t.Errorf("玩家碰撞体 = %+v", p.Hitboxes[0])
	}
	if cfg.Entities[1].Width != 0 {
		t.Errorf("zone 实体允许宽度为 0, got %v", cfg.Entities[1].Width)
	}
}

// TestParseSceneConfigDefaults 测试未指定字段的默认值填充
func TestParseSceneConfigDefaults(t *testing.T) {
	cfg, err := ParseSceneConfig([]byte(`entities: []`))
	if err != nil {
		t.Fatalf("ParseSceneConfig() err = %v", err)
	}
	if cfg.Window.Width != DefaultWindowWidth || cfg.Window.Height != DefaultWindowHeight {
		t.Errorf("默认窗口尺寸 = %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != DefaultWindowTitle {
		t.Errorf("默认窗口标题 = %q", cfg.Window.Title)
	}
	if cfg.RenderScale != 4 {
		t.Errorf("默认渲染缩放 = %v, want 4", cfg.RenderScale)
	}
	if cfg.PlayerSpeed != 300 {
		t.Errorf("默认玩家速度 = %v, want 300", cfg.PlayerSpeed)
	}
}

// TestParseSceneConfigValidation 测试非法配置在加载时报错
func TestParseSceneConfigValidation(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name: "未知实体类型",
			yaml: `
entities:
  - name: "boss"
    type: "boss"
`,
			wantErr: "未知的实体类型",
		},
		{
			name: "未知碰撞体种类",
			yaml: `
entities:
  - name: "player"
    type: "player"
    hitboxes:
      - halfWidth: 8
        halfHeight: 8
        kind: "trigger"
        policy: "player"
`,
			wantErr: "未知的碰撞体种类",
		},
		{
			name: "未知移动策略",
			yaml: `
entities:
  - name: "player"
    type: "player"
    hitboxes:
      - halfWidth: 8
        halfHeight: 8
        kind: "collider"
        policy: "hero"
`,
			wantErr: "未知的移动策略",
		},
		{
			name: "负半边长",
			yaml: `
entities:
  - name: "wall"
    type: "wall"
    hitboxes:
      - halfWidth: -8
        halfHeight: 8
        kind: "collider"
        policy: "static"
`,
			wantErr: "半边长不能为负",
		},
		{
			name:    "YAML 语法错误",
			yaml:    `entities: [`,
			wantErr: "场景配置解析失败",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSceneConfig([]byte(tt.yaml))
			if err == nil {
				t.Fatal("期望报错但解析成功")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("err = %v, want 包含 %q", err, tt.wantErr)
			}
		})
	}
}

// TestParseVolumeKind 测试碰撞体种类字符串转换
func TestParseVolumeKind(t *testing.T) {
	if k, err := ParseVolumeKind("collider"); err != nil || k != collision.KindCollider {
		t.Errorf("ParseVolumeKind(collider) = (%v, %v)", k, err)
	}
	if k, err := ParseVolumeKind("sensor"); err != nil || k != collision.KindSensor {
		t.Errorf("ParseVolumeKind(sensor) = (%v, %v)", k, err)
	}
	if _, err := ParseVolumeKind("Collider"); err == nil {
		t.Error("种类字符串应区分大小写")
	}
}

// TestParseMovementPolicy 测试移动策略字符串转换
func TestParseMovementPolicy(t *testing.T) {
	want := map[string]collision.MovementPolicy{
		"none":    collision.PolicyNone,
		"static":  collision.PolicyStatic,
		"npc":     collision.PolicyNpc,
		"player":  collision.PolicyPlayer,
		"movable": collision.PolicyMovable,
	}
	for s, p := range want {
		got, err := ParseMovementPolicy(s)
		if err != nil || got != p {
			t.Errorf("ParseMovementPolicy(%q) = (%v, %v), want %v", s, got, err, p)
		}
	}
	if _, err := ParseMovementPolicy(""); err == nil {
		t.Error("空策略字符串应报错")
	}
}

// TestDefaultSceneConfig 测试内置兜底场景的完整性
func TestDefaultSceneConfig(t *testing.T) {
	cfg := DefaultSceneConfig()

	if err := cfg.validate(); err != nil {
		t.Fatalf("内置场景未通过校验: %v", err)
	}

	var hasPlayer, hasNpc bool
	for _, e := range cfg.Entities {
		switch e.Type {
		case "player":
			hasPlayer = true
		case "npc":
			hasNpc = true
			if len(e.Hitboxes) < 2 {
				t.Errorf("NPC %s 应同时携带实心碰撞体和对话传感器, got %d 个", e.Name, len(e.Hitboxes))
			}
		}
	}
	if !hasPlayer || !hasNpc {
		t.Errorf("内置场景缺少关键实体: player=%v npc=%v", hasPlayer, hasNpc)
	}
}
