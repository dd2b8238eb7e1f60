// Package config 提供场景和布局的 YAML 配置加载
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mdenchev/mini-exp-1/pkg/collision"
)

// 窗口默认值（scene.yaml 未指定时使用）
const (
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultWindowTitle  = "mini-exp-1"
)

// SceneConfig 场景配置数据结构
// 定义窗口参数、全局渲染缩放和场景中要生成的实体列表
type SceneConfig struct {
	Window      WindowConfig   `yaml:"window"`      // 窗口参数
	RenderScale float64        `yaml:"renderScale"` // 全局渲染缩放因子，默认 4（像素画放大）
	PlayerSpeed float64        `yaml:"playerSpeed"` // 玩家移动速度（像素/秒），默认 300
	Entities    []EntityConfig `yaml:"entities"`    // 场景实体列表
}

// WindowConfig 窗口参数
type WindowConfig struct {
	Width  int    `yaml:"width"`  // 逻辑屏幕宽度（像素）
	Height int    `yaml:"height"` // 逻辑屏幕高度（像素）
	Title  string `yaml:"title"`  // 窗口标题
}

// EntityConfig 单个场景实体配置
type EntityConfig struct {
	Name     string         `yaml:"name"`     // 实体名字（日志和任务文本使用）
	Type     string         `yaml:"type"`     // 实体类型："player", "npc", "wall", "zone"
	X        float64        `yaml:"x"`        // 初始世界坐标X（实体中心）
	Y        float64        `yaml:"y"`        // 初始世界坐标Y（实体中心）
	Width    float64        `yaml:"width"`    // 精灵宽度（像素，未缩放），zone 类型可为 0
	Height   float64        `yaml:"height"`   // 精灵高度（像素，未缩放），zone 类型可为 0
	Hitboxes []HitboxConfig `yaml:"hitboxes"` // 附着的碰撞体列表（可为空）
}

// HitboxConfig 单个碰撞体配置
type HitboxConfig struct {
	HalfWidth  float64 `yaml:"halfWidth"`  // 本地半宽（像素，未缩放）
	HalfHeight float64 `yaml:"halfHeight"` // 本地半高（像素，未缩放）
	Kind       string  `yaml:"kind"`       // "collider" 或 "sensor"
	Policy     string  `yaml:"policy"`     // "none", "static", "npc", "player", "movable"
}

// ParseVolumeKind 将配置字符串转换为碰撞体种类
func ParseVolumeKind(s string) (collision.VolumeKind, error) {
	switch s {
	case "collider":
		return collision.KindCollider, nil
	case "sensor":
		return collision.KindSensor, nil
	default:
		return 0, fmt.Errorf("未知的碰撞体种类: %q (应为 collider 或 sensor)", s)
	}
}

// ParseMovementPolicy 将配置字符串转换为移动策略
func ParseMovementPolicy(s string) (collision.MovementPolicy, error) {
	switch s {
	case "none":
		return collision.PolicyNone, nil
	case "static":
		return collision.PolicyStatic, nil
	case "npc":
		return collision.PolicyNpc, nil
	case "player":
		return collision.PolicyPlayer, nil
	case "movable":
		return collision.PolicyMovable, nil
	default:
		return 0, fmt.Errorf("未知的移动策略: %q", s)
	}
}

// ParseSceneConfig 从 YAML 字节解析场景配置并填充默认值
func ParseSceneConfig(data []byte) (*SceneConfig, error) {
	var cfg SceneConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("场景配置解析失败: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadSceneConfig 从文件加载场景配置
func LoadSceneConfig(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("场景配置读取失败: %w", err)
	}
	return ParseSceneConfig(data)
}

// applyDefaults 填充未指定字段的默认值
func (c *SceneConfig) applyDefaults() {
	if c.Window.Width <= 0 {
		c.Window.Width = DefaultWindowWidth
	}
	if c.Window.Height <= 0 {
		c.Window.Height = DefaultWindowHeight
	}
	if c.Window.Title == "" {
		c.Window.Title = DefaultWindowTitle
	}
	if c.RenderScale <= 0 {
		c.RenderScale = 4
	}
	if c.PlayerSpeed <= 0 {
		c.PlayerSpeed = 300
	}
}

// validate 校验实体和碰撞体配置
// 种类/策略拼写错误和负半边长在加载时报错，不进入运行期
func (c *SceneConfig) validate() error {
	for i, e := range c.Entities {
		switch e.Type {
		case "player", "npc", "wall", "zone":
		default:
			return fmt.Errorf("实体 #%d (%s): 未知的实体类型 %q", i, e.Name, e.Type)
		}
		for j, hb := range e.Hitboxes {
			if _, err := ParseVolumeKind(hb.Kind); err != nil {
				return fmt.Errorf("实体 #%d (%s) 碰撞体 #%d: %w", i, e.Name, j, err)
			}
			if _, err := ParseMovementPolicy(hb.Policy); err != nil {
				return fmt.Errorf("实体 #%d (%s) 碰撞体 #%d: %w", i, e.Name, j, err)
			}
			if hb.HalfWidth < 0 || hb.HalfHeight < 0 {
				return fmt.Errorf("实体 #%d (%s) 碰撞体 #%d: 半边长不能为负", i, e.Name, j)
			}
		}
	}
	return nil
}
