package components

// NpcComponent 标记NPC实体
type NpcComponent struct {
	Name string // NPC名字（如 "Ravenfin"），任务文本和触发判定使用
}
