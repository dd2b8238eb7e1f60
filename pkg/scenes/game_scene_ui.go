package scenes

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// questFace 任务文本字体
// 项目不携带字体资源，使用 basicfont 的内置位图字体
var questFace = text.NewGoXFace(basicfont.Face7x13)

// questSection 任务文本的一个彩色片段
type questSection struct {
	Text  string
	Color color.RGBA
}

// drawQuestText 在屏幕顶部居中绘制任务文本
// 目标NPC名字用绿色高亮；任务完成后整行变绿
func (s *GameScene) drawQuestText(screen *ebiten.Image) {
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	limeGreen := color.RGBA{R: 50, G: 205, B: 50, A: 255}

	var sections []questSection
	if s.questDone {
		sections = []questSection{
			{Text: "Quest complete!", Color: limeGreen},
		}
	} else {
		sections = []questSection{
			{Text: "Quest: Talk to ", Color: white},
			{Text: s.questTarget, Color: limeGreen},
			{Text: ".", Color: white},
		}
	}

	const textScale = 2.0

	total := 0.0
	for _, sec := range sections {
		w, _ := text.Measure(sec.Text, questFace, 0)
		total += w * textScale
	}

	x := (float64(s.cfg.Window.Width) - total) / 2
	y := 40.0
	for _, sec := range sections {
		op := &text.DrawOptions{}
		op.GeoM.Scale(textScale, textScale)
		op.GeoM.Translate(x, y)
		op.ColorScale.ScaleWithColor(sec.Color)
		text.Draw(screen, sec.Text, questFace, op)
		w, _ := text.Measure(sec.Text, questFace, 0)
		x += w * textScale
	}
}
