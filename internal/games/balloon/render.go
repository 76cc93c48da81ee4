package balloon

import (
	"fmt"
	"math"

	"github.com/aquilax/go-perlin"

	"github.com/vovakirdan/balloon-puff/internal/config"
	"github.com/vovakirdan/balloon-puff/internal/core"
)

// Render palette not provided by themes.
const (
	balloonColor core.Color = "#FF6347"
	stringColor  core.Color = "#555555"
	cloudColor   core.Color = "#F8F8FF"
	birdColor    core.Color = "#333333"
	hudFg        core.Color = "#FFFFFF"
	hudBg        core.Color = "#1C1C1C"
)

// groundNoiseThreshold controls how much of the ground gets texture.
const groundNoiseThreshold = 0.15

// shape is how an element kind is drawn.
type shape int

const (
	shapePeak shape = iota
	shapeBlock
	shapeTree
	shapeRock
	shapePole
	shapeFence
	shapeWave
	shapeGrass
)

type glyph struct {
	shape shape
	fill  rune
}

// kindGlyphs maps every element kind to its drawing. A test checks coverage.
var kindGlyphs = map[config.ElementKind]glyph{
	config.KindDistantPeak:      {shapePeak, '█'},
	config.KindRollingHill:      {shapePeak, '▓'},
	config.KindFoothill:         {shapePeak, '▓'},
	config.KindCliff:            {shapePeak, '█'},
	config.KindPineTree:         {shapeTree, '▲'},
	config.KindBoulder:          {shapeRock, '█'},
	config.KindSmallRock:        {shapeRock, '▄'},
	config.KindGroundDetailRock: {shapeRock, '▪'},
	config.KindSkyscraper:       {shapeBlock, '█'},
	config.KindTower:            {shapeBlock, '▓'},
	config.KindBuilding:         {shapeBlock, '█'},
	config.KindAntenna:          {shapePole, '│'},
	config.KindLamppost:         {shapePole, '┃'},
	config.KindFence:            {shapeFence, '╫'},
	config.KindHorizon:          {shapeWave, '─'},
	config.KindIsland:           {shapeRock, '▆'},
	config.KindWave:             {shapeWave, '~'},
	config.KindCloudReflection:  {shapeWave, '≈'},
	config.KindSeashell:         {shapeRock, '◒'},
	config.KindDuneGrass:        {shapeGrass, '"'},
}

type obstacleDrawer func(dst *core.Screen, p projection, o Obstacle, t config.ThemeProfile)

// styleDrawers maps every obstacle style to its drawing. A test checks coverage.
var styleDrawers = map[config.ObstacleStyle]obstacleDrawer{
	config.StyleRockStack: drawRockStack,
	config.StyleBuilding:  drawBuilding,
	config.StylePalmTree:  drawPalmTree,
}

// projection maps world units to screen cells.
type projection struct {
	sx, sy float64 // World units per column and per row
}

func newProjection(v Viewport, cols, rows int) projection {
	return projection{
		sx: v.Width / float64(max(cols, 1)),
		sy: v.Height / float64(max(rows, 1)),
	}
}

func (p projection) col(x float64) int { return int(math.Floor(x / p.sx)) }
func (p projection) row(y float64) int { return int(math.Floor(y / p.sy)) }

// rect returns the cells covered by a world rectangle, at least one cell.
func (p projection) rect(x, y, w, h float64) core.Rect {
	c0, r0 := p.col(x), p.row(y)
	c1 := int(math.Ceil((x + w) / p.sx))
	r1 := int(math.Ceil((y + h) / p.sy))
	return core.NewRect(c0, r0, max(c1-c0, 1), max(r1-r0, 1))
}

// renderWorld draws a snapshot: sky, ground, scenery by depth, ambient,
// obstacles, avatar, then the HUD.
func renderWorld(dst *core.Screen, s Snapshot, noise *perlin.Perlin, paused bool) {
	theme := s.Theme
	p := newProjection(s.Viewport, dst.Width(), dst.Height())

	dst.Fill(core.Cell{Rune: ' ', Bg: core.Color(theme.Sky)})
	drawGround(dst, p, s, noise)

	for _, band := range []Band{BandFar, BandMid, BandNear} {
		for _, e := range s.Background {
			if e.Band == band {
				drawElement(dst, p, e, theme)
			}
		}
	}

	for _, a := range s.Ambient {
		if a.Kind == AmbientCloud {
			drawCloud(dst, p, a)
		} else {
			drawBird(dst, p, a)
		}
	}

	draw := styleDrawers[theme.ObstacleStyle]
	if draw == nil {
		draw = drawRockStack
	}
	for _, o := range s.Obstacles {
		draw(dst, p, o, theme)
	}

	drawAvatar(dst, p, s.AvatarX, s.Avatar)
	drawHUD(dst, s)

	switch {
	case s.Terminated:
		drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("%s  |  Score: %d  |  Space/R to restart", causeText(s.Cause), s.Score))
	case paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

func causeText(c Cause) string {
	switch c {
	case CauseGround:
		return "Hit the ground"
	case CauseObstacle:
		return "Hit an obstacle"
	}
	return "Run over"
}

// drawGround paints everything below the horizon and scrolls a noise
// texture with the foreground.
func drawGround(dst *core.Screen, p projection, s Snapshot, noise *perlin.Perlin) {
	ground := core.Color(s.Theme.Ground)
	detail := core.Color(s.Theme.GroundDetail)
	top := p.row(s.Viewport.Horizon())
	groundRow := p.row(s.Viewport.Ground())
	scroll := float64(s.Frame) * s.Difficulty.ObstacleSpeed

	for y := max(top, 0); y < dst.Height(); y++ {
		for x := 0; x < dst.Width(); x++ {
			c := core.Cell{Rune: ' ', Bg: ground}
			if y == groundRow {
				c = core.Cell{Rune: '▀', Fg: detail, Bg: ground}
			} else if noise != nil {
				wx := (float64(x)*p.sx + scroll) / 60
				wy := float64(y) * p.sy / 40
				if noise.Noise2D(wx, wy) > groundNoiseThreshold {
					c = core.Cell{Rune: '░', Fg: detail, Bg: ground}
				}
			}
			dst.SetCell(x, y, c)
		}
	}
}

func elementColor(e BackgroundElement, t config.ThemeProfile) core.Color {
	switch {
	case e.Kind.IsMountain():
		return core.Color(e.MountainColor)
	case e.Kind == config.KindSmallRock:
		return core.Color(e.RockColor)
	case e.Kind == config.KindPineTree && len(t.TreeColors) > 0:
		return core.Color(t.TreeColors[0])
	}
	return core.Color(e.Color)
}

func drawElement(dst *core.Screen, p projection, e BackgroundElement, t config.ThemeProfile) {
	g, ok := kindGlyphs[e.Kind]
	if !ok {
		g = glyph{shapeBlock, '█'}
	}
	fg := elementColor(e, t)

	width := e.Width
	if e.Kind == config.KindSmallRock {
		width = e.RockSize
	}
	r := p.rect(e.X, e.Y, width, e.Height)

	switch g.shape {
	case shapePeak:
		fillTriangle(dst, r, g.fill, fg)
		if e.Y < e.BaseY-e.Height*0.4 && t.SnowCap != "" {
			dst.SetColored(r.X+r.W/2, r.Y, '▲', core.Color(t.SnowCap))
		}
	case shapeTree:
		fillTriangle(dst, core.NewRect(r.X, r.Y, r.W, max(r.H-1, 1)), g.fill, fg)
		dst.SetColored(r.X+r.W/2, r.Bottom()-1, '┃', core.Color(t.GroundDetail))
	case shapeBlock:
		fillRect(dst, r, g.fill, fg)
		for y := r.Y + 1; y < r.Bottom(); y += 2 {
			for x := r.X + 1; x < r.Right()-1; x += 2 {
				dst.SetColored(x, y, '▪', core.Color(t.SnowCap))
			}
		}
	case shapeRock:
		h := max(r.H/2, 1)
		fillRect(dst, core.NewRect(r.X, r.Bottom()-h, r.W, h), g.fill, fg)
	case shapePole:
		x := r.X + r.W/2
		dst.DrawVLine(x, r.Y, r.H, g.fill, fg)
		dst.SetColored(x, r.Y, '●', core.Color(t.SnowCap))
	case shapeFence:
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, g.fill, fg)
	case shapeWave:
		dst.DrawHLine(r.X, r.Bottom()-1, r.W, g.fill, fg)
	case shapeGrass:
		for x := r.X; x < r.Right(); x += 2 {
			dst.SetColored(x, r.Bottom()-1, g.fill, fg)
		}
	}
}

func fillRect(dst *core.Screen, r core.Rect, fill rune, fg core.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		dst.DrawHLine(r.X, y, r.W, fill, fg)
	}
}

// fillTriangle draws an isosceles triangle with its apex at the top center of r.
func fillTriangle(dst *core.Screen, r core.Rect, fill rune, fg core.Color) {
	cx := float64(r.X) + float64(r.W)/2
	for i := 0; i < r.H; i++ {
		half := float64(r.W) / 2 * float64(i+1) / float64(r.H)
		x0 := int(math.Floor(cx - half))
		x1 := int(math.Ceil(cx + half))
		dst.DrawHLine(x0, r.Y+i, max(x1-x0, 1), fill, fg)
	}
}

func drawCloud(dst *core.Screen, p projection, c AmbientEntity) {
	r := p.rect(c.X-c.Size*0.7, c.Y-c.Size*0.5, c.Size*2.5, c.Size*1.2)
	fillRect(dst, r, '▒', cloudColor)
}

func drawBird(dst *core.Screen, p projection, b AmbientEntity) {
	wing := 'v'
	if math.Sin(b.Phase) < 0 {
		wing = '^'
	}
	dst.SetColored(p.col(b.X), p.row(b.Y), wing, birdColor)
}

func drawRockStack(dst *core.Screen, p projection, o Obstacle, _ config.ThemeProfile) {
	for _, seg := range o.Segments {
		fillRect(dst, p.rect(o.X+seg.OffsetX, seg.Y, seg.Width, seg.Height), '█', core.Color(seg.Color))
	}
}

func drawBuilding(dst *core.Screen, p projection, o Obstacle, t config.ThemeProfile) {
	for _, seg := range o.Segments {
		r := p.rect(o.X+seg.OffsetX, seg.Y, seg.Width, seg.Height)
		fillRect(dst, r, '█', core.Color(seg.Color))
		for x := r.X + 1; x < r.Right()-1; x += 2 {
			dst.SetColored(x, r.Y, '▪', core.Color(t.SnowCap))
		}
	}
}

func drawPalmTree(dst *core.Screen, p projection, o Obstacle, t config.ThemeProfile) {
	for _, seg := range o.Segments {
		w := seg.Width * 0.3
		r := p.rect(o.X+ObstacleWidth/2-w/2, seg.Y, w, seg.Height)
		fillRect(dst, r, '║', core.Color(seg.Color))
	}
	fronds := core.Color(t.Ground)
	if len(t.TreeColors) > 0 {
		fronds = core.Color(t.TreeColors[0])
	}
	top := p.rect(o.X-ObstacleWidth*0.25, o.TopY, ObstacleWidth*1.5, 1)
	dst.DrawHLine(top.X, top.Y, top.W, '≋', fronds)
}

func drawAvatar(dst *core.Screen, p projection, ax float64, a Avatar) {
	r := p.rect(ax-AvatarRadius, a.Y-AvatarRadius, 2*AvatarRadius, 2*AvatarRadius)
	drawn := false
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			dx := (float64(x)+0.5)*p.sx - ax
			dy := (float64(y)+0.5)*p.sy - a.Y
			if dx*dx+dy*dy <= AvatarRadius*AvatarRadius {
				dst.SetColored(x, y, '█', balloonColor)
				drawn = true
			}
		}
	}
	if !drawn {
		dst.SetColored(p.col(ax), p.row(a.Y), '●', balloonColor)
	}
	dst.SetColored(p.col(ax), r.Bottom(), '│', stringColor)
}

func drawHUD(dst *core.Screen, s Snapshot) {
	text := fmt.Sprintf(" Score: %d  %s  %s ", s.Score, s.Difficulty.Name, s.Theme.Name)
	dst.DrawTextColored(1, 0, text, hudFg, hudBg)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w, h := dst.Width(), dst.Height()

	boxW := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.FillRect(box, core.Cell{Rune: ' ', Fg: hudFg, Bg: hudBg})
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len([]rune(title)))/2, box.Y+1, title)
	dst.DrawText(box.X+(boxW-len([]rune(subtitle)))/2, box.Y+3, subtitle)
}
