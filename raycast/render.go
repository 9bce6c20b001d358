package raycast

import (
	"fmt"
	"math"

	"github.com/lixenwraith/console-caster/render"
	"github.com/lixenwraith/console-caster/vmath"
)

// drawWalls marches one ray per column and resets that column's depth
func (g *Game) drawWalls(fb *render.FrameBuffer) {
	w, h := float64(g.width), g.height
	fov := g.player.FOV
	maxDist := g.settings.RenderDistance

	for x := 0; x < g.width; x++ {
		angle := g.player.Rotation - fov/2 + (float64(x)/w)*fov
		hit := March(g.world, g.player.Pos, angle, maxDist)
		ceiling, floor := Project(h, hit.Distance)
		g.depth[x] = hit.Distance

		for y := 0; y < h; y++ {
			switch {
			case y <= ceiling:
				fb.SetCell(x, y, shadeGlyph, skyAttr)
			case y <= floor:
				if hit.Distance >= maxDist {
					fb.SetCell(x, y, shadeGlyph, skyAttr)
					continue
				}
				v := float64(y-ceiling) / float64(floor-ceiling)
				c := render.SampleUV(g.wall, hit.SampleX, v)
				if c.Attr == render.Transparent {
					fb.SetCell(x, y, shadeGlyph, skyAttr)
					continue
				}
				fb.SetCell(x, y, c.Glyph, c.Attr)
			default:
				fb.SetCell(x, y, shadeGlyph, groundAttr)
			}
		}
	}
}

// drawObjects projects every visible live object in insertion order
func (g *Game) drawObjects(fb *render.FrameBuffer) {
	half := g.player.FOV / 2
	for i := 0; i < g.objects.Len(); i++ {
		o := g.objects.At(i)
		if o.Remove {
			continue
		}

		rel := o.Pos.Sub(g.player.Pos)
		d := rel.Len()
		angle := vmath.WrapAngle(rel.Angle() - g.player.Rotation)

		if math.Abs(angle) > half || d < MinDrawDistance || d >= g.settings.RenderDistance {
			continue
		}
		g.drawBillboard(fb, o.Sprite, angle, d)
	}
}

// drawBillboard scales spr by distance and composites it against the depth buffer
// A pixel lands only where nothing nearer was drawn, and then claims its column
func (g *Game) drawBillboard(fb *render.FrameBuffer, spr *render.Sprite, angle, d float64) {
	if spr == nil || spr.Width == 0 || spr.Height == 0 {
		return
	}
	h := float64(g.height)
	ceiling := h/2 - h/d
	height := (h - 2*ceiling) * BillboardScale
	width := height / (float64(spr.Height) / float64(spr.Width))
	center := (0.5*angle/(g.player.FOV/2) + 0.5) * float64(g.width)

	for j := 0; float64(j) < height; j++ {
		for i := 0; float64(i) < width; i++ {
			c := render.Sample(spr, width, height, i, j)
			if c.Attr == render.Transparent {
				continue
			}
			col := int(center + float64(i) - width/2)
			if col < 0 || col >= g.width || g.depth[col] < d {
				continue
			}
			fb.SetCell(col, int(ceiling+float64(j)), c.Glyph, c.Attr)
			g.depth[col] = d
		}
	}
}

// drawHUD overlays the minimap with the player marker, the scoreboard, the weapon and the rate
func (g *Game) drawHUD(fb *render.FrameBuffer) {
	w, h := float64(g.width), float64(g.height)

	mapSize := w * 0.15
	render.DrawImage(fb, 1, 1, g.minimap, mapSize, mapSize, 0)

	score := g.sprites.Score(g.targets)
	render.DrawImage(fb, int(w-w*0.2-2), 1, score, w*0.2, h*0.1, 0)

	gun := w * 0.2
	render.DrawImage(fb, int(float64(g.width/2)-w*0.1), int(h-gun), g.weapon, gun, gun, 5)

	mx := 1 + int(g.player.Pos.Y/(float64(g.world.Cols())/mapSize))
	my := 1 + int(g.player.Pos.X/(float64(g.world.Rows())/mapSize))
	fb.SetCell(mx, my, markerGlyph, markerAttr)

	if g.settings.ShowFPS {
		render.DrawText(fb, 1, 2+int(mapSize), fmt.Sprintf("%.2f fps", g.rate), hudTextAttr)
	}
}
