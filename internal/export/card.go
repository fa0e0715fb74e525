package export

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/artgrid/internal/palette"
	"github.com/vovakirdan/artgrid/internal/seed"
)

// CardMeta is the text printed around the artwork on a card.
type CardMeta struct {
	Seed           uint32
	Palette        string
	Complexity     int
	GridSize       int
	AnimationSpeed float64
	DesignerMode   bool
	Patterns       []string
	Created        time.Time
}

// Card layout in pixels.
const (
	cardPad      = 32
	cardInset    = 16
	cardRadius   = 16
	cardGapLarge = 24
	cardGapSmall = 16
	chipPadX     = 8
	chipPadY     = 4
	chipGap      = 8
)

var (
	cardTitle   = mustHex("#ffffff")
	cardMuted   = mustHex("#94a3b8")
	cardLabel   = mustHex("#64748b")
	cardChip    = mustHex("#1e293b")
	cardChipTxt = mustHex("#cbd5e1")
	cardRule    = mustHex("#334155")
	designerBg  = mustHex("#134e4a")
	designerTxt = mustHex("#5eead4")
)

func mustHex(h string) color.NRGBA {
	c, err := palette.ParseHex(h)
	if err != nil {
		panic(err)
	}
	return c
}

// PatternSummary joins the first two pattern names and counts the rest.
func PatternSummary(patterns []string) string {
	if len(patterns) == 0 {
		return "-"
	}
	n := min(2, len(patterns))
	s := strings.Join(patterns[:n], " + ")
	if len(patterns) > 2 {
		s += fmt.Sprintf(" +%d", len(patterns)-2)
	}
	return s
}

// SeedLabel shows at most eight digits of the seed, using the fallback
// seed when none is set.
func SeedLabel(s uint32) string {
	if s == 0 {
		s = seed.Fallback
	}
	digits := strconv.FormatUint(uint64(s), 10)
	if len(digits) > 8 {
		digits = digits[:8]
	}
	return "#" + digits
}

// chips returns the generation-settings summary chips.
func (m CardMeta) chips() []chip {
	out := []chip{
		{fmt.Sprintf("%dx%d Grid", m.GridSize, m.GridSize), cardChip, cardChipTxt},
		{m.Palette + " Palette", cardChip, cardChipTxt},
		{fmt.Sprintf("Complexity %d/10", m.Complexity), cardChip, cardChipTxt},
	}
	if m.DesignerMode {
		out = append(out, chip{"Designer Mode", designerBg, designerTxt})
	}
	speed := strconv.FormatFloat(m.AnimationSpeed, 'f', -1, 64)
	out = append(out, chip{speed + "x Speed", cardChip, cardChipTxt})
	return out
}

type chip struct {
	text   string
	bg, fg color.Color
}

// text draws s with the bitmap face scaled by scale, baseline at y.
func text(dc *gg.Context, s string, x, y, scale float64, c color.Color) {
	dc.Push()
	dc.Translate(x, y)
	dc.Scale(scale, scale)
	dc.SetColor(c)
	dc.DrawString(s, 0, 0)
	dc.Pop()
}

func measure(face font.Face, s string) float64 {
	return float64(font.MeasureString(face, s).Ceil())
}

// placedChip is a chip with its position relative to the chip area.
type placedChip struct {
	chip
	x, y, w float64
}

// layoutChips wraps chips into rows no wider than maxW and returns the
// placements and the total height.
func layoutChips(face font.Face, chips []chip, maxW, chipH float64) ([]placedChip, float64) {
	var out []placedChip
	x, y := 0.0, 0.0
	for _, c := range chips {
		w := measure(face, c.text) + 2*chipPadX
		if x > 0 && x+w > maxW {
			x = 0
			y += chipH + chipGap
		}
		out = append(out, placedChip{chip: c, x: x, y: y, w: w})
		x += w + chipGap
	}
	return out, y + chipH
}

// Card lays the artwork out on a collectible card with its metadata.
func Card(art image.Image, meta CardMeta) *image.RGBA {
	face := basicfont.Face7x13
	lineH := float64(face.Height)

	artW := float64(art.Bounds().Dx())
	artH := float64(art.Bounds().Dy())
	innerW := artW + 2*cardInset
	width := innerW + 2*cardPad

	chipH := lineH + 2*chipPadY
	placed, chipsH := layoutChips(face, meta.chips(), innerW, chipH)

	headerH := 2*lineH + 8
	metaH := 2*(2*lineH+6) + cardGapSmall
	settingsH := cardGapSmall + lineH + 8 + chipsH
	footerH := cardGapSmall + lineH
	height := cardPad + headerH + cardGapLarge + artH + 2*cardInset + cardGapLarge +
		metaH + cardGapSmall + settingsH + footerH + cardPad

	dc := gg.NewContext(int(width), int(height))
	dc.SetFontFace(face)

	bg := gg.NewLinearGradient(0, 0, width, height)
	bg.AddColorStop(0, mustHex("#1e293b"))
	bg.AddColorStop(0.5, mustHex("#0f172a"))
	bg.AddColorStop(1, mustHex("#1e293b"))
	dc.SetFillStyle(bg)
	dc.DrawRectangle(0, 0, width, height)
	dc.Fill()

	dc.DrawRoundedRectangle(0.5, 0.5, width-1, height-1, cardRadius)
	dc.SetColor(color.NRGBA{R: 148, G: 163, B: 184, A: 51})
	dc.SetLineWidth(1)
	dc.Stroke()

	// Header with title and seed badge.
	y := float64(cardPad)
	text(dc, "Generative Art Grid", cardPad, y+lineH*1.4, 2, cardTitle)
	text(dc, "Digital Collectible", cardPad, y+headerH, 1, cardMuted)

	badge := "#" + seed.Display(meta.Seed)
	bw := measure(face, badge) + 24
	bx := width - cardPad - bw
	badgeFill := gg.NewLinearGradient(bx, y, bx+bw, y+lineH+16)
	badgeFill.AddColorStop(0, mustHex("#6366f1"))
	badgeFill.AddColorStop(1, mustHex("#8b5cf6"))
	dc.DrawRoundedRectangle(bx, y, bw, lineH+16, 8)
	dc.SetFillStyle(badgeFill)
	dc.Fill()
	text(dc, badge, bx+12, y+8+lineH-2, 1, cardTitle)
	y += headerH + cardGapLarge

	// Artwork on a dark inset.
	dc.DrawRoundedRectangle(cardPad, y, innerW, artH+2*cardInset, 12)
	dc.SetColor(color.NRGBA{A: 51})
	dc.Fill()
	dc.DrawImage(art, cardPad+cardInset, int(y)+cardInset)
	y += artH + 2*cardInset + cardGapLarge

	// Metadata rows.
	colW := (width - 2*cardPad - cardGapSmall) / 2
	created := meta.Created
	if created.IsZero() {
		created = time.Now()
	}
	rows := [][2][2]string{
		{{"PATTERN", PatternSummary(meta.Patterns)}, {"SEED", SeedLabel(meta.Seed)}},
		{{"CREATED", created.Format("Jan 2, 2006, 03:04 PM")}, {"EDITION", "1/1 Unique"}},
	}
	for _, row := range rows {
		for col, cell := range row {
			x := cardPad + float64(col)*(colW+cardGapSmall)
			text(dc, cell[0], x, y+lineH, 1, cardLabel)
			text(dc, cell[1], x, y+2*lineH+4, 1, cardTitle)
		}
		y += 2*lineH + 6 + cardGapSmall
	}

	// Settings summary.
	dc.DrawLine(cardPad, y, width-cardPad, y)
	dc.SetColor(cardRule)
	dc.Stroke()
	y += cardGapSmall
	text(dc, "GENERATION SETTINGS", cardPad, y+lineH, 1, cardLabel)
	y += lineH + 8

	for _, c := range placed {
		x := cardPad + c.x
		cy := y + c.y
		dc.DrawRoundedRectangle(x, cy, c.w, chipH, 4)
		dc.SetColor(c.bg)
		dc.Fill()
		text(dc, c.text, x+chipPadX, cy+chipPadY+lineH-2, 1, c.fg)
	}
	y += chipsH + cardGapSmall

	// Footer.
	text(dc, "Generative Art Collection", cardPad, y+lineH, 1, cardLabel)
	version := "v1.0"
	text(dc, version, width-cardPad-measure(face, version), y+lineH, 1, cardLabel)

	return dc.Image().(*image.RGBA)
}
