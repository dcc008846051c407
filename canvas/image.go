package canvas

import (
	"image"
	"io"

	"github.com/fogleman/gg"

	"nodegraph/core"
	"nodegraph/geometry"
)

// edgeLineWidth is the stroke width of edges in pixels.
const edgeLineWidth = 1.5

// Image renders a graph into an RGBA raster that can be saved as PNG.
// Surface units are pixels.
type Image struct {
	dc *gg.Context
}

// NewImage creates a white width x height image.
func NewImage(width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidSize
	}
	img := &Image{dc: gg.NewContext(width, height)}
	img.Clear()
	return img, nil
}

// Clear paints the whole image white.
func (img *Image) Clear() {
	img.dc.SetColor(paperColor)
	img.dc.Clear()
}

// RenderNode fills a disc of diameter size.
func (img *Image) RenderNode(center core.Point, size float64, color string) {
	img.dc.SetColor(resolveOrInk(color))
	img.dc.DrawCircle(center.X, center.Y, size/2)
	img.dc.Fill()
}

// RenderEdge strokes the line between two centres, trimmed at both ends.
func (img *Image) RenderEdge(from, to core.Point, trim float64, color string) {
	start, end, ok := geometry.TrimSegment(from, to, trim)
	if !ok {
		return
	}
	img.dc.SetColor(resolveOrInk(color))
	img.dc.SetLineWidth(edgeLineWidth)
	img.dc.DrawLine(start.X, start.Y, end.X, end.Y)
	img.dc.Stroke()
}

// Image returns the underlying raster.
func (img *Image) Image() image.Image {
	return img.dc.Image()
}

// EncodePNG writes the image as PNG.
func (img *Image) EncodePNG(w io.Writer) error {
	return img.dc.EncodePNG(w)
}

// SavePNG writes the image to a PNG file.
func (img *Image) SavePNG(path string) error {
	return img.dc.SavePNG(path)
}
