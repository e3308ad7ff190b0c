// Package raster is the software rasterizer behind pixelframe.
//
// A Buffer is a fixed-size, row-major grid of RGB cells. The drawing
// operations in this package are stateless: they compute which cells to
// write and hand each one to Target.Set, which drops out-of-bounds writes.
// Callers therefore never clip geometry themselves; a shape that overshoots
// the buffer edge is simply cut off.
//
// Primitives:
//
//	DrawPoint, DrawLine                  single cells and X-major DDA lines
//	FillRectangle, DrawRect              axis-aligned boxes (inclusive bounds)
//	FillTriangle, DrawTriangle           flat-top / flat-bottom scanline fill
//	FillQuad, FillPolygon                convex polygon scan conversion
//	DrawCircle, FillCircle               midpoint circle
//	DrawImage, DrawText                  image blit (1-bit alpha), tinyfont text
//
// Nothing here blends, anti-aliases or allocates per cell.
package raster
