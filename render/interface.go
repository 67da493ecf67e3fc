package render

// SystemRenderer draws one part of the frame
type SystemRenderer interface {
	Render(ctx RenderContext, buf *RenderBuffer)
}

// VisibilityToggle is optionally implemented to skip a renderer for a frame
type VisibilityToggle interface {
	IsVisible(ctx RenderContext) bool
}
