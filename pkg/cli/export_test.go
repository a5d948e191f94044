package cli

// Exposed for testing
var (
	RenderJSON  = renderJSON
	RenderHuman = renderHuman
)
