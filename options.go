package curvekit

// ControllerOption configures a Controller during creation.
//
// Example:
//
//	c := curvekit.NewController(scene, surface, curvekit.WithBackground("#FFFFFF"))
type ControllerOption func(*controllerOptions)

// controllerOptions holds optional configuration for Controller creation.
type controllerOptions struct {
	background string
}

// defaultOptions returns the default controller options.
func defaultOptions() controllerOptions {
	return controllerOptions{
		background: "#FFFFFF",
	}
}

// WithBackground sets the color the surface is cleared to before every
// redraw. Invalid hex colors are ignored.
func WithBackground(color string) ControllerOption {
	return func(o *controllerOptions) {
		if IsHexColor(color) {
			o.background = color
		}
	}
}
