package types

// Request describes a single application deployment: where its templates
// live, where the rendered artifacts go, and the data mapping used to
// render them. Constructed fresh per invocation, never persisted.
type Request struct {
	// App is the application (component) name
	App string

	// SrcDir is the template source directory for this app
	SrcDir string

	// DestDir is the destination directory for rendered artifacts
	DestDir string

	// Data is the render context, loaded once from the input file and
	// shared unchanged across every app in a full-stack run
	Data map[string]interface{}
}
