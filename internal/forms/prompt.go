package forms

// SetupPrompt is the "create your first store" prompt shown when a user has
// no store yet. It is a plain value: transitions return a new value and keep
// no shared state.
type SetupPrompt struct {
	open bool
}

// OpenSetupPrompt returns a visible prompt.
func OpenSetupPrompt() SetupPrompt {
	return SetupPrompt{open: true}
}

// Close hides the prompt.
func (p SetupPrompt) Close() SetupPrompt {
	p.open = false
	return p
}

// Open shows the prompt.
func (p SetupPrompt) Open() SetupPrompt {
	p.open = true
	return p
}

// IsOpen reports whether the prompt is visible.
func (p SetupPrompt) IsOpen() bool {
	return p.open
}
