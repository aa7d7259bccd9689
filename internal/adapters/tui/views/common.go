package views

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width   int
	Height  int
	Message string
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets an error message to display in the view
func (s *ViewState) SetMessage(msg string) {
	s.Message = msg
}
