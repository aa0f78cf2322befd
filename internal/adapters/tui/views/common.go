package views

// ViewState is the state every view model shares: terminal dimensions
// and a one-line status message. View models embed it.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize records the terminal dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status line, flagged as an error or not
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage blanks the status line
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}
