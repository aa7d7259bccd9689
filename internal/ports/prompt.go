package ports

// Prompter reads a single line of user input
type Prompter interface {
	// Prompt shows label and blocks until the user enters a line. The
	// returned error is non-nil when input was aborted or closed.
	Prompt(label string) (string, error)
}

// Picker lets the user choose one of several options interactively
type Picker interface {
	// Pick returns the index of the chosen option
	Pick(title string, options []string) (int, error)
}
