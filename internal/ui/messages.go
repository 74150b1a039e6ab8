package ui

// FileStartMsg indicates a new export has started converting
type FileStartMsg struct {
	FileIndex int
	FileName  string
}

// FileCompleteMsg indicates an export has finished converting
type FileCompleteMsg struct {
	FileIndex   int
	OutputPath  string
	FilterCount int
	Preamp      float64
	Dropped     int
	Error       error
}

// AllCompleteMsg indicates all exports have been converted
type AllCompleteMsg struct{}
