// Package ui provides the Bubbletea terminal user interface for eqbridge
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FileStatus represents the conversion state of a single export
type FileStatus int

const (
	StatusQueued FileStatus = iota
	StatusConverting
	StatusComplete
	StatusError
)

// FileProgress tracks progress for a single export file
type FileProgress struct {
	InputPath  string
	OutputPath string
	Status     FileStatus

	StartTime time.Time

	// Completion results
	FilterCount int
	Preamp      float64
	Dropped     int

	// Error tracking
	Error error
}

// Model is the Bubbletea model for the conversion UI
type Model struct {
	// File queue
	Files          []FileProgress
	CurrentIndex   int
	TotalFiles     int
	CompletedFiles int
	FailedFiles    int

	// Global state
	StartTime time.Time
	Done      bool

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model with the given export files
func NewModel(inputFiles []string) Model {
	files := make([]FileProgress, len(inputFiles))
	for i, path := range inputFiles {
		files[i] = FileProgress{
			InputPath: path,
			Status:    StatusQueued,
		}
	}

	return Model{
		Files:        files,
		CurrentIndex: -1, // No file converting yet
		TotalFiles:   len(inputFiles),
		StartTime:    time.Now(),
	}
}

// Init initializes the model. Messages arrive via Program.Send from the
// conversion goroutine, so there is nothing to kick off here.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case FileStartMsg:
		m.CurrentIndex = msg.FileIndex
		m.Files[m.CurrentIndex].Status = StatusConverting
		m.Files[m.CurrentIndex].StartTime = time.Now()

	case FileCompleteMsg:
		if msg.FileIndex >= 0 && msg.FileIndex < len(m.Files) {
			file := &m.Files[msg.FileIndex]
			file.OutputPath = msg.OutputPath
			file.FilterCount = msg.FilterCount
			file.Preamp = msg.Preamp
			file.Dropped = msg.Dropped
			file.Error = msg.Error

			if msg.Error != nil {
				file.Status = StatusError
				m.FailedFiles++
			} else {
				file.Status = StatusComplete
				m.CompletedFiles++
			}
		}

	case AllCompleteMsg:
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Done {
		return renderCompletionSummary(m)
	}

	return renderConversionView(m)
}
