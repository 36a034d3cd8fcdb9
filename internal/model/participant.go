package model

// Participant is a directory entry for someone who can attend meetings
type Participant struct {
	Email      string // Unique identifier within the directory
	Name       string // Display name (e.g. "John Smith")
	Department string // Organizational unit
	Title      string // Job title
}
