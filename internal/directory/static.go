package directory

import (
	"encoding/json"
	"fmt"
	"os"

	"smartmeet/internal/model"
)

// participantRecord is the JSON wire format for directory files
type participantRecord struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Title      string `json:"title"`
}

// directoryFile is the top-level structure of a directory JSON file
type directoryFile struct {
	Participants []participantRecord `json:"participants"`
}

// Default returns the built-in company directory
func Default() *Directory {
	return New([]model.Participant{
		{Email: "john.smith@company.com", Name: "John Smith", Department: "Engineering", Title: "Software Engineer"},
		{Email: "sarah.johnson@company.com", Name: "Sarah Johnson", Department: "Marketing", Title: "Marketing Manager"},
		{Email: "mike.davis@company.com", Name: "Mike Davis", Department: "Sales", Title: "Sales Representative"},
		{Email: "emily.brown@company.com", Name: "Emily Brown", Department: "HR", Title: "HR Manager"},
		{Email: "david.wilson@company.com", Name: "David Wilson", Department: "Engineering", Title: "Senior Developer"},
		{Email: "lisa.anderson@company.com", Name: "Lisa Anderson", Department: "Finance", Title: "Financial Analyst"},
		{Email: "james.taylor@company.com", Name: "James Taylor", Department: "Operations", Title: "Operations Manager"},
		{Email: "maria.garcia@company.com", Name: "Maria Garcia", Department: "Design", Title: "UX Designer"},
		{Email: "robert.martinez@company.com", Name: "Robert Martinez", Department: "Engineering", Title: "Tech Lead"},
		{Email: "jennifer.lee@company.com", Name: "Jennifer Lee", Department: "Marketing", Title: "Content Manager"},
		{Email: "michael.johnson@company.com", Name: "Michael Johnson", Department: "Sales", Title: "Account Executive"},
		{Email: "sarah.davis@company.com", Name: "Sarah Davis", Department: "Engineering", Title: "QA Engineer"},
		{Email: "john.brown@company.com", Name: "John Brown", Department: "Finance", Title: "Controller"},
		{Email: "amy.wilson@company.com", Name: "Amy Wilson", Department: "HR", Title: "Recruiter"},
		{Email: "chris.miller@company.com", Name: "Chris Miller", Department: "Operations", Title: "Project Manager"},
	})
}

// Load reads a directory from a JSON file. An empty path returns the
// built-in directory.
func Load(path string) (*Directory, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory file: %w", err)
	}

	var file directoryFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse directory file: %w", err)
	}

	if len(file.Participants) == 0 {
		return nil, fmt.Errorf("directory file %s has no participants", path)
	}

	participants := make([]model.Participant, 0, len(file.Participants))
	for _, r := range file.Participants {
		if r.Email == "" || r.Name == "" {
			return nil, fmt.Errorf("directory file %s has an entry without name or email", path)
		}
		participants = append(participants, model.Participant{
			Email:      r.Email,
			Name:       r.Name,
			Department: r.Department,
			Title:      r.Title,
		})
	}

	return New(participants), nil
}
