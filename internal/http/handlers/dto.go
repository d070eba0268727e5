package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"project_tracker/internal/service"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required,max=255"`
	Password string `json:"password" binding:"required"`
}

type projectRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=1000"`
}

func (r projectRequest) input() service.ProjectInput {
	return service.ProjectInput{Title: r.Title, Description: r.Description}
}

type taskRequest struct {
	Title       string    `json:"title" binding:"required,max=200"`
	Description *string   `json:"description" binding:"omitempty,max=1000"`
	DueDate     *flexTime `json:"dueDate"`
	// only read by POST /tasks?projectId= when the query is absent
	ProjectID int64 `json:"projectId"`
}

func (r taskRequest) input() service.TaskInput {
	in := service.TaskInput{Title: r.Title, Description: r.Description}
	if r.DueDate != nil && !r.DueDate.IsZero() {
		t := r.DueDate.Time.UTC()
		in.DueDate = &t
	}
	return in
}

// flexTime accepts RFC 3339 timestamps as well as bare dates and
// datetime-local values sent by HTML date inputs. Empty string means unset.
type flexTime struct {
	time.Time
}

var flexLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	time.DateOnly,
}

func (f *flexTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("dueDate: %w", err)
	}
	if s == "" {
		return nil
	}
	for _, layout := range flexLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			f.Time = t
			return nil
		}
	}
	return fmt.Errorf("dueDate: unsupported time format %q", s)
}
