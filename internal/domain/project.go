package domain

import "time"

const (
	MaxTitleLength       = 200
	MaxDescriptionLength = 1000
)

// Project is a named container of tasks owned by one user.
type Project struct {
	ID          int64     `db:"id" json:"id"`
	UserID      int64     `db:"user_id" json:"-"`
	Title       string    `db:"title" json:"title"`
	Description *string   `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// ProjectSummary is a project with its progress, as returned by listings.
type ProjectSummary struct {
	Project
	Stats Progress `json:"stats"`
}

// ProjectDetails extends the summary with the full task list.
type ProjectDetails struct {
	ProjectSummary
	Tasks []*Task `json:"tasks"`
}

func NewProjectDetails(p *Project, tasks []*Task) *ProjectDetails {
	if tasks == nil {
		tasks = []*Task{}
	}
	return &ProjectDetails{
		ProjectSummary: ProjectSummary{Project: *p, Stats: ProgressOf(tasks)},
		Tasks:          tasks,
	}
}

// ProjectWithCounts carries a project and the task counters it was listed with.
type ProjectWithCounts struct {
	Project
	TotalTasks     int
	CompletedTasks int
}

func (p *ProjectWithCounts) Summary() ProjectSummary {
	return ProjectSummary{Project: p.Project, Stats: NewProgress(p.TotalTasks, p.CompletedTasks)}
}
