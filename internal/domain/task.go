package domain

import "time"

// Task states: Pending (IsCompleted=false) and Completed (IsCompleted=true).
type Task struct {
	ID          int64      `db:"id" json:"id"`
	ProjectID   int64      `db:"project_id" json:"projectId"`
	Title       string     `db:"title" json:"title"`
	Description *string    `db:"description" json:"description"`
	DueDate     *time.Time `db:"due_date" json:"dueDate"`
	IsCompleted bool       `db:"is_completed" json:"isCompleted"`
	CreatedAt   time.Time  `db:"created_at" json:"createdAt"`
	CompletedAt *time.Time `db:"completed_at" json:"completedAt"`
}

// Toggle flips the completion flag. Completing stamps CompletedAt with now,
// reopening clears it.
func (t *Task) Toggle(now time.Time) {
	t.IsCompleted = !t.IsCompleted
	if t.IsCompleted {
		ts := now
		t.CompletedAt = &ts
		return
	}
	t.CompletedAt = nil
}
