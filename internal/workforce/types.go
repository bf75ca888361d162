// Package workforce synthesizes a per-employee workload view. The source data
// carries no task-to-individual mapping, so workstation aggregates are spread
// across the employees assigned to each workstation by an explicit allocation
// policy. The result is an approximation and is presented as such.
package workforce

// TaskDetail is one execution shown in an employee's task history.
type TaskDetail struct {
	Date  string `json:"date"`
	Heure string `json:"heure"`
	Poste int    `json:"poste"`
	Piece string `json:"piece"`
	Temps string `json:"temps"`
	Delay string `json:"delay,omitempty"`
}

// Employee is the synthetic workload of one roster member. TotalTime and
// AvgTimePerTask are in minutes; DelayRate is a percentage.
type Employee struct {
	ID             string       `json:"id"`
	Name           string       `json:"name"`
	Experience     string       `json:"experience"`
	TasksCount     int          `json:"tasksCount"`
	Delays         int          `json:"delays"`
	DelayRate      float64      `json:"delayRate"`
	Postes         []int        `json:"postes"`
	Pieces         []string     `json:"pieces"`
	TotalTime      float64      `json:"totalTime"`
	AvgTimePerTask float64      `json:"avgTimePerTask"`
	Tasks          []TaskDetail `json:"tasks"`
}

// View is the complete employee workload payload.
type View struct {
	Employees           []Employee `json:"employees"`
	TotalEmployees      int        `json:"totalEmployees"`
	TotalTasks          int        `json:"totalTasks"`
	AvgTasksPerEmployee float64    `json:"avgTasksPerEmployee"`
}
