package dto

// DashboardResponse is the on-demand aggregation backing the dashboard view.
// Nothing here is persisted; every call recomputes against the store.
type DashboardResponse struct {
	TotalProjects      int64 `json:"totalProjects"`
	TasksInProgress    int64 `json:"tasksInProgress"`
	TasksCompleted     int64 `json:"tasksCompleted"`
	TeamMembers        int64 `json:"teamMembers"`
	TasksDueSoon       int64 `json:"tasksDueSoon"`       // due within 7 days, not completed
	TasksCompletedWeek int64 `json:"tasksCompletedWeek"` // completed within the trailing 7 days
	ProjectsThisMonth  int64 `json:"projectsThisMonth"`  // created within the trailing month
}
