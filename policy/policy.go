// Package policy is the single authorization decision point. Every handler
// funnels (actor, action, target) through CanPerform before touching the
// store; the function is pure so the full matrix is table-testable.
package policy

import (
	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/models"
)

// Action enumerates everything an actor can ask the system to do. The set is
// closed: handlers pick a constant, never a free-form string.
type Action string

const (
	ActionCreateProject Action = "create_project"
	ActionViewProject   Action = "view_project"
	ActionUpdateProject Action = "update_project"
	ActionDeleteProject Action = "delete_project"
	ActionAddMember     Action = "add_member"
	ActionRemoveMember  Action = "remove_member"
	ActionCreateTask    Action = "create_task"
	ActionViewTask      Action = "view_task"
	ActionUpdateTask    Action = "update_task"
	ActionDeleteTask    Action = "delete_task"
	ActionCreateComment Action = "create_comment"
	ActionViewComment   Action = "view_comment"
	ActionUploadFile    Action = "upload_file"
	ActionViewFile      Action = "view_file"
	ActionDeleteFile    Action = "delete_file"
)

// Actor is the authenticated user a request runs as. A nil Actor means the
// request carried no valid authentication.
type Actor struct {
	ID   string
	Role models.Role
}

// Target carries the ownership facts a decision needs. Leave fields empty
// when the action has no such resource (creates, lists).
type Target struct {
	// ProjectOwnerID is the owner of the governing project: the project
	// itself, or the project a task/file belongs to.
	ProjectOwnerID string
	// CreatorID is the user who created the resource: task creator or
	// file uploader.
	CreatorID string
}

// CanPerform decides whether actor may perform action on target. It returns
// nil to allow, an Unauthorized error when there is no actor, and a
// Forbidden error naming the reason otherwise. The reason always
// distinguishes an insufficient role from not being the resource owner.
func CanPerform(actor *Actor, action Action, target Target) error {
	if actor == nil {
		return apperrors.Unauthorized("authentication required")
	}
	// Admins pass every gate.
	if actor.Role == models.RoleAdmin {
		return nil
	}

	switch action {
	case ActionUpdateProject, ActionDeleteProject:
		if actor.ID != target.ProjectOwnerID {
			return apperrors.Forbidden("only the project owner can modify this project")
		}
		return nil

	case ActionAddMember, ActionRemoveMember:
		// Coarse role gate first, ownership gate second, so the denial
		// reason names the right layer.
		if actor.Role != models.RoleTeamLeader {
			return apperrors.Forbidden("insufficient role: managing members requires admin or team_leader")
		}
		if actor.ID != target.ProjectOwnerID {
			return apperrors.Forbidden("only the project owner can manage its members")
		}
		return nil

	case ActionDeleteTask:
		if actor.ID == target.CreatorID || actor.ID == target.ProjectOwnerID {
			return nil
		}
		return apperrors.Forbidden("only the task creator or the project owner can delete this task")

	case ActionDeleteFile:
		if actor.ID == target.CreatorID {
			return nil
		}
		if target.ProjectOwnerID != "" && actor.ID == target.ProjectOwnerID {
			return nil
		}
		return apperrors.Forbidden("only the uploader or the project owner can delete this file")

	default:
		// Reads, creates and comments need authentication only.
		return nil
	}
}
