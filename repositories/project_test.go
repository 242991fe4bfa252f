package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/testutil"
)

func TestProjectDeleteCascades(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewProjectRepository()

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	member := testutil.CreateUser(t, db, "member", models.RoleMember)
	doomed := testutil.CreateProject(t, db, "Doomed", owner.ID)
	kept := testutil.CreateProject(t, db, "Kept", owner.ID)

	task := testutil.CreateTask(t, db, "doomed task", doomed.ID, owner.ID, models.TaskStatusTodo)
	keptTask := testutil.CreateTask(t, db, "kept task", kept.ID, owner.ID, models.TaskStatusTodo)

	require.NoError(t, db.Create(&models.ProjectMember{ProjectID: doomed.ID, UserID: member.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{Content: "on task", UserID: member.ID, TaskID: &task.ID}).Error)
	require.NoError(t, db.Create(&models.Comment{Content: "on project", UserID: member.ID, ProjectID: &doomed.ID}).Error)
	require.NoError(t, db.Create(&models.File{Name: "a.txt", StoredName: "abc.txt", Size: 3, UploadedBy: member.ID, ProjectID: &doomed.ID}).Error)
	require.NoError(t, db.Create(&models.Activity{Action: models.ActionCreateProject, Description: "created", UserID: owner.ID, ProjectID: &doomed.ID}).Error)

	require.NoError(t, repo.Delete(doomed.ID))

	var count int64
	db.Model(&models.Task{}).Where("project_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count, "tasks should be gone")
	db.Model(&models.ProjectMember{}).Where("project_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count, "membership rows should be gone")
	db.Model(&models.Comment{}).Count(&count)
	assert.Zero(t, count, "project and task comments should be gone")
	db.Model(&models.File{}).Where("project_id = ?", doomed.ID).Count(&count)
	assert.Zero(t, count, "file metadata should be gone")

	// The feed keeps its history
	db.Model(&models.Activity{}).Where("project_id = ?", doomed.ID).Count(&count)
	assert.Equal(t, int64(1), count)

	// The project itself is soft deleted
	err := db.First(&models.Project{}, "id = ?", doomed.ID).Error
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
	require.NoError(t, db.Unscoped().First(&models.Project{}, "id = ?", doomed.ID).Error)

	// The sibling project is untouched
	require.NoError(t, db.First(&models.Project{}, "id = ?", kept.ID).Error)
	require.NoError(t, db.First(&models.Task{}, "id = ?", keptTask.ID).Error)
}

func TestProjectOwnerID(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewProjectRepository()

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	project := testutil.CreateProject(t, db, "Mine", owner.ID)

	got, err := repo.OwnerID(project.ID)
	require.NoError(t, err)
	assert.Equal(t, owner.ID, got)

	_, err = repo.OwnerID("00000000-0000-0000-0000-00000000dead")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestProjectCountCreatedSince(t *testing.T) {
	db := testutil.SetupDB(t)
	repo := NewProjectRepository()

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	testutil.CreateProject(t, db, "Fresh", owner.ID)
	stale := testutil.CreateProject(t, db, "Stale", owner.ID)
	twoMonthsAgo := time.Now().AddDate(0, -2, 0)
	require.NoError(t, db.Model(&models.Project{}).Where("id = ?", stale.ID).Update("created_at", twoMonthsAgo).Error)

	count, err := repo.CountCreatedSince(time.Now().AddDate(0, -1, 0))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
