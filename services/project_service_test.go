package services

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/storage"
	"github.com/taskhive/taskhive/testutil"
)

func newTestStore(t *testing.T) *storage.LocalStore {
	t.Helper()
	store, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	return store
}

func TestCreateProjectDefaults(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewProjectService(newTestStore(t))

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)

	created, err := svc.CreateProject(asActor(owner), dto.CreateProjectRequest{Name: "Website Relaunch"})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusActive, created.Status)
	assert.Equal(t, owner.ID, created.OwnerID)
	require.NotNil(t, created.Owner)
	assert.Equal(t, "owner", created.Owner.Username)

	var activities []models.Activity
	require.NoError(t, db.Where("action = ?", models.ActionCreateProject).Find(&activities).Error)
	require.Len(t, activities, 1)
	assert.Contains(t, activities[0].Description, "Website Relaunch")
}

func TestUpdateProjectAuthorization(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewProjectService(newTestStore(t))

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	outsider := testutil.CreateUser(t, db, "outsider", models.RoleMember)
	admin := testutil.CreateUser(t, db, "root", models.RoleAdmin)
	project := testutil.CreateProject(t, db, "Build", owner.ID)

	name := "Renamed"
	_, err := svc.UpdateProject(asActor(outsider), project.ID, dto.UpdateProjectRequest{Name: &name})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	updated, err := svc.UpdateProject(asActor(owner), project.ID, dto.UpdateProjectRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)

	status := models.ProjectStatusCompleted
	updated, err = svc.UpdateProject(asActor(admin), project.ID, dto.UpdateProjectRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusCompleted, updated.Status)
}

func TestUpdateProjectDeadline(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewProjectService(newTestStore(t))

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	project := testutil.CreateProject(t, db, "Build", owner.ID)
	actor := asActor(owner)

	deadline := "2026-12-31"
	updated, err := svc.UpdateProject(actor, project.ID, dto.UpdateProjectRequest{Deadline: &deadline})
	require.NoError(t, err)
	require.NotNil(t, updated.Deadline)
	assert.Equal(t, 2026, updated.Deadline.Year())

	empty := ""
	updated, err = svc.UpdateProject(actor, project.ID, dto.UpdateProjectRequest{Deadline: &empty})
	require.NoError(t, err)
	assert.Nil(t, updated.Deadline)

	garbage := "whenever"
	_, err = svc.UpdateProject(actor, project.ID, dto.UpdateProjectRequest{Deadline: &garbage})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestDeleteProjectRemovesStoredContent(t *testing.T) {
	db := testutil.SetupDB(t)
	store := newTestStore(t)
	svc := NewProjectService(store)

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	project := testutil.CreateProject(t, db, "Build", owner.ID)

	storedName := "abc123.pdf"
	_, err := store.Save(storedName, strings.NewReader("report body"))
	require.NoError(t, err)
	file := models.File{
		Name:       "report.pdf",
		StoredName: storedName,
		Size:       11,
		UploadedBy: owner.ID,
		ProjectID:  &project.ID,
	}
	require.NoError(t, db.Create(&file).Error)

	require.NoError(t, svc.DeleteProject(asActor(owner), project.ID))

	_, err = os.Stat(store.Path(storedName))
	assert.True(t, os.IsNotExist(err))

	_, err = svc.GetProject(asActor(owner), project.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestListMembersOwnerLeads(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewProjectService(newTestStore(t))

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	first := testutil.CreateUser(t, db, "first", models.RoleMember)
	second := testutil.CreateUser(t, db, "second", models.RoleMember)
	project := testutil.CreateProject(t, db, "Build", owner.ID)
	actor := asActor(owner)

	_, err := svc.AddMember(actor, project.ID, dto.AddMemberRequest{UserID: first.ID})
	require.NoError(t, err)
	_, err = svc.AddMember(actor, project.ID, dto.AddMemberRequest{UserID: second.ID})
	require.NoError(t, err)

	members, err := svc.ListMembers(actor, project.ID)
	require.NoError(t, err)
	require.Len(t, members, 3)

	assert.True(t, members[0].Owner)
	require.NotNil(t, members[0].User)
	assert.Equal(t, "owner", members[0].User.Username)
	assert.Nil(t, members[0].AddedAt)

	for _, m := range members[1:] {
		assert.False(t, m.Owner)
		require.NotNil(t, m.AddedAt)
	}
}

func TestAddMemberRejectsOwnerAndDuplicates(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewProjectService(newTestStore(t))

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	member := testutil.CreateUser(t, db, "member", models.RoleMember)
	project := testutil.CreateProject(t, db, "Build", owner.ID)
	actor := asActor(owner)

	_, err := svc.AddMember(actor, project.ID, dto.AddMemberRequest{UserID: owner.ID})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	_, err = svc.AddMember(actor, project.ID, dto.AddMemberRequest{UserID: member.ID})
	require.NoError(t, err)

	_, err = svc.AddMember(actor, project.ID, dto.AddMemberRequest{UserID: member.ID})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, apperrors.MessageOf(err), "already a member")

	_, err = svc.AddMember(actor, project.ID, dto.AddMemberRequest{UserID: "00000000-0000-0000-0000-00000000dead"})
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestRemoveMember(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewProjectService(newTestStore(t))

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	member := testutil.CreateUser(t, db, "member", models.RoleMember)
	project := testutil.CreateProject(t, db, "Build", owner.ID)
	actor := asActor(owner)

	_, err := svc.AddMember(actor, project.ID, dto.AddMemberRequest{UserID: member.ID})
	require.NoError(t, err)

	err = svc.RemoveMember(actor, project.ID, owner.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))

	require.NoError(t, svc.RemoveMember(actor, project.ID, member.ID))

	err = svc.RemoveMember(actor, project.ID, member.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}
