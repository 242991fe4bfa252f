package services

import (
	"bytes"
	"io"
	"mime/multipart"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskhive/taskhive/apperrors"
	"github.com/taskhive/taskhive/dto"
	"github.com/taskhive/taskhive/models"
	"github.com/taskhive/taskhive/policy"
	"github.com/taskhive/taskhive/testutil"
)

// multipartHeader builds a real multipart file header the way gin would hand
// one to the handler.
func multipartHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = io.WriteString(part, content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestUploadRejectsOversize(t *testing.T) {
	testutil.SetupDB(t)
	svc := NewFileService(newTestStore(t))

	actor := &policy.Actor{ID: "u1", Role: models.RoleMember}
	header := &multipart.FileHeader{Filename: "huge.bin", Size: MaxUploadBytes + 1}

	_, err := svc.Upload(actor, header, "", "", "some-project")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	assert.Contains(t, apperrors.MessageOf(err), "50 MiB")
}

func TestUploadToProject(t *testing.T) {
	db := testutil.SetupDB(t)
	store := newTestStore(t)
	svc := NewFileService(store)

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	project := testutil.CreateProject(t, db, "Build", owner.ID)

	header := multipartHeader(t, "Design Notes.PDF", "lorem ipsum")
	resp, err := svc.Upload(asActor(owner), header, "first draft", "", project.ID)
	require.NoError(t, err)

	assert.Equal(t, "Design Notes.PDF", resp.Name)
	assert.Equal(t, int64(len("lorem ipsum")), resp.Size)
	assert.Equal(t, "first draft", resp.Description)
	require.NotNil(t, resp.ProjectID)
	assert.Equal(t, project.ID, *resp.ProjectID)
	assert.Nil(t, resp.TaskID)

	// Content lands on disk under the generated stored name
	var file models.File
	require.NoError(t, db.Where("id = ?", resp.ID).First(&file).Error)
	assert.Equal(t, ".pdf", file.StoredName[len(file.StoredName)-4:])
	content, err := os.ReadFile(store.Path(file.StoredName))
	require.NoError(t, err)
	assert.Equal(t, "lorem ipsum", string(content))

	var count int64
	db.Model(&models.Activity{}).Where("action = ?", models.ActionUploadFile).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestUploadToTaskDenormalizesProject(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewFileService(newTestStore(t))

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	project := testutil.CreateProject(t, db, "Build", owner.ID)
	other := testutil.CreateProject(t, db, "Other", owner.ID)
	task := testutil.CreateTask(t, db, "spec", project.ID, owner.ID, models.TaskStatusTodo)

	header := multipartHeader(t, "notes.txt", "hello")
	resp, err := svc.Upload(asActor(owner), header, "", task.ID, "")
	require.NoError(t, err)
	require.NotNil(t, resp.TaskID)
	assert.Equal(t, task.ID, *resp.TaskID)
	require.NotNil(t, resp.ProjectID)
	assert.Equal(t, project.ID, *resp.ProjectID)

	// A project hint that contradicts the task is rejected
	header = multipartHeader(t, "notes.txt", "hello")
	_, err = svc.Upload(asActor(owner), header, "", task.ID, other.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUploadRequiresTarget(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewFileService(newTestStore(t))

	user := testutil.CreateUser(t, db, "worker", models.RoleMember)
	header := multipartHeader(t, "stray.txt", "no home")

	_, err := svc.Upload(asActor(user), header, "", "", "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestDeleteFileAuthorizationAndCleanup(t *testing.T) {
	db := testutil.SetupDB(t)
	store := newTestStore(t)
	svc := NewFileService(store)

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	uploader := testutil.CreateUser(t, db, "uploader", models.RoleMember)
	bystander := testutil.CreateUser(t, db, "bystander", models.RoleMember)
	project := testutil.CreateProject(t, db, "Build", owner.ID)

	header := multipartHeader(t, "a.txt", "content")
	resp, err := svc.Upload(asActor(uploader), header, "", "", project.ID)
	require.NoError(t, err)

	var file models.File
	require.NoError(t, db.Where("id = ?", resp.ID).First(&file).Error)

	err = svc.DeleteFile(asActor(bystander), resp.ID)
	require.Error(t, err)
	assert.Equal(t, apperrors.KindForbidden, apperrors.KindOf(err))

	// The project owner may remove attachments on their project
	require.NoError(t, svc.DeleteFile(asActor(owner), resp.ID))

	_, err = os.Stat(store.Path(file.StoredName))
	assert.True(t, os.IsNotExist(err))
	_, err = svc.GetFile(asActor(owner), resp.ID)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
}

func TestDeleteFileSurvivesMissingContent(t *testing.T) {
	db := testutil.SetupDB(t)
	store := newTestStore(t)
	svc := NewFileService(store)

	uploader := testutil.CreateUser(t, db, "uploader", models.RoleMember)
	project := testutil.CreateProject(t, db, "Build", uploader.ID)

	header := multipartHeader(t, "gone.txt", "short lived")
	resp, err := svc.Upload(asActor(uploader), header, "", "", project.ID)
	require.NoError(t, err)

	var file models.File
	require.NoError(t, db.Where("id = ?", resp.ID).First(&file).Error)
	require.NoError(t, os.Remove(store.Path(file.StoredName)))

	require.NoError(t, svc.DeleteFile(asActor(uploader), resp.ID))
}

func TestListFilesFiltering(t *testing.T) {
	db := testutil.SetupDB(t)
	svc := NewFileService(newTestStore(t))

	owner := testutil.CreateUser(t, db, "owner", models.RoleTeamLeader)
	project := testutil.CreateProject(t, db, "Build", owner.ID)
	task := testutil.CreateTask(t, db, "spec", project.ID, owner.ID, models.TaskStatusTodo)
	actor := asActor(owner)

	_, err := svc.Upload(actor, multipartHeader(t, "p.txt", "p"), "", "", project.ID)
	require.NoError(t, err)
	_, err = svc.Upload(actor, multipartHeader(t, "t.txt", "t"), "", task.ID, "")
	require.NoError(t, err)

	all, err := svc.ListFiles(actor, dto.FileFilter{ProjectID: project.ID})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	byTask, err := svc.ListFiles(actor, dto.FileFilter{TaskID: task.ID})
	require.NoError(t, err)
	require.Len(t, byTask, 1)
	assert.Equal(t, "t.txt", byTask[0].Name)
	require.NotNil(t, byTask[0].Uploader)
	assert.Equal(t, "owner", byTask[0].Uploader.Username)
}
