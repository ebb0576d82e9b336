package sqlstore

import (
	"context"
	"testing"

	"github.com/etnz/classwork"
	"github.com/etnz/classwork/academy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), Config{Driver: "sqlite", DSN: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func mustTeacher(t *testing.T, surname, name, patronymic, birth string) academy.Teacher {
	t.Helper()
	teacher, err := academy.NewTeacher(surname, name, patronymic, birth)
	require.NoError(t, err)
	return teacher
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), Config{Driver: "oracle"})
	require.ErrorIs(t, err, classwork.ErrValue)
}

func TestRebind(t *testing.T) {
	d, err := dialectFor("postgres")
	require.NoError(t, err)
	assert.Equal(t, "SELECT a FROM t WHERE b = $1 AND c = $2", d.rebind("SELECT a FROM t WHERE b = ? AND c = ?"))

	d, err = dialectFor("")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.name)
	assert.Equal(t, "b = ?", d.rebind("b = ?"))
}

func TestRooms(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.AddRoom(ctx, 12))
	require.NoError(t, s.AddRoom(ctx, 3))
	require.ErrorIs(t, s.AddRoom(ctx, 12), classwork.ErrDuplicateKey)
	require.ErrorIs(t, s.AddRoom(ctx, 0), classwork.ErrValue)

	rooms, err := s.Rooms(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 12}, rooms)
}

func TestInsertCourse_RoundTrip(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.AddRoom(ctx, 12))

	doe := mustTeacher(t, "Doe", "John", "Paul", "1980-01-02")
	roe := mustTeacher(t, "Roe", "Jane", "", "1990-05-06")

	local, err := academy.NewLocalCourse("Go basics", 12, "types", "interfaces", "errors")
	require.NoError(t, err)
	require.NoError(t, local.AddTeacher(doe, roe))
	localID, err := s.InsertCourse(ctx, local)
	require.NoError(t, err)
	assert.Equal(t, localID, local.ID)

	offsite, err := academy.NewOffsiteCourse("Go advanced", "Main street 1", "generics", "types")
	require.NoError(t, err)
	require.NoError(t, offsite.AddTeacher(doe))
	offsiteID, err := s.InsertCourse(ctx, offsite)
	require.NoError(t, err)
	assert.NotEqual(t, localID, offsiteID)

	got, err := s.Course(ctx, localID)
	require.NoError(t, err)
	assert.Equal(t, local.String(), got.String())
	room, ok := got.Room()
	assert.True(t, ok)
	assert.Equal(t, 12, room)

	got, err = s.Course(ctx, offsiteID)
	require.NoError(t, err)
	address, ok := got.Address()
	assert.True(t, ok)
	assert.Equal(t, "Main street 1", address)
	assert.Equal(t, []string{"generics", "types"}, got.Program())

	courses, err := s.Courses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Go basics", courses[0].Name())
	assert.Equal(t, "Go advanced", courses[1].Name())

	localCourses, err := s.LocalCourses(ctx)
	require.NoError(t, err)
	require.Len(t, localCourses, 1)
	offsiteCourses, err := s.OffsiteCourses(ctx)
	require.NoError(t, err)
	require.Len(t, offsiteCourses, 1)

	// Doe teaches both courses but is stored once.
	teachers, err := s.Teachers(ctx)
	require.NoError(t, err)
	require.Len(t, teachers, 2)

	topics, err := s.Topics(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"errors", "generics", "interfaces", "types"}, topics)

	program, err := s.Program(ctx, localID)
	require.NoError(t, err)
	assert.Equal(t, []string{"types", "interfaces", "errors"}, program)

	courseTeachers, err := s.CourseTeachers(ctx, localID)
	require.NoError(t, err)
	require.Len(t, courseTeachers, 2)
	assert.True(t, courseTeachers[0].Same(doe))
	assert.True(t, courseTeachers[1].Same(roe))

	taught, err := s.TeacherCourses(ctx, courseTeachers[0].ID)
	require.NoError(t, err)
	require.Len(t, taught, 2)
	taught, err = s.TeacherCourses(ctx, courseTeachers[1].ID)
	require.NoError(t, err)
	require.Len(t, taught, 1)
	assert.Equal(t, localID, taught[0].ID)
}

func TestInsertCourse_UnknownRoom(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	c, err := academy.NewLocalCourse("Go basics", 7, "types")
	require.NoError(t, err)
	_, err = s.InsertCourse(ctx, c)
	require.ErrorIs(t, err, classwork.ErrNotFound)
	assert.Zero(t, c.ID)

	// Nothing was left behind by the failed transaction.
	courses, err := s.Courses(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestAddTeacher_Dedup(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	doe := mustTeacher(t, "Doe", "John", "Paul", "1980-01-02")
	id1, err := s.AddTeacher(ctx, doe)
	require.NoError(t, err)
	id2, err := s.AddTeacher(ctx, doe)
	require.NoError(t, err)
	assert.Equal(t, id1, id2)

	other := mustTeacher(t, "Doe", "John", "Paul", "1981-01-02")
	id3, err := s.AddTeacher(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, id1, id3)

	got, err := s.Teacher(ctx, id1)
	require.NoError(t, err)
	assert.Equal(t, "Doe John Paul (1980-01-02)", got.String())

	_, err = s.AddTeacher(ctx, academy.Teacher{Surname: "Doe"})
	require.ErrorIs(t, err, classwork.ErrValue)
}

func TestMissing(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	_, err := s.Course(ctx, 42)
	require.ErrorIs(t, err, classwork.ErrNotFound)
	_, err = s.Course(ctx, 0)
	require.ErrorIs(t, err, classwork.ErrValue)
	_, err = s.Teacher(ctx, 42)
	require.ErrorIs(t, err, classwork.ErrNotFound)
	_, err = s.Teacher(ctx, -1)
	require.ErrorIs(t, err, classwork.ErrValue)
	_, err = s.Program(ctx, 42)
	require.ErrorIs(t, err, classwork.ErrNotFound)
	_, err = s.CourseTeachers(ctx, 42)
	require.ErrorIs(t, err, classwork.ErrNotFound)
	_, err = s.TeacherCourses(ctx, 42)
	require.ErrorIs(t, err, classwork.ErrNotFound)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.AddRoom(ctx, 1))
	c, err := academy.NewLocalCourse("Go", 1, "types")
	require.NoError(t, err)
	require.NoError(t, c.AddTeacher(mustTeacher(t, "Doe", "John", "", "")))
	_, err = s.InsertCourse(ctx, c)
	require.NoError(t, err)

	require.NoError(t, s.ClearAll(ctx))

	courses, err := s.Courses(ctx)
	require.NoError(t, err)
	assert.Empty(t, courses)
	teachers, err := s.Teachers(ctx)
	require.NoError(t, err)
	assert.Empty(t, teachers)
	rooms, err := s.Rooms(ctx)
	require.NoError(t, err)
	assert.Empty(t, rooms)
	topics, err := s.Topics(ctx)
	require.NoError(t, err)
	assert.Empty(t, topics)
}
