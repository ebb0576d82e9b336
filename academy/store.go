package academy

import "context"

// Store persists the academy.
//
// Identifiers are positive: methods taking one fail with classwork.ErrValue
// otherwise, and with classwork.ErrNotFound when nothing matches.
type Store interface {
	// InsertCourse stores c with its program and teachers, sets c.ID and
	// returns it. A local course must be held in a known room.
	InsertCourse(ctx context.Context, c *Course) (int64, error)
	Course(ctx context.Context, id int64) (*Course, error)
	// Courses returns local courses first, then offsite ones.
	Courses(ctx context.Context) ([]*Course, error)
	LocalCourses(ctx context.Context) ([]*Course, error)
	OffsiteCourses(ctx context.Context) ([]*Course, error)

	// AddTeacher stores t unless the same person is already known, and
	// returns the teacher ID in both cases.
	AddTeacher(ctx context.Context, t Teacher) (int64, error)
	Teacher(ctx context.Context, id int64) (Teacher, error)
	Teachers(ctx context.Context) ([]Teacher, error)
	TeacherCourses(ctx context.Context, teacherID int64) ([]*Course, error)
	CourseTeachers(ctx context.Context, courseID int64) ([]Teacher, error)

	Program(ctx context.Context, courseID int64) ([]string, error)
	// Topics returns every topic ever taught, sorted.
	Topics(ctx context.Context) ([]string, error)

	AddRoom(ctx context.Context, room int) error
	Rooms(ctx context.Context) ([]int, error)

	// ClearAll deletes everything.
	ClearAll(ctx context.Context) error
	Close() error
}
