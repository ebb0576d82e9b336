package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/etnz/classwork/academy"
)

// InsertCourse stores c, its program and its teachers in one transaction.
func (s *Store) InsertCourse(ctx context.Context, c *academy.Course) (int64, error) {
	if c == nil {
		return 0, fmt.Errorf("cannot insert a nil course")
	}
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		if room, ok := c.Room(); ok {
			known, err := s.exists(ctx, tx, `SELECT 1 FROM Rooms WHERE id_room = ?`, room)
			if err != nil {
				return err
			}
			if !known {
				return notFound("room", room)
			}
		}

		if err := s.queryRow(ctx, tx, `INSERT INTO Courses DEFAULT VALUES RETURNING id_course`).Scan(&id); err != nil {
			return fmt.Errorf("could not allocate a course id: %w", err)
		}

		switch k := c.Kind().(type) {
		case academy.Local:
			_, err := s.exec(ctx, tx, `INSERT INTO LocalCourses (id_course, name, room) VALUES (?, ?, ?)`, id, c.Name(), k.Room)
			if err != nil {
				return err
			}
		case academy.Offsite:
			_, err := s.exec(ctx, tx, `INSERT INTO OffsiteCourses (id_course, name, address) VALUES (?, ?, ?)`, id, c.Name(), k.Address)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("course %q has no kind", c.Name())
		}

		for i, topic := range c.Program() {
			if _, err := s.exec(ctx, tx, `INSERT INTO Topics (id_topic) VALUES (?) ON CONFLICT DO NOTHING`, topic); err != nil {
				return err
			}
			if _, err := s.exec(ctx, tx, `INSERT INTO Program (id_course, id_topic, position) VALUES (?, ?, ?)`, id, topic, i); err != nil {
				return err
			}
		}

		for _, t := range c.Teachers() {
			teacherID, err := s.addTeacher(ctx, tx, t)
			if err != nil {
				return err
			}
			_, err = s.exec(ctx, tx, `INSERT INTO CoursesTeachers (id_course, id_teacher) VALUES (?, ?) ON CONFLICT DO NOTHING`, id, teacherID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("could not insert course %q: %w", c.Name(), err)
	}
	c.ID = id
	s.log.Info("course inserted", "id", id, "name", c.Name(), "local", c.IsLocal())
	return id, nil
}

// Course loads the course with its program and teachers.
func (s *Store) Course(ctx context.Context, id int64) (*academy.Course, error) {
	if err := academy.ValidateID(id); err != nil {
		return nil, err
	}
	var (
		localName, address, offsiteName sql.NullString
		room                            sql.NullInt64
	)
	err := s.queryRow(ctx, s.db, `
		SELECT l.name, l.room, o.name, o.address
		FROM Courses c
		LEFT JOIN LocalCourses l ON l.id_course = c.id_course
		LEFT JOIN OffsiteCourses o ON o.id_course = c.id_course
		WHERE c.id_course = ?`, id).Scan(&localName, &room, &offsiteName, &address)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("course", id)
	}
	if err != nil {
		return nil, err
	}

	program, err := s.program(ctx, id)
	if err != nil {
		return nil, err
	}

	var c *academy.Course
	switch {
	case localName.Valid:
		c, err = academy.NewLocalCourse(localName.String, int(room.Int64), program...)
	case offsiteName.Valid:
		c, err = academy.NewOffsiteCourse(offsiteName.String, address.String, program...)
	default:
		return nil, notFound("course", id)
	}
	if err != nil {
		return nil, fmt.Errorf("course %d is corrupted: %w", id, err)
	}
	c.ID = id

	teachers, err := s.courseTeachers(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.AddTeacher(teachers...); err != nil {
		return nil, fmt.Errorf("course %d is corrupted: %w", id, err)
	}
	return c, nil
}

// courses loads every course listed by query.
func (s *Store) courses(ctx context.Context, query string, args ...any) ([]*academy.Course, error) {
	ids, err := collect(ctx, s, s.db, scanInt64, query, args...)
	if err != nil {
		return nil, err
	}
	courses := make([]*academy.Course, 0, len(ids))
	for _, id := range ids {
		c, err := s.Course(ctx, id)
		if err != nil {
			return nil, err
		}
		courses = append(courses, c)
	}
	return courses, nil
}

func (s *Store) LocalCourses(ctx context.Context) ([]*academy.Course, error) {
	return s.courses(ctx, `SELECT id_course FROM LocalCourses ORDER BY id_course`)
}

func (s *Store) OffsiteCourses(ctx context.Context) ([]*academy.Course, error) {
	return s.courses(ctx, `SELECT id_course FROM OffsiteCourses ORDER BY id_course`)
}

func (s *Store) Courses(ctx context.Context) ([]*academy.Course, error) {
	local, err := s.LocalCourses(ctx)
	if err != nil {
		return nil, err
	}
	offsite, err := s.OffsiteCourses(ctx)
	if err != nil {
		return nil, err
	}
	return append(local, offsite...), nil
}

// TeacherCourses returns the courses taught by a teacher.
func (s *Store) TeacherCourses(ctx context.Context, teacherID int64) ([]*academy.Course, error) {
	if _, err := s.Teacher(ctx, teacherID); err != nil {
		return nil, err
	}
	return s.courses(ctx, `SELECT id_course FROM CoursesTeachers WHERE id_teacher = ? ORDER BY id_course`, teacherID)
}

// Program returns the topics of a course, in order.
func (s *Store) Program(ctx context.Context, courseID int64) ([]string, error) {
	if err := s.checkCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return s.program(ctx, courseID)
}

func (s *Store) program(ctx context.Context, courseID int64) ([]string, error) {
	return collect(ctx, s, s.db, scanString, `SELECT id_topic FROM Program WHERE id_course = ? ORDER BY position`, courseID)
}

func (s *Store) Topics(ctx context.Context) ([]string, error) {
	return collect(ctx, s, s.db, scanString, `SELECT id_topic FROM Topics ORDER BY id_topic`)
}

// checkCourse fails unless id is a stored course.
func (s *Store) checkCourse(ctx context.Context, id int64) error {
	if err := academy.ValidateID(id); err != nil {
		return err
	}
	ok, err := s.exists(ctx, s.db, `SELECT 1 FROM Courses WHERE id_course = ?`, id)
	if err != nil {
		return err
	}
	if !ok {
		return notFound("course", id)
	}
	return nil
}
