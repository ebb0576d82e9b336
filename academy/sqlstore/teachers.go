package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/etnz/classwork/academy"
)

const teacherColumns = `t.id_teacher, t.surname, t.name, t.patronymic, t.birth_date`

func (s *Store) AddTeacher(ctx context.Context, t academy.Teacher) (int64, error) {
	var id int64
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var err error
		id, err = s.addTeacher(ctx, tx, t)
		return err
	})
	if err != nil {
		return 0, fmt.Errorf("could not add teacher %v: %w", t, err)
	}
	s.log.Info("teacher added", "id", id, "surname", t.Surname)
	return id, nil
}

// addTeacher inserts t unless the same person exists, and returns its ID.
func (s *Store) addTeacher(ctx context.Context, q querier, t academy.Teacher) (int64, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	_, err := s.exec(ctx, q, `
		INSERT INTO Teachers (surname, name, patronymic, birth_date) VALUES (?, ?, ?, ?)
		ON CONFLICT DO NOTHING`, t.Surname, t.Name, t.Patronymic, t.BirthDate)
	if err != nil {
		return 0, err
	}
	var id int64
	err = s.queryRow(ctx, q, `
		SELECT id_teacher FROM Teachers
		WHERE surname = ? AND name = ? AND patronymic = ? AND birth_date = ?`,
		t.Surname, t.Name, t.Patronymic, t.BirthDate).Scan(&id)
	return id, err
}

func (s *Store) Teacher(ctx context.Context, id int64) (academy.Teacher, error) {
	if err := academy.ValidateID(id); err != nil {
		return academy.Teacher{}, err
	}
	var t academy.Teacher
	err := s.queryRow(ctx, s.db, `SELECT `+teacherColumns+` FROM Teachers t WHERE t.id_teacher = ?`, id).
		Scan(&t.ID, &t.Surname, &t.Name, &t.Patronymic, &t.BirthDate)
	if errors.Is(err, sql.ErrNoRows) {
		return academy.Teacher{}, notFound("teacher", id)
	}
	return t, err
}

func (s *Store) Teachers(ctx context.Context) ([]academy.Teacher, error) {
	return collect(ctx, s, s.db, scanTeacher, `SELECT `+teacherColumns+` FROM Teachers t ORDER BY t.id_teacher`)
}

// CourseTeachers returns the teachers of a course.
func (s *Store) CourseTeachers(ctx context.Context, courseID int64) ([]academy.Teacher, error) {
	if err := s.checkCourse(ctx, courseID); err != nil {
		return nil, err
	}
	return s.courseTeachers(ctx, courseID)
}

func (s *Store) courseTeachers(ctx context.Context, courseID int64) ([]academy.Teacher, error) {
	return collect(ctx, s, s.db, scanTeacher, `
		SELECT `+teacherColumns+`
		FROM CoursesTeachers ct JOIN Teachers t ON t.id_teacher = ct.id_teacher
		WHERE ct.id_course = ?
		ORDER BY t.id_teacher`, courseID)
}
