package academy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/etnz/classwork"
)

// Teacher is a person teaching at the academy.
//
// A teacher is identified by the four personal fields together; ID is zero
// until the teacher is stored.
type Teacher struct {
	ID         int64
	Surname    string
	Name       string
	Patronymic string
	BirthDate  string
}

// NewTeacher returns a validated Teacher. Patronymic may be empty, the birth
// date is free text.
func NewTeacher(surname, name, patronymic, birthDate string) (Teacher, error) {
	t := Teacher{Surname: surname, Name: name, Patronymic: patronymic, BirthDate: birthDate}
	return t, t.Validate()
}

// Validate checks that surname and name are set.
func (t Teacher) Validate() error {
	var errs error
	if strings.TrimSpace(t.Surname) == "" {
		errs = errors.Join(errs, fmt.Errorf("teacher surname is empty: %w", classwork.ErrValue))
	}
	if strings.TrimSpace(t.Name) == "" {
		errs = errors.Join(errs, fmt.Errorf("teacher name is empty: %w", classwork.ErrValue))
	}
	return errs
}

// Same reports whether t and u are the same person, regardless of ID.
func (t Teacher) Same(u Teacher) bool {
	return t.Surname == u.Surname && t.Name == u.Name && t.Patronymic == u.Patronymic && t.BirthDate == u.BirthDate
}

// String returns "Surname Name Patronymic (BirthDate)".
func (t Teacher) String() string {
	return fmt.Sprintf("%s %s %s (%s)", t.Surname, t.Name, t.Patronymic, t.BirthDate)
}
