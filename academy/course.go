// Package academy models a software academy: courses with their program and
// teachers, held in rooms of the academy or at an offsite address.
//
// Persistence is behind the Store interface, see package sqlstore.
package academy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/classwork"
)

// Kind tells where a course is taught. It is either Local or Offsite.
type Kind interface {
	kind()
	validate() error
}

// Local is a course taught in a room of the academy.
type Local struct {
	Room int
}

// Offsite is a course taught at an outside address.
type Offsite struct {
	Address string
}

func (Local) kind()   {}
func (Offsite) kind() {}

func (l Local) validate() error { return ValidateRoom(l.Room) }

func (o Offsite) validate() error {
	if strings.TrimSpace(o.Address) == "" {
		return fmt.Errorf("address is empty: %w", classwork.ErrValue)
	}
	return nil
}

// Course is a named program of topics, taught by teachers.
//
// ID is zero until the course is stored.
type Course struct {
	ID       int64
	name     string
	kind     Kind
	program  []string
	teachers []Teacher
}

// NewLocalCourse returns a course taught in room.
func NewLocalCourse(name string, room int, program ...string) (*Course, error) {
	return newCourse(name, Local{Room: room}, program)
}

// NewOffsiteCourse returns a course taught at address.
func NewOffsiteCourse(name, address string, program ...string) (*Course, error) {
	return newCourse(name, Offsite{Address: address}, program)
}

func newCourse(name string, kind Kind, program []string) (*Course, error) {
	c := &Course{}
	if err := c.SetName(name); err != nil {
		return nil, err
	}
	if err := c.SetKind(kind); err != nil {
		return nil, err
	}
	if err := c.AddTopic(program...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Course) Name() string        { return c.name }
func (c *Course) Kind() Kind          { return c.kind }
func (c *Course) Program() []string   { return slices.Clone(c.program) }
func (c *Course) Teachers() []Teacher { return slices.Clone(c.teachers) }

func (c *Course) IsLocal() bool {
	_, ok := c.kind.(Local)
	return ok
}

// Room returns the room of a local course.
func (c *Course) Room() (room int, ok bool) {
	l, ok := c.kind.(Local)
	return l.Room, ok
}

// Address returns the address of an offsite course.
func (c *Course) Address() (address string, ok bool) {
	o, ok := c.kind.(Offsite)
	return o.Address, ok
}

func (c *Course) SetName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("course name is empty: %w", classwork.ErrValue)
	}
	c.name = name
	return nil
}

// SetKind moves the course to a room or an address.
func (c *Course) SetKind(kind Kind) error {
	if kind == nil {
		return fmt.Errorf("course %q needs a room or an address: %w", c.name, classwork.ErrType)
	}
	if err := kind.validate(); err != nil {
		return fmt.Errorf("course %q: %w", c.name, err)
	}
	c.kind = kind
	return nil
}

// AddTopic appends topics to the program. Nothing is added on error.
func (c *Course) AddTopic(topics ...string) error {
	for i, t := range topics {
		if err := ValidateTopic(t); err != nil {
			return err
		}
		if slices.Contains(c.program, t) || slices.Contains(topics[:i], t) {
			return fmt.Errorf("topic %q is already in the program of %q: %w", t, c.name, classwork.ErrDuplicateKey)
		}
	}
	c.program = append(c.program, topics...)
	return nil
}

// RemoveTopic removes topics from the program. Nothing is removed on error.
func (c *Course) RemoveTopic(topics ...string) error {
	if len(c.program) == 0 {
		return fmt.Errorf("the program of %q is empty: %w", c.name, classwork.ErrEmptyCollection)
	}
	remaining := slices.Clone(c.program)
	for _, t := range topics {
		i := slices.Index(remaining, t)
		if i < 0 {
			return fmt.Errorf("topic %q is not in the program of %q: %w", t, c.name, classwork.ErrNotFound)
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	c.program = remaining
	return nil
}

// AddTeacher appends teachers to the course. Nothing is added on error.
func (c *Course) AddTeacher(teachers ...Teacher) error {
	for i, t := range teachers {
		if err := t.Validate(); err != nil {
			return err
		}
		if slices.ContainsFunc(c.teachers, t.Same) || slices.ContainsFunc(teachers[:i], t.Same) {
			return fmt.Errorf("%v already teaches %q: %w", t, c.name, classwork.ErrDuplicateKey)
		}
	}
	c.teachers = append(c.teachers, teachers...)
	return nil
}

// RemoveTeacher removes teachers from the course. Nothing is removed on error.
func (c *Course) RemoveTeacher(teachers ...Teacher) error {
	if len(c.teachers) == 0 {
		return fmt.Errorf("%q has no teacher: %w", c.name, classwork.ErrEmptyCollection)
	}
	remaining := slices.Clone(c.teachers)
	for _, t := range teachers {
		i := slices.IndexFunc(remaining, t.Same)
		if i < 0 {
			return fmt.Errorf("%v does not teach %q: %w", t, c.name, classwork.ErrNotFound)
		}
		remaining = slices.Delete(remaining, i, i+1)
	}
	c.teachers = remaining
	return nil
}

// String renders the course as the academy menu shows it:
//
//	3 |
//	"Go basics" - local course
//	Room: 12
//	Teachers: Doe John Paul (1980-01-02)
//	Program: #types #interfaces
func (c *Course) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d |\n\"%s\" ", c.ID, c.name)
	switch k := c.kind.(type) {
	case Local:
		fmt.Fprintf(&b, "- local course\nRoom: %d\n", k.Room)
	case Offsite:
		fmt.Fprintf(&b, "- offsite course\nAddress: %s\n", k.Address)
	}
	b.WriteString("Teachers: ")
	for _, t := range c.teachers {
		b.WriteString(t.String())
		b.WriteString("\n")
	}
	b.WriteString("Program: ")
	b.WriteString(FormatTopics(c.program))
	return b.String()
}
