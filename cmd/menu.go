package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/classwork"
	"github.com/etnz/classwork/academy"
	"github.com/google/subcommands"
)

const menuText = `		___Software Academy___
			Menu
	1. Insert new local course
	2. Insert new offsite course
	3. Display all courses
	4. Display all local courses
	5. Display all offsite courses
	6. Find course by ID
	7. Display all teachers
	8. Find teacher by ID
	9. Display courses taught by the teacher
	10. Display teachers of the course
	11. Display program of the course
	12. Display topics studied at the Software Academy
	13. Display academy rooms
	14. Add room (only for administrator)
	15. Add teacher (only for administrator)
	16. Clear Academy database (only for administrator)

	Enter 0 to exit
`

// Menu is the interactive academy console.
type Menu struct {
	store academy.Store
	gate  *academy.Gate
	in    *bufio.Scanner
	out   io.Writer
}

func NewMenu(store academy.Store, gate *academy.Gate, in io.Reader, out io.Writer) *Menu {
	return &Menu{store: store, gate: gate, in: bufio.NewScanner(in), out: out}
}

// Run shows the menu until the user enters 0 or the input ends. Errors of a
// single action are reported and the menu goes on.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText+"\n")
		line, err := m.ask("Enter number of the option: ")
		if err != nil {
			return ignoreEOF(err)
		}
		choice, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			m.oops(fmt.Errorf("invalid option %q: %w", line, classwork.ErrValue))
			continue
		}
		if choice == 0 {
			fmt.Fprintln(m.out, "Thank you! See you later")
			return nil
		}
		if err := m.do(ctx, choice); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			m.oops(err)
			continue
		}
		if _, err := m.ask("Press something to continue...\n"); err != nil {
			return ignoreEOF(err)
		}
	}
}

func (m *Menu) do(ctx context.Context, choice int) error {
	switch choice {
	case 1, 2:
		return m.insertCourse(ctx, choice == 1)
	case 3:
		return m.printCourses(m.store.Courses(ctx))
	case 4:
		return m.printCourses(m.store.LocalCourses(ctx))
	case 5:
		return m.printCourses(m.store.OffsiteCourses(ctx))
	case 6, 10, 11:
		id, err := m.askID("Enter ID of the course: ")
		if err != nil {
			return err
		}
		switch choice {
		case 6:
			c, err := m.store.Course(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(m.out, c)
			return nil
		case 10:
			return m.printTeachers(m.store.CourseTeachers(ctx, id))
		default:
			program, err := m.store.Program(ctx, id)
			if err != nil {
				return err
			}
			fmt.Fprintln(m.out, academy.FormatTopics(program))
			return nil
		}
	case 7:
		return m.printTeachers(m.store.Teachers(ctx))
	case 8, 9:
		id, err := m.askID("Enter ID of the teacher: ")
		if err != nil {
			return err
		}
		if choice == 9 {
			return m.printCourses(m.store.TeacherCourses(ctx, id))
		}
		t, err := m.store.Teacher(ctx, id)
		if err != nil {
			return err
		}
		fmt.Fprintln(m.out, t)
		return nil
	case 12:
		topics, err := m.store.Topics(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(m.out, academy.FormatTopics(topics))
		return nil
	case 13:
		rooms, err := m.store.Rooms(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(m.out, academy.FormatRooms(rooms))
		return nil
	case 14, 15, 16:
		if !m.authorize() {
			return nil
		}
		return m.admin(ctx, choice)
	}
	fmt.Fprintln(m.out, "Unexpected number. Please enter number from the list")
	return nil
}

func (m *Menu) admin(ctx context.Context, choice int) error {
	switch choice {
	case 14:
		room, err := m.askInt("Enter number of the room: ")
		if err != nil {
			return err
		}
		return m.store.AddRoom(ctx, room)
	case 15:
		t, err := m.askTeacher()
		if err != nil {
			return err
		}
		id, err := m.store.AddTeacher(ctx, t)
		if err != nil {
			return err
		}
		fmt.Fprintf(m.out, "Teacher %d: %v\n", id, t)
		return nil
	default:
		return m.store.ClearAll(ctx)
	}
}

// authorize asks for the administrator secret.
func (m *Menu) authorize() bool {
	secret, err := m.ask("Enter password to do it: ")
	if err != nil || !m.gate.Allow(secret) {
		fmt.Fprintln(m.out, "Wrong password. Access blocked")
		return false
	}
	return true
}

func (m *Menu) insertCourse(ctx context.Context, local bool) error {
	name, err := m.ask("Enter name of the course: ")
	if err != nil {
		return err
	}
	topics, err := m.ask("Enter topics studied within the course through , : ")
	if err != nil {
		return err
	}
	n, err := m.askInt("Enter number of teachers to teach it: ")
	if err != nil {
		return err
	}
	if n < 0 {
		return fmt.Errorf("number of teachers cannot be less than 0: %w", classwork.ErrValue)
	}

	var c *academy.Course
	if local {
		room, err := m.askInt("Enter number of the room where the course is taught: ")
		if err != nil {
			return err
		}
		c, err = academy.NewLocalCourse(name, room, academy.ParseTopics(topics)...)
		if err != nil {
			return err
		}
	} else {
		address, err := m.ask("Enter the address where the course is taught: ")
		if err != nil {
			return err
		}
		c, err = academy.NewOffsiteCourse(name, address, academy.ParseTopics(topics)...)
		if err != nil {
			return err
		}
	}
	for range n {
		t, err := m.askTeacher()
		if err != nil {
			return err
		}
		if err := c.AddTeacher(t); err != nil {
			return err
		}
	}
	id, err := m.store.InsertCourse(ctx, c)
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Course %d inserted\n", id)
	return nil
}

func (m *Menu) printCourses(courses []*academy.Course, err error) error {
	if err != nil {
		return err
	}
	for _, c := range courses {
		fmt.Fprintln(m.out, c)
	}
	return nil
}

func (m *Menu) printTeachers(teachers []academy.Teacher, err error) error {
	if err != nil {
		return err
	}
	for _, t := range teachers {
		fmt.Fprintf(m.out, "%d | %v\n", t.ID, t)
	}
	return nil
}

func (m *Menu) oops(err error) {
	fmt.Fprintf(m.out, "Oops, caught an error! %v\n\n", err)
}

// ask prints prompt and reads a line. It returns io.EOF when the input ends.
func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		if err := m.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return m.in.Text(), nil
}

func (m *Menu) askInt(prompt string) (int, error) {
	line, err := m.ask(prompt)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", line, classwork.ErrValue)
	}
	return n, nil
}

func (m *Menu) askID(prompt string) (int64, error) {
	n, err := m.askInt(prompt)
	if err != nil {
		return 0, err
	}
	id := int64(n)
	return id, academy.ValidateID(id)
}

func (m *Menu) askTeacher() (academy.Teacher, error) {
	var fields [4]string
	for i, prompt := range []string{"Enter teacher's surname: ", "\tname: ", "\tpatronymic: ", "\tbirth date: "} {
		v, err := m.ask(prompt)
		if err != nil {
			return academy.Teacher{}, err
		}
		fields[i] = strings.TrimSpace(v)
	}
	return academy.NewTeacher(fields[0], fields[1], fields[2], fields[3])
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// menuCmd runs the interactive academy console.
type menuCmd struct{}

func (*menuCmd) Name() string     { return "academy-menu" }
func (*menuCmd) Synopsis() string { return "run the interactive academy console" }
func (*menuCmd) Usage() string {
	return `cw academy-menu

  Runs the numbered academy menu on the terminal. Options 14 to 16 need the
  administrator secret (` + EnvAdminSecret + ` or ` + EnvAdminSecretHash + `).
`
}

func (*menuCmd) SetFlags(f *flag.FlagSet) {}

func (*menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	gate, err := AdminGate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	store, err := OpenAcademy(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening academy: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if err := NewMenu(store, gate, os.Stdin, os.Stdout).Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
