package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/etnz/classwork/academy"
	"github.com/etnz/classwork/renderer"
	"github.com/google/subcommands"
)

// coursesCmd lists courses, optionally filtered by kind or teacher.
type coursesCmd struct {
	local   bool
	offsite bool
	teacher int64
	html    string
}

func (*coursesCmd) Name() string     { return "academy-courses" }
func (*coursesCmd) Synopsis() string { return "display the courses of the academy" }
func (*coursesCmd) Usage() string {
	return `cw academy-courses [-local|-offsite] [-teacher <id>] [-html <file>]

  Displays all courses, local courses first.
`
}

func (c *coursesCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.local, "local", false, "Only local courses")
	f.BoolVar(&c.offsite, "offsite", false, "Only offsite courses")
	f.Int64Var(&c.teacher, "teacher", 0, "Only courses taught by this teacher ID")
	f.StringVar(&c.html, "html", "", "Write the report as HTML to this file instead of printing it")
}

func (c *coursesCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.local && c.offsite {
		fmt.Fprintln(os.Stderr, "Error: -local and -offsite are exclusive")
		return subcommands.ExitUsageError
	}
	store, err := OpenAcademy(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening academy: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	title, list := "Courses", store.Courses
	switch {
	case c.teacher != 0:
		title = fmt.Sprintf("Courses of teacher %d", c.teacher)
		list = func(ctx context.Context) ([]*academy.Course, error) { return store.TeacherCourses(ctx, c.teacher) }
	case c.local:
		title, list = "Local courses", store.LocalCourses
	case c.offsite:
		title, list = "Offsite courses", store.OffsiteCourses
	}
	courses, err := list(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing courses: %v\n", err)
		return subcommands.ExitFailure
	}
	return output(renderer.CoursesMarkdown(title, courses), c.html)
}

// courseCmd shows a single course.
type courseCmd struct {
	html string
}

func (*courseCmd) Name() string     { return "academy-course" }
func (*courseCmd) Synopsis() string { return "display a course with its teachers and program" }
func (*courseCmd) Usage() string {
	return `cw academy-course [-html <file>] <id>

  Displays the course with the given ID.
`
}

func (c *courseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.html, "html", "", "Write the report as HTML to this file instead of printing it")
}

func (c *courseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	id, status := parseID(f)
	if id == 0 {
		return status
	}
	store, err := OpenAcademy(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening academy: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	course, err := store.Course(ctx, id)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return output(renderer.CourseMarkdown(course), c.html)
}

// teachersCmd lists teachers, optionally those of a course.
type teachersCmd struct {
	course int64
}

func (*teachersCmd) Name() string     { return "academy-teachers" }
func (*teachersCmd) Synopsis() string { return "display the teachers of the academy" }
func (*teachersCmd) Usage() string {
	return `cw academy-teachers [-course <id>]

  Displays all teachers, or those teaching a course.
`
}

func (c *teachersCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.course, "course", 0, "Only teachers of this course ID")
}

func (c *teachersCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenAcademy(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening academy: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	var teachers []academy.Teacher
	if c.course != 0 {
		teachers, err = store.CourseTeachers(ctx, c.course)
	} else {
		teachers, err = store.Teachers(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing teachers: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.TeachersMarkdown(teachers))
	return subcommands.ExitSuccess
}

// topicsCmd lists topics, optionally the program of a course.
type topicsCmd struct {
	course int64
}

func (*topicsCmd) Name() string     { return "academy-topics" }
func (*topicsCmd) Synopsis() string { return "display the topics studied at the academy" }
func (*topicsCmd) Usage() string {
	return `cw academy-topics [-course <id>]

  Displays every topic, or the program of a course in order.
`
}

func (c *topicsCmd) SetFlags(f *flag.FlagSet) {
	f.Int64Var(&c.course, "course", 0, "Program of this course ID")
}

func (c *topicsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenAcademy(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening academy: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	title := "Topics"
	var topics []string
	if c.course != 0 {
		title = fmt.Sprintf("Program of course %d", c.course)
		topics, err = store.Program(ctx, c.course)
	} else {
		topics, err = store.Topics(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing topics: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.ListMarkdown(title, topics))
	return subcommands.ExitSuccess
}

// roomsCmd lists rooms, or registers one.
type roomsCmd struct {
	add int
}

func (*roomsCmd) Name() string     { return "academy-rooms" }
func (*roomsCmd) Synopsis() string { return "display or register academy rooms" }
func (*roomsCmd) Usage() string {
	return `cw academy-rooms [-add <room>]

  Displays the rooms of the academy. Registering a room needs the
  administrator secret, read from stdin.
`
}

func (c *roomsCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.add, "add", 0, "Register this room number")
}

func (c *roomsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenAcademy(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening academy: %v\n", err)
		return subcommands.ExitFailure
	}
	defer store.Close()

	if c.add != 0 {
		gate, err := AdminGate()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		m := NewMenu(store, gate, os.Stdin, os.Stdout)
		if !m.authorize() {
			return subcommands.ExitFailure
		}
		if err := store.AddRoom(ctx, c.add); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	rooms, err := store.Rooms(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error listing rooms: %v\n", err)
		return subcommands.ExitFailure
	}
	items := make([]string, len(rooms))
	for i, r := range rooms {
		items[i] = "№" + strconv.Itoa(r)
	}
	printMarkdown(renderer.ListMarkdown("Rooms", items))
	return subcommands.ExitSuccess
}

// parseID reads a single positive ID argument. It returns 0 on error.
func parseID(f *flag.FlagSet) (int64, subcommands.ExitStatus) {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expecting exactly one ID")
		return 0, subcommands.ExitUsageError
	}
	id, err := strconv.ParseInt(f.Arg(0), 10, 64)
	if err == nil {
		err = academy.ValidateID(id)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing ID %q: %v\n", f.Arg(0), err)
		return 0, subcommands.ExitUsageError
	}
	return id, subcommands.ExitSuccess
}
