package renderer

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/classwork/academy"
	md "github.com/nao1215/markdown"
)

// CoursesMarkdown renders a table of courses.
func CoursesMarkdown(title string, courses []*academy.Course) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(courses) == 0 {
		doc.PlainText("No courses.")
		return doc.String()
	}
	rows := make([][]string, 0, len(courses))
	for _, c := range courses {
		kind, where := location(c)
		rows = append(rows, []string{
			strconv.FormatInt(c.ID, 10),
			c.Name(),
			kind,
			where,
			strings.TrimSpace(academy.FormatTopics(c.Program())),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Course", "Kind", "Where", "Program"},
		Rows:   rows,
	})
	return doc.String()
}

// CourseMarkdown renders a single course with its teachers and program.
func CourseMarkdown(c *academy.Course) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	kind, where := location(c)
	doc.H1(fmt.Sprintf("%d. %s", c.ID, c.Name()))
	doc.PlainText(fmt.Sprintf("%s course, %s", kind, where))

	doc.H2("Teachers")
	if teachers := c.Teachers(); len(teachers) > 0 {
		items := make([]string, len(teachers))
		for i, t := range teachers {
			items[i] = t.String()
		}
		doc.BulletList(items...)
	} else {
		doc.PlainText("No teacher yet.")
	}

	doc.H2("Program")
	if program := c.Program(); len(program) > 0 {
		doc.OrderedList(program...)
	} else {
		doc.PlainText("Empty program.")
	}
	return doc.String()
}

// TeachersMarkdown renders a table of teachers.
func TeachersMarkdown(teachers []academy.Teacher) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Teachers")
	if len(teachers) == 0 {
		doc.PlainText("No teachers.")
		return doc.String()
	}
	rows := make([][]string, 0, len(teachers))
	for _, t := range teachers {
		rows = append(rows, []string{strconv.FormatInt(t.ID, 10), t.Surname, t.Name, t.Patronymic, t.BirthDate})
	}
	doc.Table(md.TableSet{
		Header: []string{"ID", "Surname", "Name", "Patronymic", "Birth date"},
		Rows:   rows,
	})
	return doc.String()
}

// ListMarkdown renders a titled bullet list, used for rooms and topics.
func ListMarkdown(title string, items []string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1(title)
	if len(items) == 0 {
		doc.PlainText("None.")
		return doc.String()
	}
	doc.BulletList(items...)
	return doc.String()
}

func location(c *academy.Course) (kind, where string) {
	if room, ok := c.Room(); ok {
		return "Local", fmt.Sprintf("room %d", room)
	}
	address, _ := c.Address()
	return "Offsite", address
}
