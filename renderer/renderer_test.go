package renderer

import (
	"errors"
	"strings"
	"testing"

	"github.com/etnz/classwork"
	"github.com/etnz/classwork/academy"
	"github.com/etnz/classwork/stock"
)

func testComposition(t *testing.T) *stock.Composition {
	t.Helper()
	c, err := stock.NewComposition(
		stock.MustProduct("Apple", 10, stock.P(1.5)),
		stock.MustProduct("Pear", 3, stock.P(2)),
	)
	if err != nil {
		t.Fatalf("NewComposition returned an unexpected error: %v", err)
	}
	return c
}

func assertContains(t *testing.T, doc string, want ...string) {
	t.Helper()
	for _, w := range want {
		if !strings.Contains(doc, w) {
			t.Errorf("document does not contain %q:\n%s", w, doc)
		}
	}
}

func TestCompositionMarkdown(t *testing.T) {
	doc := CompositionMarkdown(testComposition(t), "")
	assertContains(t, doc, "# Composition", "Apple", "Pear", "1.5", "15", "Total cost: **21**")
}

func TestCompositionMarkdown_Currency(t *testing.T) {
	doc := CompositionMarkdown(testComposition(t), "USD")
	assertContains(t, doc, "$1.50", "$15.00", "Total cost: **$21.00**")
}

func TestCompositionMarkdown_Empty(t *testing.T) {
	c, _ := stock.NewComposition()
	assertContains(t, CompositionMarkdown(c, ""), "No products.")
}

func TestProductReportMarkdown(t *testing.T) {
	c := testComposition(t)
	doc, err := ProductReportMarkdown(c, "pear", "EUR")
	if err != nil {
		t.Fatalf("ProductReportMarkdown returned an unexpected error: %v", err)
	}
	assertContains(t, doc, "## Pear", "Quantity: 3", "Total cost: ")

	if _, err := ProductReportMarkdown(c, "Banana", ""); !errors.Is(err, classwork.ErrNotFound) {
		t.Errorf("ProductReportMarkdown(Banana) error = %v, want %v", err, classwork.ErrNotFound)
	}
}

func testCourses(t *testing.T) []*academy.Course {
	t.Helper()
	local, err := academy.NewLocalCourse("Go basics", 12, "types", "interfaces")
	if err != nil {
		t.Fatal(err)
	}
	local.ID = 1
	doe, _ := academy.NewTeacher("Doe", "John", "Paul", "1980-01-02")
	if err := local.AddTeacher(doe); err != nil {
		t.Fatal(err)
	}
	offsite, err := academy.NewOffsiteCourse("Go advanced", "Main street 1")
	if err != nil {
		t.Fatal(err)
	}
	offsite.ID = 2
	return []*academy.Course{local, offsite}
}

func TestCoursesMarkdown(t *testing.T) {
	doc := CoursesMarkdown("Courses", testCourses(t))
	assertContains(t, doc, "# Courses", "Go basics", "room 12", "#types #interfaces", "Go advanced", "Main street 1", "Offsite")

	assertContains(t, CoursesMarkdown("Local courses", nil), "# Local courses", "No courses.")
}

func TestCourseMarkdown(t *testing.T) {
	courses := testCourses(t)
	assertContains(t, CourseMarkdown(courses[0]),
		"# 1. Go basics", "Local course, room 12", "## Teachers", "Doe John Paul (1980-01-02)", "## Program", "types", "interfaces")
	assertContains(t, CourseMarkdown(courses[1]), "Offsite course, Main street 1", "No teacher yet.", "Empty program.")
}

func TestTeachersMarkdown(t *testing.T) {
	doe, _ := academy.NewTeacher("Doe", "John", "Paul", "1980-01-02")
	doe.ID = 7
	assertContains(t, TeachersMarkdown([]academy.Teacher{doe}), "# Teachers", "Doe", "John", "Paul", "1980-01-02")
	assertContains(t, TeachersMarkdown(nil), "No teachers.")
}

func TestListMarkdown(t *testing.T) {
	assertContains(t, ListMarkdown("Rooms", []string{"№1", "№12"}), "# Rooms", "- №1", "- №12")
	assertContains(t, ListMarkdown("Topics", nil), "None.")
}

func TestHTML(t *testing.T) {
	html, err := HTML(CompositionMarkdown(testComposition(t), ""))
	if err != nil {
		t.Fatalf("HTML returned an unexpected error: %v", err)
	}
	assertContains(t, html, "<h1>Composition</h1>", "<table>", "<strong>21</strong>")
}
