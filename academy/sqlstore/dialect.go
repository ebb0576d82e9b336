package sqlstore

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/classwork"
)

// dialect holds what differs between the supported databases. Queries are
// written with '?' placeholders and rebound for the target.
type dialect struct {
	name       string
	driverName string
	serial     string // auto-incremented primary key column type
	numbered   bool   // $1, $2 placeholders instead of ?
	singleConn bool
}

var dialects = map[string]dialect{
	"sqlite": {
		name:       "sqlite",
		driverName: "sqlite", // modernc.org/sqlite
		serial:     "INTEGER PRIMARY KEY AUTOINCREMENT",
		singleConn: true,
	},
	"postgres": {
		name:       "postgres",
		driverName: "pgx", // github.com/jackc/pgx/v5/stdlib
		serial:     "BIGSERIAL PRIMARY KEY",
		numbered:   true,
	},
}

func dialectFor(name string) (dialect, error) {
	if name == "" {
		name = "sqlite"
	}
	d, ok := dialects[name]
	if !ok {
		return dialect{}, fmt.Errorf("unknown database driver %q, want sqlite or postgres: %w", name, classwork.ErrValue)
	}
	return d, nil
}

// rebind turns '?' placeholders into the dialect ones.
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// schema returns the statements creating the academy tables.
func (d dialect) schema() []string {
	return []string{
		`CREATE TABLE IF NOT EXISTS Courses (id_course ` + d.serial + `)`,
		`CREATE TABLE IF NOT EXISTS Rooms (id_room INTEGER PRIMARY KEY)`,
		`CREATE TABLE IF NOT EXISTS LocalCourses (
			id_course BIGINT PRIMARY KEY REFERENCES Courses(id_course),
			name TEXT NOT NULL,
			room INTEGER NOT NULL REFERENCES Rooms(id_room))`,
		`CREATE TABLE IF NOT EXISTS OffsiteCourses (
			id_course BIGINT PRIMARY KEY REFERENCES Courses(id_course),
			name TEXT NOT NULL,
			address TEXT NOT NULL)`,
		`CREATE TABLE IF NOT EXISTS Teachers (
			id_teacher ` + d.serial + `,
			surname TEXT NOT NULL,
			name TEXT NOT NULL,
			patronymic TEXT NOT NULL,
			birth_date TEXT NOT NULL,
			UNIQUE (surname, name, patronymic, birth_date))`,
		`CREATE TABLE IF NOT EXISTS CoursesTeachers (
			id_course BIGINT NOT NULL REFERENCES Courses(id_course),
			id_teacher BIGINT NOT NULL REFERENCES Teachers(id_teacher),
			PRIMARY KEY (id_course, id_teacher))`,
		`CREATE TABLE IF NOT EXISTS Topics (id_topic TEXT PRIMARY KEY)`,
		`CREATE TABLE IF NOT EXISTS Program (
			id_course BIGINT NOT NULL REFERENCES Courses(id_course),
			id_topic TEXT NOT NULL REFERENCES Topics(id_topic),
			position INTEGER NOT NULL,
			PRIMARY KEY (id_course, id_topic))`,
	}
}

// tables in deletion order.
var tables = []string{
	"CoursesTeachers", "Program", "LocalCourses", "OffsiteCourses", "Courses", "Teachers", "Topics", "Rooms",
}
