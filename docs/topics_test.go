package docs

import (
	"errors"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/etnz/classwork"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// TestTopics checks that the readme lists exactly the available topics.
func TestTopics(t *testing.T) {
	readme, err := Topic("readme")
	if err != nil {
		t.Fatalf("failed to read readme: %v", err)
	}
	topicRegex := regexp.MustCompile(`(?m)^\*\s+([^:]+):.*$`)
	var listed []string
	for _, m := range topicRegex.FindAllStringSubmatch(readme, -1) {
		listed = append(listed, strings.TrimSpace(m[1]))
	}
	slices.Sort(listed)

	all, err := All()
	if err != nil {
		t.Fatalf("All returned an unexpected error: %v", err)
	}
	if !slices.Equal(listed, all) {
		t.Errorf("readme lists %v, available topics are %v", listed, all)
	}
}

// TestTitles checks that every topic starts with a single level 1 heading.
func TestTitles(t *testing.T) {
	all, err := All()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range append(all, "readme") {
		t.Run(topic, func(t *testing.T) {
			content, err := Topic(topic)
			if err != nil {
				t.Fatal(err)
			}
			source := []byte(content)
			root := goldmark.DefaultParser().Parse(text.NewReader(source))

			var titles int
			ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if h, ok := n.(*ast.Heading); ok && entering && h.Level == 1 {
					titles++
				}
				return ast.WalkContinue, nil
			})
			if titles != 1 {
				t.Errorf("%d level 1 headings, want 1", titles)
			}
			if first, ok := root.FirstChild().(*ast.Heading); !ok || first.Level != 1 {
				t.Error("topic does not start with a level 1 heading")
			}
		})
	}
}

func TestTopics_Star(t *testing.T) {
	doc, err := Topics("*")
	if err != nil {
		t.Fatalf("Topics(*) returned an unexpected error: %v", err)
	}
	for _, want := range []string{"# Rational", "# Stock", "# Academy", "# Configuration"} {
		if !strings.Contains(doc, want) {
			t.Errorf("Topics(*) does not contain %q", want)
		}
	}
	if strings.Contains(doc, "# cw") {
		t.Error("Topics(*) contains the readme")
	}
}

func TestTopic_Unknown(t *testing.T) {
	if _, err := Topic("nope"); !errors.Is(err, classwork.ErrNotFound) {
		t.Errorf("Topic(nope) error = %v, want %v", err, classwork.ErrNotFound)
	}
}
