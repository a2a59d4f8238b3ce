package docs

import (
	"bufio"
	"os"
	"regexp"
	"slices"
	"strings"
	"testing"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// readmeTopics extracts the topic names listed in readme.md.
func readmeTopics(t *testing.T) []string {
	t.Helper()

	file, err := os.Open("readme.md")
	if err != nil {
		t.Fatalf("failed to open readme.md: %v", err)
	}
	defer file.Close()

	var topics []string
	scanner := bufio.NewScanner(file)
	topicRegex := regexp.MustCompile(`^\*\s+([^:]+):.*$`)
	for scanner.Scan() {
		if matches := topicRegex.FindStringSubmatch(scanner.Text()); len(matches) > 1 {
			topics = append(topics, strings.TrimSpace(matches[1]))
		}
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("error scanning readme.md: %v", err)
	}
	return topics
}

func TestTopics(t *testing.T) {
	// The documentation must stay in sync with itself: every topic the
	// readme lists can be loaded, and every topic file is listed.
	listed := readmeTopics(t)

	for _, topic := range listed {
		t.Run("load_"+topic, func(t *testing.T) {
			if _, err := GetTopic(topic); err != nil {
				t.Errorf("failed to get topic %q: %v", topic, err)
			}
		})
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned an unexpected error: %v", err)
	}
	for _, topic := range all {
		if !slices.Contains(listed, topic) {
			t.Errorf("topic %q is not listed in readme.md", topic)
		}
	}
}

func TestTopicsAreMarkdown(t *testing.T) {
	// Every topic must parse as markdown and open with a heading.
	all, err := GetAllTopics()
	if err != nil {
		t.Fatalf("GetAllTopics() returned an unexpected error: %v", err)
	}
	all = append(all, "readme")

	for _, topic := range all {
		t.Run(topic, func(t *testing.T) {
			content, err := GetTopic(topic)
			if err != nil {
				t.Fatalf("failed to get topic %q: %v", topic, err)
			}

			doc := goldmark.New().Parser().Parse(text.NewReader([]byte(content)))
			headings := 0
			err = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
				if _, ok := n.(*ast.Heading); ok && entering {
					headings++
				}
				return ast.WalkContinue, nil
			})
			if err != nil {
				t.Fatalf("failed to walk markdown of %q: %v", topic, err)
			}
			if headings == 0 {
				t.Errorf("topic %q has no heading", topic)
			}
		})
	}
}

func TestGetTopics_Star(t *testing.T) {
	got, err := GetTopics("*")
	if err != nil {
		t.Fatalf("GetTopics(\"*\") returned an unexpected error: %v", err)
	}

	all, err := GetAllTopics()
	if err != nil {
		t.Fatal(err)
	}
	for _, topic := range all {
		content, err := GetTopic(topic)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(got, content) {
			t.Errorf("GetTopics(\"*\") misses topic %q", topic)
		}
	}
}

func TestGetTopics_Unknown(t *testing.T) {
	if _, err := GetTopics("no-such-topic"); err == nil {
		t.Error("GetTopics() with an unknown topic returned no error")
	}
}
