package academy

import (
	"fmt"
	"strings"

	"github.com/etnz/classwork"
)

// ValidateID checks a course or teacher identifier.
func ValidateID(id int64) error {
	if id <= 0 {
		return fmt.Errorf("identifier %d must be above 0: %w", id, classwork.ErrValue)
	}
	return nil
}

// ValidateRoom checks a room number.
func ValidateRoom(room int) error {
	if room <= 0 {
		return fmt.Errorf("room number %d must be above 0: %w", room, classwork.ErrValue)
	}
	return nil
}

func ValidateTopic(topic string) error {
	if strings.TrimSpace(topic) == "" {
		return fmt.Errorf("topic is empty: %w", classwork.ErrValue)
	}
	return nil
}

// FormatTopics returns "#topic1 #topic2 ".
func FormatTopics(topics []string) string {
	var b strings.Builder
	for _, t := range topics {
		b.WriteString("#" + t + " ")
	}
	return b.String()
}

// FormatRooms returns "№1 №2 ".
func FormatRooms(rooms []int) string {
	var b strings.Builder
	for _, r := range rooms {
		fmt.Fprintf(&b, "№%d ", r)
	}
	return b.String()
}

// ParseTopics splits a comma separated list of topics, collapsing blanks.
// "go,  unit tests ," gives [go unit tests].
func ParseTopics(s string) []string {
	var topics []string
	for _, t := range strings.Split(s, ",") {
		t = strings.Join(strings.Fields(t), " ")
		if t != "" {
			topics = append(topics, t)
		}
	}
	return topics
}
