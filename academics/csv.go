package academics

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// requiredColumns lists the mandatory CSV header columns. Column order is
// irrelevant; extra columns are ignored.
var requiredColumns = []string{"course_code", "course_name", "semester", "credits", "prerequisites"}

// loadPlanCSV reads and validates a structured plan. Any row violating the
// five-field schema invalidates the structured form entirely, so callers can
// fall back to the raw representation.
func loadPlanCSV(path string) ([]Course, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}

	var courses []Course
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		course, err := parseCourse(record, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		courses = append(courses, course)
	}
	return courses, nil
}

// parseCourse validates one record against the five-field schema. Missing
// optional data (prerequisites) is coerced to the empty string, never nil.
func parseCourse(record []string, cols map[string]int) (Course, error) {
	cell := func(name string) string {
		i := cols[name]
		if i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	code := cell("course_code")
	if code == "" {
		return Course{}, fmt.Errorf("empty course_code")
	}
	name := cell("course_name")
	if name == "" {
		return Course{}, fmt.Errorf("empty course_name for %s", code)
	}
	semester, err := strconv.Atoi(cell("semester"))
	if err != nil {
		return Course{}, fmt.Errorf("invalid semester for %s: %w", code, err)
	}
	credits, err := strconv.ParseFloat(cell("credits"), 64)
	if err != nil {
		return Course{}, fmt.Errorf("invalid credits for %s: %w", code, err)
	}

	return Course{
		Code:          code,
		Name:          name,
		Semester:      semester,
		Credits:       credits,
		Prerequisites: cell("prerequisites"),
	}, nil
}

// loadPlanText reads the raw fallback document verbatim.
func loadPlanText(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	text := string(raw)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("document is empty")
	}
	return text, nil
}
