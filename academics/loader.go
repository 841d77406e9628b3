package academics

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aitalenthub/advisorbot/core"
	"github.com/aitalenthub/advisorbot/logging"
)

// NoPlansSentinel is returned by Context when no source contributed any
// content. Callers must treat it as valid input, not an error.
const NoPlansSentinel = "No academic plans available"

// Course is one validated record of an academic plan.
type Course struct {
	Code          string
	Name          string
	Semester      int
	Credits       float64
	Prerequisites string
}

// Source describes one logical knowledge source: a structured CSV plan and
// an optional raw text document used as fallback.
type Source struct {
	Label    string
	CSVPath  string
	TextPath string
}

// plan is the resolved form of a Source. Exactly one of courses/raw is
// populated when the source contributed anything.
type plan struct {
	label   string
	courses []Course
	raw     string
	section string // pre-rendered context section
}

func (p *plan) empty() bool { return len(p.courses) == 0 && p.raw == "" }

// Options configure the Loader.
type Options struct {
	// ProgramAI is the source for the AI program plan.
	ProgramAI Source
	// ProgramAIProduct is the source for the AI Product program plan.
	ProgramAIProduct Source
	// Logger receives fallback warnings. Defaults to NoOpLogger.
	Logger logging.Logger
}

// Loader loads both program plans at construction and serves formatted
// context blocks plus course lookups. Read-only after construction.
type Loader struct {
	ai        plan
	aiProduct plan
	logger    logging.Logger
}

// NewLoader constructs a Loader, resolving each source through the fallback
// chain. Construction never fails: a source that cannot be loaded in any
// form contributes nothing.
func NewLoader(optFns ...func(o *Options)) *Loader {
	opts := Options{
		ProgramAI:        Source{Label: "AI", CSVPath: "resources/academic_plan_ai.csv", TextPath: "resources/academic_plan_ai.txt"},
		ProgramAIProduct: Source{Label: "AI Product", CSVPath: "resources/academic_plan_ai_product.csv", TextPath: "resources/academic_plan_ai_product.txt"},
		Logger:           logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	l := &Loader{
		ai:        resolveSource(opts.ProgramAI, opts.Logger),
		aiProduct: resolveSource(opts.ProgramAIProduct, opts.Logger),
		logger:    opts.Logger,
	}
	l.warnOverlaps()
	return l
}

// Context returns the formatted context block for the scope. Sections are
// concatenated in fixed order: AI first, AI Product second.
func (l *Loader) Context(scope core.Scope) string {
	var sections []string
	if scope == core.ScopeProgramAI || scope == core.ScopeBoth {
		if s := l.ai.section; s != "" {
			sections = append(sections, s)
		}
	}
	if scope == core.ScopeProgramAIProduct || scope == core.ScopeBoth {
		if s := l.aiProduct.section; s != "" {
			sections = append(sections, s)
		}
	}
	if len(sections) == 0 {
		return NoPlansSentinel
	}
	return strings.Join(sections, "\n")
}

// Course looks up a course by code (case-insensitive) across both plans,
// AI plan first.
func (l *Loader) Course(code string) (Course, bool) {
	for _, p := range []*plan{&l.ai, &l.aiProduct} {
		for _, c := range p.courses {
			if strings.EqualFold(c.Code, code) {
				return c, true
			}
		}
	}
	return Course{}, false
}

// SemesterPlan returns the courses of the given semester for the scope, in
// original record order.
func (l *Loader) SemesterPlan(semester int, scope core.Scope) []Course {
	var out []Course
	if scope == core.ScopeProgramAI || scope == core.ScopeBoth {
		out = append(out, coursesOfSemester(l.ai.courses, semester)...)
	}
	if scope == core.ScopeProgramAIProduct || scope == core.ScopeBoth {
		out = append(out, coursesOfSemester(l.aiProduct.courses, semester)...)
	}
	return out
}

func coursesOfSemester(courses []Course, semester int) []Course {
	var out []Course
	for _, c := range courses {
		if c.Semester == semester {
			out = append(out, c)
		}
	}
	return out
}

// warnOverlaps logs course codes present in both structured plans.
func (l *Loader) warnOverlaps() {
	if len(l.ai.courses) == 0 || len(l.aiProduct.courses) == 0 {
		return
	}
	aiCodes := make(map[string]struct{}, len(l.ai.courses))
	for _, c := range l.ai.courses {
		aiCodes[strings.ToLower(c.Code)] = struct{}{}
	}
	var overlaps []string
	for _, c := range l.aiProduct.courses {
		if _, ok := aiCodes[strings.ToLower(c.Code)]; ok {
			overlaps = append(overlaps, c.Code)
		}
	}
	if len(overlaps) > 0 {
		l.logger.Warn("overlapping course codes between plans", "codes", strings.Join(overlaps, ","))
	}
}

// resolveSource walks the fallback chain for one source.
func resolveSource(src Source, logger logging.Logger) plan {
	p := plan{label: src.Label}

	if src.CSVPath != "" {
		courses, err := loadPlanCSV(src.CSVPath)
		if err != nil {
			logger.Warn("structured plan unavailable, trying raw fallback",
				"error", (&core.ContextSourceError{Source: src.CSVPath, Err: err}).Error())
		} else {
			p.courses = courses
		}
	}

	if len(p.courses) == 0 && src.TextPath != "" {
		raw, err := loadPlanText(src.TextPath)
		if err != nil {
			logger.Warn("raw plan unavailable, source contributes nothing",
				"error", (&core.ContextSourceError{Source: src.TextPath, Err: err}).Error())
		} else {
			p.raw = raw
		}
	}

	p.section = renderSection(&p)
	return p
}

// renderSection formats one resolved plan as a labeled context section.
func renderSection(p *plan) string {
	if p.empty() {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "=== %s ACADEMIC PLAN ===\n", strings.ToUpper(p.label))
	if len(p.courses) > 0 {
		for _, c := range p.courses {
			b.WriteString(formatCourse(c))
		}
		return b.String()
	}
	b.WriteString(p.raw)
	if !strings.HasSuffix(p.raw, "\n") {
		b.WriteString("\n")
	}
	return b.String()
}

// formatCourse renders an individual course for the context block.
func formatCourse(c Course) string {
	prereqs := c.Prerequisites
	if prereqs == "" {
		prereqs = "None"
	}
	credits := strconv.FormatFloat(c.Credits, 'f', -1, 64)
	return fmt.Sprintf("%s: %s (Semester %d, %s credits)\nPrerequisites: %s\n",
		c.Code, c.Name, c.Semester, credits, prereqs)
}
