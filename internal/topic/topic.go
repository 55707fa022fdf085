package topic

// Topic is one fixed documentation section. The declaration order is the navigation
// order and the order sections are written on save.
type Topic int

const (
	ProjectName Topic = iota
	Tutorials
	Guides
	Explanation
	Reference

	// Count is the number of topics; use it to size per-topic arrays.
	Count int = iota
)

// All lists every topic in order.
var All = [Count]Topic{ProjectName, Tutorials, Guides, Explanation, Reference}

var labels = [Count]string{
	ProjectName: "Project Name",
	Tutorials:   "Tutorials",
	Guides:      "How-To Guides",
	Explanation: "Explanation",
	Reference:   "Reference",
}

var files = [Count]string{
	ProjectName: "project_name.md",
	Tutorials:   "tutorials.md",
	Guides:      "guides.md",
	Explanation: "explanation.md",
	Reference:   "reference.md",
}

// Valid reports whether t is one of the known topics.
func (t Topic) Valid() bool { return t >= 0 && int(t) < Count }

// Label is the human-readable section heading.
func (t Topic) Label() string {
	if !t.Valid() {
		return ""
	}
	return labels[t]
}

// FileName is the placeholder template file for t.
func (t Topic) FileName() string {
	if !t.Valid() {
		return ""
	}
	return files[t]
}

func (t Topic) String() string { return t.Label() }

// Next returns the following topic, wrapping from the last to the first.
func (t Topic) Next() Topic { return Topic((int(t) + 1) % Count) }

// Previous returns the preceding topic, wrapping from the first to the last.
func (t Topic) Previous() Topic { return Topic((int(t) + Count - 1) % Count) }
