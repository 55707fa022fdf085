package topic

import "errors"

// Source provides the seed text shown for topics that have never been edited.
type Source interface {
	Placeholder(t Topic) ([]string, error)
}

// SourceFunc adapts a function to Source.
type SourceFunc func(t Topic) ([]string, error)

func (f SourceFunc) Placeholder(t Topic) ([]string, error) { return f(t) }

// FirstOf tries each source in order and returns the first successful result.
func FirstOf(sources ...Source) Source {
	return SourceFunc(func(t Topic) ([]string, error) {
		var errs []error
		for _, s := range sources {
			lines, err := s.Placeholder(t)
			if err == nil {
				return lines, nil
			}
			errs = append(errs, err)
		}
		if len(errs) == 0 {
			return nil, errors.New("no placeholder sources")
		}
		return nil, errors.Join(errs...)
	})
}
