package data

// Category is one labelled value of a pie or bar chart.
type Category struct {
	Name  string
	Value float64
}

// SetCategories replaces the category set called name.
func (s *Store) SetCategories(name string, cats []Category) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.categories[name] = append([]Category(nil), cats...)
	s.version++
}

// Categories returns a copy of the category set called name.
func (s *Store) Categories(name string) ([]Category, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cats, ok := s.categories[name]
	if !ok {
		return nil, false
	}
	return append([]Category(nil), cats...), true
}

// Total sums the category values.
func Total(cats []Category) float64 {
	sum := 0.0
	for _, c := range cats {
		sum += c.Value
	}
	return sum
}
