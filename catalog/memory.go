// catalog/memory.go
package catalog

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/pranav244872/cvreview/skillz"
)

// Memory is an in-memory catalog. Reads return copies so callers can sort
// or filter the result freely.
type Memory struct {
	mu     sync.RWMutex
	skills []skillz.Skill
	nextID int
	err    error
}

// NewMemory creates an in-memory catalog holding skills in the given order.
func NewMemory(skills ...skillz.Skill) *Memory {
	m := &Memory{}
	for _, s := range skills {
		m.insert(s)
	}
	return m
}

var _ Catalog = (*Memory)(nil)

// FailWith makes every subsequent call return err. Pass nil to recover.
func (m *Memory) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// FetchAllSkills returns a copy of every skill in insertion order.
func (m *Memory) FetchAllSkills(ctx context.Context) ([]skillz.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return nil, m.err
	}
	out := make([]skillz.Skill, len(m.skills))
	copy(out, m.skills)
	return out, nil
}

// ListByCategory returns a copy of the skills in category.
func (m *Memory) ListByCategory(ctx context.Context, category string) ([]skillz.Skill, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.err != nil {
		return nil, m.err
	}
	out := []skillz.Skill{}
	for _, s := range m.skills {
		if s.Category == category {
			out = append(out, s)
		}
	}
	return out, nil
}

// AddSkill appends a skill and returns its id. Names are unique the same way
// the database enforces it.
func (m *Memory) AddSkill(ctx context.Context, skill skillz.Skill) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.err != nil {
		return "", m.err
	}
	for _, s := range m.skills {
		if skillz.NormalizeName(s.Name) == skillz.NormalizeName(skill.Name) {
			return "", fmt.Errorf("failed to add skill '%s': %w", skill.Name, ErrDuplicateSkill)
		}
	}
	return m.insert(skill), nil
}

// AddSkills adds each skill and reports how many were added.
func (m *Memory) AddSkills(ctx context.Context, skills []skillz.Skill) (int, error) {
	added := 0
	for _, s := range skills {
		if _, err := m.AddSkill(ctx, s); err == nil {
			added++
		}
	}
	return added, nil
}

func (m *Memory) insert(skill skillz.Skill) string {
	m.nextID++
	if skill.ID == "" {
		skill.ID = strconv.Itoa(m.nextID)
	}
	m.skills = append(m.skills, skill)
	return skill.ID
}
