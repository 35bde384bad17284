package resolver

import (
	"fmt"
	"hotkeyc/internal/shared/util"

	"github.com/gobwas/glob"
)

// Policy decides which include paths may be loaded. An empty allow list
// admits everything not denied.
type Policy struct {
	allow []glob.Glob
	deny  []glob.Glob
}

func NewPolicy(allow, deny []string) (*Policy, error) {
	p := &Policy{}
	var err error
	if p.allow, err = compilePatterns(allow); err != nil {
		return nil, err
	}
	if p.deny, err = compilePatterns(deny); err != nil {
		return nil, err
	}
	return p, nil
}

func compilePatterns(patterns []string) ([]glob.Glob, error) {
	globs := make([]glob.Glob, 0, len(patterns))
	for _, p := range patterns {
		g, err := glob.Compile(util.NormalizePatternPath(util.ExpandHome(p)), '/')
		if err != nil {
			return nil, fmt.Errorf("invalid include pattern %q: %w", p, err)
		}
		globs = append(globs, g)
	}
	return globs, nil
}

func (p *Policy) Permits(path string) bool {
	if p == nil {
		return true
	}
	path = util.NormalizePatternPath(path)
	for _, g := range p.deny {
		if g.Match(path) {
			return false
		}
	}
	if len(p.allow) == 0 {
		return true
	}
	for _, g := range p.allow {
		if g.Match(path) {
			return true
		}
	}
	return false
}
