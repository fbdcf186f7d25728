package promotion

import (
	"errors"
	"slices"
	"strconv"
	"strings"

	"jersey-storefront/internal/domain/catalog"
)

var (
	ErrUnknownScope  = errors.New("unknown promotion scope")
	ErrEmptyTarget   = errors.New("targeted promotion has no targets")
	ErrInvalidTarget = errors.New("invalid promotion target value")
)

type ScopeKind string

const (
	ScopeAll    ScopeKind = "ALL"
	ScopePlayer ScopeKind = "PLAYER"
	ScopeTeam   ScopeKind = "TEAM"
	ScopeLeague ScopeKind = "LEAGUE"
)

func (k ScopeKind) String() string {
	return string(k)
}

func (k ScopeKind) IsValid() bool {
	switch k {
	case ScopeAll, ScopePlayer, ScopeTeam, ScopeLeague:
		return true
	default:
		return false
	}
}

// Specificity orders scopes from broadest (All) to narrowest (Player).
func (k ScopeKind) Specificity() int {
	switch k {
	case ScopePlayer:
		return 3
	case ScopeTeam:
		return 2
	case ScopeLeague:
		return 1
	case ScopeAll:
		return 0
	default:
		return -1
	}
}

// Scope is the targeting rule of a promotion.
type Scope struct {
	kind    ScopeKind
	ids     map[int64]struct{}
	leagues map[string]struct{}
}

func AllScope() Scope {
	return Scope{kind: ScopeAll}
}

func PlayerScope(playerIDs ...int64) Scope {
	return Scope{kind: ScopePlayer, ids: idSet(playerIDs)}
}

func TeamScope(teamIDs ...int64) Scope {
	return Scope{kind: ScopeTeam, ids: idSet(teamIDs)}
}

func LeagueScope(leagues ...string) Scope {
	set := make(map[string]struct{}, len(leagues))
	for _, l := range leagues {
		set[l] = struct{}{}
	}
	return Scope{kind: ScopeLeague, leagues: set}
}

func (s Scope) Kind() ScopeKind { return s.kind }

func (s Scope) Validate() error {
	switch s.kind {
	case ScopeAll:
		return nil
	case ScopePlayer, ScopeTeam:
		if len(s.ids) == 0 {
			return ErrEmptyTarget
		}
		return nil
	case ScopeLeague:
		if len(s.leagues) == 0 {
			return ErrEmptyTarget
		}
		return nil
	default:
		return ErrUnknownScope
	}
}

// Matches reports whether the product falls under this scope.
// League names are compared case-sensitively.
func (s Scope) Matches(p catalog.Product) bool {
	switch s.kind {
	case ScopeAll:
		return true
	case ScopePlayer:
		_, ok := s.ids[p.PlayerID()]
		return ok
	case ScopeTeam:
		_, ok := s.ids[p.TeamID()]
		return ok
	case ScopeLeague:
		_, ok := s.leagues[p.League()]
		return ok
	default:
		return false
	}
}

// IDs returns the sorted player or team ids of the scope.
func (s Scope) IDs() []int64 {
	out := make([]int64, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}

func (s Scope) Leagues() []string {
	out := make([]string, 0, len(s.leagues))
	for l := range s.leagues {
		out = append(out, l)
	}
	slices.Sort(out)
	return out
}

// TargetValue renders the scope targets in the admin wire form (comma-separated).
func (s Scope) TargetValue() string {
	switch s.kind {
	case ScopePlayer, ScopeTeam:
		ids := s.IDs()
		parts := make([]string, len(ids))
		for i, id := range ids {
			parts[i] = strconv.FormatInt(id, 10)
		}
		return strings.Join(parts, ",")
	case ScopeLeague:
		return strings.Join(s.Leagues(), ",")
	default:
		return ""
	}
}

func idSet(ids []int64) map[int64]struct{} {
	set := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
