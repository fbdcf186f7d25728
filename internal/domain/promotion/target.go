package promotion

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseTarget converts the admin wire pair (sale_type, target_value) into a Scope.
// target_value is a comma-separated list of player/team ids or league names;
// it is ignored for ALL.
func ParseTarget(saleType, targetValue string) (Scope, error) {
	kind := ScopeKind(strings.ToUpper(strings.TrimSpace(saleType)))

	switch kind {
	case ScopeAll:
		return AllScope(), nil
	case ScopePlayer, ScopeTeam:
		ids, err := parseIDs(targetValue)
		if err != nil {
			return Scope{}, err
		}
		if kind == ScopePlayer {
			return PlayerScope(ids...), nil
		}
		return TeamScope(ids...), nil
	case ScopeLeague:
		names := splitTargets(targetValue)
		if len(names) == 0 {
			return Scope{}, ErrEmptyTarget
		}
		return LeagueScope(names...), nil
	default:
		return Scope{}, fmt.Errorf("%w: %q", ErrUnknownScope, saleType)
	}
}

func parseIDs(targetValue string) ([]int64, error) {
	parts := splitTargets(targetValue)
	if len(parts) == 0 {
		return nil, ErrEmptyTarget
	}
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTarget, part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func splitTargets(targetValue string) []string {
	var out []string
	for _, part := range strings.Split(targetValue, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		out = append(out, part)
	}
	return out
}
