package por

import "fmt"

// By resolves a --source-set flag value (spec.md §6) to a Policy. server
// is the --server flag's value, required by every policy except
// PureLocal and GlobalLocal.
func By(name, server string) (Policy, error) {
	switch name {
	case "cs":
		return NewClientServer(server), nil
	case "gl":
		return GlobalLocal{}, nil
	case "por1":
		return NewPor1(server), nil
	case "por2":
		return NewPor2(server), nil
	case "por3":
		return NewPor3(server), nil
	case "por4":
		return Por4{}, nil
	case "por5":
		return NewPor5(server), nil
	case "mag":
		return NewMagnetic(server), nil
	case "pure_local":
		return PureLocal{}, nil
	case "rr":
		return NewRoundRobin(server), nil
	default:
		return nil, fmt.Errorf("por.By(%q): %w", name, ErrUnknownPolicy)
	}
}
