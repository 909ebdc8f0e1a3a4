package content

// Patch resolves path against the page subtree root and sets the addressed
// leaf to value, in place. The subtree is the plain nested structure produced
// by encoding/json: objects are map[string]any, lists are []any, everything
// else is a scalar.
//
// Every intermediate segment must already resolve to an existing object or
// list node; nothing is auto-vivified. Resolution happens before any write,
// so a failed patch leaves root unmutated.
func Patch(root map[string]any, path string, value any) error {
	segments, err := parsePath(path)
	if err != nil {
		return err
	}

	if root == nil {
		return &ErrPathNotFound{Path: path, Reason: "nil subtree"}
	}

	// Walk down to the node owning the final segment.
	current := any(root)
	for _, seg := range segments[:len(segments)-1] {
		current, err = descend(current, seg, path)
		if err != nil {
			return err
		}
	}

	last := segments[len(segments)-1]
	obj, ok := current.(map[string]any)
	if !ok {
		return &ErrPathNotFound{Path: path, Reason: "member " + last.member + " on non-object"}
	}

	if !last.hasIndex {
		obj[last.member] = value
		return nil
	}

	list, ok := obj[last.member].([]any)
	if !ok {
		return &ErrPathNotFound{Path: path, Reason: last.member + " is not a list"}
	}
	if last.index >= len(list) {
		return &ErrPathNotFound{Path: path, Reason: "index out of range in " + last.member}
	}
	list[last.index] = value
	return nil
}

// descend resolves one intermediate segment: a member lookup on an object,
// then optionally a list index.
func descend(node any, seg segment, path string) (any, error) {
	obj, ok := node.(map[string]any)
	if !ok {
		return nil, &ErrPathNotFound{Path: path, Reason: "member " + seg.member + " on non-object"}
	}

	child, ok := obj[seg.member]
	if !ok {
		return nil, &ErrPathNotFound{Path: path, Reason: "missing member " + seg.member}
	}

	if !seg.hasIndex {
		if _, isList := child.([]any); isList {
			// A list can only be traversed through an index.
			return nil, &ErrPathNotFound{Path: path, Reason: seg.member + " is a list, index required"}
		}
		return child, nil
	}

	list, ok := child.([]any)
	if !ok {
		return nil, &ErrPathNotFound{Path: path, Reason: seg.member + " is not a list"}
	}
	if seg.index >= len(list) {
		return nil, &ErrPathNotFound{Path: path, Reason: "index out of range in " + seg.member}
	}
	return list[seg.index], nil
}
