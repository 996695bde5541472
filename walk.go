package pagebt

// Walk calls fn for every record in ascending order until fn returns false.
// The slice passed to fn is only valid during the call.
func (t *Tree) Walk(fn func(rec []byte) bool) error {
	if err := t.checkForOpenStore(); err != nil {
		return err
	}
	root := t.NewPage()
	if err := root.Read(t.rootPageNum); err != nil {
		return err
	}
	s := new(stack)
	s.push(stackElement{node: root, tag: 0})
	for s.len() > 0 {
		e := s.pop()
		node, i := e.node, e.tag
		n := node.KeyCount()
		if node.IsLeaf() {
			for j := 0; j < n; j++ {
				if !fn(node.Key(j)) {
					return nil
				}
			}
			continue
		}
		// cursor i-1 is done, emit the separator to its right
		if i > 0 && i <= n {
			if !fn(node.Key(i - 1)) {
				return nil
			}
		}
		if i > n {
			continue
		}
		s.push(stackElement{node: node, tag: i + 1})
		child := t.NewPage()
		if err := child.ReadChild(node, i); err != nil {
			return err
		}
		s.push(stackElement{node: child, tag: 0})
	}
	return nil
}

// Len counts the records by walking the whole tree.
func (t *Tree) Len() (int, error) {
	var n int
	err := t.Walk(func([]byte) bool {
		n++
		return true
	})
	return n, err
}
