// Package trie implements an in-memory prefix tree that counts exact-match
// insertions of words over a finite alphabet.
//
// A Trie is not safe for concurrent use. Callers that share one across
// goroutines must guard every call with a single lock.
package trie

import "unicode/utf8"

// Node is one position in the key space. Its children are indexed by
// alphabet slot and owned exclusively by the node.
type Node struct {
	children []*Node
	count    int
}

// Trie owns a root node for the empty prefix.
type Trie struct {
	alphabet Alphabet
	root     *Node
	nodes    int
	words    int
}

// Option configures a Trie.
type Option func(*Trie)

// WithAlphabet replaces the default Lowercase alphabet.
func WithAlphabet(a Alphabet) Option {
	return func(t *Trie) {
		t.alphabet = a
	}
}

// New creates an empty trie.
func New(opts ...Option) *Trie {
	t := &Trie{alphabet: Lowercase()}
	for _, opt := range opts {
		opt(t)
	}
	t.root = t.newNode()
	return t
}

func (t *Trie) newNode() *Node {
	t.nodes++
	return &Node{children: make([]*Node, t.alphabet.Size())}
}

// Alphabet returns the alphabet keys are checked against.
func (t *Trie) Alphabet() Alphabet {
	return t.alphabet
}

// NodeCount returns the number of live nodes, the root included. It equals
// the number of distinct prefixes of all inserted words.
func (t *Trie) NodeCount() int {
	return t.nodes
}

// Len returns the total number of successful insertions.
func (t *Trie) Len() int {
	return t.words
}

// validate checks every symbol of word before anything is mutated. A byte
// that is not valid UTF-8 is never in the alphabet.
func (t *Trie) validate(word string) error {
	for off := 0; off < len(word); {
		ch, size := utf8.DecodeRuneInString(word[off:])
		if ch == utf8.RuneError && size == 1 {
			return &SymbolError{Word: word, Symbol: ch, Offset: off}
		}
		if _, ok := t.alphabet.Index(ch); !ok {
			return &SymbolError{Word: word, Symbol: ch, Offset: off}
		}
		off += size
	}
	return nil
}

// Insert adds one occurrence of word, creating missing path nodes. A word
// with a symbol outside the alphabet is rejected and leaves the trie as it was.
func (t *Trie) Insert(word string) error {
	if t.root == nil {
		return ErrDestroyed
	}
	if err := t.validate(word); err != nil {
		return err
	}
	node := t.root
	for _, ch := range word {
		idx, _ := t.alphabet.Index(ch)
		if node.children[idx] == nil {
			node.children[idx] = t.newNode()
		}
		node = node.children[idx]
	}
	node.count++
	t.words++
	return nil
}

// Lookup returns how many times word was inserted. A word that was never
// inserted, even if it is a prefix of other words, has count 0.
func (t *Trie) Lookup(word string) (int, error) {
	if t.root == nil {
		return 0, ErrDestroyed
	}
	if err := t.validate(word); err != nil {
		return 0, err
	}
	node := t.root
	for _, ch := range word {
		idx, _ := t.alphabet.Index(ch)
		if node.children[idx] == nil {
			return 0, nil
		}
		node = node.children[idx]
	}
	return node.count, nil
}

type frame struct {
	node *Node
	next int
}

// Destroy releases every node, children before their parent, and returns
// the number of nodes released. It walks an explicit stack so very long
// words cannot exhaust the goroutine stack. Calling Destroy twice returns
// ErrDestroyed.
func (t *Trie) Destroy() (int, error) {
	if t.root == nil {
		return 0, ErrDestroyed
	}
	released := 0
	stack := []frame{{node: t.root}}
	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		var child *Node
		for top.next < len(top.node.children) && child == nil {
			child = top.node.children[top.next]
			top.node.children[top.next] = nil
			top.next++
		}
		if child != nil {
			stack = append(stack, frame{node: child})
			continue
		}
		top.node.children = nil
		top.node.count = 0
		released++
		stack = stack[:len(stack)-1]
	}
	t.root = nil
	t.nodes -= released
	t.words = 0
	return released, nil
}
