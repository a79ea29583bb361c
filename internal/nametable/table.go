// Package nametable interns (namespace, local) name pairs into symbols.
//
// A reader registers every name its grammar can dispatch on and then compares
// symbols instead of strings on the per-element path. Symbols are only
// meaningful inside the table that produced them.
package nametable

// Symbol identifies a registered name within one Table.
type Symbol uint32

// Unknown is returned for names that were never registered.
const Unknown Symbol = 0

const recentSize = 8

type key struct {
	namespace string
	local     string
}

type recentEntry struct {
	key key
	sym Symbol
}

// Table maps names to symbols. It is not safe for concurrent use.
type Table struct {
	syms        map[key]Symbol
	names       []key
	recent      [recentSize]recentEntry
	recentCount int
	recentIndex int
}

// New returns an empty table.
func New() *Table {
	return &Table{
		syms:  make(map[key]Symbol, 128),
		names: []key{{}},
	}
}

// Add registers a name and returns its symbol. Adding a name twice returns the
// same symbol.
func (t *Table) Add(namespace, local string) Symbol {
	k := key{namespace: namespace, local: local}
	if sym, ok := t.syms[k]; ok {
		return sym
	}
	sym := Symbol(len(t.names))
	t.names = append(t.names, k)
	t.syms[k] = sym
	return sym
}

// Lookup returns the symbol for a name, or Unknown.
func (t *Table) Lookup(namespace, local string) Symbol {
	for i := 0; i < t.recentCount; i++ {
		e := t.recent[i]
		if e.key.local == local && e.key.namespace == namespace {
			return e.sym
		}
	}
	k := key{namespace: namespace, local: local}
	sym, ok := t.syms[k]
	if !ok {
		return Unknown
	}
	t.remember(recentEntry{key: k, sym: sym})
	return sym
}

// Name returns the namespace and local name behind a symbol.
func (t *Table) Name(sym Symbol) (namespace, local string, ok bool) {
	if sym == Unknown || int(sym) >= len(t.names) {
		return "", "", false
	}
	k := t.names[sym]
	return k.namespace, k.local, true
}

// Len returns the number of registered names.
func (t *Table) Len() int {
	return len(t.names) - 1
}

func (t *Table) remember(e recentEntry) {
	if t.recentCount < recentSize {
		t.recent[t.recentCount] = e
		t.recentCount++
		return
	}
	t.recent[t.recentIndex] = e
	t.recentIndex++
	if t.recentIndex >= recentSize {
		t.recentIndex = 0
	}
}
