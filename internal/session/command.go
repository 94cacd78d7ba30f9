package session

import "fmt"

// Kind enumerates the storefront commands.
type Kind int

const (
	KindUnknown Kind = iota
	KindAdd
	KindIncrement
	KindDecrement
	KindRemove
	KindClear
	KindSetCategory
	KindSetSearch
)

var kindNames = map[Kind]string{
	KindAdd:         "add",
	KindIncrement:   "increment",
	KindDecrement:   "decrement",
	KindRemove:      "remove",
	KindClear:       "clear",
	KindSetCategory: "set_category",
	KindSetSearch:   "set_search",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// ParseKind maps a wire name ("add", "set_search", ...) to its Kind.
func ParseKind(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindUnknown, false
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, ok := ParseKind(string(text))
	if !ok {
		return fmt.Errorf("unknown command kind %q", text)
	}
	*k = parsed
	return nil
}

// Command is one user action. Only the fields relevant to Kind are read:
// ProductID and Variant for add, Key for increment/decrement/remove,
// Category for set_category and Search for set_search.
type Command struct {
	Kind      Kind   `json:"kind"`
	ProductID string `json:"product_id,omitempty"`
	Variant   string `json:"variant,omitempty"`
	Key       string `json:"key,omitempty"`
	Category  string `json:"category,omitempty"`
	Search    string `json:"search,omitempty"`
}

// KindOf returns the routing kind of the command.
func (c Command) KindOf() Kind { return c.Kind }

func Add(productID, variant string) Command {
	return Command{Kind: KindAdd, ProductID: productID, Variant: variant}
}

func Increment(key string) Command { return Command{Kind: KindIncrement, Key: key} }

func Decrement(key string) Command { return Command{Kind: KindDecrement, Key: key} }

func Remove(key string) Command { return Command{Kind: KindRemove, Key: key} }

func Clear() Command { return Command{Kind: KindClear} }

func SetCategory(category string) Command {
	return Command{Kind: KindSetCategory, Category: category}
}

func SetSearch(text string) Command { return Command{Kind: KindSetSearch, Search: text} }
