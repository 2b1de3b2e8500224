package client

import "strings"

// Filters is the set of property toggles the filter panel exposes. Each
// field maps to one of the server's allowed filter keys.
type Filters struct {
	IsOpen24h    bool
	IsAccessible bool
	HasBabyCare  bool
}

// None reports whether no filter is active.
func (f Filters) None() bool {
	return !f.IsOpen24h && !f.IsAccessible && !f.HasBabyCare
}

// Keys returns the active filter keys in declaration order.
func (f Filters) Keys() []string {
	keys := make([]string, 0, 3)
	if f.IsOpen24h {
		keys = append(keys, "isOpen24h")
	}
	if f.IsAccessible {
		keys = append(keys, "isAccessible")
	}
	if f.HasBabyCare {
		keys = append(keys, "hasBabyCare")
	}
	return keys
}

// CSV renders the active keys as the comma-separated filters parameter.
func (f Filters) CSV() string {
	return strings.Join(f.Keys(), ",")
}

// Toggle flips the named filter and returns the updated set. Unknown names
// leave the set unchanged.
func (f Filters) Toggle(key string) Filters {
	switch key {
	case "isOpen24h":
		f.IsOpen24h = !f.IsOpen24h
	case "isAccessible":
		f.IsAccessible = !f.IsAccessible
	case "hasBabyCare":
		f.HasBabyCare = !f.HasBabyCare
	}
	return f
}
