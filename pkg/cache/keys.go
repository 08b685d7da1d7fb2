package cache

import "fmt"

// PropertyKey is the cache key for a single property document.
func PropertyKey(id string) string {
	return fmt.Sprintf("property:%s", id)
}
