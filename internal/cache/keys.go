package cache

import "strings"

// GlobalKeyPrefix namespaces every key this application writes to Redis.
const GlobalKeyPrefix = "balanceai"

// GenerateCacheKey builds a namespaced key from the service name, object
// type, and identifier. Extra params are joined by "_" into one trailing
// segment so a key's colon-separated depth stays fixed.
func GenerateCacheKey(serviceName, objectType, identifier string, paramsKey ...string) string {
	parts := []string{GlobalKeyPrefix, serviceName, objectType, identifier}
	if len(paramsKey) > 0 {
		parts = append(parts, strings.Join(paramsKey, "_"))
	}
	return strings.Join(parts, ":")
}
