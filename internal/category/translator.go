package category

// The server keeps a small fixed category table; the client speaks slugs.
// Both directions are total: unknown identifiers degrade to the catch-all
// bucket instead of erroring, since misclassification beats data loss.

const (
	// FallbackSlug is the client-side catch-all category.
	FallbackSlug = "other-expense"
	// FallbackServerID is the server's Miscellaneous category.
	FallbackServerID int64 = 6
)

// Must match the server-side category table exactly.
var slugToServerID = map[string]int64{
	"food":          1, // Groceries
	"entertainment": 2,
	"transport":     3,
	"bills":         4,
	"shopping":      5,
	FallbackSlug:    6, // Miscellaneous
}

var serverIDToSlug = func() map[int64]string {
	m := make(map[int64]string, len(slugToServerID))
	for slug, id := range slugToServerID {
		m[id] = slug
	}
	return m
}()

// ToServerID maps a client slug to the server category ID, falling back to
// Miscellaneous for unknown slugs. Never fails.
func ToServerID(slug string) int64 {
	id, _ := LookupServerID(slug)
	return id
}

// ToClientSlug maps a server category ID to the client slug, falling back to
// the catch-all slug for unknown IDs. Never fails.
func ToClientSlug(serverID int64) string {
	slug, _ := LookupClientSlug(serverID)
	return slug
}

// LookupServerID is ToServerID plus a flag reporting whether the fallback was
// used, for callers that want to surface silent misclassification.
func LookupServerID(slug string) (int64, bool) {
	if id, ok := slugToServerID[slug]; ok {
		return id, true
	}
	return FallbackServerID, false
}

// LookupClientSlug is ToClientSlug plus a fallback-detection flag.
func LookupClientSlug(serverID int64) (string, bool) {
	if slug, ok := serverIDToSlug[serverID]; ok {
		return slug, true
	}
	return FallbackSlug, false
}
