package redis

const (
	// KeyPrefixDomain is the prefix for domain record keys
	KeyPrefixDomain = "switchboard:domain:"
	// KeyDomainsByCreation is the sorted set of record IDs scored by creation time
	KeyDomainsByCreation = "switchboard:domains:created"
	// KeyDomainURLs is the hash mapping normalized url -> record ID
	KeyDomainURLs = "switchboard:domains:urls"
)

// DomainKey returns the Redis key for a domain record by ID
func DomainKey(id string) string {
	return KeyPrefixDomain + id
}
