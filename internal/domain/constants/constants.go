// Package constants holds configuration values compared across packages.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Push providers
const (
	PushProviderWebPush  = "webpush"
	PushProviderFirebase = "firebase"
)

// Cooldown stores used by the tracker agent
const (
	CooldownStoreMemory = "memory"
	CooldownStoreRedis  = "redis"
)
