// Package constants defines shared constant values used across layers.
package constants

// Environment names
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Push provider types
const (
	PushProviderWebPush = "webpush"
	PushProviderFCM     = "fcm"
)

// PubSub provider types
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Scheduler provenance values recorded in the sent-event ledger
const (
	SentByDaily   = "daily"
	SentByPeriod  = "4-hourly"
	SentByManual  = "manual"
	SentByWorker  = "worker"
	SentByUnknown = "unknown"
)
