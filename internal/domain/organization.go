package domain

import "github.com/google/uuid"

// Organization is a charity tenant. Funding "needs" amounts are stored in
// minor units (kopecks) by the persistence layer and are read-only here.
type Organization struct {
	ID                  uuid.UUID
	Name                string
	LogoPath            string
	IsLegacyMigrated    bool
	NeedsTargetMinor    int64
	NeedsCollectedMinor int64
	Timezone            string
}
